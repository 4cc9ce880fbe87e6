package employee

import (
	"time"
)

// Employee is a row in the employees table. EmpID is assigned by the
// database sequence (starting at 101) and never by callers. CreationTime
// is set when the in-memory object is built and is never persisted.
type Employee struct {
	EmpID        int        `gorm:"column:emp_id;primaryKey;autoIncrement"`
	Name         string     `gorm:"column:name;type:varchar(20);not null"`
	Designation  string     `gorm:"column:designation;type:varchar(50)"`
	Dob          *time.Time `gorm:"column:dob;type:date"`
	Company      string     `gorm:"column:company;type:varchar(100)"`
	CreationTime time.Time  `gorm:"-"`
}

func (Employee) TableName() string {
	return "employees"
}

// NewEmployee builds an unsaved record, stamping CreationTime.
func NewEmployee(name, designation string, dob *time.Time, company string) *Employee {
	return &Employee{
		Name:         name,
		Designation:  designation,
		Dob:          dob,
		Company:      company,
		CreationTime: time.Now(),
	}
}

// Equal reports identity equality: two records are equal iff both carry an
// assigned, matching id.
func (e *Employee) Equal(other *Employee) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.EmpID != 0 && e.EmpID == other.EmpID
}
