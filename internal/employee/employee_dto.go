package employee

// CreateEmployeeRequest carries structural (per-field) constraints for the
// binding layer; the service re-checks business rules in order.
type CreateEmployeeRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=20"`
	Designation string `json:"designation" binding:"omitempty,max=50"`
	DateOfBirth string `json:"dateOfBirth" binding:"omitempty,datetime=2006-01-02"`
	Company     string `json:"company" binding:"omitempty,max=100"`
}

// UpdateEmployeeRequest replaces every mutable field, including to blank
// where the column permits.
type UpdateEmployeeRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=20"`
	Designation string `json:"designation" binding:"omitempty,max=50"`
	DateOfBirth string `json:"dateOfBirth" binding:"omitempty,datetime=2006-01-02"`
	Company     string `json:"company" binding:"omitempty,max=100"`
}

// PatchEmployeeRequest distinguishes absent fields from blank ones, so no
// binding constraints: a blank string is skipped by the merge, matching the
// full-update/partial-update asymmetry the API has always had.
type PatchEmployeeRequest struct {
	Name        *string `json:"name"`
	Designation *string `json:"designation"`
	DateOfBirth *string `json:"dateOfBirth"`
	Company     *string `json:"company"`
}

type EmployeeResponse struct {
	EmpID        int    `json:"empId"`
	Name         string `json:"name"`
	Designation  string `json:"designation,omitempty"`
	DateOfBirth  string `json:"dateOfBirth,omitempty"`
	Company      string `json:"company,omitempty"`
	CreationTime string `json:"creationTime,omitempty"`
}
