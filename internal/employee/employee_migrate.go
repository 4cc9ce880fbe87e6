package employee

import "gorm.io/gorm"

// Migrate creates the employees table and floors its id sequence so the
// first assigned emp_id is 101, without rewinding past existing rows.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&Employee{}); err != nil {
		return err
	}

	return db.Exec(`
		SELECT setval(
			pg_get_serial_sequence('employees', 'emp_id'),
			GREATEST(COALESCE((SELECT MAX(emp_id) FROM employees), 100), 100)
		)
	`).Error
}
