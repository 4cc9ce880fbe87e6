package employee

import (
	"regexp"
	"strings"
	"time"

	"go-employee/internal/shared/apperror"
)

var namePattern = regexp.MustCompile(`^[a-zA-Z\s-]+$`)

// validateEmployee enforces the business rules on a candidate record ahead
// of any save or full update. Checks run in a fixed order and stop at the
// first violation; the violated rule's reason becomes the error detail.
// The date-of-birth rule re-evaluates against "now" on every call.
func validateEmployee(e *Employee) error {
	if e == nil {
		return apperror.ErrInvalidInput.WithDetails("Employee cannot be null")
	}

	if strings.TrimSpace(e.Name) == "" {
		return apperror.ErrInvalidInput.WithDetails("Employee name is required")
	}

	if len(e.Name) < 2 || len(e.Name) > 20 {
		return apperror.ErrInvalidInput.WithDetails("Employee name must be between 2 and 20 characters")
	}

	if !namePattern.MatchString(e.Name) {
		return apperror.ErrInvalidInput.WithDetails("Name can only contain letters, spaces, and hyphens")
	}

	if strings.TrimSpace(e.Designation) != "" && len(e.Designation) > 50 {
		return apperror.ErrInvalidInput.WithDetails("Designation cannot exceed 50 characters")
	}

	if strings.TrimSpace(e.Company) != "" && len(e.Company) > 100 {
		return apperror.ErrInvalidInput.WithDetails("Company name cannot exceed 100 characters")
	}

	if e.Dob != nil && !e.Dob.Before(time.Now()) {
		return apperror.ErrInvalidInput.WithDetails("Date of birth must be in the past")
	}

	return nil
}
