package employee

import (
	"errors"
	"testing"
	"time"

	"go-employee/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

func datePtr(t time.Time) *time.Time {
	return &t
}

func TestValidateEmployee(t *testing.T) {
	twentyYearsAgo := time.Now().AddDate(-20, 0, 0)
	tomorrow := time.Now().AddDate(0, 0, 1)

	t.Run("accepts a fully valid candidate", func(t *testing.T) {
		empl := NewEmployee("Jo-Ann Lee", "", datePtr(twentyYearsAgo), "")
		assert.NoError(t, validateEmployee(empl))
	})

	t.Run("rejects nil candidate", func(t *testing.T) {
		err := validateEmployee(nil)
		assert.Error(t, err)
	})

	t.Run("rejects missing name", func(t *testing.T) {
		empl := NewEmployee("", "Developer", nil, "Tech Corp")
		err := validateEmployee(empl)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "name is required")
	})

	t.Run("rejects one-character name", func(t *testing.T) {
		empl := NewEmployee("A", "", nil, "")
		err := validateEmployee(empl)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "between 2 and 20 characters")
	})

	t.Run("rejects name with digits", func(t *testing.T) {
		empl := NewEmployee("Jo3", "", nil, "")
		err := validateEmployee(empl)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "letters, spaces, and hyphens")
	})

	t.Run("rejects 51-character designation", func(t *testing.T) {
		long := make([]byte, 51)
		for i := range long {
			long[i] = 'x'
		}
		empl := NewEmployee("John Doe", string(long), nil, "")
		err := validateEmployee(empl)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Designation cannot exceed 50 characters")
	})

	t.Run("rejects 101-character company", func(t *testing.T) {
		long := make([]byte, 101)
		for i := range long {
			long[i] = 'x'
		}
		empl := NewEmployee("John Doe", "", nil, string(long))
		err := validateEmployee(empl)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Company name cannot exceed 100 characters")
	})

	t.Run("rejects date of birth tomorrow", func(t *testing.T) {
		empl := NewEmployee("John Doe", "", datePtr(tomorrow), "")
		err := validateEmployee(empl)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "must be in the past")
	})

	t.Run("first violation wins when several fields are invalid", func(t *testing.T) {
		empl := NewEmployee("", string(make([]byte, 51)), datePtr(tomorrow), "")
		err := validateEmployee(empl)
		assert.Contains(t, err.Error(), "name is required")
	})

	t.Run("violations map to 400 invalid input", func(t *testing.T) {
		err := validateEmployee(NewEmployee("A", "", nil, ""))

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, 400, appErr.HTTPStatus)
		assert.Equal(t, "Invalid input", appErr.Message)
	})
}

func TestEmployeeEqual(t *testing.T) {
	a := &Employee{EmpID: 101, Name: "John"}
	b := &Employee{EmpID: 101, Name: "Different Name"}
	c := &Employee{EmpID: 102, Name: "John"}
	unsaved := &Employee{Name: "John"}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	// unsaved records are never equal, even to themselves
	assert.False(t, unsaved.Equal(unsaved))
	assert.False(t, a.Equal(nil))
}
