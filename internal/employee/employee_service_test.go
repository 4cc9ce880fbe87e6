package employee_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-employee/internal/employee"
	mock_employee "go-employee/internal/employee/mock"
	"go-employee/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (*mock_employee.MockRepository, employee.Service) {
	ctrl := gomock.NewController(t)
	mockRepo := mock_employee.NewMockRepository(ctrl)
	svc := employee.NewService(mockRepo)
	return mockRepo, svc
}

// expectTransaction makes the mocked Transaction hand the callback the
// mock itself, so inner expectations can be set on the same mock.
func expectTransaction(mockRepo *mock_employee.MockRepository) {
	mockRepo.EXPECT().
		Transaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(employee.Repository) error) error {
			return fn(mockRepo)
		})
}

func appErrorOf(t *testing.T, err error) *apperror.AppError {
	t.Helper()
	var appErr *apperror.AppError
	assert.True(t, errors.As(err, &appErr), "expected an AppError, got %v", err)
	return appErr
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success assigns id and keeps creation time", func(t *testing.T) {
		mockRepo, svc := setupService(t)

		mockRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, empl *employee.Employee) error {
				empl.EmpID = 101
				return nil
			})

		res, err := svc.Create(ctx, employee.CreateEmployeeRequest{
			Name:        "John Doe",
			Designation: "Developer",
			DateOfBirth: "1990-05-15",
			Company:     "Tech Corp",
		})

		assert.NoError(t, err)
		assert.Equal(t, 101, res.EmpID)
		assert.Equal(t, "John Doe", res.Name)
		assert.Equal(t, "1990-05-15", res.DateOfBirth)
		assert.NotEmpty(t, res.CreationTime)
	})

	t.Run("validation failure never reaches the store", func(t *testing.T) {
		_, svc := setupService(t)

		_, err := svc.Create(ctx, employee.CreateEmployeeRequest{Name: "A"})

		appErr := appErrorOf(t, err)
		assert.Equal(t, 400, appErr.HTTPStatus)
		assert.Equal(t, "Invalid input", appErr.Message)
		assert.Contains(t, appErr.Details, "between 2 and 20 characters")
	})

	t.Run("future date of birth rejected", func(t *testing.T) {
		_, svc := setupService(t)

		tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
		_, err := svc.Create(ctx, employee.CreateEmployeeRequest{
			Name:        "John Doe",
			DateOfBirth: tomorrow,
		})

		appErr := appErrorOf(t, err)
		assert.Contains(t, appErr.Details, "must be in the past")
	})

	t.Run("unparseable date of birth rejected", func(t *testing.T) {
		_, svc := setupService(t)

		_, err := svc.Create(ctx, employee.CreateEmployeeRequest{
			Name:        "John Doe",
			DateOfBirth: "15-05-1990",
		})

		appErr := appErrorOf(t, err)
		assert.Contains(t, appErr.Details, "YYYY-MM-DD")
	})

	t.Run("store constraint violation maps to 409", func(t *testing.T) {
		mockRepo, svc := setupService(t)

		mockRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(&pgconn.PgError{Code: "23505"})

		_, err := svc.Create(ctx, employee.CreateEmployeeRequest{Name: "John Doe"})

		appErr := appErrorOf(t, err)
		assert.Equal(t, 409, appErr.HTTPStatus)
		assert.Equal(t, "Data integrity violation", appErr.Message)
	})
}

func TestEmployeeService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mockRepo, svc := setupService(t)

		mockRepo.EXPECT().
			FindByID(gomock.Any(), 101).
			Return(&employee.Employee{EmpID: 101, Name: "John Doe"}, nil)

		res, err := svc.GetByID(ctx, 101)

		assert.NoError(t, err)
		assert.Equal(t, 101, res.EmpID)
		assert.Equal(t, "John Doe", res.Name)
	})

	t.Run("missing record maps to 404 resource not found", func(t *testing.T) {
		mockRepo, svc := setupService(t)

		mockRepo.EXPECT().
			FindByID(gomock.Any(), 42).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.GetByID(ctx, 42)

		appErr := appErrorOf(t, err)
		assert.Equal(t, 404, appErr.HTTPStatus)
		assert.Equal(t, "Resource not found", appErr.Message)
		assert.Contains(t, appErr.Details, "No employee found for ID: 42")
	})
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()
	dob := time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC)

	t.Run("full replace overwrites every field, blanks included", func(t *testing.T) {
		mockRepo, svc := setupService(t)
		expectTransaction(mockRepo)

		existing := &employee.Employee{
			EmpID:       101,
			Name:        "John Doe",
			Designation: "Developer",
			Dob:         &dob,
			Company:     "Tech Corp",
		}
		mockRepo.EXPECT().FindByID(gomock.Any(), 101).Return(existing, nil)

		var saved *employee.Employee
		mockRepo.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, empl *employee.Employee) error {
				saved = empl
				return nil
			})

		// body omits company: the full replace clears it
		res, err := svc.Update(ctx, 101, employee.UpdateEmployeeRequest{
			Name:        "Joanna Doe",
			Designation: "Manager",
		})

		assert.NoError(t, err)
		assert.Equal(t, 101, saved.EmpID)
		assert.Equal(t, "Joanna Doe", saved.Name)
		assert.Equal(t, "Manager", saved.Designation)
		assert.Nil(t, saved.Dob)
		assert.Equal(t, "", saved.Company)
		assert.Equal(t, "", res.Company)
	})

	t.Run("incoming body must pass validation", func(t *testing.T) {
		_, svc := setupService(t)

		_, err := svc.Update(ctx, 101, employee.UpdateEmployeeRequest{Name: "Jo3"})

		appErr := appErrorOf(t, err)
		assert.Equal(t, 400, appErr.HTTPStatus)
	})

	t.Run("missing record maps to 404", func(t *testing.T) {
		mockRepo, svc := setupService(t)
		expectTransaction(mockRepo)

		mockRepo.EXPECT().FindByID(gomock.Any(), 42).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Update(ctx, 42, employee.UpdateEmployeeRequest{Name: "John Doe"})

		appErr := appErrorOf(t, err)
		assert.Equal(t, 404, appErr.HTTPStatus)
	})
}

func TestEmployeeService_Patch(t *testing.T) {
	ctx := context.Background()
	dob := time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC)

	strPtr := func(s string) *string { return &s }

	t.Run("merges only the supplied field", func(t *testing.T) {
		mockRepo, svc := setupService(t)
		expectTransaction(mockRepo)

		existing := &employee.Employee{
			EmpID:       101,
			Name:        "John Doe",
			Designation: "Developer",
			Dob:         &dob,
			Company:     "Tech Corp",
		}
		mockRepo.EXPECT().FindByID(gomock.Any(), 101).Return(existing, nil)

		var saved *employee.Employee
		mockRepo.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, empl *employee.Employee) error {
				saved = empl
				return nil
			})

		_, err := svc.Patch(ctx, 101, employee.PatchEmployeeRequest{
			Designation: strPtr("Manager"),
		})

		assert.NoError(t, err)
		assert.Equal(t, "Manager", saved.Designation)
		assert.Equal(t, "John Doe", saved.Name)
		assert.Equal(t, &dob, saved.Dob)
		assert.Equal(t, "Tech Corp", saved.Company)
	})

	t.Run("blank string is treated as absent", func(t *testing.T) {
		mockRepo, svc := setupService(t)
		expectTransaction(mockRepo)

		existing := &employee.Employee{EmpID: 101, Name: "John Doe", Company: "Tech Corp"}
		mockRepo.EXPECT().FindByID(gomock.Any(), 101).Return(existing, nil)

		var saved *employee.Employee
		mockRepo.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, empl *employee.Employee) error {
				saved = empl
				return nil
			})

		_, err := svc.Patch(ctx, 101, employee.PatchEmployeeRequest{
			Company: strPtr("   "),
		})

		assert.NoError(t, err)
		assert.Equal(t, "Tech Corp", saved.Company)
	})

	t.Run("missing record maps to 404 before merging", func(t *testing.T) {
		mockRepo, svc := setupService(t)
		expectTransaction(mockRepo)

		mockRepo.EXPECT().FindByID(gomock.Any(), 42).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Patch(ctx, 42, employee.PatchEmployeeRequest{})

		appErr := appErrorOf(t, err)
		assert.Equal(t, 404, appErr.HTTPStatus)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mockRepo, svc := setupService(t)
		expectTransaction(mockRepo)

		existing := &employee.Employee{EmpID: 101, Name: "John Doe"}
		mockRepo.EXPECT().FindByID(gomock.Any(), 101).Return(existing, nil)
		mockRepo.EXPECT().Delete(gomock.Any(), existing).Return(nil)

		assert.NoError(t, svc.Delete(ctx, 101))
	})

	t.Run("missing record maps to 404", func(t *testing.T) {
		mockRepo, svc := setupService(t)
		expectTransaction(mockRepo)

		mockRepo.EXPECT().FindByID(gomock.Any(), 42).Return(nil, gorm.ErrRecordNotFound)

		err := svc.Delete(ctx, 42)

		appErr := appErrorOf(t, err)
		assert.Equal(t, 404, appErr.HTTPStatus)
	})
}

func TestEmployeeService_Queries(t *testing.T) {
	ctx := context.Background()

	t.Run("search by name passes the substring through", func(t *testing.T) {
		mockRepo, svc := setupService(t)

		mockRepo.EXPECT().
			FindByNameContaining(gomock.Any(), "jo").
			Return([]employee.Employee{
				{EmpID: 101, Name: "John"},
				{EmpID: 102, Name: "Joanna"},
			}, nil)

		res, err := svc.SearchByName(ctx, "jo")

		assert.NoError(t, err)
		assert.Len(t, res, 2)
		assert.Equal(t, "John", res[0].Name)
		assert.Equal(t, "Joanna", res[1].Name)
	})

	t.Run("blank search name rejected", func(t *testing.T) {
		_, svc := setupService(t)

		_, err := svc.SearchByName(ctx, "  ")

		appErr := appErrorOf(t, err)
		assert.Equal(t, 400, appErr.HTTPStatus)
	})

	t.Run("count by designation is an exact match count", func(t *testing.T) {
		mockRepo, svc := setupService(t)

		mockRepo.EXPECT().
			CountByDesignation(gomock.Any(), "Developer").
			Return(int64(3), nil)

		count, err := svc.CountByDesignation(ctx, "Developer")

		assert.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("blank designation rejected for count", func(t *testing.T) {
		_, svc := setupService(t)

		_, err := svc.CountByDesignation(ctx, "")
		assert.Error(t, err)
	})

	t.Run("filter requires both arguments", func(t *testing.T) {
		_, svc := setupService(t)

		_, err := svc.GetByDesignationAndCompany(ctx, "Developer", "")
		appErr := appErrorOf(t, err)
		assert.Contains(t, appErr.Details, "Company")
	})

	t.Run("filter delegates the conjunction", func(t *testing.T) {
		mockRepo, svc := setupService(t)

		mockRepo.EXPECT().
			FindByDesignationAndCompany(gomock.Any(), "Developer", "Tech Corp").
			Return([]employee.Employee{{EmpID: 101, Name: "John"}}, nil)

		res, err := svc.GetByDesignationAndCompany(ctx, "Developer", "Tech Corp")

		assert.NoError(t, err)
		assert.Len(t, res, 1)
	})

	t.Run("exists by name", func(t *testing.T) {
		mockRepo, svc := setupService(t)

		mockRepo.EXPECT().ExistsByName(gomock.Any(), "John").Return(true, nil)

		exists, err := svc.ExistsByName(ctx, "John")

		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("born after requires a date", func(t *testing.T) {
		_, svc := setupService(t)

		_, err := svc.GetBornAfter(ctx, time.Time{})
		assert.Error(t, err)
	})

	t.Run("delete by designation reports affected rows, zero is fine", func(t *testing.T) {
		mockRepo, svc := setupService(t)

		mockRepo.EXPECT().
			DeleteByDesignation(gomock.Any(), "Intern").
			Return(int64(0), nil)

		deleted, err := svc.DeleteByDesignation(ctx, "Intern")

		assert.NoError(t, err)
		assert.Equal(t, int64(0), deleted)
	})

	t.Run("repository error surfaces", func(t *testing.T) {
		mockRepo, svc := setupService(t)

		mockRepo.EXPECT().FindAll(gomock.Any()).Return(nil, errors.New("db error"))

		_, err := svc.GetAll(ctx)
		assert.Error(t, err)
	})
}
