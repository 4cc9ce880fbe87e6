package employee

import (
	"context"
	"strings"
	"time"

	employeeerrors "go-employee/internal/employee/errors"
	"go-employee/internal/shared/contextutil"

	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id int) (EmployeeResponse, error)
	Update(ctx context.Context, id int, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Patch(ctx context.Context, id int, req PatchEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id int) error

	GetByDesignation(ctx context.Context, designation string) ([]EmployeeResponse, error)
	GetByCompany(ctx context.Context, company string) ([]EmployeeResponse, error)
	SearchByName(ctx context.Context, name string) ([]EmployeeResponse, error)
	GetBornAfter(ctx context.Context, date time.Time) ([]EmployeeResponse, error)
	GetByDesignationAndCompany(ctx context.Context, designation, company string) ([]EmployeeResponse, error)
	CountByDesignation(ctx context.Context, designation string) (int64, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	DeleteByDesignation(ctx context.Context, designation string) (int64, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create employee requested", zap.String("name", req.Name))

	dob, err := parseDob(req.DateOfBirth)
	if err != nil {
		log.Warn("create employee invalid dateOfBirth",
			zap.String("dateOfBirth", req.DateOfBirth),
		)
		return EmployeeResponse{}, err
	}

	empl := NewEmployee(req.Name, req.Designation, dob, req.Company)
	if err := validateEmployee(empl); err != nil {
		log.Warn("create employee validation failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	if err := s.repo.Create(ctx, empl); err != nil {
		log.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err, 0)
	}

	log.Info("create employee success", zap.Int("emp_id", empl.EmpID))

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested")
	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err, 0)
	}

	return mapToListResponse(empls), nil
}

func (s *service) GetByID(ctx context.Context, id int) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.Int("emp_id", id))
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("get employee by id failed", zap.Int("emp_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err, id)
	}

	return mapToResponse(*empl), nil
}

// Update is the full-replace variant: the incoming body must pass business
// validation and every mutable field is overwritten, blanks included. The
// id and creation time are carried from the existing record.
func (s *service) Update(ctx context.Context, id int, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("update employee requested", zap.Int("emp_id", id))

	dob, err := parseDob(req.DateOfBirth)
	if err != nil {
		return EmployeeResponse{}, err
	}

	candidate := NewEmployee(req.Name, req.Designation, dob, req.Company)
	if err := validateEmployee(candidate); err != nil {
		log.Warn("update employee validation failed", zap.Int("emp_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}

	var updated Employee
	err = s.repo.Transaction(ctx, func(tx Repository) error {
		empl, err := tx.FindByID(ctx, id)
		if err != nil {
			return mapRepositoryError(err, id)
		}

		empl.Name = req.Name
		empl.Designation = req.Designation
		empl.Dob = dob
		empl.Company = req.Company

		if err := tx.Save(ctx, empl); err != nil {
			return mapRepositoryError(err, id)
		}

		updated = *empl
		return nil
	})
	if err != nil {
		log.Warn("update employee failed", zap.Int("emp_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}

	log.Info("update employee success", zap.Int("emp_id", id))
	return mapToResponse(updated), nil
}

// Patch is the field-merge variant: no full validation; string fields
// overwrite only when present and non-blank, the date only when non-null.
func (s *service) Patch(ctx context.Context, id int, req PatchEmployeeRequest) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("patch employee requested", zap.Int("emp_id", id))

	var dob *time.Time
	if req.DateOfBirth != nil {
		parsed, err := parseDob(*req.DateOfBirth)
		if err != nil {
			return EmployeeResponse{}, err
		}
		dob = parsed
	}

	var patched Employee
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		empl, err := tx.FindByID(ctx, id)
		if err != nil {
			return mapRepositoryError(err, id)
		}

		if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
			empl.Name = *req.Name
		}
		if req.Designation != nil && strings.TrimSpace(*req.Designation) != "" {
			empl.Designation = *req.Designation
		}
		if dob != nil {
			empl.Dob = dob
		}
		if req.Company != nil && strings.TrimSpace(*req.Company) != "" {
			empl.Company = *req.Company
		}

		if err := tx.Save(ctx, empl); err != nil {
			return mapRepositoryError(err, id)
		}

		patched = *empl
		return nil
	})
	if err != nil {
		log.Warn("patch employee failed", zap.Int("emp_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}

	log.Info("patch employee success", zap.Int("emp_id", id))
	return mapToResponse(patched), nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("delete employee requested", zap.Int("emp_id", id))

	err := s.repo.Transaction(ctx, func(tx Repository) error {
		empl, err := tx.FindByID(ctx, id)
		if err != nil {
			return mapRepositoryError(err, id)
		}

		if err := tx.Delete(ctx, empl); err != nil {
			return mapRepositoryError(err, id)
		}
		return nil
	})
	if err != nil {
		log.Warn("delete employee failed", zap.Int("emp_id", id), zap.Error(err))
		return err
	}

	log.Info("delete employee success", zap.Int("emp_id", id))
	return nil
}

func (s *service) GetByDesignation(ctx context.Context, designation string) ([]EmployeeResponse, error) {
	if strings.TrimSpace(designation) == "" {
		return nil, employeeerrors.ErrDesignationRequired
	}

	empls, err := s.repo.FindByDesignation(ctx, designation)
	if err != nil {
		s.logger.Error("get employees by designation failed", zap.String("designation", designation), zap.Error(err))
		return nil, mapRepositoryError(err, 0)
	}

	return mapToListResponse(empls), nil
}

func (s *service) GetByCompany(ctx context.Context, company string) ([]EmployeeResponse, error) {
	if strings.TrimSpace(company) == "" {
		return nil, employeeerrors.ErrCompanyRequired
	}

	empls, err := s.repo.FindByCompany(ctx, company)
	if err != nil {
		s.logger.Error("get employees by company failed", zap.String("company", company), zap.Error(err))
		return nil, mapRepositoryError(err, 0)
	}

	return mapToListResponse(empls), nil
}

func (s *service) SearchByName(ctx context.Context, name string) ([]EmployeeResponse, error) {
	if strings.TrimSpace(name) == "" {
		return nil, employeeerrors.ErrNameRequired
	}

	empls, err := s.repo.FindByNameContaining(ctx, name)
	if err != nil {
		s.logger.Error("search employees by name failed", zap.String("name", name), zap.Error(err))
		return nil, mapRepositoryError(err, 0)
	}

	return mapToListResponse(empls), nil
}

func (s *service) GetBornAfter(ctx context.Context, date time.Time) ([]EmployeeResponse, error) {
	if date.IsZero() {
		return nil, employeeerrors.ErrDateRequired
	}

	empls, err := s.repo.FindByDobAfter(ctx, date)
	if err != nil {
		s.logger.Error("get employees born after failed", zap.Time("date", date), zap.Error(err))
		return nil, mapRepositoryError(err, 0)
	}

	return mapToListResponse(empls), nil
}

func (s *service) GetByDesignationAndCompany(ctx context.Context, designation, company string) ([]EmployeeResponse, error) {
	if strings.TrimSpace(designation) == "" {
		return nil, employeeerrors.ErrDesignationRequired
	}
	if strings.TrimSpace(company) == "" {
		return nil, employeeerrors.ErrCompanyRequired
	}

	empls, err := s.repo.FindByDesignationAndCompany(ctx, designation, company)
	if err != nil {
		s.logger.Error("get employees by designation and company failed",
			zap.String("designation", designation),
			zap.String("company", company),
			zap.Error(err),
		)
		return nil, mapRepositoryError(err, 0)
	}

	return mapToListResponse(empls), nil
}

func (s *service) CountByDesignation(ctx context.Context, designation string) (int64, error) {
	if strings.TrimSpace(designation) == "" {
		return 0, employeeerrors.ErrDesignationRequired
	}

	count, err := s.repo.CountByDesignation(ctx, designation)
	if err != nil {
		s.logger.Error("count employees by designation failed", zap.String("designation", designation), zap.Error(err))
		return 0, mapRepositoryError(err, 0)
	}

	return count, nil
}

func (s *service) ExistsByName(ctx context.Context, name string) (bool, error) {
	if strings.TrimSpace(name) == "" {
		return false, employeeerrors.ErrNameRequired
	}

	exists, err := s.repo.ExistsByName(ctx, name)
	if err != nil {
		s.logger.Error("employee exists by name failed", zap.String("name", name), zap.Error(err))
		return false, mapRepositoryError(err, 0)
	}

	return exists, nil
}

// DeleteByDesignation removes every matching record; zero matches is still
// a success.
func (s *service) DeleteByDesignation(ctx context.Context, designation string) (int64, error) {
	if strings.TrimSpace(designation) == "" {
		return 0, employeeerrors.ErrDesignationRequired
	}

	deleted, err := s.repo.DeleteByDesignation(ctx, designation)
	if err != nil {
		s.logger.Error("delete employees by designation failed", zap.String("designation", designation), zap.Error(err))
		return 0, mapRepositoryError(err, 0)
	}

	s.logger.Info("delete employees by designation success",
		zap.String("designation", designation),
		zap.Int64("deleted", deleted),
	)
	return deleted, nil
}

func parseDob(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, employeeerrors.ErrInvalidDateFormat
	}
	return &parsed, nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		EmpID:       empl.EmpID,
		Name:        empl.Name,
		Designation: empl.Designation,
		Company:     empl.Company,
	}
	if empl.Dob != nil {
		resp.DateOfBirth = empl.Dob.Format("2006-01-02")
	}
	if !empl.CreationTime.IsZero() {
		resp.CreationTime = empl.CreationTime.Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}
