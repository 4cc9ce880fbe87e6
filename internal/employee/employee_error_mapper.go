package employee

import (
	"errors"
	"fmt"
	"strings"

	employeeerrors "go-employee/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError folds store failures into the API error taxonomy:
// missing rows become 404, Postgres integrity-constraint class 23xxx
// becomes 409, anything else passes through and surfaces as 500.
func mapRepositoryError(err error, id int) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		if id > 0 {
			return employeeerrors.ErrEmployeeNotFound.
				WithDetails(fmt.Sprintf("No employee found for ID: %d", id))
		}
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if strings.HasPrefix(pgErr.Code, "23") {
			return employeeerrors.ErrIntegrityViolation.
				WithDetails("The operation violates database constraints")
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		return employeeerrors.ErrIntegrityViolation.
			WithDetails("The operation violates database constraints")
	}

	return err
}
