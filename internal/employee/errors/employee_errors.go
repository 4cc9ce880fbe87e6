package employeeerrors

import (
	"net/http"

	"go-employee/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrIntegrityViolation = apperror.New(
		apperror.CodeConflict,
		"Data integrity violation",
		http.StatusConflict,
	)

	ErrDesignationRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid input",
		http.StatusBadRequest,
	).WithDetails("Designation cannot be null or empty")

	ErrCompanyRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid input",
		http.StatusBadRequest,
	).WithDetails("Company name cannot be null or empty")

	ErrNameRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid input",
		http.StatusBadRequest,
	).WithDetails("Name cannot be null or empty")

	ErrDateRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid input",
		http.StatusBadRequest,
	).WithDetails("Date cannot be null")

	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid input",
		http.StatusBadRequest,
	).WithDetails("Invalid dateOfBirth format, expected YYYY-MM-DD")
)
