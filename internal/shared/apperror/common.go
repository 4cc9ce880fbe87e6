package apperror

import "net/http"

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"Invalid input",
		http.StatusBadRequest,
	)

	ErrValidationFailed = New(
		CodeValidationFailed,
		"Validation failed",
		http.StatusBadRequest,
	)

	ErrMalformedBody = New(
		CodeMalformedBody,
		"Invalid JSON format",
		http.StatusBadRequest,
	)

	ErrTypeMismatch = New(
		CodeTypeMismatch,
		"Type conversion error",
		http.StatusBadRequest,
	)

	ErrMissingParameter = New(
		CodeMissingParameter,
		"Missing required parameter",
		http.StatusBadRequest,
	)

	ErrConflict = New(
		CodeConflict,
		"Data integrity violation",
		http.StatusConflict,
	)

	ErrInternal = New(
		CodeInternalError,
		"Internal server error",
		http.StatusInternalServerError,
	)
)

// MissingParameter builds the 400 body for an absent required query or
// path parameter.
func MissingParameter(name string) *AppError {
	return ErrMissingParameter.WithDetails("Required parameter '" + name + "' is missing")
}

// TypeMismatch builds the 400 body for a parameter that cannot be
// converted to its expected type.
func TypeMismatch(name, expected string) *AppError {
	return ErrTypeMismatch.WithDetails("Parameter '" + name + "' should be of type " + expected)
}
