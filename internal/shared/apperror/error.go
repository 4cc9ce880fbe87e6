package apperror

import "fmt"

// FieldError describes a single invalid field reported by structural
// request validation.
type FieldError struct {
	Field         string `json:"field"`
	Message       string `json:"message"`
	RejectedValue any    `json:"rejectedValue,omitempty"`
}

type AppError struct {
	Code       string       // Error code (e.g., INVALID_INPUT)
	Message    string       // Short user-facing summary
	Details    string       // Longer human-readable detail (optional)
	HTTPStatus int          // HTTP status code
	Fields     []FieldError // Per-field errors, validation failures only
	Err        error        // Wrapped original error (optional)
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Details)
	}
	return e.Message
}

// Unwrap implements errors.Unwrap interface for errors.Is/As
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError without wrapping
func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        nil,
	}
}

// Wrap creates an AppError that wraps an existing error
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// WithDetails returns a copy carrying a specific detail string. Copying
// keeps the shared sentinels immutable.
func (e *AppError) WithDetails(details string) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

// WithFields returns a copy carrying per-field validation errors.
func (e *AppError) WithFields(fields []FieldError) *AppError {
	clone := *e
	clone.Fields = fields
	return &clone
}
