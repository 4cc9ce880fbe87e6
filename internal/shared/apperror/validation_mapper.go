package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

func fieldMessage(e validator.FieldError) string {
	name := formatFieldName(e.Field())
	switch e.Tag() {
	case "required":
		return name + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", name, e.Param())
	case "max":
		return fmt.Sprintf("%s cannot exceed %s characters", name, e.Param())
	case "datetime":
		return name + " must be a valid date in YYYY-MM-DD format"
	default:
		return name + " is invalid"
	}
}

// MapBindingError classifies an error returned by Gin's body binding into
// the error body the API promises: unparseable JSON, a JSON value of the
// wrong type, or per-field validation failures.
func MapBindingError(err error) *AppError {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return ErrMalformedBody.WithDetails("The request body contains invalid JSON")
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return ErrTypeMismatch.WithDetails(
			fmt.Sprintf("Field '%s' should be of type %s", typeErr.Field, typeErr.Type.String()),
		)
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make([]FieldError, 0, len(validationErrs))
		for _, e := range validationErrs {
			fields = append(fields, FieldError{
				Field:         e.Field(),
				Message:       fieldMessage(e),
				RejectedValue: e.Value(),
			})
		}
		return ErrValidationFailed.
			WithDetails("One or more fields have validation errors").
			WithFields(fields)
	}

	return ErrInvalidInput.WithDetails(err.Error())
}
