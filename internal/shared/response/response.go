package response

import (
	"time"

	"github.com/gin-gonic/gin"

	"go-employee/internal/shared/apperror"
)

// ErrorBody is the structured error payload returned for every failed
// request. Absent members are omitted rather than emitted as null.
type ErrorBody struct {
	Timestamp   time.Time             `json:"timestamp"`
	Status      int                   `json:"status"`
	Message     string                `json:"message"`
	Details     string                `json:"details,omitempty"`
	Path        string                `json:"path"`
	FieldErrors []apperror.FieldError `json:"fieldErrors,omitempty"`
}

func Success(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// Error writes the structured error body for an AppError, stamping the
// originating request path and the generation time.
func Error(c *gin.Context, appErr *apperror.AppError) {
	c.JSON(appErr.HTTPStatus, ErrorBody{
		Timestamp:   time.Now().UTC(),
		Status:      appErr.HTTPStatus,
		Message:     appErr.Message,
		Details:     appErr.Details,
		Path:        c.Request.URL.Path,
		FieldErrors: appErr.Fields,
	})
}
