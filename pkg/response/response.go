package response

import (
	"errors"
	"log"
	"net/http"

	"github.com/edava/student-records-api/pkg/apperror"
	"github.com/gin-gonic/gin"
)

// Debug attaches the underlying error string to 500 responses.
// Enabled at boot when APP_ENV=development.
var Debug bool

// Envelope is the uniform body shape returned by every non-empty response.
type Envelope struct {
	Success    bool                `json:"success"`
	Message    string              `json:"message"`
	Data       any                 `json:"data"`
	StatusCode int                 `json:"statusCode"`
	Errors     map[string][]string `json:"errors,omitempty"`
	Debug      string              `json:"debug,omitempty"`
}

// JSON writes a success envelope
func JSON(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{
		Success:    true,
		Message:    message,
		Data:       data,
		StatusCode: status,
	})
}

// NoContent writes an empty 204 response (delete success)
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// ValidationFailed writes the 400 envelope for schema-validation failures
func ValidationFailed(c *gin.Context, fieldErrors map[string][]string) {
	c.JSON(http.StatusBadRequest, Envelope{
		Success:    false,
		Message:    "Validation failed",
		Data:       nil,
		StatusCode: http.StatusBadRequest,
		Errors:     fieldErrors,
	})
}

// Error writes a standardized error envelope
func Error(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	body := Envelope{
		Success:    false,
		Message:    err.Error(),
		Data:       nil,
		StatusCode: code,
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		body.Errors = appErr.FieldErrors
	}

	// Log internal errors, never leak them to the client
	if code == http.StatusInternalServerError {
		if cause := errors.Unwrap(err); cause != nil {
			log.Printf("[Internal Error]: %v: %v", err, cause)
		} else {
			log.Printf("[Internal Error]: %v", err)
		}
		if Debug && appErr != nil && appErr.Err != nil {
			body.Debug = appErr.Err.Error()
		}
	}

	c.JSON(code, body)
}
