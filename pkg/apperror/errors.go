package apperror

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound         = errors.New("resource not found")
	ErrBadRequest       = errors.New("bad request")
	ErrConflict         = errors.New("conflict")
	ErrInvalidReference = errors.New("invalid reference")
	ErrInternal         = errors.New("internal server error")
)

// AppError is a custom error type that can hold an HTTP status code and,
// for validation/conflict outcomes, per-field error messages.
type AppError struct {
	Code        int
	Message     string
	Err         error
	FieldErrors map[string][]string
}

func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError
func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// WithFields creates an AppError carrying field-scoped messages
func WithFields(code int, message string, err error, fields map[string][]string) *AppError {
	return &AppError{
		Code:        code,
		Message:     message,
		Err:         err,
		FieldErrors: fields,
	}
}

// MapErrorToStatus maps common errors to HTTP status codes
func MapErrorToStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code != 0 {
		return appErr.Code
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrConflict) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrBadRequest) || errors.Is(err, ErrInvalidReference) {
		return http.StatusBadRequest
	}
	// Default to internal server error
	return http.StatusInternalServerError
}
