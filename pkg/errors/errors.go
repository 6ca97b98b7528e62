package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType classifies an AppError and fixes its HTTP status
type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "validation"
	ErrorTypeNotFound     ErrorType = "not_found"
	ErrorTypeUnauthorized ErrorType = "unauthorized"
	ErrorTypeForbidden    ErrorType = "forbidden"
	ErrorTypeInternal     ErrorType = "internal"
	ErrorTypeNetwork      ErrorType = "network"
)

var statusByType = map[ErrorType]int{
	ErrorTypeValidation:   http.StatusBadRequest,
	ErrorTypeNotFound:     http.StatusNotFound,
	ErrorTypeUnauthorized: http.StatusUnauthorized,
	ErrorTypeForbidden:    http.StatusForbidden,
	ErrorTypeInternal:     http.StatusInternalServerError,
	// Callers of the API only learn that an upstream call failed.
	ErrorTypeNetwork: http.StatusInternalServerError,
}

// AppError carries the client-facing message of a failed request. Message is
// safe to return to the caller; Cause is for logs only.
type AppError struct {
	Type       ErrorType
	Message    string
	StatusCode int
	Cause      error
}

func newAppError(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:       errorType,
		Message:    message,
		StatusCode: statusByType[errorType],
		Cause:      cause,
	}
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func NewValidationError(message string) *AppError {
	return newAppError(ErrorTypeValidation, message, nil)
}

func NewNotFoundError(message string) *AppError {
	return newAppError(ErrorTypeNotFound, message, nil)
}

func NewUnauthorizedError(message string) *AppError {
	return newAppError(ErrorTypeUnauthorized, message, nil)
}

func NewForbiddenError(message string) *AppError {
	return newAppError(ErrorTypeForbidden, message, nil)
}

func NewInternalError(message string, cause error) *AppError {
	return newAppError(ErrorTypeInternal, message, cause)
}

// NewNetworkError reports a failed call to an upstream service
func NewNetworkError(message string, cause error) *AppError {
	return newAppError(ErrorTypeNetwork, message, cause)
}

// As returns the AppError in err's chain, if any.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsType reports whether err wraps an AppError of the given type
func IsType(err error, errorType ErrorType) bool {
	if appErr, ok := As(err); ok {
		return appErr.Type == errorType
	}
	return false
}

// GetStatusCode returns the HTTP status for err; anything that is not an
// AppError is a 500.
func GetStatusCode(err error) int {
	if appErr, ok := As(err); ok {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
