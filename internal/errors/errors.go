package errors

import (
	"fmt"
	"net/http"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeAuthRequired ErrorType = "auth_required"
	ErrorTypeAccessDenied ErrorType = "access_denied"
	ErrorTypeNotFound     ErrorType = "not_found"
	ErrorTypeValidation   ErrorType = "validation"
	ErrorTypeAPI          ErrorType = "api"
)

// APIError is the single error shape calling code handles for every remote
// failure: enumerated statuses get their own type, everything else (other
// non-2xx, transport, parse) is ErrorTypeAPI with a best-effort message.
type APIError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code,omitempty"`
	err     error     // internal cause for logging
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s (internal: %v)", e.Type, e.Message, e.err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap exposes the internal cause
func (e *APIError) Unwrap() error {
	return e.err
}

// NewAuthRequiredError creates an error for HTTP 401 responses
func NewAuthRequiredError(msg string, err error) *APIError {
	return &APIError{
		Type:    ErrorTypeAuthRequired,
		Message: msg,
		Code:    http.StatusUnauthorized,
		err:     err,
	}
}

// NewAccessDeniedError creates an error for HTTP 403 responses
func NewAccessDeniedError(msg string, err error) *APIError {
	return &APIError{
		Type:    ErrorTypeAccessDenied,
		Message: msg,
		Code:    http.StatusForbidden,
		err:     err,
	}
}

// NewNotFoundError creates an error for HTTP 404 on a specific resource
func NewNotFoundError(msg string, err error) *APIError {
	return &APIError{
		Type:    ErrorTypeNotFound,
		Message: msg,
		Code:    http.StatusNotFound,
		err:     err,
	}
}

// NewValidationError creates a local pre-network validation error
func NewValidationError(msg string) *APIError {
	return &APIError{
		Type:    ErrorTypeValidation,
		Message: msg,
	}
}

// NewAPIError creates a generic API error for any other failure
func NewAPIError(msg string, code int, err error) *APIError {
	if msg == "" && code > 0 {
		msg = http.StatusText(code)
	}
	return &APIError{
		Type:    ErrorTypeAPI,
		Message: msg,
		Code:    code,
		err:     err,
	}
}

// Message returns the user-facing message of an error: the APIError message
// verbatim when available, the plain Error() text otherwise.
func Message(err error) string {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.Message
	}
	return err.Error()
}

// IsAuthRequired checks if an error is an AuthRequired error
func IsAuthRequired(err error) bool {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.Type == ErrorTypeAuthRequired
	}
	return false
}

// IsAccessDenied checks if an error is an AccessDenied error
func IsAccessDenied(err error) bool {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.Type == ErrorTypeAccessDenied
	}
	return false
}

// IsNotFound checks if an error is a NotFound error
func IsNotFound(err error) bool {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.Type == ErrorTypeNotFound
	}
	return false
}
