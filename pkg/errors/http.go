package errors

import (
	"errors"
	"net/http"
)

// HTTPError is a domain error translated for the delivery layer.
type HTTPError struct {
	StatusCode int    `json:"-"`
	Code       int    `json:"code"`
	Message    string `json:"message"`
}

// NewHTTPError creates an HTTPError whose code mirrors the HTTP status.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Code:       statusCode,
		Message:    message,
	}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Common delivery errors.
var (
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Internal server error")
	ErrServiceUnavailable  = NewHTTPError(http.StatusServiceUnavailable, "Service unavailable")
)

// AsHTTPError returns the HTTPError in err's chain, if any.
func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	if errors.As(err, &he) {
		return he, true
	}
	return nil, false
}
