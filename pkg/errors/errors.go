package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType classifies the failures the collector can hit
type ErrorType string

const (
	ErrorTypeUnknownPrefix ErrorType = "unknown_prefix"
	ErrorTypeNetwork       ErrorType = "network"
	ErrorTypeServerError   ErrorType = "server_error"
	ErrorTypeNotFound      ErrorType = "not_found"
	ErrorTypeParsing       ErrorType = "parsing"
	ErrorTypeContext       ErrorType = "context"
	ErrorTypeUnknown       ErrorType = "unknown"
)

// Error carries a failure type alongside the message. Code is the HTTP
// status when the failure came from a fetch, zero otherwise.
type Error struct {
	Type    ErrorType
	Message string
	Code    int
}

func (e *Error) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("%s error (code %d): %s", e.Type, e.Code, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Type, e.Message)
}

// New creates a typed error without an HTTP status code.
func New(t ErrorType, format string, args ...interface{}) *Error {
	return &Error{Type: t, Message: fmt.Sprintf(format, args...)}
}

// NewHTTP creates a typed error carrying an HTTP status code.
func NewHTTP(t ErrorType, code int, format string, args ...interface{}) *Error {
	return &Error{Type: t, Message: fmt.Sprintf(format, args...), Code: code}
}

// TypeOf returns the error type of err, or ErrorTypeUnknown when err is not
// a typed error.
func TypeOf(err error) ErrorType {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Type
	}
	return ErrorTypeUnknown
}

// IsUnknownPrefix reports whether err is an unknown-prefix failure.
func IsUnknownPrefix(err error) bool {
	return TypeOf(err) == ErrorTypeUnknownPrefix
}

// IsRetryable reports whether a failure of the given type is worth retrying.
// Unknown prefixes and parse failures never change between attempts.
func IsRetryable(t ErrorType) bool {
	switch t {
	case ErrorTypeNetwork, ErrorTypeServerError:
		return true
	default:
		return false
	}
}

// IsRetryableStatusCode reports whether an HTTP status code indicates a
// transient failure.
func IsRetryableStatusCode(statusCode int) bool {
	switch statusCode {
	case 0: // network error, no response
		return true
	case 429:
		return true
	case 401, 403, 404:
		return false
	default:
		return statusCode >= 500
	}
}
