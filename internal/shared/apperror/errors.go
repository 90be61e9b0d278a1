package apperror

import (
	"errors"
	"net/http"
)

// Error kinds. Every *Error unwraps to exactly one of these so callers can
// classify failures with errors.Is.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
)

// NullObjectMessage is returned when create/update receives no payload.
const NullObjectMessage = "It's not allowed to persist a null object!"

// ErrNullObject is the InvalidInput failure for a nil DTO.
var ErrNullObject = InvalidInput(NullObjectMessage)

// Error carries a fixed human-readable message plus its kind.
// Cause optionally holds the underlying failure, e.g. field validation errors.
type Error struct {
	Kind    error
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

// InvalidInput builds a client error for a malformed or missing payload.
func InvalidInput(message string) *Error {
	return &Error{Kind: ErrInvalidInput, Message: message}
}

// Validation wraps field validation errors as InvalidInput.
func Validation(cause error) *Error {
	return &Error{Kind: ErrInvalidInput, Message: "Validation failed", Cause: cause}
}

// NotFound builds a client error for a missing resource.
func NotFound(message string) *Error {
	return &Error{Kind: ErrNotFound, Message: message}
}

// Unauthorized builds an authentication failure.
func Unauthorized(message string) *Error {
	return &Error{Kind: ErrUnauthorized, Message: message}
}

// HTTPStatus converts an error to the HTTP status code the transport should use.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnauthorized):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Code converts an error to the API error code used in response bodies.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return "BAD_REQUEST"
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrUnauthorized):
		return "FORBIDDEN"
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}

// PublicMessage returns the message that is safe to show a client.
// Unclassified errors are hidden behind a generic message.
func PublicMessage(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Internal server error"
}
