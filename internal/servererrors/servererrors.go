package servererrors

import (
	"errors"
	"net/http"
)

// Code is a machine-readable error class. The HTTP layer only ever shows the
// free-text message to clients, so codes can evolve without breaking the wire
// format.
type Code string

const (
	CodeUnauthorized Code = "unauthorized"
	CodeBadRequest   Code = "bad_request"
	CodeInternal     Code = "internal"
)

// Sentinel errors for the fixed 4xx conditions the API exposes. Services
// return these and handlers translate them with a switch on errors.Is.
var (
	ErrUnauthorized          = New(http.StatusUnauthorized, CodeUnauthorized, "Unauthorized")
	ErrMissingProductFields  = New(http.StatusBadRequest, CodeBadRequest, "Missing required fields: name, price")
	ErrOrderMustIncludeItems = New(http.StatusBadRequest, CodeBadRequest, "Order must include items")
	ErrNoValidItems          = New(http.StatusBadRequest, CodeBadRequest, "No valid items in order")
	ErrInvalidRequestPayload = New(http.StatusBadRequest, CodeBadRequest, "invalid request payload")
)

type ServerError struct {
	StatusCode int
	Code       Code
	Message    string
	Err        error // optional underlying cause, never shown to clients
}

func New(statusCode int, code Code, message string) *ServerError {
	return &ServerError{
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
	}
}

// Wrap attaches an underlying cause for logging while keeping the client
// facing status and message intact.
func Wrap(statusCode int, code Code, message string, err error) *ServerError {
	return &ServerError{
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
		Err:        err,
	}
}

func (e *ServerError) Error() string {
	return e.Message
}

func (e *ServerError) Unwrap() error {
	return e.Err
}

// Is makes the sentinel errors above comparable with errors.Is even after a
// handler re-wraps them, matching on code and status rather than identity.
func (e *ServerError) Is(target error) bool {
	var t *ServerError
	if !errors.As(target, &t) {
		return false
	}

	return e.StatusCode == t.StatusCode && e.Code == t.Code && e.Message == t.Message
}
