// Package apperr defines the tagged error type shared by the service and
// HTTP layers. Handlers select HTTP statuses from the Kind discriminator,
// never from message text.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindUnauthorized
	KindConflict
)

// FieldError is one entry of a validation failure report.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error carries an HTTP status alongside the message. Operational marks
// expected failures that are safe to surface to the client as-is.
type Error struct {
	Kind        Kind
	Status      int
	Message     string
	Details     []FieldError
	Operational bool
}

func (e *Error) Error() string {
	return e.Message
}

// New returns a generic application error with an explicit status.
func New(message string, status int) *Error {
	return &Error{
		Kind:        KindInternal,
		Status:      status,
		Message:     message,
		Operational: true,
	}
}

// Validation returns a 400 error, optionally carrying per-field details.
func Validation(message string, details ...FieldError) *Error {
	return &Error{
		Kind:        KindValidation,
		Status:      http.StatusBadRequest,
		Message:     message,
		Details:     details,
		Operational: true,
	}
}

// NotFound returns a 404 error. An empty resource name yields
// "Resource not found", otherwise "<resource> not found".
func NotFound(resource string) *Error {
	message := "Resource not found"
	if resource != "" {
		message = resource + " not found"
	}
	return &Error{
		Kind:        KindNotFound,
		Status:      http.StatusNotFound,
		Message:     message,
		Operational: true,
	}
}

// Unauthorized returns a 401 error, defaulting the message to "Unauthorized".
func Unauthorized(message string) *Error {
	if message == "" {
		message = "Unauthorized"
	}
	return &Error{
		Kind:        KindUnauthorized,
		Status:      http.StatusUnauthorized,
		Message:     message,
		Operational: true,
	}
}

// Conflict returns a 409 error for uniqueness violations.
func Conflict(message string) *Error {
	return &Error{
		Kind:        KindConflict,
		Status:      http.StatusConflict,
		Message:     message,
		Operational: true,
	}
}

// From unwraps err into an *Error if one is present in its chain.
func From(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
