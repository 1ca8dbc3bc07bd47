package errors

import (
	"errors"
	"fmt"
)

// Failure classes surfaced to API callers. Services wrap these with a
// caller-visible message; handlers map them to HTTP statuses.
var (
	ErrValidation   = errors.New("invalid request")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
)

type classedError struct {
	class   error
	message string
}

func (e *classedError) Error() string { return e.message }
func (e *classedError) Unwrap() error { return e.class }

// WithMessage attaches a caller-visible message to a failure class.
// errors.Is(err, class) still holds for the returned error.
func WithMessage(class error, message string) error {
	return &classedError{class: class, message: message}
}

func Validation(format string, args ...any) error {
	return WithMessage(ErrValidation, fmt.Sprintf(format, args...))
}

func NotFound(message string) error {
	return WithMessage(ErrNotFound, message)
}

func Conflict(message string) error {
	return WithMessage(ErrConflict, message)
}

func Unauthorized(message string) error {
	return WithMessage(ErrUnauthorized, message)
}
