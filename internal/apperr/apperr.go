// Package apperr defines the error type used across the application.
package apperr

import "fmt"

// Error is an application error with an optional underlying cause.
type Error struct {
	Cause   error
	Message string
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Fmt returns a copy of the error with its message formatted using the
// provided arguments.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Cause:   e.Cause,
		Message: fmt.Sprintf(e.Message, args...),
	}
}

// Wrap returns a copy of the error with the underlying cause attached.
func (e *Error) Wrap(cause error) *Error {
	return &Error{
		Cause:   cause,
		Message: e.Message,
	}
}
