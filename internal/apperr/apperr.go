// Package apperr provides the error taxonomy shared across the service:
// validation errors, not-found errors, I/O faults and render failures.
// Handlers map these kinds onto HTTP status codes at the boundary.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for boundary handling.
type Kind int

const (
	// KindValidation covers bad identifiers, bad categories and malformed
	// request bodies. Also used for malformed persisted JSON, which is
	// treated as bad data rather than a system fault.
	KindValidation Kind = iota
	// KindNotFound covers missing configurations, templates, images and
	// sections. Never logged as a system fault.
	KindNotFound
	// KindIO covers disk read/write failures other than "missing".
	KindIO
	// KindRender covers template execution failures that are not
	// themselves not-found errors.
	KindRender
)

// Error is a classified application error. Cause is optional.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
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

// Validation creates a validation-class error.
func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NotFound creates a not-found error.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// IO wraps a low-level filesystem error with operation context.
func IO(cause error, format string, args ...any) *Error {
	return &Error{Kind: KindIO, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Render wraps a template execution failure carrying the cause's message.
func Render(cause error, format string, args ...any) *Error {
	return &Error{Kind: KindRender, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// KindOf returns the kind of err, or ok=false if err is not an *Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsNotFound reports whether err is (or wraps) a not-found error.
func IsNotFound(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindNotFound
}

// IsValidation reports whether err is (or wraps) a validation error.
func IsValidation(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindValidation
}
