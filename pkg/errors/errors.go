package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a typed domain error with HTTP awareness. Summary is the short
// category shown to clients; the wrapped error carries the detail.
type Error struct {
	Code    string
	Summary string
	Status  int
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Summary, e.Err)
	}
	return e.Summary
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches errors sharing the same code so wrapped clones compare equal to the
// predefined values.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) || e == nil || other == nil {
		return false
	}
	return e.Code == other.Code
}

// Detail returns the message of the wrapped error, if any.
func (e *Error) Detail() string {
	if e == nil || e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

// New creates a new Error instance.
func New(code string, status int, summary string) *Error {
	return &Error{Code: code, Status: status, Summary: summary}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, summary string) *Error {
	return &Error{Code: code, Status: status, Summary: summary, Err: err}
}

// Predefined errors for common scenarios.
var (
	ErrInvalidArgument = New("INVALID_ARGUMENT", http.StatusBadRequest, "Invalid page or pageSize parameters")
	ErrStore           = New("STORE_ERROR", http.StatusInternalServerError, "Failed to query data store")
	ErrNotFound        = New("NOT_FOUND", http.StatusNotFound, "Route not found")
	ErrInternal        = New("INTERNAL_ERROR", http.StatusInternalServerError, "Internal server error")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Summary)
}

// Clone returns a copy of the error allowing for summary overrides.
func Clone(err *Error, summary string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if summary != "" {
		clone.Summary = summary
	}
	return &clone
}

// WrapAs returns a copy of base wrapping err, optionally overriding the summary.
func WrapAs(base *Error, err error, summary string) *Error {
	clone := Clone(base, summary)
	if clone == nil {
		return nil
	}
	clone.Err = err
	return clone
}
