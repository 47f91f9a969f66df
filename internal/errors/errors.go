// Package errors provides liftlog's coded errors. Every user-facing
// failure carries a stable code, a category, and usually a suggestion,
// so CLI output points at the fix instead of dumping a stack.
package errors

import (
	"errors"
	"fmt"
)

// Category groups error codes by subsystem.
type Category string

const (
	CategoryConfig  Category = "config"
	CategoryStorage Category = "storage"
	CategoryBackup  Category = "backup"
	CategoryServer  Category = "server"
	CategoryCLI     Category = "cli"
)

// Error is a coded error.
type Error struct {
	// Code is the stable identifier, e.g. "L101".
	Code string

	// Category is the owning subsystem.
	Category Category

	// Message is the short description from the registry.
	Message string

	// Detail is situation-specific context.
	Detail string

	// Suggestion is a hint on how to fix the problem.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error { return e.Wrapped }

// New creates an error from a registered code. Unknown codes still
// produce a usable error so a registry gap never masks the original
// failure.
func New(code string) *Error {
	if tmpl, ok := registry[code]; ok {
		return &Error{
			Code:       code,
			Category:   tmpl.Category,
			Message:    tmpl.Message,
			Suggestion: tmpl.Suggestion,
		}
	}
	return &Error{Code: code, Message: "unknown error"}
}

// WithDetail attaches situation-specific context.
func (e *Error) WithDetail(detail string) *Error {
	e.Detail = detail
	return e
}

// WithSuggestion overrides the registered suggestion.
func (e *Error) WithSuggestion(s string) *Error {
	e.Suggestion = s
	return e
}

// Wrap attaches the underlying error.
func (e *Error) Wrap(err error) *Error {
	e.Wrapped = err
	return e
}

// CodeOf extracts the code from an error chain, or "" if no coded
// error is present.
func CodeOf(err error) string {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	return ""
}
