// Package errors provides the error taxonomy shared by the emod commands.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrNotFound indicates a missing file, directory, template, or component.
	ErrNotFound = errors.New("not found")

	// ErrInvalidData indicates a malformed document or an unexpected field shape.
	ErrInvalidData = errors.New("invalid data")

	// ErrParse indicates a bad version string or bad document syntax.
	ErrParse = errors.New("parse error")

	// ErrMissingVariable indicates a required template variable was never bound.
	ErrMissingVariable = errors.New("missing variable")

	// ErrConfig indicates an unreadable or malformed configuration or template descriptor.
	ErrConfig = errors.New("config error")

	// ErrIO indicates a generic filesystem or archive failure.
	ErrIO = errors.New("io error")
)

// DetailError captures structured error information for human-readable reporting.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file path the error refers to (optional).
	Location string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString(e.Type)
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Location != "" {
		b.WriteString(" (")
		b.WriteString(e.Location)
		b.WriteString(")")
	}
	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// NewInvalidDataError creates an invalid data error with details.
func NewInvalidDataError(message, location string) error {
	return &DetailError{
		Type:     "invalid data",
		Message:  message,
		Location: location,
		Cause:    ErrInvalidData,
	}
}

// NewParseError creates a parse error wrapping the decoder's error.
func NewParseError(location string, err error) error {
	return &DetailError{
		Type:     "parse error",
		Message:  err.Error(),
		Location: location,
		Cause:    fmt.Errorf("%w: %w", ErrParse, err),
	}
}

// NewConfigError creates a configuration error wrapping err.
func NewConfigError(message, location string, err error) error {
	cause := ErrConfig
	if err != nil {
		cause = fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return &DetailError{
		Type:     "config error",
		Message:  message,
		Location: location,
		Cause:    cause,
	}
}

// WrapIO wraps a filesystem or archive error with ErrIO.
func WrapIO(err error, msg string) error {
	return fmt.Errorf("%s: %w: %w", msg, ErrIO, err)
}
