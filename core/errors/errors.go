// File: errors.go
// Title: Core Error Implementation
// Description: Implements the structured Error type used by the strview
//              library together with the standardized constructors for its
//              failure conditions. The type keeps compatibility with Go's
//              standard error interface while carrying codes, severity, and
//              key-value details for callers that want more than a message.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-06
// Modified: 2025-02-06
//
// Change History:
// - 2025-02-06 v0.1.0: Initial implementation with contextual errors

package errors

import (
	"fmt"
	"strings"
)

// Error represents a structured error with context, codes, and metadata
type Error struct {
	message   string
	cause     error
	code      Code
	severity  Severity
	operation string
	details   map[string]interface{}
}

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		message:  message,
		code:     CodeUnknown,
		severity: SeverityMedium,
		details:  make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with additional context. If err is already a
// structured Error its code, severity, and details are preserved in the
// wrapper; wrapping nil returns nil.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	if svErr, ok := err.(*Error); ok {
		wrapped := &Error{
			message:   message,
			cause:     svErr,
			code:      svErr.code,
			severity:  svErr.severity,
			operation: svErr.operation,
			details:   make(map[string]interface{}),
		}
		for k, v := range svErr.details {
			wrapped.details[k] = v
		}
		return wrapped
	}

	return &Error{
		message:  message,
		cause:    err,
		code:     CodeUnknown,
		severity: SeverityMedium,
		details:  make(map[string]interface{}),
	}
}

// Error implements the standard error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.message, e.cause.Error())
	}
	return e.message
}

// Unwrap returns the underlying cause for error unwrapping
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCode sets the error code
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	if e.severity == SeverityMedium { // Only auto-set if not explicitly set
		e.severity = GetSeverityFromCode(code)
	}
	return e
}

// WithSeverity sets the error severity
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

// WithOperation sets the operation that caused the error
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// WithDetail adds a key-value detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// WithDetails adds multiple key-value details to the error
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	for k, v := range details {
		e.details[k] = v
	}
	return e
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Severity returns the error severity
func (e *Error) Severity() Severity {
	return e.severity
}

// Operation returns the operation that caused the error
func (e *Error) Operation() string {
	return e.operation
}

// Details returns a copy of the error details
func (e *Error) Details() map[string]interface{} {
	result := make(map[string]interface{})
	for k, v := range e.details {
		result[k] = v
	}
	return result
}

// String returns a detailed string representation of the error
func (e *Error) String() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("Error: %s", e.message))
	parts = append(parts, fmt.Sprintf("Code: %s", e.code))
	parts = append(parts, fmt.Sprintf("Severity: %s", e.severity))

	if e.operation != "" {
		parts = append(parts, fmt.Sprintf("Operation: %s", e.operation))
	}

	if len(e.details) > 0 {
		detailStrs := make([]string, 0, len(e.details))
		for k, v := range e.details {
			detailStrs = append(detailStrs, fmt.Sprintf("%s=%v", k, v))
		}
		parts = append(parts, fmt.Sprintf("Details: {%s}", strings.Join(detailStrs, ", ")))
	}

	if e.cause != nil {
		parts = append(parts, fmt.Sprintf("Cause: %s", e.cause.Error()))
	}

	return strings.Join(parts, "\n")
}

// HasCode checks if an error has a specific code
func HasCode(err error, code Code) bool {
	if svErr, ok := err.(*Error); ok {
		return svErr.code == code
	}
	return false
}

// GetCode returns the error code from an error, or CodeUnknown if not a structured error
func GetCode(err error) Code {
	if svErr, ok := err.(*Error); ok {
		return svErr.code
	}
	return CodeUnknown
}

// GetSeverity returns the error severity from an error, or SeverityMedium if not a structured error
func GetSeverity(err error) Severity {
	if svErr, ok := err.(*Error); ok {
		return svErr.severity
	}
	return SeverityMedium
}

// OutOfRange creates a standardized out of range error for a position that
// falls outside [min, max]
func OutOfRange(operation string, value, min, max int) *Error {
	return New(fmt.Sprintf("validation failed: value out of range in strview.%s", operation)).
		WithOperation(operation).
		WithCode(CodeOutOfRange).
		WithDetail("value", value).
		WithDetail("min", min).
		WithDetail("max", max)
}

// InvalidInput creates a standardized invalid input error naming the value
// received and the value expected
func InvalidInput(operation string, value, expected interface{}) *Error {
	return New(fmt.Sprintf("validation failed: invalid input in strview.%s", operation)).
		WithOperation(operation).
		WithCode(CodeInvalidInput).
		WithDetail("value", value).
		WithDetail("expected", expected)
}
