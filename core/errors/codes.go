// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across the strview library. These codes enable
//              structured error handling and programmatic failure inspection
//              without string matching.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-06
// Modified: 2025-02-06
//
// Change History:
// - 2025-02-06 v0.1.0: Initial implementation with the library error codes

package errors

// Code represents a structured error code for categorizing errors
type Code string

// Error codes raised by the strview library
const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"

	// Validation codes
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeOutOfRange   Code = "OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput, CodeOutOfRange:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidInput, CodeOutOfRange:
		return "validation"
	default:
		return "generic"
	}
}
