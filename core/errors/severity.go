// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so that callers embedding
//              the library can prioritize failures consistently. In a leaf
//              library almost everything is a caller bug and therefore low
//              severity; the higher levels exist for the code paths that
//              indicate genuine corruption.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-06
// Modified: 2025-02-06
//
// Change History:
// - 2025-02-06 v0.1.0: Initial implementation with severity levels

package errors

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: out-of-range positions, invalid arguments
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: failures surfaced from wrapped third-party decoders
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	// Examples: internal invariant violations
	SeverityHigh

	// SeverityCritical indicates a critical error that makes the system unusable
	// Examples: memory corruption observed through an unchecked entry point
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityHigh
	case CodeInvalidInput, CodeOutOfRange:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
