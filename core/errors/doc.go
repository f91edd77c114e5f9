// Package errors provides structured error handling for the strview library.
//
// Package: errors
// Title: strview Error Handling
// Description: This package implements a compact structured error system with
//              error codes, severity levels, and key-value details. It backs
//              the bounds-checked operations of the view type so that callers
//              can inspect failures programmatically instead of matching on
//              message text.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-06
// Modified: 2025-02-06
//
// Change History:
// - 2025-02-06 v0.1.0: Initial implementation with codes and constructors
//
// Features:
// - Contextual error wrapping with additional metadata
// - Structured error codes for consistent classification
// - Error severity levels derived from codes
// - Standardized constructors for the library's failure conditions
//
// Usage:
//   import "github.com/msto63/strview/core/errors"
//
//   // Create a new error with context
//   err := errors.New("scan failed").
//     WithCode(errors.CodeInvalidInput).
//     WithDetail("max", 64)
//
//   // Standardized out-of-range failure
//   err = errors.OutOfRange("substr", 9, 0, 5)
//
//   // Check error type and code
//   if errors.HasCode(err, errors.CodeOutOfRange) {
//     // Handle range errors specifically
//   }
package errors
