// File: unsafe.go
// Title: Raw-Pointer Entry Points and Zero-Copy Escapes
// Description: The deliberately unsafe surface of the package: constructing
//              views from raw pointers, scanning NUL-terminated memory, and
//              extracting the backing without a copy. Everything here trades
//              a safety guarantee for a copy or a bounds check; each function
//              states the contract the caller takes over. The safe
//              constructors in view.go are the default; reach for these only
//              at FFI boundaries and measured hot paths.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation of the unsafe surface

package strview

import (
	"unsafe"

	sverrors "github.com/msto63/strview/core/errors"
)

// FromPointer returns a view of the n bytes starting at p.
//
// SAFETY: p must point to at least n readable bytes that stay alive and
// unmoved for the lifetime of the view. Go heap memory referenced through
// p satisfies this; memory received from C does so only as long as the C
// side keeps it. No validation is performed. A negative n or a nil p with
// n > 0 panics in the runtime.
func FromPointer(p unsafe.Pointer, n int) View {
	if n == 0 {
		return View{}
	}
	return View{b: unsafe.Slice((*byte)(p), n)}
}

// FromCString returns a view of the NUL-terminated byte sequence starting
// at p, excluding the terminator.
//
// SAFETY: p must be non-nil and a NUL byte must actually occur; the scan
// reads forward unbounded until it finds one. For memory whose layout is
// not fully trusted use FromCStringN.
func FromCString(p unsafe.Pointer) View {
	n := 0
	for *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	return FromPointer(p, n)
}

// FromCStringN is the checked variant of FromCString: it scans at most max
// bytes for the terminator and reports failure instead of reading past the
// caller's bound. A nil p or a missing terminator yields an INVALID_INPUT
// error from core/errors.
//
// SAFETY: p must point to at least max readable bytes.
func FromCStringN(p unsafe.Pointer, max int) (View, error) {
	if p == nil {
		return View{}, sverrors.InvalidInput("from_cstring", "nil pointer", "non-nil NUL-terminated sequence")
	}
	for n := 0; n < max; n++ {
		if *(*byte)(unsafe.Add(p, n)) == 0 {
			return FromPointer(p, n), nil
		}
	}
	return View{}, sverrors.InvalidInput("from_cstring", "unterminated sequence", "NUL terminator within bound").
		WithDetail("max", max)
}

// UnsafeBytes returns the viewed bytes without copying. An empty view
// yields nil.
//
// SAFETY: for byte-backed views the result aliases the owner's storage,
// with the usual visibility of its mutations. For string-backed views the
// result aliases the string's immutable memory and MUST NOT be written to;
// writing through it is undefined behavior. ByteSlice is the safe,
// copying alternative.
func UnsafeBytes(v View) []byte {
	if v.IsEmpty() {
		return nil
	}
	if v.b != nil {
		return v.b
	}
	return unsafe.Slice(unsafe.StringData(v.s), len(v.s))
}

// UnsafeString returns the viewed bytes as a string without copying. An
// empty view yields "".
//
// SAFETY: for byte-backed views the result shares the backing slice, so a
// later mutation of the slice changes a value the rest of the program
// assumes immutable. The caller must guarantee the backing is never
// written again while the string is reachable. String is the safe,
// copying alternative.
func UnsafeString(v View) string {
	if v.IsEmpty() {
		return ""
	}
	if v.b == nil {
		return v.s
	}
	return unsafe.String(unsafe.SliceData(v.b), len(v.b))
}
