// File: view.go
// Title: Non-Owning String View Type
// Description: Implements the View value type: a read-only, non-owning
//              descriptor of a contiguous run of bytes held elsewhere.
//              Covers construction from owned text, element access, the
//              clamping modifiers, bounds-checked substring extraction,
//              and the explicit owning conversions.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-07
// Modified: 2025-02-07
//
// Change History:
// - 2025-02-07 v0.1.0: Initial implementation with core view operations

package strview

import (
	sverrors "github.com/msto63/strview/core/errors"
)

// ToEnd selects everything from the start position to the end of the view
// when passed as the byte count of Substr.
const ToEnd = -1

// View is a read-only, non-owning descriptor of a contiguous run of bytes
// held elsewhere: a position and a length, not a container. It is meant to
// be used as a value type; copying a View copies the descriptor, never the
// bytes, so passing views around is as cheap as passing a slice header.
//
// A View is backed by either a byte slice or a string, whichever it was
// constructed from, and both backings are viewed without copying. The zero
// value is an empty view and is ready to use.
//
// The view performs no synchronization and no validation of the underlying
// storage. Whoever owns a viewed byte slice may mutate it, and every view
// over it observes the new bytes; views over strings can never observe
// mutation. Keeping a view alive keeps its backing alive, so there is no
// dangling-view hazard, only the stale-content one.
type View struct {
	// If b is non-nil, b is the backing, else s is.
	b []byte
	s string
}

// FromString returns a view of the whole string. No bytes are copied; the
// view shares the string's immutable backing.
func FromString(s string) View {
	return View{s: s}
}

// FromBytes returns a view of the whole slice. No bytes are copied; the
// view aliases b, so later mutations of b are visible through the view.
// A nil slice yields the empty view.
func FromBytes(b []byte) View {
	return View{b: b}
}

// Len returns the number of bytes the view covers.
func (v View) Len() int {
	if v.b != nil {
		return len(v.b)
	}
	return len(v.s)
}

// IsEmpty returns true if the view covers no bytes.
func (v View) IsEmpty() bool {
	return v.Len() == 0
}

// At returns the byte at index i. Indexes are bounds-checked exactly like
// slice indexing: an i outside [0, Len) panics.
func (v View) At(i int) byte {
	if v.b != nil {
		return v.b[i]
	}
	return v.s[i]
}

// Front returns the first byte of the view. It panics if the view is empty.
func (v View) Front() byte {
	return v.At(0)
}

// Back returns the last byte of the view. It panics if the view is empty.
func (v View) Back() byte {
	return v.At(v.Len() - 1)
}

// Clear resets the view to the empty view. The bytes it covered are
// untouched.
func (v *View) Clear() {
	v.b = nil
	v.s = ""
}

// RemovePrefix moves the start of the view forward by n bytes. An n beyond
// the end clamps to the end, leaving the empty view; a negative n is
// treated as zero. Only the descriptor changes, never the bytes.
func (v *View) RemovePrefix(n int) {
	if n < 0 {
		n = 0
	}
	if l := v.Len(); n > l {
		n = l
	}
	if v.b != nil {
		v.b = v.b[n:]
		return
	}
	v.s = v.s[n:]
}

// RemoveSuffix moves the end of the view backward by n bytes, with the
// same clamping as RemovePrefix.
func (v *View) RemoveSuffix(n int) {
	if n < 0 {
		n = 0
	}
	l := v.Len()
	if n > l {
		n = l
	}
	if v.b != nil {
		v.b = v.b[:l-n]
		return
	}
	v.s = v.s[:l-n]
}

// Swap exchanges the contents of two view descriptors.
func (v *View) Swap(o *View) {
	*v, *o = *o, *v
}

// Substr returns a view of at most n bytes starting at pos, sharing the
// receiver's backing. Passing ToEnd (or any negative n) selects everything
// from pos to the end, and an n overshooting the end clamps to the end.
// pos == Len() is allowed and yields an empty view.
//
// This is the one bounds-checked operation of the package: a pos outside
// [0, Len()] returns an OUT_OF_RANGE error from core/errors instead of
// panicking.
func (v View) Substr(pos, n int) (View, error) {
	l := v.Len()
	if pos < 0 || pos > l {
		return View{}, sverrors.OutOfRange("substr", pos, 0, l)
	}
	if n < 0 || n > l-pos {
		n = l - pos
	}
	if v.b != nil {
		return View{b: v.b[pos : pos+n]}, nil
	}
	return View{s: v.s[pos : pos+n]}, nil
}

// MustSubstr is like Substr but panics if pos is out of range. Use it when
// the indices are statically known to be valid, such as ones produced by a
// successful Find.
func (v View) MustSubstr(pos, n int) View {
	sub, err := v.Substr(pos, n)
	if err != nil {
		panic(err)
	}
	return sub
}

// String returns the viewed bytes as an owning string. For string-backed
// views this is free; for byte-backed views it copies once. Together with
// ByteSlice this is the only way to detach content from its backing.
func (v View) String() string {
	if v.b != nil {
		return string(v.b)
	}
	return v.s
}

// ByteSlice returns an owning copy of the viewed bytes. The result is
// always a fresh slice, so callers cannot reach the viewed storage
// through it.
func (v View) ByteSlice() []byte {
	if v.b != nil {
		return cloneBytes(v.b)
	}
	return []byte(v.s)
}

// cloneBytes returns a copy of b
func cloneBytes(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
