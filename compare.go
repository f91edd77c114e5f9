// File: compare.go
// Title: View Equality and Ordering
// Description: Implements content-based comparison for views. Equality and
//              ordering look only at the viewed bytes, never at how a view
//              is backed, so a view over a string compares equal to a view
//              over a byte slice holding the same bytes.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-07
// Modified: 2025-02-07
//
// Change History:
// - 2025-02-07 v0.1.0: Initial implementation of comparisons

package strview

import (
	"bytes"
)

// Equal reports whether two views cover the same bytes, regardless of
// backing. Two empty views are equal.
func (v View) Equal(o View) bool {
	if v.Len() != o.Len() {
		return false
	}
	return v.matchesAt(0, o)
}

// EqualString reports whether the view covers exactly the bytes of s. It
// is the direct form of Equal for callers that already hold a string.
func (v View) EqualString(s string) bool {
	if v.b == nil {
		return v.s == s
	}
	if len(v.b) != len(s) {
		return false
	}
	for i, bb := range v.b {
		if bb != s[i] {
			return false
		}
	}
	return true
}

// EqualBytes reports whether the view covers exactly the bytes of b.
func (v View) EqualBytes(b []byte) bool {
	if v.b != nil {
		return bytes.Equal(v.b, b)
	}
	if len(b) != len(v.s) {
		return false
	}
	for i, bb := range b {
		if bb != v.s[i] {
			return false
		}
	}
	return true
}

// Compare orders two views lexicographically by byte value: -1 if v sorts
// before o, +1 if after, 0 if they are Equal. A view that is a proper
// prefix of a longer one sorts first.
func (v View) Compare(o View) int {
	n, m := v.Len(), o.Len()
	l := n
	if m < l {
		l = m
	}
	for i := 0; i < l; i++ {
		a, b := v.At(i), o.At(i)
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
	}
	switch {
	case n < m:
		return -1
	case n > m:
		return 1
	}
	return 0
}
