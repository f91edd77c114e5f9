// File: search.go
// Title: Substring Search and Affix Predicates
// Description: Implements the Find family and the prefix/suffix predicates
//              of the view type. The search is a deliberate brute-force
//              scan; the byte, string, and slice variants all delegate to
//              the view-based core through cheap temporary views.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-07
// Modified: 2025-02-07
//
// Change History:
// - 2025-02-07 v0.1.0: Initial implementation of search and predicates

package strview

// NotFound is returned by the Find family when the needle does not occur
// at or after the requested position.
const NotFound = -1

// Find returns the index of the first occurrence of needle at or after
// from, or NotFound. An empty needle matches immediately at from, even at
// the very end of the view. A negative from is treated as zero; a from
// beyond the end never matches.
//
// The scan is a first-byte prefilter followed by a byte-wise match, worst
// case O(Len * needle.Len()). For the short needles views are typically
// scanned with, this beats the setup cost of the clever algorithms and
// needs no auxiliary tables.
func (v View) Find(needle View, from int) int {
	if from < 0 {
		from = 0
	}
	l := v.Len()
	if from > l {
		return NotFound
	}
	n := needle.Len()
	if n == 0 {
		return from
	}
	if n > l-from {
		return NotFound
	}
	first := needle.At(0)
	for i := from; i <= l-n; i++ {
		if v.At(i) == first && v.matchesAt(i, needle) {
			return i
		}
	}
	return NotFound
}

// matchesAt reports whether needle occurs at offset pos. The caller
// guarantees pos+needle.Len() <= v.Len().
func (v View) matchesAt(pos int, needle View) bool {
	for j := 0; j < needle.Len(); j++ {
		if v.At(pos+j) != needle.At(j) {
			return false
		}
	}
	return true
}

// FindByte returns the index of the first occurrence of the byte c at or
// after from, or NotFound. It is Find with a one-byte needle.
func (v View) FindByte(c byte, from int) int {
	needle := [1]byte{c}
	return v.Find(FromBytes(needle[:]), from)
}

// FindString returns the index of the first occurrence of the bytes of s
// at or after from, or NotFound.
func (v View) FindString(s string, from int) int {
	return v.Find(FromString(s), from)
}

// FindBytes returns the index of the first occurrence of the bytes of b at
// or after from, or NotFound.
func (v View) FindBytes(b []byte, from int) int {
	return v.Find(FromBytes(b), from)
}

// Contains reports whether needle occurs anywhere in the view.
func (v View) Contains(needle View) bool {
	return v.Find(needle, 0) != NotFound
}

// StartsWith reports whether the view begins with the bytes of prefix. An
// empty prefix is a prefix of every view.
func (v View) StartsWith(prefix View) bool {
	return prefix.Len() <= v.Len() && v.matchesAt(0, prefix)
}

// EndsWith reports whether the view ends with the bytes of suffix. An
// empty suffix is a suffix of every view.
func (v View) EndsWith(suffix View) bool {
	return suffix.Len() <= v.Len() && v.matchesAt(v.Len()-suffix.Len(), suffix)
}

// StartsWithByte reports whether the view is non-empty and begins with c.
func (v View) StartsWithByte(c byte) bool {
	return !v.IsEmpty() && v.Front() == c
}

// EndsWithByte reports whether the view is non-empty and ends with c.
func (v View) EndsWithByte(c byte) bool {
	return !v.IsEmpty() && v.Back() == c
}

// StartsWithString reports whether the view begins with the bytes of s.
func (v View) StartsWithString(s string) bool {
	return v.StartsWith(FromString(s))
}

// EndsWithString reports whether the view ends with the bytes of s.
func (v View) EndsWithString(s string) bool {
	return v.EndsWith(FromString(s))
}
