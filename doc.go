// File: doc.go
// Title: Package Documentation for strview
// Description: Package strview provides a non-owning, read-only view type
//              over contiguous byte data, with clamping slicing operations,
//              naive substring search, content-based comparison, and
//              explicit owning conversions.
// Author: msto63
// Version: v0.1.1
// Created: 2025-02-07
// Modified: 2025-03-14
//
// Change History:
// - 2025-02-07 v0.1.0: Initial package documentation
// - 2025-03-14 v0.1.1: Documented the encoding integration

// Package strview provides a non-owning, read-only view over byte data.
//
// Package: strview
// Title: Non-Owning String Views
// Description: This package implements a lightweight descriptor type for
//              referring to runs of bytes that are owned elsewhere. A View
//              is a value the size of a slice header that can be
//              constructed, copied, sliced, searched, and compared without
//              ever allocating or touching the underlying bytes.
// Author: msto63
// Version: v0.1.1
// Created: 2025-02-07
// Modified: 2025-03-14
//
// Overview
//
// The strview package centers on one type, View: a read-only lens onto a
// contiguous run of bytes held by someone else. Where a string or a byte
// slice carries its data, a View carries only a descriptor, so handing
// pieces of a large buffer to tokenizers, routers, and matchers costs
// nothing per piece. The package treats text as raw bytes end to end:
// there is no Unicode awareness, no locale, and no case logic, which
// keeps every operation O(1) or a single linear scan with no hidden
// tables.
//
// Key capabilities include:
//   - Zero-copy construction from strings and byte slices
//   - Prefix/suffix trimming and substring extraction that share backing
//   - Graceful clamping instead of faults for oversized trim counts
//   - Brute-force substring search tuned for short needles
//   - Content-based equality and ordering across backings
//   - Explicit owning conversions and encoding-ecosystem hooks
//   - A clearly fenced unsafe surface for FFI-style raw memory
//
// Architecture
//
// The package is organized into functional groups:
//
//   - Core Type: construction, access, modifiers, extraction (view.go)
//   - Search: the Find family and affix predicates (search.go)
//   - Comparison: equality and lexicographic ordering (compare.go)
//   - Streaming: reader and writer integration (io.go)
//   - Encoding: text and YAML marshaling hooks (marshal.go)
//   - Unsafe Surface: raw-pointer entry points (unsafe.go)
//
// Failures of the one bounds-checked operation surface as structured
// errors from github.com/msto63/strview/core/errors.
//
// Usage Examples
//
// Constructing and inspecting views:
//
//	v := strview.FromString("hello, world")
//	v.Len()      // 12
//	v.IsEmpty()  // false
//	v.Front()    // 'h'
//	v.Back()     // 'd'
//
// Slicing without copying:
//
//	line := strview.FromBytes(buf)      // views buf, no copy
//	line.RemovePrefix(9)                // drop a fixed-width prefix
//	field, err := line.Substr(0, 5)     // first five bytes, shared backing
//	rest, _ := line.Substr(6, strview.ToEnd)
//
// Searching:
//
//	v := strview.FromString("key=value;key2=value2")
//	eq := v.FindByte('=', 0)            // 3
//	sep := v.FindString(";", eq)        // 9
//	v.Contains(strview.FromString("key2")) // true
//
// Detaching owned copies:
//
//	sub, _ := v.Substr(4, 5)
//	owned := sub.String()               // allocates, survives the buffer
//	raw := sub.ByteSlice()              // fresh slice, safe to mutate
//
// Encoding round-trips:
//
//	type Manifest struct {
//	    Name strview.View `json:"name" yaml:"name" toml:"name"`
//	}
//	// JSON and TOML use the text interfaces, YAML uses the node hooks;
//	// decoding leaves each view owning a private copy.
//
// Performance Considerations
//
// Construction, slicing, trimming, search, and comparison are
// allocation-free; benchmark_test.go pins this down with ReportAllocs.
// Allocation is confined to the owning conversions, the encoding hooks,
// the cursor Reader hands out, and the error branch of Substr. Find is a
// deliberate brute-force scan: worst case O(len(haystack) * len(needle)),
// with a first-byte prefilter that makes the common miss cheap. Workloads
// dominated by long repetitive needles should keep their data in strings
// or byte slices and use the standard library's tuned searchers instead;
// this package optimizes for short needles over borrowed windows.
//
// Error Handling
//
// Substr is the only operation that can fail, and only when the start
// position lies outside the view. It returns a structured error carrying
// code OUT_OF_RANGE:
//
//	sub, err := v.Substr(pos, n)
//	if sverrors.HasCode(err, sverrors.CodeOutOfRange) {
//	    // position came from untrusted input
//	}
//
// Everything else degrades gracefully (clamping, NotFound) or panics on
// programmer error exactly where slice indexing would (At, Front, Back,
// MustSubstr).
//
// Unsafe Surface
//
// unsafe.go fences off the operations that trade safety guarantees for
// copies: raw-pointer construction, NUL-terminated scans, and zero-copy
// extraction of the backing. Each function documents the contract the
// caller assumes. None of the safe API depends on them.
//
// Thread Safety
//
// A View is an immutable value once constructed; distinct goroutines may
// use distinct copies of a view freely. The package adds no
// synchronization: if the owner of a viewed byte slice mutates it
// concurrently, the usual Go memory-model rules for slices apply. The
// pointer-receiver modifiers (Clear, RemovePrefix, RemoveSuffix, Swap)
// mutate only the descriptor they are called on and need external
// synchronization only if that descriptor itself is shared.
//
// See Also
//
//   - github.com/msto63/strview/core/errors for the error vocabulary
//   - examples/ for runnable integration scenarios
package strview
