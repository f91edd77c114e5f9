// File: search_test.go
// Title: Search and Predicate Tests
// Description: Unit tests for the Find family, Contains, and the
//              prefix/suffix predicates, including the empty-needle rules
//              and cross-backing combinations.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-07
// Modified: 2025-02-07
//
// Change History:
// - 2025-02-07 v0.1.0: Initial test implementation

package strview

import (
	"testing"
)

func TestFind(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   string
		from     int
		want     int
	}{
		{"needle at start", "hello world", "hello", 0, 0},
		{"needle in middle", "hello world", "lo wo", 0, 3},
		{"needle at end", "hello world", "world", 0, 6},
		{"from equals match", "hello world", "world", 6, 6},
		{"from beyond match", "hello world", "hello", 1, NotFound},
		{"absent needle", "hello world", "xyz", 0, NotFound},
		{"second occurrence", "abcabc", "abc", 1, 3},
		{"overlapping candidates", "aaa", "aa", 1, 1},
		{"empty needle at zero", "hello", "", 0, 0},
		{"empty needle mid-view", "hello", "", 3, 3},
		{"empty needle at end", "hello", "", 5, 5},
		{"empty needle beyond end", "hello", "", 6, NotFound},
		{"negative from treated as zero", "hello", "ell", -5, 1},
		{"from beyond end", "hello", "h", 9, NotFound},
		{"needle longer than view", "hi", "hello", 0, NotFound},
		{"needle longer than window", "hello", "llo", 3, NotFound},
		{"empty haystack empty needle", "", "", 0, 0},
		{"empty haystack", "", "x", 0, NotFound},
		{"binary bytes", "\x00\xff\x00\xff", "\xff\x00", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			haystacks := map[string]View{
				"string": FromString(tt.haystack),
				"bytes":  FromBytes([]byte(tt.haystack)),
			}
			needles := map[string]View{
				"string": FromString(tt.needle),
				"bytes":  FromBytes([]byte(tt.needle)),
			}
			for hb, haystack := range haystacks {
				for nb, needle := range needles {
					if got := haystack.Find(needle, tt.from); got != tt.want {
						t.Errorf("Find(%q, %d) [%s haystack, %s needle] = %d; want %d",
							tt.needle, tt.from, hb, nb, got, tt.want)
					}
				}
			}
		})
	}
}

func TestFindMatchesSubstr(t *testing.T) {
	haystack := FromString("the quick brown fox jumps over the lazy dog")
	needles := []string{"the", "fox", "dog", "o", " quick "}

	for _, n := range needles {
		needle := FromString(n)
		i := haystack.Find(needle, 0)
		if i == NotFound {
			t.Fatalf("Find(%q, 0) = NotFound; expected a match", n)
		}
		if got := haystack.MustSubstr(i, needle.Len()); !got.Equal(needle) {
			t.Errorf("MustSubstr(%d, %d) = %q; want %q", i, needle.Len(), got.String(), n)
		}
	}
}

func TestFindByte(t *testing.T) {
	tests := []struct {
		name  string
		input string
		c     byte
		from  int
		want  int
	}{
		{"present", "hello", 'e', 0, 1},
		{"first of several", "hello", 'l', 0, 2},
		{"from skips earlier", "hello", 'l', 3, 3},
		{"absent", "hello", 'z', 0, NotFound},
		{"empty view", "", 'a', 0, NotFound},
		{"NUL byte", "a\x00b", 0, 0, 1},
		{"from beyond end", "hello", 'h', 9, NotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromString(tt.input).FindByte(tt.c, tt.from); got != tt.want {
				t.Errorf("FindByte(%q, %d) = %d; want %d", tt.c, tt.from, got, tt.want)
			}
		})
	}
}

func TestFindString(t *testing.T) {
	v := FromString("key=value;key2=value2")

	if got := v.FindString("value", 0); got != 4 {
		t.Errorf("FindString(%q, 0) = %d; want 4", "value", got)
	}
	if got := v.FindString("value", 5); got != 15 {
		t.Errorf("FindString(%q, 5) = %d; want 15", "value", got)
	}
	if got := v.FindString("missing", 0); got != NotFound {
		t.Errorf("FindString(%q, 0) = %d; want NotFound", "missing", got)
	}
}

func TestFindBytes(t *testing.T) {
	v := FromBytes([]byte{0x00, 0x01, 0x02, 0x01, 0x02})

	if got := v.FindBytes([]byte{0x01, 0x02}, 0); got != 1 {
		t.Errorf("FindBytes(0x0102, 0) = %d; want 1", got)
	}
	if got := v.FindBytes([]byte{0x01, 0x02}, 2); got != 3 {
		t.Errorf("FindBytes(0x0102, 2) = %d; want 3", got)
	}
	if got := v.FindBytes([]byte{0x03}, 0); got != NotFound {
		t.Errorf("FindBytes(0x03, 0) = %d; want NotFound", got)
	}
}

func TestContains(t *testing.T) {
	v := FromString("hello world")

	if !v.Contains(FromString("lo wo")) {
		t.Error("Contains(\"lo wo\") = false; want true")
	}
	if !v.Contains(View{}) {
		t.Error("Contains(empty) = false; want true")
	}
	if v.Contains(FromString("xyz")) {
		t.Error("Contains(\"xyz\") = true; want false")
	}
}

func TestStartsWith(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		prefix string
		want   bool
	}{
		{"proper prefix", "hello", "he", true},
		{"full match", "hello", "hello", true},
		{"empty prefix", "hello", "", true},
		{"empty view empty prefix", "", "", true},
		{"mismatch", "hello", "lo", false},
		{"prefix longer than view", "he", "hello", false},
		{"empty view nonempty prefix", "", "x", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := FromString(tt.input)
			if got := v.StartsWith(FromBytes([]byte(tt.prefix))); got != tt.want {
				t.Errorf("StartsWith(%q) = %v; want %v", tt.prefix, got, tt.want)
			}
			if got := v.StartsWithString(tt.prefix); got != tt.want {
				t.Errorf("StartsWithString(%q) = %v; want %v", tt.prefix, got, tt.want)
			}
		})
	}
}

func TestEndsWith(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		suffix string
		want   bool
	}{
		{"proper suffix", "hello", "lo", true},
		{"full match", "hello", "hello", true},
		{"empty suffix", "hello", "", true},
		{"empty view empty suffix", "", "", true},
		{"mismatch", "hello", "he", false},
		{"suffix longer than view", "lo", "hello", false},
		{"empty view nonempty suffix", "", "x", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := FromString(tt.input)
			if got := v.EndsWith(FromBytes([]byte(tt.suffix))); got != tt.want {
				t.Errorf("EndsWith(%q) = %v; want %v", tt.suffix, got, tt.want)
			}
			if got := v.EndsWithString(tt.suffix); got != tt.want {
				t.Errorf("EndsWithString(%q) = %v; want %v", tt.suffix, got, tt.want)
			}
		})
	}
}

func TestStartsWithByte(t *testing.T) {
	tests := []struct {
		name  string
		input string
		c     byte
		want  bool
	}{
		{"matching byte", "hello", 'h', true},
		{"non-matching byte", "hello", 'e', false},
		{"empty view", "", 'h', false},
		{"NUL lead", "\x00rest", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromString(tt.input).StartsWithByte(tt.c); got != tt.want {
				t.Errorf("StartsWithByte(%q) = %v; want %v", tt.c, got, tt.want)
			}
		})
	}
}

func TestEndsWithByte(t *testing.T) {
	tests := []struct {
		name  string
		input string
		c     byte
		want  bool
	}{
		{"matching byte", "hello", 'o', true},
		{"non-matching byte", "hello", 'l', false},
		{"empty view", "", 'o', false},
		{"NUL tail", "rest\x00", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromString(tt.input).EndsWithByte(tt.c); got != tt.want {
				t.Errorf("EndsWithByte(%q) = %v; want %v", tt.c, got, tt.want)
			}
		})
	}
}
