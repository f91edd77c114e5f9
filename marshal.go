// File: marshal.go
// Title: Encoding Interface Implementations
// Description: Lets View participate in the encoding ecosystem. Views
//              marshal as plain strings of their raw bytes through
//              encoding.TextMarshaler, which covers JSON and TOML; YAML
//              needs its own hooks because yaml.v3 does not consult the
//              text interfaces. Unmarshaling always leaves the view owning
//              a private copy of the decoded bytes.
// Author: msto63
// Version: v0.1.1
// Created: 2025-02-08
// Modified: 2025-03-14
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation with text interfaces
// - 2025-03-14 v0.1.1: Added yaml.v3 node hooks

package strview

import (
	"gopkg.in/yaml.v3"
)

// MarshalText returns an owning copy of the viewed bytes and never fails.
// It implements encoding.TextMarshaler, which is how views travel through
// encoding/json-compatible encoders and TOML: as plain strings. Formats
// that require valid UTF-8 impose that requirement on the viewed bytes
// themselves; the view adds no transformation of its own.
func (v View) MarshalText() ([]byte, error) {
	return v.ByteSlice(), nil
}

// UnmarshalText replaces the view with one over a private copy of text.
// Decoders reuse their buffers between calls, so aliasing text would let
// later input bleed through the view. The copy makes this the one
// constructor that allocates. It implements encoding.TextUnmarshaler.
func (v *View) UnmarshalText(text []byte) error {
	*v = View{b: cloneBytes(text)}
	return nil
}

// MarshalYAML implements yaml.Marshaler. yaml.v3 does not consult
// encoding.TextMarshaler, so views declare their YAML form directly: the
// owned string copy.
func (v View) MarshalYAML() (interface{}, error) {
	return v.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler against the yaml.v3 node API.
// Like UnmarshalText it leaves the view owning its backing.
func (v *View) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	*v = View{s: s}
	return nil
}
