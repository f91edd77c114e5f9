// File: io.go
// Title: Streaming Access to Viewed Bytes
// Description: Connects views to the io interfaces: a restartable reader
//              over the backing and raw emission into a writer. Both paths
//              stream the backing directly and never copy it.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation of Reader and WriteTo

package strview

import (
	"bytes"
	"io"
	"strings"
)

// Reader returns an io.ReadSeeker over the viewed bytes: a forward, finite
// cursor that can be restarted with Seek(0, io.SeekStart). The reader
// reads the backing directly; mutations of a viewed byte slice are visible
// through an already-open reader.
func (v View) Reader() io.ReadSeeker {
	if v.b != nil {
		return bytes.NewReader(v.b)
	}
	return strings.NewReader(v.s)
}

// WriteTo writes the viewed bytes to w exactly as they are: no quoting, no
// delimiters, no trailing newline. An empty view writes nothing. It
// implements io.WriterTo.
func (v View) WriteTo(w io.Writer) (int64, error) {
	if v.IsEmpty() {
		return 0, nil
	}
	var (
		n   int
		err error
	)
	if v.b != nil {
		n, err = w.Write(v.b)
	} else {
		n, err = io.WriteString(w, v.s)
	}
	return int64(n), err
}
