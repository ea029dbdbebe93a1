// Package formats provides parsers for the mesh file formats the visualizer loads.
package formats

import "bytes"

// cString returns b up to its first NUL byte. Binary headers pad text
// fields with zeros.
func cString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}
