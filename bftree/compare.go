package bftree

import "bytes"

// ByteCompare is the natural lexicographic CompareFunc for []byte keys,
// the common case for a caller that just wants byte-string ordering.
func ByteCompare(a, b []byte) int {
	return bytes.Compare(a, b)
}
