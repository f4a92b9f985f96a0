//go:build !amd64

package simd

// FirstNonPrintable returns the index of the first byte outside
// 0x20..0x7E, or -1 if every byte is printable ASCII.
func FirstNonPrintable(data []byte) int {
	return firstNonPrintableGeneric(data)
}

// IsPrintableASCII reports whether every byte of data is in 0x20..0x7E.
func IsPrintableASCII(data []byte) bool {
	return firstNonPrintableGeneric(data) == -1
}
