//go:build amd64

package simd

import (
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

// Wide cores run the 32-byte unrolled scan; the four independent loads
// per iteration keep the load ports busy.
var hasAVX2 = cpu.X86.HasAVX2

// FirstNonPrintable returns the index of the first byte outside
// 0x20..0x7E, or -1 if every byte is printable ASCII.
func FirstNonPrintable(data []byte) int {
	if hasAVX2 && len(data) >= 32 {
		return firstNonPrintableWide(data)
	}
	return firstNonPrintableGeneric(data)
}

// IsPrintableASCII reports whether every byte of data is in 0x20..0x7E.
func IsPrintableASCII(data []byte) bool {
	return FirstNonPrintable(data) == -1
}

// firstNonPrintableWide checks 32-byte blocks, deferring to the generic
// scan to locate the exact offending index once a block fails.
func firstNonPrintableWide(data []byte) int {
	idx := 0
	for idx+32 <= len(data) {
		a := binary.LittleEndian.Uint64(data[idx:])
		b := binary.LittleEndian.Uint64(data[idx+8:])
		c := binary.LittleEndian.Uint64(data[idx+16:])
		d := binary.LittleEndian.Uint64(data[idx+24:])
		if chunkHasNonPrintable(a) || chunkHasNonPrintable(b) ||
			chunkHasNonPrintable(c) || chunkHasNonPrintable(d) {
			break
		}
		idx += 32
	}
	if r := firstNonPrintableGeneric(data[idx:]); r >= 0 {
		return idx + r
	}
	return -1
}
