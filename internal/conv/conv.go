// Package conv provides safe integer narrowing helpers.
//
// The automaton uses uint32 state handles while sizes and loop indices
// are ints; these helpers check the narrowing so an overflow surfaces as
// a panic (a programming error) instead of a silently wrapped state ID.
package conv

import "math"

// IntToUint32 safely converts an int to uint32.
// Panics if n < 0 or n > math.MaxUint32.
//
//go:inline
func IntToUint32(n int) uint32 {
	// Compare as uint so 32-bit platforms, where int cannot hold
	// math.MaxUint32, stay correct.
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}
