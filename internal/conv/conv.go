// Package conv provides safe integer conversion helpers for the
// suffix automaton.
//
// The functions bounds-check before narrowing and panic on overflow:
// the only way to overflow here is exhausting the 32-bit state ID
// space of the arena, which is a fatal resource error rather than a
// recoverable condition.
package conv

import "math"

// IntToUint32 safely converts an int to uint32.
// Panics if n < 0 or n > math.MaxUint32.
//
//go:inline
func IntToUint32(n int) uint32 {
	// Use uint for comparison to avoid overflow on 32-bit platforms
	// where int cannot represent math.MaxUint32
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}
