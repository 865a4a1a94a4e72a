// Package sizing provides overflow-checked arithmetic for chunk framing.
package sizing

import "math"

// AddInt adds two non-negative ints, returning (result, false) on overflow.
func AddInt(a, b int) (int, bool) {
	if a < 0 || b < 0 || a > math.MaxInt-b {
		return 0, false
	}
	return a + b, true
}

// Uint32ToInt converts a declared length to int, returning overflowErr if it
// does not fit (only possible on 32-bit platforms).
func Uint32ToInt(n uint32, overflowErr error) (int, error) {
	if uint64(n) > uint64(math.MaxInt) {
		return 0, overflowErr
	}
	return int(n), nil
}
