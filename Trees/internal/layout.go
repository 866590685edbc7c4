package internal

import "math/bits"

// CeilLog2 is the smallest k such that 1<<k >= n. 0 and 1 both give 0.
func CeilLog2(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

// Aligned reports whether the leaf position i starts a block of height h, that is
// whether i is a multiple of 1<<h.
func Aligned(i, h int) bool {
	return i&(1<<h-1) == 0
}

// IsPow2 reports whether i is a positive power of two. A cursor in the bisection
// walk is a power of two exactly when everything scanned so far reaches the
// leftmost (or rightmost) edge of its level, so there is nothing left to climb into.
func IsPow2(i int) bool {
	return i > 0 && bits.OnesCount(uint(i)) == 1
}
