package indexing

import "math/bits"

// IsPow2 reports whether n is a perfect power of two. Zero is not.
func IsPow2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// BitScan returns the index of the lowest set bit of x, or -1 for x == 0.
func BitScan(x uint64) int {
	if x == 0 {
		return -1
	}
	return bits.TrailingZeros64(x)
}

// Log2FromPow2 returns log2(n) for a power of two n. The result is
// meaningless for any other input.
func Log2FromPow2(n int) int {
	if debugAssertions {
		assertf(IsPow2(n), "Log2FromPow2: %d is not a power of two", n)
	}
	return BitScan(uint64(n))
}

// CeilPow2 returns the smallest power of two that is >= n. Zero maps to 1.
func CeilPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
