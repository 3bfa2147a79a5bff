// Package alloc hands out slices whose first element sits on a requested
// address boundary, so a search space starts on a cache line or page.
package alloc

import (
	"errors"
	"fmt"
	"unsafe"
)

var (
	ErrBadAlignment = errors.New("alignment must be a positive power of two")
	ErrUnalignable  = errors.New("element size cannot reach the requested alignment")
)

// Aligned returns a slice of n zero values of T whose backing array starts
// on an alignment-byte boundary. The Go heap does not move objects, so the
// alignment holds for the lifetime of the slice. The returned slice has no
// spare capacity.
func Aligned[T any](n, alignment int) ([]T, error) {
	if alignment <= 0 || alignment&(alignment-1) != 0 {
		return nil, fmt.Errorf("alignment %d: %w", alignment, ErrBadAlignment)
	}
	if n < 0 {
		return nil, fmt.Errorf("negative length %d", n)
	}

	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 || n == 0 {
		return make([]T, n), nil
	}

	// start addresses repeat modulo alignment every alignment/gcd elements
	slack := alignment / gcd(size, alignment)
	buf := make([]T, n+slack)

	for off := 0; off < slack; off++ {
		if IsAligned(buf[off:off+1], alignment) {
			return buf[off : off+n : off+n], nil
		}
	}

	return nil, fmt.Errorf("%d byte elements at %d byte alignment: %w", size, alignment, ErrUnalignable)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// IsAligned reports whether the first element of s is on an alignment-byte
// boundary. Empty slices are trivially aligned.
func IsAligned[T any](s []T, alignment int) bool {
	if len(s) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(&s[0]))&uintptr(alignment-1) == 0
}

// Allocator returns an allocation function for indexing.NewSearcher. When
// the element type cannot be aligned the allocation falls back to an
// unaligned slice; alignment is a placement hint, not a correctness
// requirement of the searches.
func Allocator[T any](alignment int) func(n int) []T {
	return func(n int) []T {
		s, err := Aligned[T](n, alignment)
		if err != nil {
			return make([]T, n)
		}
		return s
	}
}
