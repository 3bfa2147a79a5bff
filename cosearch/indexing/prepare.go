package indexing

import (
	"errors"
	"fmt"
)

// Preparation errors. A failed preparation never writes to its destination.
var (
	ErrNotPowerOfTwo        = errors.New("size is not a power of two")
	ErrSubtreeDepthMismatch = errors.New("tree depth is not a multiple of the subtree depth")
	ErrDestinationTooSmall  = errors.New("destination is too small for the layout")
)

// PrepareForBinnedSearch fills leadin with the maximum of space followed by
// descending samples at the bucket boundaries used by the binned searches.
func PrepareForBinnedSearch[T any](leadin, space []T) {
	lenLeadin, lenSpace := len(leadin), len(space)

	leadin[0] = space[lenSpace-1]

	for i := 1; i < lenLeadin; i++ {
		leadin[i] = space[(lenLeadin-i)*lenSpace/lenLeadin]
	}
}

// leadinBucket selects the data range [left, right) that can hold key, given
// a lead-in built by PrepareForBinnedSearch over n data items. The boundary
// arithmetic must stay identical to PrepareForBinnedSearch. The caller has
// already rejected keys above leadin[0].
func leadinBucket[T Ordered](leadin []T, n int, key T) (left, right int) {
	size := len(leadin)

	i := 1
	for i < size && key < leadin[i] {
		i++
	}

	left = (size - i) * n / size
	right = (size - i + 1) * n / size
	return left, right
}

// PrepareForBreadthSearch writes the breadth-first layout of src into dst.
// len(src) must be a power of two >= 2 and fit in dst; len(src)-1 slots are
// written, the largest source item is not part of the layout.
func PrepareForBreadthSearch[T any](dst, src []T) error {
	lenSrc := len(src)

	if lenSrc < 2 || !IsPow2(lenSrc) {
		return fmt.Errorf("breadth layout of %d items: %w", lenSrc, ErrNotPowerOfTwo)
	}
	if lenSrc > len(dst) {
		return fmt.Errorf("breadth layout of %d items into %d slots: %w", lenSrc, len(dst), ErrDestinationTooSmall)
	}

	walk := 0
	for i := 0; i < Log2FromPow2(lenSrc); i++ {
		for j := 0; j < 1<<i; j++ {
			dst[walk] = src[(lenSrc>>(i+1))*(j*2+1)-1]
			walk++
		}
	}

	return nil
}

// PrepareForVEBSearch writes the Van Emde Boas forest layout of src into dst,
// using subtrees of subsize slots (subsize-1 items plus one zero value pad).
// len(src) and subsize must be powers of two >= 2, log2(len(src)) a multiple
// of log2(subsize), and dst at least VEBSize(len(src), subsize) long.
func PrepareForVEBSearch[T any](dst, src []T, subsize int) error {
	lenSrc := len(src)

	if lenSrc < 2 || !IsPow2(lenSrc) {
		return fmt.Errorf("veb layout of %d items: %w", lenSrc, ErrNotPowerOfTwo)
	}
	if subsize < 2 || !IsPow2(subsize) {
		return fmt.Errorf("veb subtree size %d: %w", subsize, ErrNotPowerOfTwo)
	}

	log2Size := Log2FromPow2(lenSrc)
	log2Subsize := Log2FromPow2(subsize)

	if log2Size%log2Subsize != 0 {
		return fmt.Errorf("veb layout depth %d, subtree depth %d: %w", log2Size, log2Subsize, ErrSubtreeDepthMismatch)
	}

	totalSize := VEBSize(lenSrc, subsize)
	if totalSize > len(dst) {
		return fmt.Errorf("veb layout of %d slots into %d slots: %w", totalSize, len(dst), ErrDestinationTooSmall)
	}

	var pad T
	walk := 0
	for f := 0; f < log2Size/log2Subsize; f++ { // forest depth
		window := log2Size - f*log2Subsize // log2 of the source range one subtree covers

		for t := 0; t < 1<<(f*log2Subsize); t++ { // forest breadth
			for i := 0; i < log2Subsize; i++ { // subtree depth
				for j := 0; j < 1<<i; j++ { // subtree breadth
					dst[walk] = src[t*(1<<window)+(1<<(window-(i+1)))*(j*2+1)-1]
					walk++
				}
			}

			dst[walk] = pad
			walk++
		}
	}

	return nil
}
