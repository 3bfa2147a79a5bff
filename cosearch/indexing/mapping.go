package indexing

import "math/bits"

// The breadth-first layout of a space of spaceSize (a power of two) stores the
// spaceSize-1 probe points of a binary search level by level:
//
//	breadth position:  0 1 2 3 4 5 6
//	linear position:   3 1 5 0 2 4 6
//
// Depth d occupies positions [2^d-1, 2^(d+1)-1). A node's depth counted from
// the leaves is the number of trailing one bits of its linear position.

// LinearFromBreadth maps breadth-first position pos, known to sit at depth
// posLevel, to its position in ascending linear order.
func LinearFromBreadth(spaceSize, pos, posLevel int) int {
	if debugAssertions {
		assertf(spaceSize >= 2 && IsPow2(spaceSize), "LinearFromBreadth: space size %d", spaceSize)
		assertf(0 <= pos && pos < spaceSize-1, "LinearFromBreadth: position %d out of range", pos)
		assertf(0 <= posLevel && posLevel < Log2FromPow2(spaceSize), "LinearFromBreadth: level %d out of range", posLevel)
	}

	return (spaceSize>>(posLevel+1))*((pos-(1<<posLevel)+1)*2+1) - 1
}

// BreadthFromLinear maps linear position pos to its breadth-first position.
func BreadthFromLinear(spaceSize, pos int) int {
	if debugAssertions {
		assertf(spaceSize >= 2 && IsPow2(spaceSize), "BreadthFromLinear: space size %d", spaceSize)
		assertf(0 <= pos && pos < spaceSize-1, "BreadthFromLinear: position %d out of range", pos)
	}

	// bottom-up level is the index of the lowest unset bit of the position
	level := BitScan(^uint64(pos))

	return (1 << (Log2FromPow2(spaceSize) - level - 1)) + (pos >> (level + 1)) - 1
}

// BreadthLevel returns the depth of breadth-first position pos.
func BreadthLevel(pos int) int {
	return bits.Len(uint(pos+1)) - 1
}
