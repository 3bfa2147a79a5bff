package indexing

// BSearchStandard is the classic half-interval search over an ascending
// space. With duplicates any one of the equal items may be reported.
func BSearchStandard[T Ordered](space []T, key T) (int, bool) {
	left, right := 0, len(space)-1

	for left <= right {
		seekPos := int(uint(left+right) >> 1)
		k := space[seekPos]

		if key < k {
			right = seekPos - 1
		} else if key > k {
			left = seekPos + 1
		} else {
			return seekPos, true
		}
	}

	return NotFound, false
}

// BNearSearchStandard returns the index of the largest item <= key. A key
// below space[0] is clamped to 0 even though space[0] > key.
func BNearSearchStandard[T Ordered](space []T, key T) int {
	left, right := 0, len(space)-1

	for left <= right {
		seekPos := int(uint(left+right) >> 1)
		k := space[seekPos]

		if key < k {
			right = seekPos - 1
		} else if key > k {
			left = seekPos + 1
		} else {
			return seekPos
		}
	}

	if right == -1 {
		return 0
	}
	return right
}

// BSearchBinned picks a bucket from the lead-in of a binned space and runs
// BSearchStandard inside it. The returned index addresses the whole binned
// space.
func BSearchBinned[T Ordered](space []T, leadinSize int, key T) (int, bool) {
	if debugAssertions {
		assertf(leadinSize >= 2 && len(space) > leadinSize, "BSearchBinned: lead-in %d, space %d", leadinSize, len(space))
	}

	if key > space[0] {
		return NotFound, false
	}

	data := space[leadinSize:]
	left, right := leadinBucket(space[:leadinSize], len(data), key)

	r, ok := BSearchStandard(data[left:right], key)
	if !ok {
		return NotFound, false
	}
	return r + left + leadinSize, true
}

// BNearSearchBinned is the floor variant of BSearchBinned. The lead-in is
// supplied separately and space holds the data only, so the result indexes
// space directly. Keys above leadin[0] map to the last slot.
func BNearSearchBinned[T Ordered](leadin, space []T, key T) int {
	if debugAssertions {
		assertf(len(leadin) >= 2 && len(space) > 0, "BNearSearchBinned: lead-in %d, space %d", len(leadin), len(space))
	}

	if key > leadin[0] {
		return len(space) - 1
	}

	left, right := leadinBucket(leadin, len(space), key)

	return BNearSearchStandard(space[left:right], key) + left
}
