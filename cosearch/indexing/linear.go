package indexing

// LSearchStandard scans space in ascending order for key.
func LSearchStandard[T Ordered](space []T, key T) (int, bool) {
	if len(space) == 0 {
		return NotFound, false
	}

	i := 0
	for i < len(space)-1 && key > space[i] {
		i++
	}

	if key != space[i] {
		return NotFound, false
	}
	return i, true
}

// LNearSearchStandard returns the first index whose item is >= key, or the
// last index when every item is smaller. Unlike BNearSearchStandard this is a
// lower bound, not a floor.
func LNearSearchStandard[T Ordered](space []T, key T) int {
	i := 0
	for i < len(space)-1 && key > space[i] {
		i++
	}
	return i
}

// LSearchBinned searches a binned space: leadinSize lead-in entries built by
// PrepareForBinnedSearch followed by the sorted data. The returned index
// addresses the whole binned space.
func LSearchBinned[T Ordered](space []T, leadinSize int, key T) (int, bool) {
	if debugAssertions {
		assertf(leadinSize >= 2 && len(space) > leadinSize, "LSearchBinned: lead-in %d, space %d", leadinSize, len(space))
	}

	if key > space[0] {
		return NotFound, false
	}

	data := space[leadinSize:]
	left, right := leadinBucket(space[:leadinSize], len(data), key)

	r, ok := LSearchStandard(data[left:right], key)
	if !ok {
		return NotFound, false
	}
	return r + left + leadinSize, true
}

// LNearSearchBinned is the lower bound variant of LSearchBinned. Keys above
// the maximum map to the last data slot.
func LNearSearchBinned[T Ordered](space []T, leadinSize int, key T) int {
	if debugAssertions {
		assertf(leadinSize >= 2 && len(space) > leadinSize, "LNearSearchBinned: lead-in %d, space %d", leadinSize, len(space))
	}

	if key > space[0] {
		return len(space) - 1
	}

	data := space[leadinSize:]
	left, right := leadinBucket(space[:leadinSize], len(data), key)

	return LNearSearchStandard(data[left:right], key) + left + leadinSize
}
