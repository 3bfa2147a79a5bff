package indexing

// Breadth-first (Eytzinger) layout search. The space is produced by
// PrepareForBreadthSearch from a sorted source of spaceSize items; every
// depth of the implicit tree is one contiguous band, so the probes a binary
// search makes at depth d all land in [2^d-1, 2^(d+1)-1).

// BSearchBreadthFirst descends from levelPos at level until a match or until
// numLevel levels have been visited. The result is a breadth-first position.
func BSearchBreadthFirst[T Ordered](space []T, key T, level, levelPos, numLevel int) (int, bool) {
	if level == numLevel {
		return NotFound, false
	}

	levelStart := (1 << level) - 1
	seekPos := levelStart + levelPos
	k := space[seekPos]

	if key == k {
		return seekPos, true
	}

	inc := 0
	if key > k {
		inc = 1
	}

	return BSearchBreadthFirst(space, key, level+1, levelPos*2+inc, numLevel)
}

// BSearchBreadth searches a breadth-first space built from spaceSize sorted
// items. spaceSize must be a power of two >= 2.
func BSearchBreadth[T Ordered](space []T, spaceSize int, key T) (int, bool) {
	if debugAssertions {
		assertf(spaceSize >= 2 && IsPow2(spaceSize), "BSearchBreadth: space size %d", spaceSize)
	}

	return BSearchBreadthFirst(space, key, 0, 0, Log2FromPow2(spaceSize))
}

// BNearSearchBreadthFirst descends like BSearchBreadthFirst while tracking
// the deepest position whose item is <= key, together with its level. best and
// bestLevel are the candidate carried in from the caller.
func BNearSearchBreadthFirst[T Ordered](space []T, key T, level, levelPos, numLevel, best, bestLevel int) (int, int) {
	if level == numLevel {
		return best, bestLevel
	}

	levelStart := (1 << level) - 1
	seekPos := levelStart + levelPos
	k := space[seekPos]

	if key == k {
		return seekPos, level
	}

	inc := 0
	if key > k {
		inc = 1
		best, bestLevel = seekPos, level
	}

	return BNearSearchBreadthFirst(space, key, level+1, levelPos*2+inc, numLevel, best, bestLevel)
}

// BNearSearchBreadth returns the breadth-first position of the largest item
// <= key and the level it sits at. The initial candidate is the first slot of
// the deepest band, which holds the smallest item, so keys below the minimum
// report that slot.
func BNearSearchBreadth[T Ordered](space []T, spaceSize int, key T) (pos, level int) {
	if debugAssertions {
		assertf(spaceSize >= 2 && IsPow2(spaceSize), "BNearSearchBreadth: space size %d", spaceSize)
	}

	log2Size := Log2FromPow2(spaceSize)

	return BNearSearchBreadthFirst(space, key, 0, 0, log2Size, (spaceSize-1)/2, log2Size-1)
}
