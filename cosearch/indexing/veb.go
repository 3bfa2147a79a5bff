package indexing

// Van Emde Boas forest layout search. The space is produced by
// PrepareForVEBSearch: a forest of subtrees, each numLevel deep and padded
// to 2^numLevel slots, stored macro level by macro level. Within a subtree
// the items are in breadth-first order.

// BSearchVanEmdeBoas searches macro level macro onwards. macroPos is the
// subtree's index within its macro level and macroBase the number of
// subtrees stored in all shallower macro levels.
func BSearchVanEmdeBoas[T Ordered](space []T, key T, numLevel, macro, macroPos, macroBase, numMacro int) (int, bool) {
	if macro == numMacro {
		return NotFound, false
	}

	treeStart := (macroPos + macroBase) << numLevel
	levelPos := 0

	for level := 0; level < numLevel; level++ {
		levelStart := treeStart + (1 << level) - 1
		seekPos := levelStart + levelPos
		k := space[seekPos]

		if key == k {
			return seekPos, true
		}

		inc := 0
		if key > k {
			inc = 1
		}
		levelPos = levelPos*2 + inc
	}

	return BSearchVanEmdeBoas(space, key, numLevel, macro+1, (macroPos<<numLevel)+levelPos,
		macroBase+(1<<(macro*numLevel)), numMacro)
}

// BSearchVEB searches a VEB space built from spaceSize sorted items with
// subtrees log2Subsize deep. log2(spaceSize) must be a multiple of
// log2Subsize.
func BSearchVEB[T Ordered](space []T, spaceSize, log2Subsize int, key T) (int, bool) {
	if debugAssertions {
		assertf(spaceSize >= 2 && IsPow2(spaceSize), "BSearchVEB: space size %d", spaceSize)
		assertf(log2Subsize > 0 && Log2FromPow2(spaceSize)%log2Subsize == 0, "BSearchVEB: subtree depth %d", log2Subsize)
	}

	return BSearchVanEmdeBoas(space, key, log2Subsize, 0, 0, 0, Log2FromPow2(spaceSize)/log2Subsize)
}

// BSearchVanEmdeBoasIter is the loop form of BSearchVanEmdeBoas started at
// the root macro.
func BSearchVanEmdeBoasIter[T Ordered](space []T, key T, numLevel, numMacro int) (int, bool) {
	macroPos := 0
	macroBase := 0

	for macro := 0; macro < numMacro; macro++ {
		treeStart := (macroPos + macroBase) << numLevel
		levelPos := 0

		for level := 0; level < numLevel; level++ {
			levelStart := treeStart + (1 << level) - 1
			seekPos := levelStart + levelPos
			k := space[seekPos]

			if key == k {
				return seekPos, true
			}

			inc := 0
			if key > k {
				inc = 1
			}
			levelPos = levelPos*2 + inc
		}

		macroPos = (macroPos << numLevel) + levelPos
		macroBase += 1 << (macro * numLevel)
	}

	return NotFound, false
}

// BSearchVEBIter is the iterative counterpart of BSearchVEB.
func BSearchVEBIter[T Ordered](space []T, spaceSize, log2Subsize int, key T) (int, bool) {
	if debugAssertions {
		assertf(spaceSize >= 2 && IsPow2(spaceSize), "BSearchVEBIter: space size %d", spaceSize)
		assertf(log2Subsize > 0 && Log2FromPow2(spaceSize)%log2Subsize == 0, "BSearchVEBIter: subtree depth %d", log2Subsize)
	}

	return BSearchVanEmdeBoasIter(space, key, log2Subsize, Log2FromPow2(spaceSize)/log2Subsize)
}

// VEBSize returns the padded length of a VEB space built from spaceSize items
// with subtrees of subsize slots: every subtree of subsize-1 items gets one
// padding slot.
func VEBSize(spaceSize, subsize int) int {
	return (spaceSize - 1) / (subsize - 1) * subsize
}
