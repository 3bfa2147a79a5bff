package indexing

// ascending returns [0, 1, ..., n-1] as float32.
func ascending(n int) []float32 {
	space := make([]float32, n)
	for i := range space {
		space[i] = float32(i)
	}
	return space
}

// filled returns n copies of v, used to detect writes to a destination.
func filled(n int, v float32) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// binnedSpace lays out lead-in and data the way the binned searches expect.
func binnedSpace(data []float32, leadinSize int) []float32 {
	space := make([]float32, leadinSize+len(data))
	PrepareForBinnedSearch(space[:leadinSize], data)
	copy(space[leadinSize:], data)
	return space
}
