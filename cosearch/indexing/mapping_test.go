package indexing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreadthFromLinear(t *testing.T) {
	// space of 8: the seven probe points of a 3-level search
	want := []int{3, 1, 4, 0, 5, 2, 6}
	for linear, breadth := range want {
		assert.Equal(t, breadth, BreadthFromLinear(8, linear), "linear %d", linear)
	}
}

func TestLinearFromBreadth(t *testing.T) {
	want := []int{3, 1, 5, 0, 2, 4, 6}
	for breadth, linear := range want {
		assert.Equal(t, linear, LinearFromBreadth(8, breadth, BreadthLevel(breadth)), "breadth %d", breadth)
	}
}

func TestBreadthLevel(t *testing.T) {
	tests := []struct {
		pos  int
		want int
	}{
		{0, 0},
		{1, 1}, {2, 1},
		{3, 2}, {6, 2},
		{7, 3}, {14, 3},
		{15, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BreadthLevel(tt.pos), "pos %d", tt.pos)
	}
}

func TestMappingRoundTrip(t *testing.T) {
	for log2Size := 1; log2Size <= 14; log2Size++ {
		spaceSize := 1 << log2Size

		seen := make([]bool, spaceSize-1)
		for p := 0; p < spaceSize-1; p++ {
			b := BreadthFromLinear(spaceSize, p)
			require.True(t, b >= 0 && b < spaceSize-1, "size %d: breadth %d out of range", spaceSize, b)
			require.False(t, seen[b], "size %d: breadth %d produced twice", spaceSize, b)
			seen[b] = true

			require.Equal(t, p, LinearFromBreadth(spaceSize, b, BreadthLevel(b)), "size %d linear %d", spaceSize, p)
		}

		for b := 0; b < spaceSize-1; b++ {
			p := LinearFromBreadth(spaceSize, b, BreadthLevel(b))
			require.Equal(t, b, BreadthFromLinear(spaceSize, p), "size %d breadth %d", spaceSize, b)
		}
	}
}

func TestMappingMatchesBreadthLayout(t *testing.T) {
	// the prepared layout of 0..n-1 stores at breadth position b exactly the
	// value LinearFromBreadth reports for b
	const spaceSize = 1024
	src := ascending(spaceSize)
	dst := make([]float32, spaceSize)
	require.NoError(t, PrepareForBreadthSearch(dst, src))

	for b := 0; b < spaceSize-1; b++ {
		assert.Equal(t, float32(LinearFromBreadth(spaceSize, b, BreadthLevel(b))), dst[b])
	}
}
