package indexing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLSearchStandard(t *testing.T) {
	tests := []struct {
		name   string
		space  []int
		key    int
		want   int
		wantOK bool
	}{
		{"first", []int{1, 3, 5}, 1, 0, true},
		{"middle", []int{1, 3, 5}, 3, 1, true},
		{"last", []int{1, 3, 5}, 5, 2, true},
		{"between", []int{1, 3, 5}, 4, NotFound, false},
		{"below", []int{1, 3, 5}, 0, NotFound, false},
		{"above", []int{1, 3, 5}, 9, NotFound, false},
		{"single hit", []int{7}, 7, 0, true},
		{"single miss", []int{7}, 8, NotFound, false},
		{"empty", nil, 1, NotFound, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LSearchStandard(tt.space, tt.key)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLNearSearchStandard(t *testing.T) {
	space := []int{10, 20, 30, 40}

	tests := []struct {
		key  int
		want int
	}{
		{5, 0},
		{10, 0},
		{11, 1},
		{20, 1},
		{35, 3},
		{40, 3},
		{99, 3}, // nothing is >= key: last index
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LNearSearchStandard(space, tt.key), "key %d", tt.key)
	}
}

func TestLSearchStandardAllSizes(t *testing.T) {
	for n := 64; n <= 2048; n += 37 {
		space := ascending(n)
		for i := 0; i < n; i++ {
			pos, ok := LSearchStandard(space, float32(i))
			require.True(t, ok, "size %d key %d", n, i)
			require.Equal(t, i, pos)
		}
	}
}

func TestLSearchBinnedConsistency(t *testing.T) {
	sizes := []int{64, 65, 66, 100, 127, 128, 129, 255, 511, 1000, 1023, 2047, 2048}
	for n := 70; n < 2048; n += 97 {
		sizes = append(sizes, n)
	}

	for _, leadinSize := range []int{8, 16, 32} {
		for _, n := range sizes {
			data := ascending(n)
			space := binnedSpace(data, leadinSize)

			for i := 0; i < n; i++ {
				pos, ok := LSearchBinned(space, leadinSize, float32(i))
				require.True(t, ok, "lead-in %d size %d key %d", leadinSize, n, i)
				require.Equal(t, float32(i), space[pos])
				require.Equal(t, i+leadinSize, pos)
			}

			for _, key := range []float32{-1, 0.5, float32(n) - 0.5, float32(n)} {
				_, ok := LSearchBinned(space, leadinSize, key)
				require.False(t, ok, "lead-in %d size %d key %v", leadinSize, n, key)
			}
		}
	}
}

func TestLNearSearchBinned(t *testing.T) {
	const leadinSize = 16
	for _, n := range []int{64, 100, 1000, 2048} {
		data := ascending(n)
		space := binnedSpace(data, leadinSize)

		for i := 0; i < n; i++ {
			assert.Equal(t, i+leadinSize, LNearSearchBinned(space, leadinSize, float32(i)), "size %d key %d", n, i)
		}

		assert.Equal(t, leadinSize, LNearSearchBinned(space, leadinSize, -3))
		assert.Equal(t, leadinSize+n-1, LNearSearchBinned(space, leadinSize, float32(n)+10))
	}
}
