package indexing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// breadthSpace prepares the breadth-first layout of [0, spaceSize).
func breadthSpace(t testing.TB, spaceSize int) []float32 {
	t.Helper()
	dst := make([]float32, spaceSize)
	require.NoError(t, PrepareForBreadthSearch(dst, ascending(spaceSize)))
	return dst
}

func TestBSearchBreadthSmall(t *testing.T) {
	space := breadthSpace(t, 8)
	assert.Equal(t, []float32{3, 1, 5, 0, 2, 4, 6}, space[:7])

	for i := 0; i < 7; i++ {
		pos, ok := BSearchBreadth(space, 8, float32(i))
		require.True(t, ok, "key %d", i)
		assert.Equal(t, float32(i), space[pos])
	}

	for _, key := range []float32{-1, 0.5, 6.5, 7, 100} {
		_, ok := BSearchBreadth(space, 8, key)
		assert.False(t, ok, "key %v", key)
	}
}

func TestBSearchBreadthRoundTrip(t *testing.T) {
	layouts := map[int][]float32{}

	for rawSize := 64; rawSize <= 2048; rawSize++ {
		spaceSize := CeilPow2(rawSize)
		occupied := min(rawSize, spaceSize-1)

		space, ok := layouts[spaceSize]
		if !ok {
			space = breadthSpace(t, spaceSize)
			layouts[spaceSize] = space
		}
		src := ascending(spaceSize)

		for i := 0; i < occupied; i++ {
			key := float32(i)
			want, _ := BSearchStandard(src, key)

			pos, ok := BSearchBreadth(space, spaceSize, key)
			if !ok || space[pos] != src[want] {
				t.Fatalf("size %d key %d: got (%d, %v)", rawSize, i, pos, ok)
			}
			if LinearFromBreadth(spaceSize, pos, BreadthLevel(pos)) != want {
				t.Fatalf("size %d key %d: breadth %d does not map back to %d", rawSize, i, pos, want)
			}
		}
	}
}

func TestBSearchBreadthLarge(t *testing.T) {
	if testing.Short() {
		t.Skip("large layout")
	}

	const spaceSize = 1 << 20
	space := breadthSpace(t, spaceSize)

	for i := 0; i < spaceSize-1; i++ {
		pos, ok := BSearchBreadth(space, spaceSize, float32(i))
		if !ok || space[pos] != float32(i) {
			t.Fatalf("key %d: got (%d, %v)", i, pos, ok)
		}
	}

	_, ok := BSearchBreadth(space, spaceSize, float32(spaceSize-1))
	assert.False(t, ok, "largest source item is not part of the layout")
}

func TestBNearSearchBreadth(t *testing.T) {
	for log2Size := 1; log2Size <= 11; log2Size++ {
		spaceSize := 1 << log2Size
		space := breadthSpace(t, spaceSize)
		src := ascending(spaceSize)[:spaceSize-1]

		for k := -4; k <= 2*spaceSize+2; k++ {
			key := float32(k) / 2

			pos, level := BNearSearchBreadth(space, spaceSize, key)
			require.Equal(t, BreadthLevel(pos), level, "size %d key %v", spaceSize, key)

			linear := LinearFromBreadth(spaceSize, pos, level)
			require.Equal(t, BNearSearchStandard(src, key), linear, "size %d key %v", spaceSize, key)
		}
	}
}

func TestBNearSearchBreadthBelowMinimum(t *testing.T) {
	space := breadthSpace(t, 16)

	pos, level := BNearSearchBreadth(space, 16, -5)
	assert.Equal(t, 7, pos)
	assert.Equal(t, 3, level)
	assert.Equal(t, float32(0), space[pos])
}

func TestBNearSearchBreadthFirstCarriesCandidate(t *testing.T) {
	space := breadthSpace(t, 16)

	// a descent that never moves right keeps the caller's candidate
	pos, level := BNearSearchBreadthFirst(space, -1, 0, 0, 4, 42, 9)
	assert.Equal(t, 42, pos)
	assert.Equal(t, 9, level)
}

func BenchmarkBSearchBreadth(b *testing.B) {
	const spaceSize = 1 << 20
	space := breadthSpace(b, spaceSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		BSearchBreadth(space, spaceSize, float32(i&(spaceSize-2)))
	}
}
