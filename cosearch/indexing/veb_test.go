package indexing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// vebSpace prepares the VEB layout of [0, spaceSize) with subtrees
// log2Subsize deep.
func vebSpace(t testing.TB, spaceSize, log2Subsize int) []float32 {
	t.Helper()
	subsize := 1 << log2Subsize
	dst := make([]float32, VEBSize(spaceSize, subsize))
	require.NoError(t, PrepareForVEBSearch(dst, ascending(spaceSize), subsize))
	return dst
}

func TestPrepareForVEBSearchLayout(t *testing.T) {
	space := vebSpace(t, 16, 2)

	// root subtree, then the four leaf subtrees, each padded to four slots
	want := []float32{
		7, 3, 11, 0,
		1, 0, 2, 0,
		5, 4, 6, 0,
		9, 8, 10, 0,
		13, 12, 14, 0,
	}
	assert.Equal(t, want, space)
}

func TestVEBSize(t *testing.T) {
	assert.Equal(t, 20, VEBSize(16, 4))
	assert.Equal(t, 2*255, VEBSize(256, 2))
	assert.Equal(t, 17*16, VEBSize(256, 16))
	assert.Equal(t, 4368, VEBSize(1<<12, 16))
}

func TestBSearchVEBRoundTrip(t *testing.T) {
	for _, log2Subsize := range []int{1, 2, 4} {
		for log2Size := log2Subsize; log2Size <= 12; log2Size += log2Subsize {
			spaceSize := 1 << log2Size

			t.Run(fmt.Sprintf("subtree_%d/size_%d", log2Subsize, spaceSize), func(t *testing.T) {
				space := vebSpace(t, spaceSize, log2Subsize)

				for i := 0; i < spaceSize-1; i++ {
					key := float32(i)

					pos, ok := BSearchVEB(space, spaceSize, log2Subsize, key)
					if !ok || space[pos] != key {
						t.Fatalf("recursive key %d: got (%d, %v)", i, pos, ok)
					}

					iterPos, ok := BSearchVEBIter(space, spaceSize, log2Subsize, key)
					if !ok || iterPos != pos {
						t.Fatalf("iterative key %d: got (%d, %v), want %d", i, iterPos, ok, pos)
					}
				}

				for _, key := range []float32{-1, 0.5, float32(spaceSize) - 1.5, float32(spaceSize - 1), float32(spaceSize)} {
					_, ok := BSearchVEB(space, spaceSize, log2Subsize, key)
					assert.False(t, ok, "recursive key %v", key)
					_, ok = BSearchVEBIter(space, spaceSize, log2Subsize, key)
					assert.False(t, ok, "iterative key %v", key)
				}
			})
		}
	}
}

func TestBSearchVEBMatchesBreadthWhenSingleMacro(t *testing.T) {
	// one subtree covering the whole depth is the breadth-first layout plus a pad
	const spaceSize = 256
	veb := vebSpace(t, spaceSize, 8)
	breadth := breadthSpace(t, spaceSize)

	assert.Equal(t, breadth[:spaceSize-1], veb[:spaceSize-1])
	for i := 0; i < spaceSize-1; i++ {
		want, _ := BSearchBreadth(breadth, spaceSize, float32(i))
		got, ok := BSearchVEB(veb, spaceSize, 8, float32(i))
		require.True(t, ok)
		require.Equal(t, want, got)
	}
}

func TestBSearchVEBLarge(t *testing.T) {
	if testing.Short() {
		t.Skip("large layout")
	}

	const spaceSize = 1 << 20
	space := vebSpace(t, spaceSize, 4)

	for i := 0; i < spaceSize-1; i++ {
		pos, ok := BSearchVEBIter(space, spaceSize, 4, float32(i))
		if !ok || space[pos] != float32(i) {
			t.Fatalf("key %d: got (%d, %v)", i, pos, ok)
		}
	}
}

func BenchmarkBSearchVEB(b *testing.B) {
	const spaceSize = 1 << 20
	space := vebSpace(b, spaceSize, 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		BSearchVEB(space, spaceSize, 4, float32(i&(spaceSize-2)))
	}
}

func BenchmarkBSearchVEBIter(b *testing.B) {
	const spaceSize = 1 << 20
	space := vebSpace(b, spaceSize, 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		BSearchVEBIter(space, spaceSize, 4, float32(i&(spaceSize-2)))
	}
}
