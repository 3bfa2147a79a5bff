package indexing

import (
	roaring "github.com/RoaringBitmap/roaring"
)

// Coverage records which logical positions of a search space were hit.
// It is used by verification to prove every item is reachable through a
// layout, and to merge per-worker results. Not safe for concurrent use.
type Coverage struct {
	bm *roaring.Bitmap
}

func NewCoverage() *Coverage {
	return &Coverage{bm: roaring.New()}
}

// Add marks pos as covered. Negative positions are ignored.
func (c *Coverage) Add(pos int) {
	if pos < 0 {
		return
	}
	c.bm.Add(uint32(pos))
}

func (c *Coverage) Contains(pos int) bool {
	return pos >= 0 && c.bm.Contains(uint32(pos))
}

func (c *Coverage) Cardinality() int {
	return int(c.bm.GetCardinality())
}

// Merge folds other into c.
func (c *Coverage) Merge(other *Coverage) {
	if other == nil {
		return
	}
	c.bm.Or(other.bm)
}

// Missing returns the positions in [0, n) that were never added.
func (c *Coverage) Missing(n int) []int {
	gaps := c.gaps(n)
	out := make([]int, 0, gaps.GetCardinality())
	it := gaps.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}
	return out
}

// Complete reports whether every position in [0, n) was added.
func (c *Coverage) Complete(n int) bool {
	return c.gaps(n).IsEmpty()
}

func (c *Coverage) gaps(n int) *roaring.Bitmap {
	gaps := roaring.New()
	if n <= 0 {
		return gaps
	}
	gaps.AddRange(0, uint64(n))
	gaps.AndNot(c.bm)
	return gaps
}
