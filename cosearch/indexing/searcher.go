package indexing

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Algorithm selects a search variant together with the layout it needs.
// The numeric values are the "alt" numbers accepted on the command line.
type Algorithm int

const (
	BSearchStandardAlg Algorithm = iota
	BSearchBinnedAlg
	BSearchBreadthAlg
	BSearchVEBAlg
	BSearchVEBIterAlg
	LSearchStandardAlg
	LSearchBinnedAlg
)

var algorithmNames = [...]string{
	BSearchStandardAlg: "bsearch_standard",
	BSearchBinnedAlg:   "bsearch_binned",
	BSearchBreadthAlg:  "bsearch_breadth",
	BSearchVEBAlg:      "bsearch_veb",
	BSearchVEBIterAlg:  "bsearch_veb_iter",
	LSearchStandardAlg: "lsearch_standard",
	LSearchBinnedAlg:   "lsearch_binned",
}

var (
	ErrUnknownAlgorithm = errors.New("unknown search algorithm")
	ErrSpaceTooSmall    = errors.New("search space is too small for the algorithm")
	ErrInvalidGeometry  = errors.New("invalid layout geometry")
)

// Algorithms lists every variant in "alt" order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithmNames))
	for i := range out {
		out[i] = Algorithm(i)
	}
	return out
}

func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return "Algorithm(" + strconv.Itoa(int(a)) + ")"
	}
	return algorithmNames[a]
}

// Binned reports whether the algorithm needs a lead-in table.
func (a Algorithm) Binned() bool {
	return a == BSearchBinnedAlg || a == LSearchBinnedAlg
}

// PowerOfTwo reports whether the algorithm needs a power-of-two source.
func (a Algorithm) PowerOfTwo() bool {
	return a == BSearchBreadthAlg || a == BSearchVEBAlg || a == BSearchVEBIterAlg
}

// VEB reports whether the algorithm searches the Van Emde Boas layout.
func (a Algorithm) VEB() bool {
	return a == BSearchVEBAlg || a == BSearchVEBIterAlg
}

// ParseAlgorithm accepts an algorithm name or its numeric alt value.
func ParseAlgorithm(s string) (Algorithm, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if n >= 0 && n < len(algorithmNames) {
			return Algorithm(n), nil
		}
		return 0, fmt.Errorf("alt %d: %w", n, ErrUnknownAlgorithm)
	}
	for i, name := range algorithmNames {
		if name == s {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownAlgorithm)
}

// Geometry holds the layout parameters baked into a prepared space.
type Geometry struct {
	LeadinSize  int // bucket count of the binned searches
	Log2Subsize int // depth of a single VEB subtree
}

// DefaultGeometry is 16 lead-in bins and 4-deep VEB subtrees.
var DefaultGeometry = Geometry{LeadinSize: 16, Log2Subsize: 4}

func (g Geometry) Validate() error {
	if g.LeadinSize < 2 {
		return fmt.Errorf("lead-in size %d: %w", g.LeadinSize, ErrInvalidGeometry)
	}
	if g.Log2Subsize < 1 || g.Log2Subsize > 16 {
		return fmt.Errorf("subtree depth %d: %w", g.Log2Subsize, ErrInvalidGeometry)
	}
	return nil
}

// Searcher is a prepared, read-only search space bound to one algorithm.
// Positions returned by Search address the prepared storage and are only
// meaningful to Value of the same Searcher.
type Searcher[T Ordered] interface {
	Search(key T) (int, bool)
	Value(pos int) T
	// Len is the number of source items reachable through Search.
	Len() int
	Algorithm() Algorithm
}

type layoutSearcher[T Ordered] struct {
	alg       Algorithm
	geo       Geometry
	space     []T
	spaceSize int
	items     int
}

// NewSearcher prepares sorted for alg. allocate supplies the backing storage
// for the layout (for example an aligned allocator); nil uses make. sorted is
// copied and may be reused by the caller afterwards.
//
// Breadth and VEB layouts need a power-of-two number of source items and
// expose all but the largest of them. Binned layouts need at least
// MinBinnedSpaceSize items.
func NewSearcher[T Ordered](alg Algorithm, sorted []T, geo Geometry, allocate func(n int) []T) (Searcher[T], error) {
	if alg < 0 || int(alg) >= len(algorithmNames) {
		return nil, fmt.Errorf("%v: %w", alg, ErrUnknownAlgorithm)
	}
	if allocate == nil {
		allocate = func(n int) []T { return make([]T, n) }
	}

	n := len(sorted)
	s := &layoutSearcher[T]{alg: alg, geo: geo, spaceSize: n}

	switch {
	case alg.Binned():
		if err := geo.Validate(); err != nil {
			return nil, err
		}
		if n < MinBinnedSpaceSize || n < geo.LeadinSize {
			return nil, fmt.Errorf("%v needs at least %d items, got %d: %w", alg, max(MinBinnedSpaceSize, geo.LeadinSize), n, ErrSpaceTooSmall)
		}
		s.space = allocate(n + geo.LeadinSize)
		PrepareForBinnedSearch(s.space[:geo.LeadinSize], sorted)
		copy(s.space[geo.LeadinSize:], sorted)
		s.items = n

	case alg == BSearchBreadthAlg:
		s.space = allocate(n)
		if err := PrepareForBreadthSearch(s.space, sorted); err != nil {
			return nil, fmt.Errorf("%v: %w", alg, err)
		}
		s.items = n - 1

	case alg.VEB():
		if err := geo.Validate(); err != nil {
			return nil, err
		}
		subsize := 1 << geo.Log2Subsize
		if n < 2 || !IsPow2(n) {
			return nil, fmt.Errorf("%v of %d items: %w", alg, n, ErrNotPowerOfTwo)
		}
		s.space = allocate(VEBSize(n, subsize))
		if err := PrepareForVEBSearch(s.space, sorted, subsize); err != nil {
			return nil, fmt.Errorf("%v: %w", alg, err)
		}
		s.items = n - 1

	default:
		if n == 0 {
			return nil, fmt.Errorf("%v: %w", alg, ErrSpaceTooSmall)
		}
		s.space = allocate(n)
		copy(s.space, sorted)
		s.items = n
	}

	return s, nil
}

func (s *layoutSearcher[T]) Search(key T) (int, bool) {
	switch s.alg {
	case BSearchBinnedAlg:
		return BSearchBinned(s.space, s.geo.LeadinSize, key)
	case BSearchBreadthAlg:
		return BSearchBreadth(s.space, s.spaceSize, key)
	case BSearchVEBAlg:
		return BSearchVEB(s.space, s.spaceSize, s.geo.Log2Subsize, key)
	case BSearchVEBIterAlg:
		return BSearchVEBIter(s.space, s.spaceSize, s.geo.Log2Subsize, key)
	case LSearchStandardAlg:
		return LSearchStandard(s.space, key)
	case LSearchBinnedAlg:
		return LSearchBinned(s.space, s.geo.LeadinSize, key)
	default:
		return BSearchStandard(s.space, key)
	}
}

func (s *layoutSearcher[T]) Value(pos int) T { return s.space[pos] }

func (s *layoutSearcher[T]) Len() int { return s.items }

func (s *layoutSearcher[T]) Algorithm() Algorithm { return s.alg }
