// Package verify checks that every item of a prepared search space can be
// found through its layout, over single sizes and whole size ranges.
package verify

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"

	internal "github.com/ZanzyTHEbar/layout-search/cosearch"
	"github.com/ZanzyTHEbar/layout-search/cosearch/indexing"
	"github.com/ZanzyTHEbar/layout-search/cosearch/sample"

	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc/pool"
)

var ErrInconsistent = errors.New("search space is inconsistent")

// maxLoggedFailures bounds the per-key error events of a single size.
const maxLoggedFailures = 8

// Report is the outcome of verifying one size.
type Report struct {
	Algorithm indexing.Algorithm
	Size      int // requested size
	SpaceSize int // items in the prepared space
	Occupied  int // keys 0..Occupied-1 that must be found
	Skipped   bool
	Missing   []int // keys that were not found or found at a wrong position
}

func (r Report) OK() bool { return len(r.Missing) == 0 }

// Verifier builds spaces of consecutive values and searches for each of them.
type Verifier struct {
	geo      indexing.Geometry
	workers  int
	allocate func(n int) []sample.Item
	logger   zerolog.Logger
}

type Option func(*Verifier)

// WithWorkers bounds the number of sizes verified in parallel. n <= 0
// selects the number of CPUs.
func WithWorkers(n int) Option {
	return func(v *Verifier) { v.workers = n }
}

func WithAllocator(allocate func(n int) []sample.Item) Option {
	return func(v *Verifier) { v.allocate = allocate }
}

func WithLogger(logger zerolog.Logger) Option {
	return func(v *Verifier) { v.logger = logger }
}

func New(geo indexing.Geometry, opts ...Option) *Verifier {
	v := &Verifier{
		geo:    geo,
		logger: internal.GetLogger(),
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.workers <= 0 {
		v.workers = runtime.NumCPU()
	}
	return v
}

// Plan sizes the space verified for a requested size. Breadth and VEB
// layouts are built over the next power of two and check at most all but
// its largest item. skip is set when the layout cannot hold the size.
func Plan(alg indexing.Algorithm, size int, geo indexing.Geometry) (spaceSize, occupied int, skip bool) {
	switch {
	case alg.PowerOfTwo():
		spaceSize = indexing.CeilPow2(size)
		if spaceSize < 2 {
			return spaceSize, 0, true
		}
		occupied = min(size, spaceSize-1)
		if alg.VEB() && indexing.Log2FromPow2(spaceSize)%geo.Log2Subsize != 0 {
			return spaceSize, occupied, true
		}
		return spaceSize, occupied, false

	case alg.Binned():
		return size, size, size < max(indexing.MinBinnedSpaceSize, geo.LeadinSize)

	default:
		return size, size, size < 1
	}
}

// Size verifies alg over the space planned for size.
func (v *Verifier) Size(alg indexing.Algorithm, size int) (Report, error) {
	if err := v.geo.Validate(); err != nil {
		return Report{}, err
	}

	spaceSize, occupied, skip := Plan(alg, size, v.geo)
	if skip {
		v.logger.Debug().Str("alg", alg.String()).Int("size", size).Msg("verification skipped")
		return Report{Algorithm: alg, Size: size, SpaceSize: spaceSize, Occupied: occupied, Skipped: true}, nil
	}

	s, err := indexing.NewSearcher(alg, sample.Sorted[sample.Item](spaceSize), v.geo, v.allocate)
	if err != nil {
		return Report{}, fmt.Errorf("preparing %v for size %d: %w", alg, size, err)
	}

	r := v.Searcher(s, occupied)
	r.Size = size
	r.SpaceSize = spaceSize
	return r, nil
}

// Searcher verifies an already prepared space holding at least the values
// 0..occupied-1. The report's SpaceSize is the searcher's Len.
func (v *Verifier) Searcher(s indexing.Searcher[sample.Item], occupied int) Report {
	keys := sample.Sorted[sample.Item](occupied)
	cov := Check(s, keys)

	r := Report{
		Algorithm: s.Algorithm(),
		Size:      occupied,
		SpaceSize: s.Len(),
		Occupied:  occupied,
		Missing:   cov.Missing(len(keys)),
	}

	for i, k := range r.Missing {
		if i == maxLoggedFailures {
			v.logger.Error().Str("alg", r.Algorithm.String()).Int("more", len(r.Missing)-i).Msg("further failures suppressed")
			break
		}
		v.logger.Error().Str("alg", r.Algorithm.String()).Int("size", occupied).Int("key", k).Msg("verification failure")
	}
	if r.OK() {
		v.logger.Debug().Str("alg", r.Algorithm.String()).Int("size", occupied).Msg("verified")
	}
	return r
}

// Range verifies alg for every size in [minSize, maxSize] on a bounded pool
// of workers. Reports come back ordered by size. The error wraps
// ErrInconsistent when any size failed.
func (v *Verifier) Range(ctx context.Context, alg indexing.Algorithm, minSize, maxSize int) ([]Report, error) {
	if minSize > maxSize {
		return nil, fmt.Errorf("verify range %d..%d is empty", minSize, maxSize)
	}

	reports := make([]Report, maxSize-minSize+1)
	var failed atomic.Int64

	p := pool.New().WithMaxGoroutines(v.workers).WithContext(ctx)
	for size := minSize; size <= maxSize; size++ {
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := v.Size(alg, size)
			if err != nil {
				return err
			}
			if !r.OK() {
				failed.Add(1)
			}
			reports[size-minSize] = r
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return nil, err
	}

	skipped := 0
	for _, r := range reports {
		if r.Skipped {
			skipped++
		}
	}

	v.logger.Info().
		Str("alg", alg.String()).
		Int("min", minSize).
		Int("max", maxSize).
		Int("skipped", skipped).
		Int64("failed", failed.Load()).
		Msg("range verified")

	if n := failed.Load(); n > 0 {
		return reports, fmt.Errorf("%v: %d of %d sizes failed: %w", alg, n, len(reports), ErrInconsistent)
	}
	return reports, nil
}

// Check searches for every key and records the indices of the keys that
// were found at a position holding an equal value.
func Check[T indexing.Ordered](s indexing.Searcher[T], keys []T) *indexing.Coverage {
	cov := indexing.NewCoverage()
	for i, k := range keys {
		pos, ok := s.Search(k)
		if ok && s.Value(pos) == k {
			cov.Add(i)
		}
	}
	return cov
}

// Failures returns the sizes of the reports that did not verify, in report
// order.
func Failures(reports []Report) []int {
	var out []int
	for _, r := range reports {
		if !r.OK() {
			out = append(out, r.Size)
		}
	}
	return out
}
