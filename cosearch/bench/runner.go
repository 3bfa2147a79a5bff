// Package bench times random lookups against a prepared search space.
package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	internal "github.com/ZanzyTHEbar/layout-search/cosearch"
	"github.com/ZanzyTHEbar/layout-search/cosearch/alloc"
	"github.com/ZanzyTHEbar/layout-search/cosearch/indexing"
	"github.com/ZanzyTHEbar/layout-search/cosearch/sample"
	"github.com/ZanzyTHEbar/layout-search/cosearch/verify"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultBatches is the number of timed slices a run is split into.
const DefaultBatches = 64

var ErrInvalidOptions = errors.New("invalid benchmark options")

// Options describes one benchmark run.
type Options struct {
	Algorithm   indexing.Algorithm
	SpaceSize   int
	Repetitions int
	Seed        uint64
	Geometry    indexing.Geometry
	Alignment   int
	Batches     int

	// VerifyMin and VerifyMax bound the size range verified before timing.
	// SkipVerify skips the range but not the check of the timed space.
	VerifyMin  int
	VerifyMax  int
	SkipVerify bool
}

func (o Options) validate() error {
	if o.SpaceSize <= 0 {
		return fmt.Errorf("space size %d: %w", o.SpaceSize, ErrInvalidOptions)
	}
	if o.Repetitions <= 0 {
		return fmt.Errorf("repetitions %d: %w", o.Repetitions, ErrInvalidOptions)
	}
	if o.Alignment <= 0 || !indexing.IsPow2(o.Alignment) {
		return fmt.Errorf("alignment %d: %w", o.Alignment, ErrInvalidOptions)
	}
	if !o.SkipVerify && o.VerifyMin > o.VerifyMax {
		return fmt.Errorf("verify range %d..%d: %w", o.VerifyMin, o.VerifyMax, ErrInvalidOptions)
	}
	return o.Geometry.Validate()
}

// Result is the outcome of one run.
type Result struct {
	RunID             uuid.UUID
	StartedAt         time.Time
	Algorithm         string
	SpaceSize         int // size of the searched key range
	Items             int // items reachable through the layout
	Repetitions       int
	Found             int
	Missed            int
	Setup             time.Duration
	Elapsed           time.Duration
	SearchesPerSecond float64
	Latency           LatencyStats
}

// Runner prepares, verifies and times one algorithm at a time.
type Runner struct {
	verifier *verify.Verifier
	metrics  *Metrics
	logger   zerolog.Logger
}

// NewRunner builds a runner. metrics may be nil.
func NewRunner(verifier *verify.Verifier, metrics *Metrics, logger zerolog.Logger) *Runner {
	return &Runner{verifier: verifier, metrics: metrics, logger: logger}
}

// itemsFor returns the number of sorted items the timed space is built from
// and the exclusive upper bound of the sampled keys. Standard and binned
// spaces drop one item to match the reachable item count of the
// power-of-two layouts.
func itemsFor(alg indexing.Algorithm, spaceSize int, geo indexing.Geometry) (items, keyRange int, err error) {
	switch {
	case alg.PowerOfTwo():
		if !indexing.IsPow2(spaceSize) || spaceSize < 2 {
			return 0, 0, fmt.Errorf("%v requires a power-of-two space size, got %d: %w", alg, spaceSize, indexing.ErrNotPowerOfTwo)
		}
		if alg.VEB() && indexing.Log2FromPow2(spaceSize)%geo.Log2Subsize != 0 {
			return 0, 0, fmt.Errorf("%v requires log2 of the space size to be a multiple of %d: %w", alg, geo.Log2Subsize, indexing.ErrSubtreeDepthMismatch)
		}
		return spaceSize, spaceSize, nil

	case alg.Binned():
		if spaceSize-1 < indexing.MinBinnedSpaceSize {
			return 0, 0, fmt.Errorf("%v requires a space size above %d, got %d: %w", alg, indexing.MinBinnedSpaceSize, spaceSize, indexing.ErrSpaceTooSmall)
		}
		return spaceSize - 1, spaceSize - 1, nil

	default:
		if spaceSize < 2 {
			return 0, 0, fmt.Errorf("%v requires a space size of at least 2, got %d: %w", alg, spaceSize, indexing.ErrSpaceTooSmall)
		}
		return spaceSize - 1, spaceSize - 1, nil
	}
}

// Run generates the space and the key sample, verifies consistency and then
// times opts.Repetitions searches.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if opts.Batches <= 0 {
		opts.Batches = DefaultBatches
	}
	opts.Batches = min(opts.Batches, opts.Repetitions)

	alg := opts.Algorithm
	res := &Result{
		RunID:       uuid.New(),
		StartedAt:   time.Now(),
		Algorithm:   alg.String(),
		Repetitions: opts.Repetitions,
	}
	logger := r.logger.With().Str("run", res.RunID.String()).Str("alg", res.Algorithm).Logger()

	items, keyRange, err := itemsFor(alg, opts.SpaceSize, opts.Geometry)
	if err != nil {
		return nil, err
	}
	res.SpaceSize = keyRange

	logger.Info().Int("spaceSize", opts.SpaceSize).Msg("generating search space")
	s0 := time.Now()

	allocate := alloc.Allocator[sample.Item](opts.Alignment)
	s, err := indexing.NewSearcher(alg, sample.Sorted[sample.Item](items), opts.Geometry, allocate)
	if err != nil {
		return nil, fmt.Errorf("preparing search space: %w", err)
	}
	res.Items = s.Len()

	keys := allocate(opts.Repetitions)
	sample.FillKeys(keys, keyRange, opts.Seed)

	if !opts.SkipVerify {
		if _, err := r.verifier.Range(ctx, alg, opts.VerifyMin, opts.VerifyMax); err != nil {
			if errors.Is(err, verify.ErrInconsistent) {
				r.metrics.observeVerifyFailure(res.Algorithm)
			}
			return nil, err
		}
	}
	if report := r.verifier.Searcher(s, s.Len()); !report.OK() {
		r.metrics.observeVerifyFailure(res.Algorithm)
		return nil, fmt.Errorf("%v at space size %d: %w", alg, opts.SpaceSize, verify.ErrInconsistent)
	}

	res.Setup = time.Since(s0)
	logger.Info().Dur("elapsed", res.Setup).Msg("search space ready")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Info().Int("reps", opts.Repetitions).Msg("searching")
	samples := make([]float64, 0, opts.Batches)
	sink := 0

	for b := 0; b < opts.Batches; b++ {
		lo := b * len(keys) / opts.Batches
		hi := (b + 1) * len(keys) / opts.Batches

		t0 := time.Now()
		for _, k := range keys[lo:hi] {
			pos, ok := s.Search(k)
			if ok {
				res.Found++
			}
			sink += pos
		}
		dt := time.Since(t0)

		res.Elapsed += dt
		perSearch := float64(dt.Nanoseconds()) / float64(hi-lo)
		samples = append(samples, perSearch)
		r.metrics.observeBatch(res.Algorithm, perSearch*1e-9)

		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	res.Missed = opts.Repetitions - res.Found

	if res.Elapsed > 0 {
		res.SearchesPerSecond = float64(opts.Repetitions) / res.Elapsed.Seconds()
	}
	res.Latency = Summarize(samples)
	r.metrics.observeRun(res)

	logger.Info().
		Dur("elapsed", res.Elapsed).
		Int("reps", res.Repetitions).
		Int("spaceSize", res.SpaceSize).
		Float64("searchesPerSecond", res.SearchesPerSecond).
		Float64("p50Ns", res.Latency.P50).
		Float64("p99Ns", res.Latency.P99).
		Int("checksum", sink).
		Msg("search complete")

	return res, nil
}

// OptionsFromDefaults fills the geometry and verification fields from the
// application defaults.
func OptionsFromDefaults(alg indexing.Algorithm) Options {
	return Options{
		Algorithm:   alg,
		SpaceSize:   internal.DefaultSpaceSize,
		Repetitions: internal.DefaultRepetitions,
		Seed:        internal.DefaultSeed,
		Geometry: indexing.Geometry{
			LeadinSize:  internal.DefaultLeadinSize,
			Log2Subsize: internal.DefaultLog2Subsize,
		},
		Alignment: internal.DefaultAlignment,
		VerifyMin: internal.DefaultVerifyMinSize,
		VerifyMax: internal.DefaultVerifyMaxSize,
	}
}
