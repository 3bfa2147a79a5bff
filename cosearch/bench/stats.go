package bench

import (
	"slices"

	"gonum.org/v1/gonum/stat"
)

// LatencyStats summarises per-search latencies in nanoseconds, one sample
// per timed batch.
type LatencyStats struct {
	Mean   float64 `yaml:"meanNs"`
	StdDev float64 `yaml:"stdDevNs"`
	Min    float64 `yaml:"minNs"`
	P50    float64 `yaml:"p50Ns"`
	P90    float64 `yaml:"p90Ns"`
	P99    float64 `yaml:"p99Ns"`
	Max    float64 `yaml:"maxNs"`
}

// Summarize computes LatencyStats over samples. samples is not modified.
func Summarize(samples []float64) LatencyStats {
	if len(samples) == 0 {
		return LatencyStats{}
	}

	sorted := slices.Clone(samples)
	slices.Sort(sorted)

	s := LatencyStats{
		Mean: stat.Mean(sorted, nil),
		Min:  sorted[0],
		P50:  stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P90:  stat.Quantile(0.9, stat.Empirical, sorted, nil),
		P99:  stat.Quantile(0.99, stat.Empirical, sorted, nil),
		Max:  sorted[len(sorted)-1],
	}
	if len(sorted) > 1 {
		s.StdDev = stat.StdDev(sorted, nil)
	}
	return s
}
