package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	samples := []float64{5, 1, 4, 2, 3}
	s := Summarize(samples)

	assert.Equal(t, 3.0, s.Mean)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 5.0, s.Max)
	assert.Equal(t, 3.0, s.P50)
	assert.Equal(t, 5.0, s.P99)
	assert.InDelta(t, 1.5811, s.StdDev, 1e-4)

	// input order is preserved
	assert.Equal(t, []float64{5, 1, 4, 2, 3}, samples)
}

func TestSummarizeEdgeCases(t *testing.T) {
	assert.Equal(t, LatencyStats{}, Summarize(nil))

	one := Summarize([]float64{7})
	assert.Equal(t, 7.0, one.Mean)
	assert.Equal(t, 7.0, one.P90)
	assert.Zero(t, one.StdDev)
}
