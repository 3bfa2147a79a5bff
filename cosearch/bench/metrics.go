package bench

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "cosearch"
	metricsSubsystem = "bench"
)

// Metrics exports benchmark results as prometheus collectors.
// Safe for concurrent use.
type Metrics struct {
	searches      *prometheus.CounterVec
	latency       *prometheus.HistogramVec
	throughput    *prometheus.GaugeVec
	setupDuration *prometheus.GaugeVec
	verifyFailed  *prometheus.CounterVec
}

// NewMetrics creates the benchmark collectors and registers them with reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "searches_total",
			Help:      "Timed searches by algorithm and outcome",
		}, []string{"algorithm", "outcome"}),

		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "search_latency_seconds",
			Help:      "Mean search latency of a timed batch in seconds",
			Buckets:   prometheus.ExponentialBuckets(1e-9, 2, 16),
		}, []string{"algorithm"}),

		throughput: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "searches_per_second",
			Help:      "Average searches per second of the last run",
		}, []string{"algorithm"}),

		setupDuration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "setup_duration_seconds",
			Help:      "Time spent preparing and verifying the search space",
		}, []string{"algorithm"}),

		verifyFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "verify_failures_total",
			Help:      "Runs aborted because the search space did not verify",
		}, []string{"algorithm"}),
	}

	for _, c := range []prometheus.Collector{m.searches, m.latency, m.throughput, m.setupDuration, m.verifyFailed} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register bench metrics: %w", err)
		}
	}
	return m, nil
}

func (m *Metrics) observeBatch(alg string, perSearch float64) {
	if m == nil {
		return
	}
	m.latency.WithLabelValues(alg).Observe(perSearch)
}

func (m *Metrics) observeRun(r *Result) {
	if m == nil {
		return
	}
	m.searches.WithLabelValues(r.Algorithm, "found").Add(float64(r.Found))
	m.searches.WithLabelValues(r.Algorithm, "missed").Add(float64(r.Missed))
	m.throughput.WithLabelValues(r.Algorithm).Set(r.SearchesPerSecond)
	m.setupDuration.WithLabelValues(r.Algorithm).Set(r.Setup.Seconds())
}

func (m *Metrics) observeVerifyFailure(alg string) {
	if m == nil {
		return
	}
	m.verifyFailed.WithLabelValues(alg).Inc()
}
