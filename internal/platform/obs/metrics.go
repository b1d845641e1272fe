package obs

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry served on /metrics.
	Registry = prometheus.NewRegistry()

	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)
	HTTPRateLimited = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_rate_limited_total", Help: "Requests rejected by the rate limiter."},
		[]string{"path"},
	)

	// OptimizerCandidates counts tours scored by the exhaustive search, by search kind.
	OptimizerCandidates = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "optimizer_candidates_total", Help: "Candidate tours scored by the optimizer."},
		[]string{"kind"},
	)
	// OptimizerRuns counts optimizer invocations by kind and outcome.
	OptimizerRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "optimizer_runs_total", Help: "Optimizer runs by outcome."},
		[]string{"kind", "outcome"},
	)
	OptimizerDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "optimizer_duration_seconds", Help: "Optimizer wall time in seconds.", Buckets: []float64{.001, .01, .05, .1, .5, 1, 5, 30, 120}},
		[]string{"kind"},
	)

	// EnergyEstimateWh observes the energy of every evaluated plan.
	EnergyEstimateWh = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "plan_energy_wh", Help: "Estimated full-tour energy of planned routes in Wh.", Buckets: prometheus.LinearBuckets(100, 100, 10)},
	)
)

var regOnce sync.Once

// RegisterDefault registers all collectors on Registry. Safe to call repeatedly.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(
			HTTPRequests,
			HTTPDuration,
			HTTPRateLimited,
			OptimizerCandidates,
			OptimizerRuns,
			OptimizerDuration,
			EnergyEstimateWh,
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	})
}
