// Package observability holds the Prometheus instrumentation for the serve
// adapter.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles the collectors exposed on /metrics.
type Metrics struct {
	MazesGenerated *prometheus.CounterVec
	Solves         *prometheus.CounterVec
	GenerateTime   prometheus.Histogram
	SolveTime      *prometheus.HistogramVec
}

// NewMetrics registers the hedge collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		MazesGenerated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hedge",
			Name:      "mazes_generated_total",
			Help:      "Mazes generated, by carving algorithm.",
		}, []string{"algorithm"}),
		Solves: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hedge",
			Name:      "solves_total",
			Help:      "Solve requests, by algorithm and outcome (found, empty, error).",
		}, []string{"algorithm", "outcome"}),
		GenerateTime: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "hedge",
			Name:      "generate_duration_seconds",
			Help:      "Wall time of maze generation.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		SolveTime: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "hedge",
			Name:      "solve_duration_seconds",
			Help:      "Wall time of maze solving, by algorithm.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"algorithm"}),
	}
}
