// SPDX-License-Identifier: MIT
package learnpath

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for kanjipath_queries_total.
const (
	OutcomeFound       = "found"
	OutcomeNotFound    = "not_found"
	OutcomeUnreachable = "unreachable"
	OutcomeCorrupted   = "corrupted"
	OutcomeError       = "error"
)

// Metrics collects query metrics for the learning-path service.
//
// Metrics exposed (all namespaced with "kanjipath_"):
//
//   - queries_total (counter): queries by outcome.
//   - query_duration_seconds (histogram): FindPath latency.
//   - stale_entries_total (counter): heap entries discarded as superseded.
//   - relaxations_total (counter): successful distance improvements.
//
// Use a dedicated registry in tests and expose it with promhttp in servers.
type Metrics struct {
	queries     *prometheus.CounterVec
	duration    prometheus.Histogram
	stale       prometheus.Counter
	relaxations prometheus.Counter
}

// NewMetrics creates and registers the collectors on reg
// (prometheus.DefaultRegisterer when nil).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		queries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "kanjipath",
			Name:      "queries_total",
			Help:      "Learning-path queries by outcome",
		}, []string{"outcome"}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "kanjipath",
			Name:      "query_duration_seconds",
			Help:      "FindPath latency in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8), // 100µs to ~1.6s
		}),
		stale: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "kanjipath",
			Name:      "stale_entries_total",
			Help:      "Priority-queue entries discarded as superseded",
		}),
		relaxations: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "kanjipath",
			Name:      "relaxations_total",
			Help:      "Successful edge relaxations",
		}),
	}
}

func (m *Metrics) observe(outcome string, elapsed time.Duration, stale, relaxations int) {
	if m == nil {
		return
	}
	m.queries.WithLabelValues(outcome).Inc()
	m.duration.Observe(elapsed.Seconds())
	m.stale.Add(float64(stale))
	m.relaxations.Add(float64(relaxations))
}
