// Package metrics defines the Prometheus collectors resrank exposes on
// /metrics when the MCP server runs over HTTP.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Ranking Prometheus metrics.
var (
	RankingsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "resrank",
			Name:      "rankings_total",
			Help:      "Total number of ranking requests",
		},
		[]string{"status"}, // "ok" / "empty" / "error"
	)

	RankingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "resrank",
			Name:      "ranking_duration_seconds",
			Help:      "Ranking duration in seconds, extraction included",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	ExtractionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "resrank",
			Name:      "extractions_total",
			Help:      "Total number of document extractions",
		},
		[]string{"format", "result"}, // result: "ok" / "empty" / "degraded" / "error"
	)

	ExtractionCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "resrank",
			Name:      "extraction_cache_total",
			Help:      "Extraction cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)
)

func init() {
	prometheus.MustRegister(RankingsTotal)
	prometheus.MustRegister(RankingDuration)
	prometheus.MustRegister(ExtractionsTotal)
	prometheus.MustRegister(ExtractionCacheTotal)
}
