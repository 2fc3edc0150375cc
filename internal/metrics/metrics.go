// Package metrics provides Prometheus metrics for the fantasy tracker.
// Scrape these at /metrics for Grafana dashboards and alerting.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hoopdeck_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hoopdeck_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// Analytics metrics
	ComputationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hoopdeck_computation_duration_seconds",
			Help:    "Time taken by analytics computations",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"operation"},
	)

	MemoHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hoopdeck_memo_hits_total",
			Help: "Analytics memo cache hits",
		},
	)

	MemoMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hoopdeck_memo_misses_total",
			Help: "Analytics memo cache misses",
		},
	)

	TradesAnalyzedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hoopdeck_trades_analyzed_total",
			Help: "Total number of trade proposals analyzed",
		},
	)

	// Stats provider metrics
	ProviderRequestsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hoopdeck_provider_requests_total",
			Help: "Total number of stats provider API requests made",
		},
	)

	ProviderQuotaRemaining = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "hoopdeck_provider_quota_remaining",
			Help: "Remaining stats provider requests for today",
		},
	)

	StatLinesSyncedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hoopdeck_stat_lines_synced_total",
			Help: "Total number of player stat lines upserted from the provider",
		},
	)

	// Snapshot metrics
	SnapshotsRecordedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hoopdeck_snapshots_recorded_total",
			Help: "Total number of player value snapshots recorded",
		},
	)

	SnapshotLastRunTimestamp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "hoopdeck_snapshot_last_run_timestamp_seconds",
			Help: "Unix timestamp of the last successful snapshot run",
		},
	)
)
