package search

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SeedsScanned counts every seed index a scan has resolved a GameState
	// for, across every scan this process has run.
	SeedsScanned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "seedscan_seeds_scanned_total",
		Help: "Total number of seed indices scanned",
	})

	// MatchesFound counts seeds whose draws satisfied a scan's criteria.
	MatchesFound = promauto.NewCounter(prometheus.CounterOpts{
		Name: "seedscan_matches_found_total",
		Help: "Total number of seeds matching a scan's criteria",
	})

	// ScanDuration tracks wall-clock time for a complete Scan call.
	ScanDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "seedscan_scan_duration_seconds",
		Help:    "Time to complete a full seed-range scan",
		Buckets: prometheus.DefBuckets,
	})

	// WorkersActive reports how many scan workers are currently running.
	WorkersActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "seedscan_workers_active",
		Help: "Number of scan worker goroutines currently running",
	})

	// ScanErrors counts failures in persisting or publishing a match, by
	// the component that failed and the kind of failure.
	ScanErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "seedscan_errors_total",
		Help: "Total number of scan-pipeline errors",
	}, []string{"component", "error_type"})
)

// RecordError records a scan-pipeline error metric.
func RecordError(component, errorType string) {
	ScanErrors.WithLabelValues(component, errorType).Inc()
}
