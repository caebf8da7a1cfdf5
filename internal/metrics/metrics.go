// Package metrics exposes Prometheus collectors for district inference.
//
// Collectors register with the default registry. geoinfer is a batch tool,
// so instead of serving /metrics it writes the registry to a node_exporter
// textfile once a run completes.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"newsgeo/internal/geo"
)

var (
	InferencesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geoinfer_inferences_total",
			Help: "Stories resolved to a district, by match type and confidence",
		},
		[]string{"match_type", "confidence"},
	)

	UnresolvedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "geoinfer_unresolved_total",
			Help: "Stories no district could be inferred for",
		},
	)

	InvalidRecordsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "geoinfer_invalid_records_total",
			Help: "Input records rejected by validation",
		},
	)

	InferenceDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "geoinfer_inference_duration_seconds",
			Help:    "Time spent inferring the district of one story",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8), // 10us .. ~164ms
		},
	)

	CatalogDistricts = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "geoinfer_catalog_districts",
			Help: "Districts in the loaded catalog",
		},
	)
)

// RecordInference records the outcome and latency of one inference.
// A nil result counts as unresolved.
func RecordInference(res *geo.Result, duration time.Duration) {
	InferenceDuration.Observe(duration.Seconds())

	if res == nil {
		UnresolvedTotal.Inc()
		return
	}

	InferencesTotal.WithLabelValues(res.MatchType.String(), res.Confidence.String()).Inc()
}

// RecordInvalidRecord counts one rejected input record.
func RecordInvalidRecord() {
	InvalidRecordsTotal.Inc()
}

// SetCatalogSize sets the catalog size gauge.
func SetCatalogSize(n int) {
	CatalogDistricts.Set(float64(n))
}

// WriteTextfile writes every registered metric to path in the text format.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("failed to write metrics textfile %s: %w", path, err)
	}

	return nil
}
