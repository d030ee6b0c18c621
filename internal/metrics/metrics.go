package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tea_http_requests_total",
			Help: "Total HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tea_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// Blend configurator
	BlendCompatibilityChecks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tea_blend_compatibility_checks_total",
			Help: "Flavor compatibility checks by outcome and result",
		},
		[]string{"outcome", "result"},
	)

	BlendSelectionsScored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tea_blend_selections_scored_total",
			Help: "Blend selections scored by outcome and dominant axis",
		},
		[]string{"outcome", "dominant_axis"},
	)

	InvalidReferences = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tea_blend_invalid_references_total",
			Help: "Requests rejected because an id did not belong to the outcome",
		},
		[]string{"outcome", "kind"},
	)

	// Graph mirror
	GraphSyncDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tea_graph_sync_duration_seconds",
			Help:    "Duration of catalog graph mirror syncs",
			Buckets: []float64{.1, .5, 1, 5, 10, 30, 60},
		},
	)

	GraphSyncErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tea_graph_sync_errors_total",
			Help: "Failed catalog graph mirror syncs",
		},
	)
)

// RecordHTTPRequest records one served request
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordCompatibilityCheck records a flavor compatibility check
func RecordCompatibilityCheck(outcomeID string, conflict bool) {
	result := "ok"
	if conflict {
		result = "conflict"
	}
	BlendCompatibilityChecks.WithLabelValues(outcomeID, result).Inc()
}

// RecordSelectionScored records a scored blend selection
func RecordSelectionScored(outcomeID, dominantAxis string) {
	BlendSelectionsScored.WithLabelValues(outcomeID, dominantAxis).Inc()
}

// RecordInvalidReference records a rejected component id
func RecordInvalidReference(outcomeID, kind string) {
	InvalidReferences.WithLabelValues(outcomeID, kind).Inc()
}

// RecordGraphSync records the outcome of a graph mirror sync
func RecordGraphSync(duration time.Duration, err error) {
	GraphSyncDuration.Observe(duration.Seconds())
	if err != nil {
		GraphSyncErrors.Inc()
	}
}
