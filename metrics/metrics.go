package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Interaction outcomes
const (
	OutcomeCreated   = "created"
	OutcomeDuplicate = "duplicate"
	OutcomeFailed    = "failed"
)

var (
	interactionsRecordedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interactions_recorded_total",
			Help: "Total number of click and view requests by outcome",
		},
		[]string{"type", "outcome"},
	)

	counterUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interaction_counter_updates_total",
			Help: "Total number of denormalized counter deltas by outcome (applied, failed, dropped)",
		},
		[]string{"outcome"},
	)

	counterQueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "interaction_counter_queue_depth",
			Help: "Number of counter deltas waiting in the updater buffer",
		},
	)

	dedupFallbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "interaction_dedup_fallbacks_total",
			Help: "Total number of Redis dedup claim failures that fell back to the store check",
		},
	)

	reportDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "report_duration_seconds",
			Help:    "Report computation duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
		[]string{"report"},
	)

	dashboardSectionFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_section_failures_total",
			Help: "Total number of optional dashboard sections that failed",
		},
		[]string{"section"},
	)
)

// RecordInteraction records the outcome of a click or view request
func RecordInteraction(interactionType, outcome string) {
	interactionsRecordedTotal.WithLabelValues(interactionType, outcome).Inc()
}

// RecordCounterUpdates records n counter deltas with the given outcome
func RecordCounterUpdates(outcome string, n int) {
	counterUpdatesTotal.WithLabelValues(outcome).Add(float64(n))
}

func SetCounterQueueDepth(n int) {
	counterQueueDepth.Set(float64(n))
}

// RecordDedupFallback records a Redis claim failure
func RecordDedupFallback() {
	dedupFallbacksTotal.Inc()
}

// ObserveReport records how long a report took
func ObserveReport(report string, started time.Time) {
	reportDuration.WithLabelValues(report).Observe(time.Since(started).Seconds())
}

func RecordDashboardSectionFailure(section string) {
	dashboardSectionFailuresTotal.WithLabelValues(section).Inc()
}

// Handler returns the Prometheus metrics handler
func Handler() http.Handler {
	return promhttp.Handler()
}
