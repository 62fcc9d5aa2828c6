package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the report run.
type Metrics struct {
	ObservationsParsed  prometheus.Counter
	MissingObservations prometheus.Counter
	ValuesImputed       prometheus.Counter
	ImputeFallbacks     prometheus.Counter
	SummariesExported   prometheus.Counter
	RunDuration         prometheus.Histogram
}

// NewMetrics creates and registers all run metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.ObservationsParsed,
		m.MissingObservations,
		m.ValuesImputed,
		m.ImputeFallbacks,
		m.SummariesExported,
		m.RunDuration,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		ObservationsParsed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "step_report",
			Name:      "observations_parsed_total",
			Help:      "Total observations parsed from the source CSV.",
		}),
		MissingObservations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "step_report",
			Name:      "missing_observations_total",
			Help:      "Observations with no recorded step count in the raw data.",
		}),
		ValuesImputed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "step_report",
			Name:      "values_imputed_total",
			Help:      "Missing values substituted with their interval mean.",
		}),
		ImputeFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "step_report",
			Name:      "impute_fallbacks_total",
			Help:      "Missing values substituted with the global mean because their interval had no samples.",
		}),
		SummariesExported: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "step_report",
			Name:      "summaries_exported_total",
			Help:      "Daily summary messages published to the export topic.",
		}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "step_report",
			Name:      "run_duration_seconds",
			Help:      "Duration of a complete fetch-analyze-render run.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
	}
}
