package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fxcalc"

// Metrics owns the collectors of the calculator and the registry they live in.
type Metrics struct {
	registry *prometheus.Registry

	// Conversions counts conversion calls by relation kind and outcome.
	Conversions *prometheus.CounterVec
	// ConversionDuration observes conversion latency in seconds.
	ConversionDuration prometheus.Histogram
	// Resolutions counts pair explanations by relation kind and outcome.
	Resolutions *prometheus.CounterVec
}

// New creates the collectors on a fresh registry together with the Go runtime
// and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conversions_total",
			Help:      "Number of currency conversions by relation and outcome.",
		}, []string{"relation", "outcome"}),
		ConversionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "conversion_duration_seconds",
			Help:      "Time spent converting an amount.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
		}),
		Resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pair_resolutions_total",
			Help:      "Number of pair explanations by relation and outcome.",
		}, []string{"relation", "outcome"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.Conversions,
		m.ConversionDuration,
		m.Resolutions,
	)
	return m
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
