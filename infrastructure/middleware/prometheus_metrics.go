// Package middleware provides cross-cutting concerns for measure execution:
// prometheus metrics and OpenTelemetry tracing wrappers that leave the
// wrapped measure's results and errors untouched.
package middleware

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ahrav/go-ineq/internal/ports"
)

var _ ports.MetricsCollector = (*PrometheusMetrics)(nil)

// PrometheusMetrics implements the MetricsCollector interface using
// Prometheus, providing computation counts, latency histograms, and result
// gauges for measure execution.
type PrometheusMetrics struct {
	computeLatency *prometheus.HistogramVec
	computeCounter *prometheus.CounterVec
	resultGauges   *prometheus.GaugeVec
}

// NewPrometheusMetrics creates a PrometheusMetrics instance and registers
// all metrics with the given registerer. A nil registerer falls back to the
// default global registry.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &PrometheusMetrics{
		computeLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "measure_compute_duration_seconds",
				Help:    "Execution time of measure computations.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "measure"},
		),
		computeCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "measure_computations_total",
				Help: "Total number of measure computations by outcome.",
			},
			[]string{"name", "status", "measure"},
		),
		resultGauges: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "measure_state",
				Help: "Most recent values observed per measure.",
			},
			[]string{"metric", "measure"},
		),
	}
}

// RecordLatency implements the MetricsCollector interface by recording a
// computation duration in a Prometheus histogram.
func (pm *PrometheusMetrics) RecordLatency(
	operation string,
	duration time.Duration,
	labels map[string]string,
) {
	pm.computeLatency.WithLabelValues(operation, measureLabel(labels)).Observe(duration.Seconds())
}

// RecordCounter implements the MetricsCollector interface by incrementing a
// Prometheus counter.
func (pm *PrometheusMetrics) RecordCounter(name string, value float64, labels map[string]string) {
	status, ok := labels["status"]
	if !ok {
		status = "unknown"
	}
	pm.computeCounter.WithLabelValues(name, status, measureLabel(labels)).Add(value)
}

// RecordGauge implements the MetricsCollector interface by setting a
// Prometheus gauge.
func (pm *PrometheusMetrics) RecordGauge(name string, value float64, labels map[string]string) {
	pm.resultGauges.WithLabelValues(name, measureLabel(labels)).Set(value)
}

func measureLabel(labels map[string]string) string {
	measure, ok := labels["measure"]
	if !ok {
		return "unknown"
	}
	return measure
}
