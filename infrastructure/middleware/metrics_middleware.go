package middleware

import (
	"context"
	"time"

	"github.com/ahrav/go-ineq/internal/ports"
)

var _ ports.Measure = (*MetricsMiddleware)(nil)

// MetricsMiddleware wraps a Measure and reports computation counts, error
// counts, latency, and the last observed result through a MetricsCollector.
// It is transparent: results and errors from the wrapped measure are
// returned unchanged.
type MetricsMiddleware struct {
	next    ports.Measure
	metrics ports.MetricsCollector
}

// InstrumentMeasure wraps the given measure with metrics collection.
// A nil collector returns the measure unwrapped.
func InstrumentMeasure(next ports.Measure, metrics ports.MetricsCollector) ports.Measure {
	if metrics == nil {
		return next
	}
	return &MetricsMiddleware{next: next, metrics: metrics}
}

// Name returns the wrapped measure's identifier.
func (mm *MetricsMiddleware) Name() string { return mm.next.Name() }

// Compute delegates to the wrapped measure and records the outcome.
func (mm *MetricsMiddleware) Compute(ctx context.Context, values, weights []float64) (float64, error) {
	start := time.Now()
	result, err := mm.next.Compute(ctx, values, weights)
	elapsed := time.Since(start)

	labels := map[string]string{"measure": mm.next.Name()}
	mm.metrics.RecordLatency("measure_compute", elapsed, labels)

	status := "success"
	if err != nil {
		status = "error"
	}
	counterLabels := map[string]string{"measure": mm.next.Name(), "status": status}
	mm.metrics.RecordCounter("measure_computations", 1, counterLabels)

	if err == nil {
		mm.metrics.RecordGauge("last_result", result, labels)
	}
	return result, err
}

// Validate delegates to the wrapped measure.
func (mm *MetricsMiddleware) Validate() error { return mm.next.Validate() }
