package middleware

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/go-ineq/internal/ports"
)

// stubMeasure is a fixed-result measure for middleware tests.
type stubMeasure struct {
	name   string
	result float64
	err    error
}

func (s *stubMeasure) Name() string { return s.name }

func (s *stubMeasure) Compute(ctx context.Context, values, weights []float64) (float64, error) {
	return s.result, s.err
}

func (s *stubMeasure) Validate() error { return nil }

// recordingCollector captures metric calls for assertions.
type recordingCollector struct {
	latencies []string
	counters  map[string]float64
	gauges    map[string]float64
	labels    []map[string]string
}

func newRecordingCollector() *recordingCollector {
	return &recordingCollector{
		counters: make(map[string]float64),
		gauges:   make(map[string]float64),
	}
}

func (rc *recordingCollector) RecordLatency(operation string, _ time.Duration, labels map[string]string) {
	rc.latencies = append(rc.latencies, operation)
	rc.labels = append(rc.labels, labels)
}

func (rc *recordingCollector) RecordCounter(name string, value float64, labels map[string]string) {
	rc.counters[name+"/"+labels["status"]] += value
	rc.labels = append(rc.labels, labels)
}

func (rc *recordingCollector) RecordGauge(name string, value float64, labels map[string]string) {
	rc.gauges[name] = value
}

// TestMetricsMiddleware_Transparency verifies the wrapper returns the
// wrapped measure's results and errors unchanged.
func TestMetricsMiddleware_Transparency(t *testing.T) {
	ctx := context.Background()

	t.Run("successful computation passes through", func(t *testing.T) {
		collector := newRecordingCollector()
		wrapped := InstrumentMeasure(&stubMeasure{name: "gini", result: 0.25}, collector)

		got, err := wrapped.Compute(ctx, []float64{1, 2, 3, 4}, nil)
		require.NoError(t, err)
		assert.Equal(t, 0.25, got)
		assert.Equal(t, "gini", wrapped.Name())
	})

	t.Run("errors pass through", func(t *testing.T) {
		failure := errors.New("boom")
		collector := newRecordingCollector()
		wrapped := InstrumentMeasure(&stubMeasure{name: "gini", err: failure}, collector)

		_, err := wrapped.Compute(ctx, []float64{1}, nil)
		assert.ErrorIs(t, err, failure)
	})

	t.Run("nil collector returns the measure unwrapped", func(t *testing.T) {
		m := &stubMeasure{name: "gini"}
		assert.Same(t, ports.Measure(m), InstrumentMeasure(m, nil))
	})
}

// TestMetricsMiddleware_Recording verifies the counters, latency, and gauge
// emitted per computation.
func TestMetricsMiddleware_Recording(t *testing.T) {
	ctx := context.Background()

	t.Run("success records latency, counter, and result gauge", func(t *testing.T) {
		collector := newRecordingCollector()
		wrapped := InstrumentMeasure(&stubMeasure{name: "gini", result: 0.25}, collector)

		_, err := wrapped.Compute(ctx, []float64{1, 2}, nil)
		require.NoError(t, err)

		assert.Equal(t, []string{"measure_compute"}, collector.latencies)
		assert.Equal(t, 1.0, collector.counters["measure_computations/success"])
		assert.Equal(t, 0.25, collector.gauges["last_result"])
	})

	t.Run("failure records the error counter and no gauge", func(t *testing.T) {
		collector := newRecordingCollector()
		wrapped := InstrumentMeasure(&stubMeasure{name: "gini", err: errors.New("boom")}, collector)

		_, _ = wrapped.Compute(ctx, []float64{1}, nil)

		assert.Equal(t, 1.0, collector.counters["measure_computations/error"])
		assert.Empty(t, collector.gauges)
	})
}

// TestPrometheusMetrics verifies the prometheus-backed collector registers
// and updates its metric families.
func TestPrometheusMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	pm := NewPrometheusMetrics(registry)

	labels := map[string]string{"measure": "gini", "status": "success"}
	pm.RecordCounter("measure_computations", 1, labels)
	pm.RecordCounter("measure_computations", 1, labels)
	pm.RecordLatency("measure_compute", 5*time.Millisecond, labels)
	pm.RecordGauge("last_result", 0.25, labels)

	counter := pm.computeCounter.WithLabelValues("measure_computations", "success", "gini")
	assert.Equal(t, 2.0, testutil.ToFloat64(counter))

	gauge := pm.resultGauges.WithLabelValues("last_result", "gini")
	assert.Equal(t, 0.25, testutil.ToFloat64(gauge))

	t.Run("missing labels fall back to unknown", func(t *testing.T) {
		pm.RecordCounter("measure_computations", 1, nil)
		counter := pm.computeCounter.WithLabelValues("measure_computations", "unknown", "unknown")
		assert.Equal(t, 1.0, testutil.ToFloat64(counter))
	})
}
