// Package ports defines the interfaces that connect the measure engines to
// the configuration, registry, and observability layers.
// These interfaces enable dependency inversion and make the system testable.
package ports

import (
	"context"
	"time"
)

// Measure is a named, configured inequality statistic. Implementations wrap
// one of the core measure families with a validated configuration and are
// stateless and safe for concurrent use.
type Measure interface {
	// Name returns a unique identifier for this measure instance.
	// The name is used for logging, metrics labels, and configuration.
	Name() string

	// Compute evaluates the statistic over a single distribution. A nil
	// weights slice means every observation has weight one. The context
	// allows cancellation when the measure runs inside a batch evaluation;
	// the computation itself never blocks.
	//
	// Compute either returns a finite scalar or a typed error from the
	// ineq error taxonomy. It never returns NaN or ±Inf.
	Compute(ctx context.Context, values, weights []float64) (float64, error)

	// Validate checks that the measure is properly configured and ready
	// for use. It is typically called during suite construction.
	Validate() error
}

// MeasureFactory creates a measure instance from its name and a flexible
// configuration map, typically decoded from yaml.
type MeasureFactory func(name string, config map[string]any) (Measure, error)

// MeasureRegistry manages the mapping from measure type identifiers to
// factories, allowing suites to be built from configuration.
type MeasureRegistry interface {
	// Register associates a factory with a measure type identifier.
	// Registering an already-registered type is an error.
	Register(measureType string, factory MeasureFactory) error

	// Create instantiates a measure of the given type.
	Create(measureType, name string, config map[string]any) (Measure, error)

	// List returns the registered measure type identifiers.
	List() []string
}

// MetricsCollector abstracts the metrics backend used by the middleware
// layer, keeping the prometheus dependency out of measure implementations.
type MetricsCollector interface {
	// RecordLatency records the duration of a computation.
	RecordLatency(operation string, duration time.Duration, labels map[string]string)

	// RecordCounter increments a named counter.
	RecordCounter(name string, value float64, labels map[string]string)

	// RecordGauge sets a named gauge.
	RecordGauge(name string, value float64, labels map[string]string)
}
