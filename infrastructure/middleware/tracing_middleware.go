package middleware

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ahrav/go-ineq/internal/ports"
)

var _ ports.Measure = (*TracingMiddleware)(nil)

// TracingMiddleware wraps a Measure in an OpenTelemetry span per
// computation, recording the measure name, distribution shape, and result as
// span attributes, and setting error status on failure.
type TracingMiddleware struct {
	next   ports.Measure
	tracer trace.Tracer
}

// TraceMeasure wraps the given measure with OpenTelemetry tracing using the
// globally registered tracer provider.
func TraceMeasure(next ports.Measure) ports.Measure {
	return &TracingMiddleware{
		next:   next,
		tracer: otel.Tracer("go-ineq/measures"),
	}
}

// Name returns the wrapped measure's identifier.
func (tm *TracingMiddleware) Name() string { return tm.next.Name() }

// Compute delegates to the wrapped measure inside a span.
func (tm *TracingMiddleware) Compute(ctx context.Context, values, weights []float64) (float64, error) {
	ctx, span := tm.tracer.Start(ctx, "Measure.Compute", trace.WithAttributes(
		attribute.String("measure.name", tm.next.Name()),
		attribute.Int("distribution.size", len(values)),
		attribute.Bool("distribution.weighted", weights != nil),
	))
	defer span.End()

	result, err := tm.next.Compute(ctx, values, weights)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return result, err
	}

	span.SetAttributes(attribute.Float64("measure.result", result))
	span.SetStatus(codes.Ok, "")
	return result, nil
}

// Validate delegates to the wrapped measure.
func (tm *TracingMiddleware) Validate() error { return tm.next.Validate() }
