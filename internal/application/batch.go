package application

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ahrav/go-ineq/internal/ports"
)

// Sample is one independent distribution within a batch. A nil Weights
// slice means every observation has weight one.
type Sample struct {
	Values  []float64
	Weights []float64
}

// BatchEvaluator evaluates a fixed measure suite over many independent
// distributions concurrently. Every computation is pure, so samples are
// fanned out across goroutines with no coordination beyond the result
// slots, which are disjoint per sample.
type BatchEvaluator struct {
	measures    []ports.Measure
	concurrency int
}

// NewBatchEvaluator creates a BatchEvaluator over the given measures.
// A concurrency of zero or less defaults to the number of CPUs.
func NewBatchEvaluator(measures []ports.Measure, concurrency int) (*BatchEvaluator, error) {
	if len(measures) == 0 {
		return nil, fmt.Errorf("at least one measure is required")
	}
	for _, m := range measures {
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("measure %q failed validation: %w", m.Name(), err)
		}
	}
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}
	return &BatchEvaluator{measures: measures, concurrency: concurrency}, nil
}

// Evaluate computes every measure for every sample. results[i][j] is the
// value of measure j for sample i, in the evaluator's measure order.
// The first failing computation cancels the remaining work and is returned
// wrapped with the sample index and measure name.
func (e *BatchEvaluator) Evaluate(ctx context.Context, samples []Sample) ([][]float64, error) {
	results := make([][]float64, len(samples))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)
	for i, sample := range samples {
		i, sample := i, sample
		g.Go(func() error {
			row := make([]float64, len(e.measures))
			for j, m := range e.measures {
				value, err := m.Compute(ctx, sample.Values, sample.Weights)
				if err != nil {
					return fmt.Errorf("sample %d, measure %q: %w", i, m.Name(), err)
				}
				row[j] = value
			}
			results[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Measures returns the evaluator's measures in evaluation order.
func (e *BatchEvaluator) Measures() []ports.Measure { return e.measures }
