// Package ineq provides weighted inequality statistics over one-dimensional
// distributions of scalar values, such as incomes, exposures, or risk levels.
//
// The package itself holds the shared distribution representation and the
// error taxonomy; the concrete measures live in the kolmpollak, atkinson, and
// gini subpackages. Every operation is a pure function of its inputs: there is
// no shared state, no I/O, and identical inputs always produce identical
// results, so callers may evaluate many distributions concurrently without
// coordination.
package ineq

import (
	"fmt"
	"math"
	"sort"
)

// Distribution pairs an ordered sequence of values with optional
// per-observation weights. Weights stay associated with their value by
// position; an absent weight slice is equivalent to a uniform weight of one
// per observation. A Distribution is immutable after construction and safe
// for concurrent use.
type Distribution struct {
	values  []float64
	weights []float64 // nil when unweighted
}

// NewDistribution validates and normalizes a raw value sequence and optional
// weights into a Distribution. The inputs are copied, so callers may reuse
// their slices afterwards.
//
// Validation enforces, in order:
//   - at least one value;
//   - every value finite (no NaN or ±Inf);
//   - when weights are given: same length as values, every weight finite and
//     non-negative, and at least one weight strictly positive.
//
// Violations return an error wrapping ErrInvalidInput that names the failed
// constraint.
func NewDistribution(values, weights []float64) (*Distribution, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: distribution must contain at least one value", ErrInvalidInput)
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: value at index %d is not finite (%v)", ErrInvalidInput, i, v)
		}
	}

	d := &Distribution{values: append([]float64(nil), values...)}
	if weights == nil {
		return d, nil
	}

	if len(weights) != len(values) {
		return nil, fmt.Errorf("%w: values and weights differ in length (%d != %d)",
			ErrInvalidInput, len(values), len(weights))
	}
	positive := false
	for i, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("%w: weight at index %d is not finite (%v)", ErrInvalidInput, i, w)
		}
		if w < 0 {
			return nil, fmt.Errorf("%w: weight at index %d is negative (%v)", ErrInvalidInput, i, w)
		}
		if w > 0 {
			positive = true
		}
	}
	if !positive {
		return nil, fmt.Errorf("%w: at least one weight must be positive", ErrInvalidInput)
	}
	d.weights = append([]float64(nil), weights...)
	return d, nil
}

// Len returns the number of observations.
func (d *Distribution) Len() int { return len(d.values) }

// Weighted reports whether explicit weights were supplied.
func (d *Distribution) Weighted() bool { return d.weights != nil }

// Value returns the i-th value.
func (d *Distribution) Value(i int) float64 { return d.values[i] }

// Weight returns the weight paired with the i-th value, which is 1 for an
// unweighted distribution.
func (d *Distribution) Weight(i int) float64 {
	if d.weights == nil {
		return 1
	}
	return d.weights[i]
}

// TotalWeight returns the sum of all weights, or N for an unweighted
// distribution. It is always strictly positive for a valid Distribution.
func (d *Distribution) TotalWeight() float64 {
	if d.weights == nil {
		return float64(len(d.values))
	}
	var total float64
	for _, w := range d.weights {
		total += w
	}
	return total
}

// WeightedSum returns Σ wᵢ·f(aᵢ) over the whole distribution. Zero-weight
// observations are skipped without evaluating f: a transform that overflows
// on an ignored value would otherwise turn the term into 0·Inf = NaN.
func (d *Distribution) WeightedSum(f func(float64) float64) float64 {
	var sum float64
	for i, v := range d.values {
		w := d.Weight(i)
		if w == 0 {
			continue
		}
		sum += w * f(v)
	}
	return sum
}

// Sum returns Σ wᵢ·aᵢ.
func (d *Distribution) Sum() float64 {
	var sum float64
	for i, v := range d.values {
		sum += d.Weight(i) * v
	}
	return sum
}

// Mean returns the weighted arithmetic mean Σ wᵢ·aᵢ / Σ wᵢ.
func (d *Distribution) Mean() float64 { return d.Sum() / d.TotalWeight() }

// Centered returns a copy of the distribution with the weighted mean
// subtracted from every value. Weights are shared with the receiver, which is
// safe because distributions are immutable.
func (d *Distribution) Centered() *Distribution {
	mean := d.Mean()
	centered := make([]float64, len(d.values))
	for i, v := range d.values {
		centered[i] = v - mean
	}
	return &Distribution{values: centered, weights: d.weights}
}

// SortedByValue returns a copy of the distribution with the (value, weight)
// pairs stably sorted by value ascending. Tie order does not affect any
// measure in this module since they depend only on cumulative sums.
func (d *Distribution) SortedByValue() *Distribution {
	idx := make([]int, len(d.values))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return d.values[idx[a]] < d.values[idx[b]] })

	sorted := &Distribution{values: make([]float64, len(d.values))}
	if d.weights != nil {
		sorted.weights = make([]float64, len(d.weights))
	}
	for rank, i := range idx {
		sorted.values[rank] = d.values[i]
		if d.weights != nil {
			sorted.weights[rank] = d.weights[i]
		}
	}
	return sorted
}

// Max returns the largest value in the distribution.
func (d *Distribution) Max() float64 {
	max := d.values[0]
	for _, v := range d.values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}
