// Package atkinson implements the Atkinson equally-distributed equivalent
// and inequality index.
//
// The Atkinson family applies only to distributions of desirable quantities,
// where having more of the quantity is better, and requires every value to be
// strictly positive: the power mean raises values to a negative exponent,
// which is undefined for values at or below zero.
//
// Two index orientations are exposed. Index follows the standard Atkinson
// convention, 1 − EDE/mean, which grows toward one as inequality rises.
// AdjustedIndex is the inverted orientation used for undesirable-quantity
// analyses, EDE/mean − 1, and by convention takes its aversion parameter
// under the name beta. The two EDE formulas are identical; only the index
// normalization differs.
package atkinson

import (
	"fmt"
	"math"

	ineq "github.com/ahrav/go-ineq"
)

// EDE computes the Atkinson equally-distributed equivalent
//
//	EDE = ( Σ wᵢ·aᵢ^(1−ε) / Σ wᵢ )^(1/(1−ε))
//
// for the distribution a with optional weights. For epsilon == 1 the power
// formula degenerates (exponent 1/0), and the EDE is the weighted geometric
// mean of a instead, which is the analytic limit.
//
// EDE returns an error wrapping ineq.ErrDomain when any value is zero or
// negative.
func EDE(a []float64, epsilon float64, weights []float64) (float64, error) {
	d, err := ineq.NewDistribution(a, weights)
	if err != nil {
		return 0, err
	}
	return ede(d, epsilon)
}

// Index computes the Atkinson inequality index
//
//	Index = 1 − EDE / mean(a)
//
// using the weighted mean when weights are given. The index is zero for a
// distribution with no inequality and approaches one as inequality grows.
func Index(a []float64, epsilon float64, weights []float64) (float64, error) {
	d, err := ineq.NewDistribution(a, weights)
	if err != nil {
		return 0, err
	}
	e, err := ede(d, epsilon)
	if err != nil {
		return 0, err
	}
	return 1 - e/d.Mean(), nil
}

// AdjustedEDE computes the equally-distributed equivalent under the adjusted
// (beta) convention. The formula is the same power mean as EDE; the separate
// name exists because call sites disambiguate the orientation convention by
// which operation they invoke.
func AdjustedEDE(a []float64, beta float64, weights []float64) (float64, error) {
	return EDE(a, beta, weights)
}

// AdjustedIndex computes the inverted-orientation Atkinson index
//
//	Index = EDE / mean(a) − 1
//
// used when the distribution measures an undesirable quantity.
func AdjustedIndex(a []float64, beta float64, weights []float64) (float64, error) {
	d, err := ineq.NewDistribution(a, weights)
	if err != nil {
		return 0, err
	}
	e, err := ede(d, beta)
	if err != nil {
		return 0, err
	}
	return e/d.Mean() - 1, nil
}

func ede(d *ineq.Distribution, epsilon float64) (float64, error) {
	for i := 0; i < d.Len(); i++ {
		if d.Value(i) <= 0 {
			return 0, fmt.Errorf("%w: atkinson requires strictly positive values, got %v at index %d",
				ineq.ErrDomain, d.Value(i), i)
		}
	}

	total := d.TotalWeight()
	if epsilon == 1 {
		// Weighted geometric mean, the epsilon→1 limit of the power mean.
		logSum := d.WeightedSum(math.Log)
		return math.Exp(logSum / total), nil
	}

	sum := d.WeightedSum(func(x float64) float64 { return math.Pow(x, 1-epsilon) })
	return math.Pow(sum/total, 1/(1-epsilon)), nil
}
