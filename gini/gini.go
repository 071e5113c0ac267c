// Package gini implements the Gini coefficient for weighted and unweighted
// distributions.
//
// Index is the canonical implementation: a rank-based cumulative-weight
// formula that sorts once and then works entirely on prefix sums, making it
// O(N log N) and numerically stable. LorenzIndex is an alternate formulation
// that integrates the area between the Lorenz curve and the line of perfect
// equality; it is retained for callers that want the curve-based framing, and
// agrees with Index up to floating-point error. Neither function rounds its
// result; rounding is a presentation concern for the caller.
package gini

import (
	"fmt"

	ineq "github.com/ahrav/go-ineq"
)

// Index computes the Gini coefficient of the distribution a with optional
// weights using the cumulative-weight rank formula. With W_k and X_k the
// prefix sums of weights and weight-times-value over the value-sorted pairs:
//
//	Gini = Σ_{k=1}^{n-1} (X_{k+1}·W_k − X_k·W_{k+1}) / (X_n·W_n)
//
// For unweighted non-negative values the result lies in [0,1], where 0 is
// perfect equality. Tie order between equal values does not affect the
// result.
//
// Index returns an error wrapping ineq.ErrDegenerateParameter when the total
// weighted sum is zero (the coefficient is undefined for a flat zero
// distribution), and ineq.ErrDomain when every value is non-positive.
func Index(a []float64, weights []float64) (float64, error) {
	d, err := ineq.NewDistribution(a, weights)
	if err != nil {
		return 0, err
	}
	if err := checkDomain(d); err != nil {
		return 0, err
	}

	s := d.SortedByValue()
	if !s.Weighted() {
		// With unit weights the rank formula simplifies to
		// (n + 1 − 2·ΣX_k/X_n) / n.
		var cum, cumSum float64
		for i := 0; i < s.Len(); i++ {
			cum += s.Value(i)
			cumSum += cum
		}
		n := float64(s.Len())
		return (n + 1 - 2*cumSum/cum) / n, nil
	}

	var cumW, cumX, prevW, prevX, num float64
	for i := 0; i < s.Len(); i++ {
		w := s.Weight(i)
		cumW = prevW + w
		cumX = prevX + w*s.Value(i)
		if i > 0 {
			num += cumX*prevW - prevX*cumW
		}
		prevW, prevX = cumW, cumX
	}
	return num / (cumX * cumW), nil
}

// LorenzIndex computes the Gini coefficient as one minus twice the area
// under the Lorenz curve, with the area taken over the exact polyline through
// the cumulative (population share, value share) points. The error contract
// matches Index.
func LorenzIndex(a []float64, weights []float64) (float64, error) {
	d, err := ineq.NewDistribution(a, weights)
	if err != nil {
		return 0, err
	}
	if err := checkDomain(d); err != nil {
		return 0, err
	}

	s := d.SortedByValue()
	totalW := s.TotalWeight()
	totalX := s.Sum()

	var cumW, cumX, prevP, prevY, area float64
	for i := 0; i < s.Len(); i++ {
		w := s.Weight(i)
		cumW += w
		cumX += w * s.Value(i)
		p := cumW / totalW
		y := cumX / totalX
		area += (p - prevP) * (y + prevY) / 2
		prevP, prevY = p, y
	}
	return 1 - 2*area, nil
}

func checkDomain(d *ineq.Distribution) error {
	if d.Sum() == 0 {
		return fmt.Errorf("%w: gini is undefined when the total weighted sum is zero",
			ineq.ErrDegenerateParameter)
	}
	if d.Max() <= 0 {
		return fmt.Errorf("%w: gini requires at least one positive value", ineq.ErrDomain)
	}
	return nil
}
