// Package kolmpollak implements the Kolm-Pollak equally-distributed
// equivalent and inequality index.
//
// The Kolm-Pollak family is suitable for distributions of both desirable
// quantities (income, where more is better) and undesirable quantities
// (health risk, where less is better). Orientation is carried by the sign of
// the aversion parameter: a positive epsilon or kappa means the quantity is
// desirable, a negative one means it is undesirable.
//
// Callers supply exactly one of the two aversion conventions. Epsilon is the
// Atkinson-convention parameter and is calibrated into kappa against the
// distribution's own scale by a least-squares fit; kappa is the native
// Kolm-Pollak parameter and is used as given.
package kolmpollak

import (
	"fmt"
	"math"

	ineq "github.com/ahrav/go-ineq"
)

// Aversion carries the inequality aversion parameter for the Kolm-Pollak
// formulas under exactly one of the two supported conventions. The zero value
// carries neither and is rejected by every operation; construct one with
// Epsilon or Kappa.
type Aversion struct {
	epsilon *float64
	kappa   *float64
}

// Epsilon returns an Aversion under the Atkinson convention. The value is
// converted to kappa against the target distribution with CalcKappa before
// use. epsilon > 0 preserves "more is better" semantics.
func Epsilon(epsilon float64) Aversion { return Aversion{epsilon: &epsilon} }

// Kappa returns an Aversion under the native Kolm-Pollak convention. The
// value is used directly; kappa > 0 preserves "more is better" semantics.
func Kappa(kappa float64) Aversion { return Aversion{kappa: &kappa} }

// resolve reduces the aversion to a concrete kappa for the given
// distribution, calibrating epsilon when necessary.
func (av Aversion) resolve(d *ineq.Distribution) (float64, error) {
	switch {
	case av.epsilon == nil && av.kappa == nil:
		return 0, fmt.Errorf("%w: either an epsilon or kappa aversion parameter is required",
			ineq.ErrMissingParameter)
	case av.epsilon != nil && av.kappa != nil:
		return 0, fmt.Errorf("%w: epsilon and kappa are mutually exclusive",
			ineq.ErrInvalidParameter)
	case av.kappa != nil:
		return *av.kappa, nil
	default:
		return calcKappa(d, *av.epsilon)
	}
}

// CalcKappa converts the Atkinson-convention aversion parameter epsilon into
// the Kolm-Pollak kappa for the given distribution:
//
//	kappa = epsilon · Σ wᵢ·aᵢ / Σ wᵢ·aᵢ²
//
// The fit minimizes the sum of squared deviations between the two
// conventions at the distribution's own scale, so the sign of epsilon is
// preserved in kappa. A nil weights slice means unweighted.
//
// CalcKappa returns an error wrapping ineq.ErrInvalidParameter when
// Σ wᵢ·aᵢ² is zero (every weighted value is zero), since the calibration is
// then undefined.
func CalcKappa(a []float64, epsilon float64, weights []float64) (float64, error) {
	d, err := ineq.NewDistribution(a, weights)
	if err != nil {
		return 0, err
	}
	return calcKappa(d, epsilon)
}

func calcKappa(d *ineq.Distribution, epsilon float64) (float64, error) {
	sqSum := d.WeightedSum(func(x float64) float64 { return x * x })
	if sqSum == 0 {
		return 0, fmt.Errorf("%w: cannot calibrate kappa over an all-zero distribution",
			ineq.ErrInvalidParameter)
	}
	return epsilon * d.Sum() / sqSum, nil
}

// EDE computes the Kolm-Pollak equally-distributed equivalent
//
//	EDE = −(1/κ) · ln( Σ wᵢ·e^(−κ·aᵢ) / Σ wᵢ )
//
// for the distribution a with optional weights. The exponential sum is
// evaluated in log-sum-exp form so the result stays finite for inputs where
// κ·aᵢ is large enough to overflow or underflow a naive e^(−κ·aᵢ).
//
// EDE returns an error wrapping ineq.ErrMissingParameter when av carries no
// parameter, ineq.ErrInvalidParameter when it carries both, and
// ineq.ErrDegenerateParameter when the resolved kappa is zero. Callers that
// want the kappa→0 limit should use the arithmetic mean directly, since that
// is the limiting value.
func EDE(a []float64, av Aversion, weights []float64) (float64, error) {
	d, err := ineq.NewDistribution(a, weights)
	if err != nil {
		return 0, err
	}
	return ede(d, av)
}

// Index computes the Kolm-Pollak inequality index: the EDE of the
// mean-centered distribution, expressed in the same units as a. The index is
// the welfare loss of the actual distribution relative to its mean, so a
// distribution with zero variance has index zero.
//
// When av carries epsilon, kappa is calibrated against the original
// distribution before centering; the centered distribution always has a zero
// weighted sum, which would force the calibrated kappa to zero and make the
// formula meaningless.
func Index(a []float64, av Aversion, weights []float64) (float64, error) {
	d, err := ineq.NewDistribution(a, weights)
	if err != nil {
		return 0, err
	}
	kappa, err := av.resolve(d)
	if err != nil {
		return 0, err
	}
	return ede(d.Centered(), Kappa(kappa))
}

func ede(d *ineq.Distribution, av Aversion) (float64, error) {
	kappa, err := av.resolve(d)
	if err != nil {
		return 0, err
	}
	if kappa == 0 {
		return 0, fmt.Errorf("%w: kappa must be non-zero (the kappa=0 limit is the arithmetic mean)",
			ineq.ErrDegenerateParameter)
	}

	// Log-sum-exp: shift every exponent by the maximum so the largest term
	// is e^0, then restore the shift in log space. Zero-weight observations
	// are ignored when picking the shift; they contribute nothing to the sum
	// and must not be allowed to underflow every term that does.
	shift := math.Inf(-1)
	for i := 0; i < d.Len(); i++ {
		if d.Weight(i) == 0 {
			continue
		}
		if e := -kappa * d.Value(i); e > shift {
			shift = e
		}
	}
	var sum float64
	for i := 0; i < d.Len(); i++ {
		w := d.Weight(i)
		if w == 0 {
			// Skipped outright: the shifted exponent of an ignored
			// observation may still overflow, and 0·Inf is NaN.
			continue
		}
		sum += w * math.Exp(-kappa*d.Value(i)-shift)
	}
	return -(shift + math.Log(sum) - math.Log(d.TotalWeight())) / kappa, nil
}
