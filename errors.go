package ineq

import (
	"errors"
	"fmt"
)

// Error categories shared by every measure family. Callers classify failures
// with errors.Is against these sentinels; the wrapped message carries the
// specific constraint that was violated.
var (
	// ErrInvalidInput indicates a malformed distribution: empty values,
	// mismatched weight length, negative weights, or non-finite entries.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingParameter indicates that a required aversion parameter
	// (epsilon or kappa) was not supplied.
	ErrMissingParameter = errors.New("missing aversion parameter")

	// ErrInvalidParameter indicates an aversion parameter that cannot be
	// used as given, such as supplying both epsilon and kappa at once.
	ErrInvalidParameter = errors.New("invalid aversion parameter")

	// ErrDegenerateParameter indicates that the distribution or parameter
	// makes a formula's denominator zero: kappa calibration over an
	// all-zero distribution, kappa == 0, or a flat zero Gini total.
	ErrDegenerateParameter = errors.New("degenerate parameter")

	// ErrDomain indicates values outside a formula's required domain,
	// such as non-positive values passed to the Atkinson power mean.
	ErrDomain = errors.New("value outside measure domain")
)

// MeasureError reports a failure from a named measure, preserving which
// operation failed and the underlying category error.
type MeasureError struct {
	// Measure is the name of the measure instance that failed.
	Measure string

	// Op describes the operation being performed, e.g. "compute" or
	// "configure".
	Op string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface for MeasureError.
func (e *MeasureError) Error() string {
	return fmt.Sprintf("measure error: measure=%s, op=%s, err=%v", e.Measure, e.Op, e.Err)
}

// Unwrap returns the underlying error so errors.Is reaches the category
// sentinels above.
func (e *MeasureError) Unwrap() error { return e.Err }

// NewMeasureError creates a MeasureError with the given details.
func NewMeasureError(measure, op string, err error) *MeasureError {
	return &MeasureError{Measure: measure, Op: op, Err: err}
}
