// Package solver implements the scalar root finding used by mesh grading.
//
// Grading resolution needs the root of a single 1-D function (the simulated
// cell cascade), so the package deliberately exposes just Newton's method
// with a numeric derivative. Functions may return NaN to signal that a
// trial point is not evaluable; the solver reports that as non-convergence
// rather than panicking or looping.
package solver

import (
	"errors"
	"math"
)

// ErrNoConvergence is returned by [Newton] when no root is found within the
// iteration budget, when the derivative vanishes, or when the target
// function stops being evaluable (NaN/Inf).
var ErrNoConvergence = errors.New("root finder did not converge")

const (
	// maxIterations bounds the Newton iteration. Well-behaved grading
	// cascades converge in well under ten steps from the uniform seed.
	maxIterations = 100

	// tolerance is the absolute residual below which a root is accepted.
	tolerance = 1e-10

	// derivativeStep is the half-width of the central difference used to
	// estimate f'.
	derivativeStep = 1e-7
)

// Newton finds a root of f near the initial guess x0 using Newton's method
// with a central-difference derivative estimate. It returns the root, or
// ErrNoConvergence if the iteration diverges, hits a flat spot, or runs out
// of its iteration budget.
func Newton(f func(float64) float64, x0 float64) (float64, error) {
	x := x0

	for i := 0; i < maxIterations; i++ {
		fx := f(x)
		if math.IsNaN(fx) || math.IsInf(fx, 0) {
			return 0, ErrNoConvergence
		}
		if math.Abs(fx) < tolerance {
			return x, nil
		}

		d := (f(x+derivativeStep) - f(x-derivativeStep)) / (2 * derivativeStep)
		if math.IsNaN(d) || math.IsInf(d, 0) || d == 0 {
			return 0, ErrNoConvergence
		}

		next := x - fx/d
		if math.IsNaN(next) || math.IsInf(next, 0) {
			return 0, ErrNoConvergence
		}
		x = next
	}

	return 0, ErrNoConvergence
}
