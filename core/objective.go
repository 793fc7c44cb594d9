package core

import "fmt"

// Objective is a single-objective test function: it has an input domain and
// maps a point of that domain to one float64.
//
// Evaluate panics (see CheckDimension) when len(xs) differs from the
// domain dimension.
type Objective interface {
	InputDomain() Domain
	Evaluate(xs []float64) float64
}

// Domained is the part of every evaluator that exposes its input domain.
// Both single-objective and multi-fidelity functions satisfy it.
type Domained interface {
	InputDomain() Domain
}

// GlobalOptimumInput is implemented by functions that know the location of
// their global optimum.
type GlobalOptimumInput interface {
	GlobalOptimumInput() []float64
}

// Dimension returns the dimension of f, derived from its domain length.
// A function with an empty domain is malformed; Dimension panics on it.
func Dimension(f Domained) int {
	n := f.InputDomain().Dimension()
	if n == 0 {
		panic(fmt.Errorf("%w: %T has no coordinates", ErrEmptyDomain, f))
	}

	return n
}

// CheckDimension panics with an error wrapping ErrDimensionMismatch when
// len(xs) differs from the dimension of f.
//
// Complexity: O(1).
func CheckDimension(f Domained, xs []float64) {
	if want := Dimension(f); len(xs) != want {
		panic(fmt.Errorf("%w: %T expects %d coordinates, got %d", ErrDimensionMismatch, f, want, len(xs)))
	}
}

// CheckLength panics with an error wrapping ErrDimensionMismatch when
// len(xs) != want. Used by functions whose dimension is fixed by definition.
func CheckLength(xs []float64, want int) {
	if len(xs) != want {
		panic(fmt.Errorf("%w: expected %d coordinates, got %d", ErrDimensionMismatch, want, len(xs)))
	}
}
