package fidelity

import (
	"fmt"

	"github.com/katalvlaran/mfbench/core"
)

// Objective is a multi-fidelity objective: evaluating a point of its input
// domain returns the lazy (cost, value) sequence from lowest to highest
// fidelity. Evaluate panics when len(xs) differs from the domain dimension.
type Objective interface {
	InputDomain() core.Domain
	Evaluate(xs []float64) *Outputs
}

// CostBounder is implemented by objectives that know their maximum cost
// without evaluating anything.
type CostBounder interface {
	MaxCost() Cost
}

// MaxCost returns the cost of the most expensive estimate f produces.
//
// Fast path: f implements CostBounder. Fallback: one evaluation at the
// domain's minimum corner is drained and its last cost returned; this runs
// every fidelity of f. The fallback relies on costs being non-decreasing,
// which Outputs enforces while draining.
//
// Panics with ErrNoOutputs if the fallback evaluation is empty.
func MaxCost(f Objective) Cost {
	if b, ok := f.(CostBounder); ok {
		return b.MaxCost()
	}
	last, ok := f.Evaluate(f.InputDomain().MinCorner()).Last()
	if !ok {
		panic(fmt.Errorf("%w: %T", ErrNoOutputs, f))
	}

	return last.Cost
}

// Highest drains one evaluation of f at xs and returns the highest-fidelity
// value. It panics with ErrNoOutputs on an empty evaluation.
func Highest(f Objective, xs []float64) float64 {
	last, ok := f.Evaluate(xs).Last()
	if !ok {
		panic(fmt.Errorf("%w: %T", ErrNoOutputs, f))
	}

	return last.Value
}
