// SPDX-License-Identifier: MIT
// Package: mfbench/mfb
//
// cost.go — cost models mapping a fidelity level to a resource cost.
//
// Every model clamps its result to fidelity.MinCost so that φ = 0 (or any
// level whose raw cost rounds to zero) still yields a valid, non-zero cost.

package mfb

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mfbench/fidelity"
)

// CostModel maps a fidelity level to the cost of one estimate at that level.
// Implementations must be non-decreasing in φ.
type CostModel interface {
	Cost(phi fidelity.Level) fidelity.Cost
}

// CostFunc adapts a plain function to CostModel.
type CostFunc func(phi fidelity.Level) fidelity.Cost

// Cost calls fn(phi).
func (fn CostFunc) Cost(phi fidelity.Level) fidelity.Cost { return fn(phi) }

func atLeastMin(c float64) fidelity.Cost {
	if c < float64(fidelity.MinCost) {
		return fidelity.MinCost
	}

	return fidelity.Cost(c)
}

// LinearCost charges ⌊φ⌋ (at least 1).
type LinearCost struct{}

// Cost returns max(1, ⌊φ⌋).
func (LinearCost) Cost(phi fidelity.Level) fidelity.Cost { return atLeastMin(math.Floor(phi)) }

// NonLinearCost charges ⌊(0.001·φ)^4⌋ (at least 1): cheap for most of the
// dial and steep near the top.
type NonLinearCost struct{}

// Cost returns max(1, ⌊(0.001φ)^4⌋).
func (NonLinearCost) Cost(phi fidelity.Level) fidelity.Cost {
	return atLeastMin(math.Floor(math.Pow(0.001*phi, 4)))
}

// GeometricCost charges Factor^⌊φ/Step⌋, matching the tier costs of the
// native multi-fidelity functions when levels are placed Step apart.
type GeometricCost struct {
	Factor uint64
	Step   fidelity.Level
}

// Cost returns Factor^⌊φ/Step⌋. It panics with an error wrapping
// ErrInvalidCostModel when Step is not positive and with
// fidelity.ErrCostOverflow when the power does not fit in a Cost.
func (g GeometricCost) Cost(phi fidelity.Level) fidelity.Cost {
	if !(g.Step > 0) {
		panic(fmt.Errorf("%w: GeometricCost step %g", ErrInvalidCostModel, g.Step))
	}
	return fidelity.Geometric(g.Factor, fidelity.Tier(math.Floor(phi/g.Step)))
}
