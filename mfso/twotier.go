package mfso

import (
	"fmt"

	"github.com/katalvlaran/mfbench/core"
	"github.com/katalvlaran/mfbench/fidelity"
)

// twoTier carries the machinery shared by the functions that come as a
// cheap f1 and an expensive f2.
type twoTier struct {
	domain core.Domain
	factor uint64
	f1, f2 func(xs []float64) float64
}

// InputDomain returns the function's domain.
func (t *twoTier) InputDomain() core.Domain { return t.domain }

// Tiers returns 2.
func (t *twoTier) Tiers() int { return 2 }

// MaxCost returns k, the cost of the high-fidelity tier.
func (t *twoTier) MaxCost() fidelity.Cost { return t.factor }

// Evaluate returns the lazy sequence [(1, f1(xs)), (k, f2(xs))].
// Panics on a dimension mismatch.
func (t *twoTier) Evaluate(xs []float64) *fidelity.Outputs {
	core.CheckDimension(t, xs)
	pt := append([]float64(nil), xs...)

	return fidelity.Tiers(2,
		func(tier fidelity.Tier) fidelity.Cost { return fidelity.Geometric(t.factor, tier) },
		func(tier fidelity.Tier) float64 { return t.at(pt, tier) },
	)
}

// EvaluateTier computes tier 0 (f1) or tier 1 (f2) alone. Panics on a
// dimension mismatch or with ErrTierOutOfRange for any other tier.
func (t *twoTier) EvaluateTier(xs []float64, tier fidelity.Tier) float64 {
	core.CheckDimension(t, xs)
	return t.at(xs, tier)
}

func (t *twoTier) at(xs []float64, tier fidelity.Tier) float64 {
	switch tier {
	case 0:
		return t.f1(xs)
	case 1:
		return t.f2(xs)
	default:
		panic(fmt.Errorf("%w: tier %d of 2", fidelity.ErrTierOutOfRange, tier))
	}
}
