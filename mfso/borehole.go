package mfso

import (
	"math"

	"github.com/katalvlaran/mfbench/core"
)

// boreholeDomain orders the inputs as
// (r_w, r, T_u, H_u, T_l, H_l, L, K_w).
var boreholeDomain = core.Domain{
	core.MustInterval(0.05, 0.15),
	core.MustInterval(100, 50000),
	core.MustInterval(63070, 115600),
	core.MustInterval(990, 1110),
	core.MustInterval(63.1, 116),
	core.MustInterval(700, 820),
	core.MustInterval(1120, 1680),
	core.MustInterval(9855, 12045),
}

// Borehole models water flow through a borehole (8-D):
//
//	f2 = 2π·Tu·(Hu - Hl) / (ln(r/rw)·(1 + 2·L·Tu/(ln(r/rw)·rw²·Kw) + Tu/Tl))
//	f1 =  5·Tu·(Hu - Hl) / (ln(r/rw)·(1.5 + 2·L·Tu/(ln(r/rw)·rw²·Kw) + Tu/Tl))
type Borehole struct {
	twoTier
}

// NewBorehole returns the Borehole function. Only WithCostFactor has an
// effect.
func NewBorehole(opts ...Option) *Borehole {
	cfg := newConfig(opts...)
	return &Borehole{twoTier{
		domain: append(core.Domain(nil), boreholeDomain...),
		factor: cfg.costFactor,
		f1:     func(xs []float64) float64 { return borehole(xs, 5, 1.5) },
		f2:     func(xs []float64) float64 { return borehole(xs, 2*math.Pi, 1) },
	}}
}

// F1 is the low-fidelity formula. Panics on a dimension mismatch.
func (b *Borehole) F1(xs []float64) float64 { return b.EvaluateTier(xs, 0) }

// F2 is the high-fidelity formula. Panics on a dimension mismatch.
func (b *Borehole) F2(xs []float64) float64 { return b.EvaluateTier(xs, 1) }

// borehole is the shared formula; the tiers differ in the numerator
// constant and the leading term of the denominator.
func borehole(xs []float64, num, lead float64) float64 {
	rw, r, tu, hu, tl, hl, l, kw := xs[0], xs[1], xs[2], xs[3], xs[4], xs[5], xs[6], xs[7]
	lr := math.Log(r / rw)

	return num * tu * (hu - hl) / (lr * (lead + 2*l*tu/(lr*rw*rw*kw) + tu/tl))
}
