package mfso

import (
	"math"

	"github.com/katalvlaran/mfbench/core"
)

var unitInterval = core.MustInterval(0, 1)

// CurrinExponential is the 2-D Currin exponential function on [0,1]²:
//
//	f2(x) = [1 - exp(-x2/2)] · (2300x1³ + 1900x1² + 2092x1 + 60) / (100x1³ + 500x1² + 4x1 + 20)
//
// and f1 is the average of f2 at the four points (x1±0.05, x2±0.05), with
// the shifted x2 clamped at 0. f2 is 0 along x2 = 0.
type CurrinExponential struct {
	twoTier
}

// NewCurrinExponential returns the Currin function. Only WithCostFactor
// has an effect.
func NewCurrinExponential(opts ...Option) *CurrinExponential {
	cfg := newConfig(opts...)
	return &CurrinExponential{twoTier{
		domain: core.Uniform(2, unitInterval),
		factor: cfg.costFactor,
		f1:     currinF1,
		f2:     currinF2,
	}}
}

// F1 is the low-fidelity formula. Panics on a dimension mismatch.
func (c *CurrinExponential) F1(xs []float64) float64 { return c.EvaluateTier(xs, 0) }

// F2 is the high-fidelity formula. Panics on a dimension mismatch.
func (c *CurrinExponential) F2(xs []float64) float64 { return c.EvaluateTier(xs, 1) }

func currinF2(xs []float64) float64 {
	x1, x2 := xs[0], xs[1]
	a := 1 - math.Exp(-x2/2)
	b := 2300*x1*x1*x1 + 1900*x1*x1 + 2092*x1 + 60
	c := 100*x1*x1*x1 + 500*x1*x1 + 4*x1 + 20

	return a * b / c
}

func currinF1(xs []float64) float64 {
	x1, x2 := xs[0], xs[1]
	up, down := x2+0.05, math.Max(0, x2-0.05)

	return (currinF2([]float64{x1 + 0.05, up}) +
		currinF2([]float64{x1 + 0.05, down}) +
		currinF2([]float64{x1 - 0.05, up}) +
		currinF2([]float64{x1 - 0.05, down})) / 4
}
