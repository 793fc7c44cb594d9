package mfso

import (
	"math"

	"github.com/katalvlaran/mfbench/core"
)

// Park is the 4-D Park function on [0,1]⁴:
//
//	f2(x) = x1/2·(√(1 + (x2 + x3²)·x4/x1²) - 1) + (x1 + 3x4)·exp(1 + sin x3)
//	f1(x) = (1 + sin(x1)/10)·f2(x) - 2x1 + x2² + x3² + 0.5
//
// f2 is undefined at x1 = 0 and evaluates to NaN there.
type Park struct {
	twoTier
}

// NewPark returns the Park function. Only WithCostFactor has an effect.
func NewPark(opts ...Option) *Park {
	cfg := newConfig(opts...)
	return &Park{twoTier{
		domain: core.Uniform(4, unitInterval),
		factor: cfg.costFactor,
		f1:     parkF1,
		f2:     parkF2,
	}}
}

// F1 is the low-fidelity formula. Panics on a dimension mismatch.
func (p *Park) F1(xs []float64) float64 { return p.EvaluateTier(xs, 0) }

// F2 is the high-fidelity formula. Panics on a dimension mismatch.
func (p *Park) F2(xs []float64) float64 { return p.EvaluateTier(xs, 1) }

func parkF2(xs []float64) float64 {
	x1, x2, x3, x4 := xs[0], xs[1], xs[2], xs[3]
	a := x1 / 2 * (math.Sqrt(1+(x2+x3*x3)*x4/(x1*x1)) - 1)
	b := (x1 + 3*x4) * math.Exp(1+math.Sin(x3))

	return a + b
}

func parkF1(xs []float64) float64 {
	x1, x2, x3 := xs[0], xs[1], xs[2]
	return (1+math.Sin(x1)/10)*parkF2(xs) - 2*x1 + x2*x2 + x3*x3 + 0.5
}
