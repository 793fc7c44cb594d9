package single

import (
	"math"

	"github.com/katalvlaran/mfbench/core"
)

var adjimanDomain = core.Domain{core.MustInterval(-1, 2), core.MustInterval(-1, 1)}

// Adjiman is the 2-D function f(x,y) = cos(x)·sin(y) - x/(y²+1).
type Adjiman struct{}

// InputDomain returns [-1,2]×[-1,1].
func (Adjiman) InputDomain() core.Domain { return adjimanDomain }

// Properties lists the Adjiman tags.
func (Adjiman) Properties() []core.Property {
	return []core.Property{core.Continuous, core.Multimodal, core.Differentiable}
}

// GlobalOptimumInput returns (2, 0.10578).
func (Adjiman) GlobalOptimumInput() []float64 { return []float64{2, 0.10578} }

// Evaluate computes f(xs).
func (Adjiman) Evaluate(xs []float64) float64 {
	core.CheckLength(xs, 2)

	return math.Cos(xs[0])*math.Sin(xs[1]) - xs[0]/(xs[1]*xs[1]+1)
}
