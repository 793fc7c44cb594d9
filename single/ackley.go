package single

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mfbench/core"
)

var (
	ackleyInterval   = core.MustInterval(-32, 32)
	ackleyN4Interval = core.MustInterval(-35, 35)
	ackleyPairDomain = core.Domain{ackleyInterval, ackleyInterval}
)

// Ackley is the d-dimensional Ackley function
//
//	f(x) = -a·exp(-b·sqrt(Σx²/d)) - exp(Σcos(c·x)/d) + a + e
//
// with a = 20, b = 0.2, c = 2π.
type Ackley struct {
	domain core.Domain
}

// NewAckley returns an Ackley function of dimension d (d >= 1).
func NewAckley(d int) (*Ackley, error) {
	if d < 1 {
		return nil, fmt.Errorf("Ackley: dimension %d: %w", d, core.ErrEmptyDomain)
	}

	return &Ackley{domain: core.Uniform(d, ackleyInterval)}, nil
}

// InputDomain returns [-32,32]^d.
func (f *Ackley) InputDomain() core.Domain { return f.domain }

// Properties lists the Ackley tags.
func (f *Ackley) Properties() []core.Property {
	return []core.Property{core.Continuous, core.Multimodal, core.Differentiable}
}

// GlobalOptimumInput returns the origin.
func (f *Ackley) GlobalOptimumInput() []float64 { return make([]float64, len(f.domain)) }

// Evaluate computes f(xs).
func (f *Ackley) Evaluate(xs []float64) float64 {
	core.CheckDimension(f, xs)

	const (
		a = 20.0
		b = 0.2
		c = 2 * math.Pi
	)
	n := float64(len(xs))

	var sq, cs float64
	for _, x := range xs {
		sq += x * x
	}
	for _, x := range xs {
		cs += math.Cos(c * x)
	}
	t0 := -b * math.Sqrt(sq/n)
	t1 := cs / n

	return -a*math.Exp(t0) - math.Exp(t1) + a + math.E
}

// AckleyN2 is the 2-D function f(x,y) = -200·exp(-0.2·sqrt(x²+y²)).
type AckleyN2 struct{}

// InputDomain returns [-32,32]^2.
func (AckleyN2) InputDomain() core.Domain { return ackleyPairDomain }

// Properties lists the Ackley N.2 tags.
func (AckleyN2) Properties() []core.Property {
	return []core.Property{core.Convex, core.Differentiable}
}

// GlobalOptimumInput returns (0, 0).
func (AckleyN2) GlobalOptimumInput() []float64 { return []float64{0, 0} }

// Evaluate computes f(xs).
func (f AckleyN2) Evaluate(xs []float64) float64 {
	core.CheckLength(xs, 2)

	return -200 * math.Exp(-0.2*math.Sqrt(xs[0]*xs[0]+xs[1]*xs[1]))
}

// AckleyN3 is AckleyN2 plus 5·exp(cos(3x) + sin(3y)).
type AckleyN3 struct{}

// InputDomain returns [-32,32]^2.
func (AckleyN3) InputDomain() core.Domain { return ackleyPairDomain }

// Properties lists the Ackley N.3 tags.
func (AckleyN3) Properties() []core.Property {
	return []core.Property{core.Continuous, core.Multimodal, core.Differentiable}
}

// Evaluate computes f(xs).
func (f AckleyN3) Evaluate(xs []float64) float64 {
	core.CheckLength(xs, 2)

	return AckleyN2{}.Evaluate(xs) + 5*math.Exp(math.Cos(3*xs[0])+math.Sin(3*xs[1]))
}

// AckleyN4 is the d-dimensional (d >= 2) chained function
//
//	f(x) = Σ_{i<d} exp(-0.2)·sqrt(x_i² + x_{i+1}²) + 3(cos 2x_i + sin 2x_{i+1})
type AckleyN4 struct {
	domain core.Domain
}

// NewAckleyN4 returns an AckleyN4 of dimension d. The chain needs two
// coordinates, so d < 2 is rejected.
func NewAckleyN4(d int) (*AckleyN4, error) {
	if d < 2 {
		return nil, fmt.Errorf("AckleyN4: dimension %d (need >= 2): %w", d, core.ErrEmptyDomain)
	}

	return &AckleyN4{domain: core.Uniform(d, ackleyN4Interval)}, nil
}

// InputDomain returns [-35,35]^d.
func (f *AckleyN4) InputDomain() core.Domain { return f.domain }

// Properties lists the Ackley N.4 tags.
func (f *AckleyN4) Properties() []core.Property {
	return []core.Property{core.Continuous, core.Multimodal, core.Differentiable}
}

// Evaluate computes f(xs).
func (f *AckleyN4) Evaluate(xs []float64) float64 {
	core.CheckDimension(f, xs)

	var sum float64
	for i := 0; i+1 < len(xs); i++ {
		x0, x1 := xs[i], xs[i+1]
		a := math.Sqrt(x0*x0 + x1*x1)
		b := 3 * (math.Cos(2*x0) + math.Sin(2*x1))
		sum += math.Exp(-0.2)*a + b
	}

	return sum
}
