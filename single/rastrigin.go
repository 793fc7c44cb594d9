package single

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mfbench/core"
)

var rastriginInterval = core.MustInterval(-1, 1)

// ModifiedRastrigin is the low-amplitude Rastrigin variant used as the
// "true" signal by the multi-fidelity error-injection benchmarks:
//
//	f(x) = Σ x_i² + 1 - cos(10π·x_i)
//
// on [-1,1]^d. Its minimum is 0 at the origin.
type ModifiedRastrigin struct {
	domain core.Domain
}

// NewModifiedRastrigin returns a ModifiedRastrigin of dimension d (d >= 1).
func NewModifiedRastrigin(d int) (*ModifiedRastrigin, error) {
	if d < 1 {
		return nil, fmt.Errorf("ModifiedRastrigin: dimension %d: %w", d, core.ErrEmptyDomain)
	}

	return &ModifiedRastrigin{domain: core.Uniform(d, rastriginInterval)}, nil
}

// InputDomain returns [-1,1]^d.
func (f *ModifiedRastrigin) InputDomain() core.Domain { return f.domain }

// Properties lists the Rastrigin tags.
func (f *ModifiedRastrigin) Properties() []core.Property {
	return []core.Property{core.Continuous, core.Multimodal, core.Differentiable, core.Separable}
}

// GlobalOptimumInput returns the origin.
func (f *ModifiedRastrigin) GlobalOptimumInput() []float64 { return make([]float64, len(f.domain)) }

// Evaluate computes f(xs).
func (f *ModifiedRastrigin) Evaluate(xs []float64) float64 {
	core.CheckDimension(f, xs)

	var sum float64
	for _, x := range xs {
		sum += x*x + 1 - math.Cos(10*math.Pi*x)
	}

	return sum
}
