package mfso

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mfbench/core"
	"github.com/katalvlaran/mfbench/fidelity"
)

// Per-term weights of the highest tier and their per-tier shift.
var (
	hartmannAlpha = [4]float64{1.0, 1.2, 3.0, 3.2}
	hartmannDelta = [4]float64{0.01, -0.01, -0.1, 0.1}
)

var (
	hartmann3A = mat.NewDense(4, 3, []float64{
		3.0, 10, 30,
		0.1, 10, 35,
		3.0, 10, 30,
		0.1, 10, 35,
	})
	hartmann3P = scaled(1e-4, mat.NewDense(4, 3, []float64{
		3689, 1170, 2673,
		4699, 4387, 7470,
		1091, 8732, 5547,
		381, 5743, 8828,
	}))
	hartmann3Optimum = []float64{0.114614, 0.555649, 0.852547}

	hartmann6A = mat.NewDense(4, 6, []float64{
		10, 3, 17, 3.5, 1.7, 8,
		0.05, 10, 17, 0.1, 8, 14,
		3, 3.5, 1.7, 10, 17, 8,
		17, 8, 0.05, 10, 0.1, 14,
	})
	hartmann6P = scaled(1e-4, mat.NewDense(4, 6, []float64{
		1312, 1696, 5569, 124, 8283, 5886,
		2329, 4135, 8307, 3736, 1004, 9991,
		2348, 1451, 3522, 2883, 3047, 6650,
		4047, 8828, 8732, 5743, 1091, 381,
	}))
	hartmann6Optimum = []float64{0.20169, 0.150011, 0.476874, 0.275332, 0.311652, 0.6573}
)

func scaled(f float64, m *mat.Dense) *mat.Dense {
	m.Scale(f, m)
	return m
}

// hartmann evaluates
//
//	f_t(x) = -Σ_i α'_i(t) · exp(-Σ_j A_ij (x_j - P_ij)²),  α'(t) = α + (m-1-t)·δ
//
// over m tiers. The shared matrices are never written after package
// initialisation.
type hartmann struct {
	domain  core.Domain
	a, p    *mat.Dense
	optimum []float64
	factor  uint64
	m       int
	maxCost fidelity.Cost
}

func newHartmann(name string, a, p *mat.Dense, optimum []float64, cfg config) (hartmann, error) {
	maxCost, err := fidelity.CheckedGeometric(cfg.costFactor, fidelity.Tier(cfg.maxFidelity-1))
	if err != nil {
		return hartmann{}, fmt.Errorf("%s: %d tiers at cost factor %d: %w", name, cfg.maxFidelity, cfg.costFactor, err)
	}
	_, d := a.Dims()

	return hartmann{
		domain:  core.Uniform(d, unitInterval),
		a:       a,
		p:       p,
		optimum: optimum,
		factor:  cfg.costFactor,
		m:       cfg.maxFidelity,
		maxCost: maxCost,
	}, nil
}

// InputDomain returns [0,1]^d.
func (h *hartmann) InputDomain() core.Domain { return h.domain }

// Tiers returns the configured number of tiers m.
func (h *hartmann) Tiers() int { return h.m }

// MaxCost returns k^(m-1) without evaluating.
func (h *hartmann) MaxCost() fidelity.Cost { return h.maxCost }

// GlobalOptimumInput returns the (rounded) minimiser of the highest tier.
func (h *hartmann) GlobalOptimumInput() []float64 { return append([]float64(nil), h.optimum...) }

// Evaluate returns the lazy sequence of m estimates, tier t costing k^t.
// Panics on a dimension mismatch.
func (h *hartmann) Evaluate(xs []float64) *fidelity.Outputs {
	core.CheckDimension(h, xs)
	pt := append([]float64(nil), xs...)

	return fidelity.Tiers(h.m,
		func(t fidelity.Tier) fidelity.Cost { return fidelity.Geometric(h.factor, t) },
		func(t fidelity.Tier) float64 { return h.value(pt, t) },
	)
}

// EvaluateTier computes tier t alone. Panics on a dimension mismatch or
// with ErrTierOutOfRange when t is outside [0, m).
func (h *hartmann) EvaluateTier(xs []float64, t fidelity.Tier) float64 {
	core.CheckDimension(h, xs)
	if t < 0 || int(t) >= h.m {
		panic(fmt.Errorf("%w: tier %d of %d", fidelity.ErrTierOutOfRange, t, h.m))
	}

	return h.value(xs, t)
}

func (h *hartmann) value(xs []float64, t fidelity.Tier) float64 {
	shift := float64(h.m - 1 - int(t))
	sq := make([]float64, len(xs))
	var sum float64
	for i := range hartmannAlpha {
		floats.SubTo(sq, xs, h.p.RawRowView(i))
		floats.Mul(sq, sq)
		alpha := hartmannAlpha[i] + shift*hartmannDelta[i]
		sum -= alpha * math.Exp(-floats.Dot(h.a.RawRowView(i), sq))
	}

	return sum
}

// Hartmann3 is the 3-D Hartmann function on [0,1]³. Its highest tier has
// minimum ≈ -3.86278 at (0.114614, 0.555649, 0.852547).
type Hartmann3 struct {
	hartmann
}

// NewHartmann3 returns a Hartmann3 with WithMaxFidelity tiers (default 4)
// and cost factor WithCostFactor (default 10).
//
// Errors: fidelity.ErrCostOverflow when k^(m-1) does not fit in a Cost.
func NewHartmann3(opts ...Option) (*Hartmann3, error) {
	h, err := newHartmann("Hartmann3", hartmann3A, hartmann3P, hartmann3Optimum, newConfig(opts...))
	if err != nil {
		return nil, err
	}

	return &Hartmann3{h}, nil
}

// Hartmann6 is the 6-D Hartmann function on [0,1]⁶. Its highest tier has
// minimum ≈ -3.32237 at (0.20169, 0.150011, 0.476874, 0.275332, 0.311652, 0.6573).
type Hartmann6 struct {
	hartmann
}

// NewHartmann6 is NewHartmann3 for the 6-D variant.
func NewHartmann6(opts ...Option) (*Hartmann6, error) {
	h, err := newHartmann("Hartmann6", hartmann6A, hartmann6P, hartmann6Optimum, newConfig(opts...))
	if err != nil {
		return nil, err
	}

	return &Hartmann6{h}, nil
}
