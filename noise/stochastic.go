// SPDX-License-Identifier: MIT
// Package: mfbench/noise
//
// stochastic.go — stochastic error: one Normal(μ, σ) draw per call.
//
// σ(φ) = 0.1·θ(φ) for every variant. Variants 3 and 4 bias the mean by
// γ(xs) = Σ 1 - |x_i - xo_i|, the aggregate proximity to the optimum xo.

package noise

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/mfbench/core"
	"github.com/katalvlaran/mfbench/fidelity"
)

// StochasticModel is the capability of a stochastic error variant.
type StochasticModel interface {
	Mu(xs []float64, phi fidelity.Level) float64
	Sigma(phi fidelity.Level) float64
}

// Stochastic draws one sample from Normal(m.Mu(xs,φ), m.Sigma(φ)) using rng.
// Exactly one uniform variate is consumed per successful call (inverse-CDF
// sampling), so a seeded rng replays the same error sequence.
//
// Errors: ErrNeedRandSource when rng is nil.
func Stochastic(m StochasticModel, xs []float64, phi fidelity.Level, rng *rand.Rand) (float64, error) {
	if rng == nil {
		return 0, fmt.Errorf("Stochastic(%T): %w", m, ErrNeedRandSource)
	}
	dist := distuv.Normal{Mu: m.Mu(xs, phi), Sigma: m.Sigma(phi)}

	return dist.Quantile(openUnit(rng)), nil
}

// openUnit returns a uniform variate in (0, 1); Quantile(0) would be -Inf.
func openUnit(rng *rand.Rand) float64 {
	u := rng.Float64()
	for u == 0 {
		u = rng.Float64()
	}

	return u
}

func expTheta(phi fidelity.Level) float64 { return math.Exp(-0.0005 * phi) }

// Stochastic1: μ = 0, σ = 0.1·(1 - 0.0001φ).
type Stochastic1 struct{}

func (Stochastic1) Mu([]float64, fidelity.Level) float64 { return 0 }
func (Stochastic1) Sigma(phi fidelity.Level) float64     { return 0.1 * linearTheta(phi) }

// Stochastic2: μ = 0, σ = 0.1·exp(-0.0005φ).
type Stochastic2 struct{}

func (Stochastic2) Mu([]float64, fidelity.Level) float64 { return 0 }
func (Stochastic2) Sigma(phi fidelity.Level) float64     { return 0.1 * expTheta(phi) }

// Gamma returns Σ 1 - |x_i - optimum_i| = d - ‖xs - optimum‖₁.
// It panics with core.ErrDimensionMismatch when the lengths differ.
func Gamma(xs, optimum []float64) float64 {
	core.CheckLength(xs, len(optimum))

	return float64(len(xs)) - floats.Distance(xs, optimum, 1)
}

// Stochastic3: linear θ, μ = 0.1·θ/d·γ(xs).
type Stochastic3 struct {
	// Optimum is the location of the global optimum; its length must match
	// the dimension of the points evaluated.
	Optimum []float64
}

func (s Stochastic3) Mu(xs []float64, phi fidelity.Level) float64 {
	return 0.1 * linearTheta(phi) / float64(len(xs)) * Gamma(xs, s.Optimum)
}
func (Stochastic3) Sigma(phi fidelity.Level) float64 { return 0.1 * linearTheta(phi) }

// Stochastic4: exponential θ, μ = 0.1·θ/d·γ(xs).
type Stochastic4 struct {
	Optimum []float64
}

func (s Stochastic4) Mu(xs []float64, phi fidelity.Level) float64 {
	return 0.1 * expTheta(phi) / float64(len(xs)) * Gamma(xs, s.Optimum)
}
func (Stochastic4) Sigma(phi fidelity.Level) float64 { return 0.1 * expTheta(phi) }
