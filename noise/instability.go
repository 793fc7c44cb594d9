// SPDX-License-Identifier: MIT
// Package: mfbench/noise
//
// instability.go — instability error: rare lump penalties emulating a
// failed low-fidelity simulation.

package noise

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/mfbench/fidelity"
)

// InstabilityModel is the capability of an instability error variant.
type InstabilityModel interface {
	// P is the probability of a failure at level φ.
	P(phi fidelity.Level) float64
	// L is the penalty added on failure.
	L(xs []float64) float64
}

// Instability draws r uniformly from [0, 1) and returns m.L(xs) when
// r <= m.P(φ), otherwise 0. One variate is consumed per successful call.
//
// Errors: ErrNeedRandSource when rng is nil.
func Instability(m InstabilityModel, xs []float64, phi fidelity.Level, rng *rand.Rand) (float64, error) {
	if rng == nil {
		return 0, fmt.Errorf("Instability(%T): %w", m, ErrNeedRandSource)
	}
	if rng.Float64() <= m.P(phi) {
		return m.L(xs), nil
	}

	return 0, nil
}

func lumpPenalty(xs []float64) float64 { return float64(10 * len(xs)) }

// Instability1: P = 0.1·(1 - 0.0001φ), L = 10·d.
type Instability1 struct{}

func (Instability1) P(phi fidelity.Level) float64 { return 0.1 * linearTheta(phi) }
func (Instability1) L(xs []float64) float64       { return lumpPenalty(xs) }

// Instability2: P = exp(-0.001φ - 0.1), L = 10·d.
type Instability2 struct{}

func (Instability2) P(phi fidelity.Level) float64 { return math.Exp(-0.001*phi - 0.1) }
func (Instability2) L(xs []float64) float64       { return lumpPenalty(xs) }
