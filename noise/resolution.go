// SPDX-License-Identifier: MIT
// Package: mfbench/noise
//
// resolution.go — resolution error: a fidelity-dependent oscillatory bias.
//
// Every variant shares A = θ (·ψ for variant 4), W = 10π·θ, B = 0.5π·θ and
// differs only in θ(φ). θ → 0 as φ → 10000, so the bias vanishes at the
// highest fidelity.

package noise

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/mfbench/fidelity"
)

// ResolutionModel is the capability of a resolution error variant.
type ResolutionModel interface {
	// A is the maximum error at coordinate x.
	A(x float64, phi fidelity.Level) float64
	// W determines the number of local optima.
	W(phi fidelity.Level) float64
	// B shifts the location of the optimum.
	B(phi fidelity.Level) float64
}

// Resolution returns Σ A(x_i,φ)·cos(W(φ)·x_i + B(φ) + π) over xs.
//
// Complexity: O(len(xs)).
func Resolution(m ResolutionModel, xs []float64, phi fidelity.Level) float64 {
	w, b := m.W(phi), m.B(phi)
	terms := make([]float64, len(xs))
	for i, x := range xs {
		terms[i] = m.A(x, phi) * math.Cos(w*x+b+math.Pi)
	}

	return floats.Sum(terms)
}

func linearTheta(phi fidelity.Level) float64 { return 1 - 0.0001*phi }

// Resolution1 decays linearly: θ(φ) = 1 - 0.0001φ.
type Resolution1 struct{}

// Theta returns θ(φ).
func (Resolution1) Theta(phi fidelity.Level) float64 { return linearTheta(phi) }

func (r Resolution1) A(_ float64, phi fidelity.Level) float64 { return r.Theta(phi) }
func (r Resolution1) W(phi fidelity.Level) float64            { return 10 * math.Pi * r.Theta(phi) }
func (r Resolution1) B(phi fidelity.Level) float64            { return 0.5 * math.Pi * r.Theta(phi) }

// Resolution2 decays exponentially: θ(φ) = exp(-0.00025φ).
type Resolution2 struct{}

// Theta returns θ(φ).
func (Resolution2) Theta(phi fidelity.Level) float64 { return math.Exp(-0.00025 * phi) }

func (r Resolution2) A(_ float64, phi fidelity.Level) float64 { return r.Theta(phi) }
func (r Resolution2) W(phi fidelity.Level) float64            { return 10 * math.Pi * r.Theta(phi) }
func (r Resolution2) B(phi fidelity.Level) float64            { return 0.5 * math.Pi * r.Theta(phi) }

// Resolution3 decays along a staircase of ramps and flat steps, reaching 0
// at φ = 9000. The 0.4 step spans [5000,7000), so θ drops from 0.4 to 0.2
// at φ = 7000.
//
//	[0,1000)    1.0 → 0.8      [1000,2000) 0.8
//	[2000,3000) 0.8 → 0.6      [3000,4000) 0.6
//	[4000,5000) 0.6 → 0.4      [5000,7000) 0.4
//	[7000,8000) 0.2
//	[8000,9000) 0.2 → 0.0      [9000,10000) 0.0
//
// It is only defined on 0 <= φ < 10000 and panics with an error wrapping
// fidelity.ErrLevelOutOfRange elsewhere.
type Resolution3 struct{}

// Theta returns θ(φ).
func (Resolution3) Theta(phi fidelity.Level) float64 {
	fidelity.MustLevel(phi)

	switch {
	case phi < 1000:
		return 1.0 - 0.0002*phi
	case phi < 2000:
		return 0.8
	case phi < 3000:
		return 1.2 - 0.0002*phi
	case phi < 4000:
		return 0.6
	case phi < 5000:
		return 1.4 - 0.0002*phi
	case phi < 7000:
		return 0.4
	case phi < 8000:
		return 0.2
	case phi < 9000:
		return 1.8 - 0.0002*phi
	default:
		return 0
	}
}

func (r Resolution3) A(_ float64, phi fidelity.Level) float64 { return r.Theta(phi) }
func (r Resolution3) W(phi fidelity.Level) float64            { return 10 * math.Pi * r.Theta(phi) }
func (r Resolution3) B(phi fidelity.Level) float64            { return 0.5 * math.Pi * r.Theta(phi) }

// Resolution4 decays linearly and scales the amplitude by
// ψ(x) = 1 - |x - Optimum|, so the bias is largest at the known optimum
// coordinate and shrinks away from it.
type Resolution4 struct {
	// Optimum is the per-coordinate location of the global optimum.
	Optimum float64
}

// Theta returns θ(φ).
func (Resolution4) Theta(phi fidelity.Level) float64 { return linearTheta(phi) }

// Psi returns ψ(x) = 1 - |x - Optimum|.
func (r Resolution4) Psi(x float64) float64 { return 1 - math.Abs(x-r.Optimum) }

func (r Resolution4) A(x float64, phi fidelity.Level) float64 { return r.Theta(phi) * r.Psi(x) }
func (r Resolution4) W(phi fidelity.Level) float64            { return 10 * math.Pi * r.Theta(phi) }
func (r Resolution4) B(phi fidelity.Level) float64            { return 0.5 * math.Pi * r.Theta(phi) }
