// SPDX-License-Identifier: MIT
// Package: mfbench/noise
//
// Package noise provides the error models that turn a cheap "true" signal
// into a family of lower-fidelity approximations.
//
// Three independent families, each an interface with one type per variant:
//
//	Resolution  — deterministic oscillatory bias
//	              Σ A(x_i,φ)·cos(W(φ)·x_i + B(φ) + π)
//	              Resolution1 (linear θ), Resolution2 (exponential θ),
//	              Resolution3 (staircase θ, only for 0 <= φ < 10000),
//	              Resolution4 (linear θ, amplitude shrinks near a known optimum).
//
//	Stochastic  — one Normal(μ(xs,φ), σ(φ)) draw per call
//	              Stochastic1/2 (μ = 0; linear / exponential σ),
//	              Stochastic3/4 (μ biased by proximity to a known optimum).
//
//	Instability — with probability P(φ) a lump penalty L(xs) = 10·d, else 0
//	              Instability1 (linear P), Instability2 (exponential P).
//
// Randomness is explicit. Stochastic and Instability take a *rand.Rand and
// return ErrNeedRandSource when it is nil; nothing falls back to a global or
// time-seeded source. NewRand and DeriveRand give reproducible streams.
//
// Concurrency:
//
//	The models themselves are immutable and safe to share. A *rand.Rand is
//	not: give each goroutine its own stream (DeriveRand).
//
// Reference:
//
//	Wang, Jin, Doherty, "A generic test suite for evolutionary multifidelity
//	optimization", IEEE TEVC 2018.
package noise
