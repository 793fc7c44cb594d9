// SPDX-License-Identifier: MIT
// Package: mfbench/mfb
//
// Package mfb builds multi-fidelity benchmarks by error injection: a cheap
// "true" objective is wrapped with resolution, stochastic and instability
// error models, and evaluating a point yields one (cost, value) estimate per
// configured fidelity level.
//
//	value(φ) = f(xs) + Resolution(xs, φ) + Stochastic(xs, φ) + Instability(xs, φ)
//	cost(φ)  = CostModel.Cost(φ)
//
// Levels live on the continuous dial [0, 10000) (fidelity.Level) and must
// be strictly ascending; the cost model must be non-decreasing over them.
// Both are checked by New, so Evaluate never produces an out-of-order
// sequence.
//
// Determinism:
//
//	Stochastic and instability models need a *rand.Rand, supplied with
//	WithRand or WithSeed. New fails with noise.ErrNeedRandSource if one is
//	missing. Evaluate draws from that stream (not goroutine-safe);
//	EvaluateRand draws from a caller-owned stream instead.
//
// Example:
//
//	f, _ := single.NewModifiedRastrigin(2)
//	obj, err := mfb.New(f, []fidelity.Level{0, 5000, 9999},
//		mfb.WithResolution(noise.Resolution1{}),
//		mfb.WithStochastic(noise.Stochastic1{}),
//		mfb.WithSeed(42),
//	)
//	for cost, value := range obj.Evaluate([]float64{0.1, -0.3}).All() {
//		fmt.Println(cost, value)
//	}
package mfb
