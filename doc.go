// Package mfbench is a catalogue of synthetic optimisation test functions
// for benchmarking optimisers that can trade accuracy for cost.
//
// Evaluating a multi-fidelity function does not return one number but a
// lazy, single-pass sequence of (cost, value) estimates, cheapest first.
// A caller pulls as far up the ladder as its budget allows.
//
// Under the hood, everything is organized under these subpackages:
//
//	core/      — Interval, Domain, the single-objective contract, property tags
//	single/    — Ackley family, Adjiman, Modified Rastrigin
//	fidelity/  — Level, Tier, Cost, the lazy Outputs sequence, MaxCost
//	noise/     — resolution, stochastic and instability error models; RNG streams
//	mfb/       — multi-fidelity by error injection over a single objective
//	mfso/      — natively multi-fidelity Currin, Park, Borehole, Hartmann3/6
//	catalog/   — name → constructor registry
//	cmd/mfbench — command-line front end
//
// Quick example:
//
//	h, _ := mfso.NewHartmann3(mfso.WithMaxFidelity(3))
//	for cost, value := range h.Evaluate([]float64{0.1, 0.5, 0.8}).All() {
//		fmt.Println(cost, value) // costs 1, 10, 100
//	}
//
//	go get github.com/katalvlaran/mfbench
package mfbench
