// Package mfso provides natively multi-fidelity single-objective test
// functions: each function defines its own formula per fidelity tier
// instead of perturbing a true signal (compare package mfb).
//
// Functions:
//
//	CurrinExponential  2-D, [0,1]²            tiers: F1, F2
//	Park               4-D, [0,1]⁴            tiers: F1, F2
//	Borehole           8-D, physical ranges   tiers: F1, F2
//	Hartmann3          3-D, [0,1]³            tiers: 0..m-1 (WithMaxFidelity)
//	Hartmann6          6-D, [0,1]⁶            tiers: 0..m-1 (WithMaxFidelity)
//
// Tier t costs k^t where k is the cost factor (WithCostFactor, default 10),
// so a two-tier function emits costs [1, k] and a Hartmann function with m
// tiers emits [1, k, ..., k^(m-1)]. MaxCost is known without evaluating.
//
// Evaluate is lazy: a tier's formula runs only when its estimate is
// pulled. All functions are immutable after construction and safe for
// concurrent use.
//
// Reference: Kandasamy et al., "Multi-fidelity Gaussian Process Bandit
// Optimisation" (arXiv:1603.06288).
package mfso
