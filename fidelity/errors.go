package fidelity

import "errors"

// Sentinel errors for the multi-fidelity protocol. Contract violations are
// raised as panics carrying an error that wraps one of these.
var (
	// ErrLevelOutOfRange indicates a fidelity level outside [0, MaxLevel) or NaN.
	ErrLevelOutOfRange = errors.New("fidelity: level out of range")

	// ErrTierOutOfRange indicates a tier index outside [0, n).
	ErrTierOutOfRange = errors.New("fidelity: tier out of range")

	// ErrZeroCost indicates a producer emitted an output with cost 0.
	ErrZeroCost = errors.New("fidelity: zero cost")

	// ErrCostDecreased indicates a producer emitted a cost lower than the previous one.
	ErrCostDecreased = errors.New("fidelity: cost decreased")

	// ErrNoOutputs indicates an evaluation produced no outputs at all.
	ErrNoOutputs = errors.New("fidelity: evaluation produced no outputs")

	// ErrCostOverflow indicates a geometric cost schedule exceeded uint64.
	ErrCostOverflow = errors.New("fidelity: cost overflows uint64")
)
