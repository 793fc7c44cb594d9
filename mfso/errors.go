package mfso

import "errors"

var (
	// ErrCostFactor indicates a cost factor below 2.
	ErrCostFactor = errors.New("mfso: cost factor must be >= 2")

	// ErrMaxFidelity indicates a tier count below 1.
	ErrMaxFidelity = errors.New("mfso: max fidelity must be >= 1")
)
