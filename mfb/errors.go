// SPDX-License-Identifier: MIT
// Package: mfbench/mfb
//
// errors.go — sentinel errors for the mfb package. Validation failures from
// other packages (fidelity.ErrLevelOutOfRange, noise.ErrNeedRandSource,
// core.ErrDimensionMismatch, fidelity.ErrCostDecreased) are wrapped, not
// re-declared, so errors.Is works against their home sentinels.

package mfb

import (
	"errors"
	"fmt"
)

var (
	// ErrNilObjective indicates New was called without a true objective.
	ErrNilObjective = errors.New("mfb: objective is nil")

	// ErrNoLevels indicates an empty fidelity level list.
	ErrNoLevels = errors.New("mfb: no fidelity levels")

	// ErrLevelsUnordered indicates levels that are not strictly ascending.
	ErrLevelsUnordered = errors.New("mfb: levels must be strictly ascending")

	// ErrInvalidCostModel indicates a cost model that cannot price a level,
	// such as a GeometricCost without a positive Step.
	ErrInvalidCostModel = errors.New("mfb: invalid cost model")
)

const methodNew = "mfb.New"

// mfbErrorf prefixes an error with the method that produced it while
// keeping the wrapped sentinel visible to errors.Is.
func mfbErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}
