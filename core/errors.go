package core

import "errors"

// Sentinel errors for core contracts.
var (
	// ErrDimensionMismatch indicates a point whose length differs from the
	// domain dimension, or two vectors that must share a length but do not.
	ErrDimensionMismatch = errors.New("core: dimension mismatch")

	// ErrEmptyDomain indicates a requested dimension that is too small for
	// the function (zero, or below the function's own minimum).
	ErrEmptyDomain = errors.New("core: empty input domain")

	// ErrInvalidInterval indicates an interval literal with min > max or NaN bounds.
	ErrInvalidInterval = errors.New("core: invalid interval")
)
