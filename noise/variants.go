// SPDX-License-Identifier: MIT
// Package: mfbench/noise
//
// variants.go — numbered lookup of error variants for configuration layers
// (flags, catalogue entries) that select a model by number.

package noise

import "fmt"

// ResolutionVariant returns resolution variant n (1..4). optimum is the
// per-coordinate optimum used by variant 4 and ignored otherwise.
func ResolutionVariant(n int, optimum float64) (ResolutionModel, error) {
	switch n {
	case 1:
		return Resolution1{}, nil
	case 2:
		return Resolution2{}, nil
	case 3:
		return Resolution3{}, nil
	case 4:
		return Resolution4{Optimum: optimum}, nil
	}

	return nil, fmt.Errorf("resolution %d: %w", n, ErrUnknownVariant)
}

// StochasticVariant returns stochastic variant n (1..4). optimum is copied
// and used by variants 3 and 4.
func StochasticVariant(n int, optimum []float64) (StochasticModel, error) {
	switch n {
	case 1:
		return Stochastic1{}, nil
	case 2:
		return Stochastic2{}, nil
	case 3:
		return Stochastic3{Optimum: append([]float64(nil), optimum...)}, nil
	case 4:
		return Stochastic4{Optimum: append([]float64(nil), optimum...)}, nil
	}

	return nil, fmt.Errorf("stochastic %d: %w", n, ErrUnknownVariant)
}

// InstabilityVariant returns instability variant n (1..2).
func InstabilityVariant(n int) (InstabilityModel, error) {
	switch n {
	case 1:
		return Instability1{}, nil
	case 2:
		return Instability2{}, nil
	}

	return nil, fmt.Errorf("instability %d: %w", n, ErrUnknownVariant)
}
