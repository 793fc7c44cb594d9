// SPDX-License-Identifier: MIT
// Package: mfbench/noise
//
// errors.go — sentinel errors for the noise package.
//
// Callers branch with errors.Is; implementations attach context with %w.

package noise

import "errors"

// ErrNeedRandSource indicates a stochastic or instability draw was requested
// without a *rand.Rand.
var ErrNeedRandSource = errors.New("noise: rng is required")

// ErrUnknownVariant indicates a variant number that the family does not define.
var ErrUnknownVariant = errors.New("noise: unknown variant")
