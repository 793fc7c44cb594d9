// SPDX-License-Identifier: MIT
// Package: mfbench/noise
//
// rng.go — deterministic random streams for stochastic error models.
//
// Goals:
//   • Determinism: same seed ⇒ identical draws.
//   • No hidden sources: callers own every *rand.Rand.
//   • Independent substreams for per-evaluation or per-worker ownership.
//
// Concurrency:
//   • math/rand.Rand is NOT goroutine-safe. Derive one stream per goroutine.

package noise

import "math/rand"

// DefaultSeed is the seed NewRand uses when called with seed == 0.
const DefaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed == 0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// DeriveSeed mixes a parent seed and a stream identifier with a
// SplitMix64 finalizer so that neighbouring streams are uncorrelated.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// DeriveRand creates an independent deterministic stream from base and a
// stream identifier. base.Int63() is consumed once, so deriving twice with
// the same id still yields different children. A nil base uses DefaultSeed
// as the parent.
//
// Complexity: O(1).
func DeriveRand(base *rand.Rand, stream uint64) *rand.Rand {
	parent := DefaultSeed
	if base != nil {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(DeriveSeed(parent, stream)))
}
