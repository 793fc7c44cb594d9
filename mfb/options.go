// SPDX-License-Identifier: MIT
// Package: mfbench/mfb
//
// options.go — functional options for New.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors validate and PANIC on meaningless inputs (nil
//     models, nil rng); New itself reports problems as errors.
//   • Determinism is explicit: seeding goes through WithSeed or WithRand.
//
// Defaults (newConfig):
//   • no error models (Evaluate returns the true value at every level)
//   • cost = LinearCost
//   • rng  = nil

package mfb

import (
	"math/rand"

	"github.com/katalvlaran/mfbench/noise"
)

// Option customizes an Objective before validation.
type Option func(*config)

type config struct {
	resolution  noise.ResolutionModel
	stochastic  noise.StochasticModel
	instability noise.InstabilityModel
	cost        CostModel
	rng         *rand.Rand
}

func newConfig(opts ...Option) config {
	cfg := config{cost: LinearCost{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// needsRand reports whether any configured model draws random numbers.
func (c config) needsRand() bool { return c.stochastic != nil || c.instability != nil }

// WithResolution adds a resolution error model. Panics on nil.
func WithResolution(m noise.ResolutionModel) Option {
	if m == nil {
		panic("mfb: WithResolution(nil)")
	}
	return func(c *config) { c.resolution = m }
}

// WithStochastic adds a stochastic error model. Panics on nil.
func WithStochastic(m noise.StochasticModel) Option {
	if m == nil {
		panic("mfb: WithStochastic(nil)")
	}
	return func(c *config) { c.stochastic = m }
}

// WithInstability adds an instability error model. Panics on nil.
func WithInstability(m noise.InstabilityModel) Option {
	if m == nil {
		panic("mfb: WithInstability(nil)")
	}
	return func(c *config) { c.instability = m }
}

// WithCost replaces the default LinearCost. Panics on nil.
func WithCost(m CostModel) Option {
	if m == nil {
		panic("mfb: WithCost(nil)")
	}
	return func(c *config) { c.cost = m }
}

// WithRand supplies the random stream used by Evaluate. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("mfb: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed supplies a fresh deterministic stream (see noise.NewRand).
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = noise.NewRand(seed) }
}
