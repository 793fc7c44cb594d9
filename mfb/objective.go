// SPDX-License-Identifier: MIT
// Package: mfbench/mfb
//
// objective.go — the error-injection multi-fidelity objective.

package mfb

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/mfbench/core"
	"github.com/katalvlaran/mfbench/fidelity"
	"github.com/katalvlaran/mfbench/noise"
)

// Objective wraps a true objective with error models and a cost model.
// It is immutable after New; Evaluate shares the configured rng and is
// therefore not safe for concurrent use when stochastic or instability
// models are configured. EvaluateRand is.
type Objective struct {
	f      core.Objective
	levels []fidelity.Level
	cfg    config
}

// New validates the configuration and returns the wrapped objective.
//
// Errors (all wrapped, test with errors.Is):
//   - ErrNilObjective               — f is nil.
//   - ErrNoLevels                   — levels is empty.
//   - fidelity.ErrLevelOutOfRange   — a level outside [0, 10000).
//   - ErrLevelsUnordered            — levels not strictly ascending.
//   - fidelity.ErrCostDecreased     — the cost model decreases over levels.
//   - fidelity.ErrZeroCost          — the cost model prices a level at 0.
//   - ErrInvalidCostModel,
//     fidelity.ErrCostOverflow      — the cost model cannot price a level.
//   - noise.ErrNeedRandSource       — stochastic/instability model without rng.
//   - core.ErrDimensionMismatch     — a model optimum whose length differs from f.
func New(f core.Objective, levels []fidelity.Level, opts ...Option) (*Objective, error) {
	if f == nil {
		return nil, mfbErrorf(methodNew, "%w", ErrNilObjective)
	}
	if len(levels) == 0 {
		return nil, mfbErrorf(methodNew, "%w", ErrNoLevels)
	}
	for i, phi := range levels {
		if err := fidelity.ValidateLevel(phi); err != nil {
			return nil, mfbErrorf(methodNew, "level #%d: %w", i, err)
		}
		if i > 0 && phi <= levels[i-1] {
			return nil, mfbErrorf(methodNew, "level #%d (%g) after %g: %w", i, phi, levels[i-1], ErrLevelsUnordered)
		}
	}

	cfg := newConfig(opts...)
	if cfg.needsRand() && cfg.rng == nil {
		return nil, mfbErrorf(methodNew, "%w", noise.ErrNeedRandSource)
	}
	if err := checkOptimum(cfg.stochastic, core.Dimension(f)); err != nil {
		return nil, mfbErrorf(methodNew, "%w", err)
	}

	if err := checkCosts(cfg.cost, levels); err != nil {
		return nil, mfbErrorf(methodNew, "%w", err)
	}

	return &Objective{
		f:      f,
		levels: append([]fidelity.Level(nil), levels...),
		cfg:    cfg,
	}, nil
}

// checkOptimum verifies optimum-biased stochastic models match dimension d.
func checkOptimum(m noise.StochasticModel, d int) error {
	var optimum []float64
	switch s := m.(type) {
	case noise.Stochastic3:
		optimum = s.Optimum
	case noise.Stochastic4:
		optimum = s.Optimum
	default:
		return nil
	}
	if len(optimum) != d {
		return fmt.Errorf("stochastic optimum has %d coordinates, objective has %d: %w",
			len(optimum), d, core.ErrDimensionMismatch)
	}

	return nil
}

// checkCosts prices every level once so that a cost model that panics,
// returns 0 or decreases is reported by New rather than during Evaluate.
func checkCosts(m CostModel, levels []fidelity.Level) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("%w: %v", ErrInvalidCostModel, r)
		}
	}()

	var prev fidelity.Cost
	for _, phi := range levels {
		c := m.Cost(phi)
		if c == 0 {
			return fmt.Errorf("level %g: %w", phi, fidelity.ErrZeroCost)
		}
		if c < prev {
			return fmt.Errorf("cost %d at level %g after %d: %w", c, phi, prev, fidelity.ErrCostDecreased)
		}
		prev = c
	}

	return nil
}

// InputDomain returns the domain of the wrapped objective.
func (o *Objective) InputDomain() core.Domain { return o.f.InputDomain() }

// Truth returns the wrapped objective.
func (o *Objective) Truth() core.Objective { return o.f }

// Levels returns a copy of the configured fidelity levels.
func (o *Objective) Levels() []fidelity.Level { return append([]fidelity.Level(nil), o.levels...) }

// MaxCost returns the cost of the highest level without evaluating.
func (o *Objective) MaxCost() fidelity.Cost {
	return o.cfg.cost.Cost(o.levels[len(o.levels)-1])
}

// Optimum forwards to the wrapped objective when it knows its global
// optimum; ok is false otherwise.
func (o *Objective) Optimum() (xs []float64, ok bool) {
	g, ok := o.f.(core.GlobalOptimumInput)
	if !ok {
		return nil, false
	}

	return g.GlobalOptimumInput(), true
}

// Evaluate returns one estimate per level, lowest first, drawing noise from
// the configured rng. Panics on a dimension mismatch.
func (o *Objective) Evaluate(xs []float64) *fidelity.Outputs {
	out, err := o.EvaluateRand(xs, o.cfg.rng)
	if err != nil {
		// New guarantees an rng whenever one is needed.
		panic(err)
	}

	return out
}

// EvaluateRand is Evaluate with a caller-owned random stream. rng may be
// nil when no stochastic or instability model is configured.
//
// The true value f(xs) is computed once, on the first pull; every pull
// then adds the error term for its level.
//
// Errors: noise.ErrNeedRandSource when rng is nil but required.
func (o *Objective) EvaluateRand(xs []float64, rng *rand.Rand) (*fidelity.Outputs, error) {
	core.CheckDimension(o, xs)
	if o.cfg.needsRand() && rng == nil {
		return nil, fmt.Errorf("mfb.EvaluateRand: %w", noise.ErrNeedRandSource)
	}
	pt := append([]float64(nil), xs...)

	var (
		truth    float64
		computed bool
	)
	value := func(phi fidelity.Level) float64 {
		if !computed {
			truth, computed = o.f.Evaluate(pt), true
		}
		e, err := o.errorTerm(pt, phi, rng)
		if err != nil {
			panic(err)
		}

		return truth + e
	}

	return fidelity.Levels(o.levels, o.cfg.cost.Cost, value), nil
}

// ErrorTerm returns the injected error alone at level phi, drawing from the
// configured rng. Panics on a dimension mismatch.
func (o *Objective) ErrorTerm(xs []float64, phi fidelity.Level) float64 {
	core.CheckDimension(o, xs)
	e, err := o.errorTerm(xs, phi, o.cfg.rng)
	if err != nil {
		panic(err)
	}

	return e
}

func (o *Objective) errorTerm(xs []float64, phi fidelity.Level, rng *rand.Rand) (float64, error) {
	var sum float64
	if o.cfg.resolution != nil {
		sum += noise.Resolution(o.cfg.resolution, xs, phi)
	}
	if o.cfg.stochastic != nil {
		e, err := noise.Stochastic(o.cfg.stochastic, xs, phi, rng)
		if err != nil {
			return 0, err
		}
		sum += e
	}
	if o.cfg.instability != nil {
		e, err := noise.Instability(o.cfg.instability, xs, phi, rng)
		if err != nil {
			return 0, err
		}
		sum += e
	}

	return sum, nil
}
