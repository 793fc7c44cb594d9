package catalog

import (
	"fmt"

	"github.com/katalvlaran/mfbench/fidelity"
)

// Defaults for zero-valued Config fields.
const (
	DefaultDim    = 2
	DefaultLevels = 5
)

// Config selects the parameters of a catalogued objective.
//
// Native functions read CostFactor and MaxFidelity (Hartmann only).
// Injected functions read Dim, Levels, Seed and the three variant numbers,
// where 0 disables a model. Seed 0 follows the noise.NewRand policy.
type Config struct {
	Dim         int
	CostFactor  uint64
	MaxFidelity int
	Seed        int64
	Levels      []fidelity.Level
	Resolution  int
	Stochastic  int
	Instability int
}

func (c Config) dim() int {
	if c.Dim == 0 {
		return DefaultDim
	}
	return c.Dim
}

// levels returns the configured levels or DefaultLevels tiers spread
// evenly over the dial.
func (c Config) levels() []fidelity.Level {
	if len(c.Levels) > 0 {
		return c.Levels
	}
	ls := make([]fidelity.Level, DefaultLevels)
	for i := range ls {
		ls[i] = fidelity.Tier(i).Level(DefaultLevels)
	}

	return ls
}

func (c Config) validate() error {
	if c.Dim < 0 {
		return fmt.Errorf("%w: dim %d", ErrInvalidConfig, c.Dim)
	}
	if c.CostFactor == 1 {
		return fmt.Errorf("%w: cost factor 1", ErrInvalidConfig)
	}
	if c.MaxFidelity < 0 {
		return fmt.Errorf("%w: max fidelity %d", ErrInvalidConfig, c.MaxFidelity)
	}

	return nil
}
