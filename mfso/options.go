package mfso

import "fmt"

// Defaults applied by newConfig.
const (
	DefaultCostFactor  uint64 = 10
	DefaultMaxFidelity int    = 4
)

// Option customizes a function at construction time.
type Option func(*config)

type config struct {
	costFactor  uint64
	maxFidelity int
}

func newConfig(opts ...Option) config {
	cfg := config{costFactor: DefaultCostFactor, maxFidelity: DefaultMaxFidelity}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithCostFactor sets k, the ratio between the costs of adjacent tiers.
// Panics with an error wrapping ErrCostFactor when k < 2.
func WithCostFactor(k uint64) Option {
	if k < 2 {
		panic(fmt.Errorf("mfso: WithCostFactor(%d): %w", k, ErrCostFactor))
	}
	return func(c *config) { c.costFactor = k }
}

// WithMaxFidelity sets the number of tiers of a Hartmann function. The
// two-tier functions ignore it. Panics with an error wrapping
// ErrMaxFidelity when m < 1.
func WithMaxFidelity(m int) Option {
	if m < 1 {
		panic(fmt.Errorf("mfso: WithMaxFidelity(%d): %w", m, ErrMaxFidelity))
	}
	return func(c *config) { c.maxFidelity = m }
}
