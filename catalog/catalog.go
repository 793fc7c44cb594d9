package catalog

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/mfbench/core"
	"github.com/katalvlaran/mfbench/fidelity"
	"github.com/katalvlaran/mfbench/mfb"
	"github.com/katalvlaran/mfbench/mfso"
	"github.com/katalvlaran/mfbench/noise"
	"github.com/katalvlaran/mfbench/single"
)

// Entry is one registered objective.
type Entry struct {
	Name        string
	Description string
	build       func(Config) (fidelity.Objective, error)
}

// Build validates cfg and constructs the objective.
//
// Errors: ErrInvalidConfig, noise.ErrUnknownVariant, or whatever the
// underlying constructor reports (wrapped).
func (e Entry) Build(cfg Config) (fidelity.Objective, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", e.Name, err)
	}
	f, err := e.build(cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", e.Name, err)
	}

	return f, nil
}

var registry = map[string]Entry{}

func register(name, description string, build func(Config) (fidelity.Objective, error)) {
	registry[name] = Entry{Name: name, Description: description, build: build}
}

func init() {
	register("currin", "Currin exponential, 2-D, two tiers", func(c Config) (fidelity.Objective, error) {
		return mfso.NewCurrinExponential(nativeOptions(c)...), nil
	})
	register("park", "Park, 4-D, two tiers", func(c Config) (fidelity.Objective, error) {
		return mfso.NewPark(nativeOptions(c)...), nil
	})
	register("borehole", "Borehole water flow, 8-D, two tiers", func(c Config) (fidelity.Objective, error) {
		return mfso.NewBorehole(nativeOptions(c)...), nil
	})
	register("hartmann3", "Hartmann, 3-D, MaxFidelity tiers", func(c Config) (fidelity.Objective, error) {
		h, err := mfso.NewHartmann3(nativeOptions(c)...)
		if err != nil {
			return nil, err
		}
		return h, nil
	})
	register("hartmann6", "Hartmann, 6-D, MaxFidelity tiers", func(c Config) (fidelity.Objective, error) {
		h, err := mfso.NewHartmann6(nativeOptions(c)...)
		if err != nil {
			return nil, err
		}
		return h, nil
	})
	register("mfb-rastrigin", "modified Rastrigin with injected error, Dim-D", func(c Config) (fidelity.Objective, error) {
		f, err := single.NewModifiedRastrigin(c.dim())
		if err != nil {
			return nil, err
		}
		return injected(f, c)
	})
	register("mfb-ackley", "Ackley with injected error, Dim-D", func(c Config) (fidelity.Objective, error) {
		f, err := single.NewAckley(c.dim())
		if err != nil {
			return nil, err
		}
		return injected(f, c)
	})
}

// Names returns the registered names in lexical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Lookup returns the entry registered under name.
func Lookup(name string) (Entry, bool) {
	e, ok := registry[name]
	return e, ok
}

// Build is Lookup followed by Entry.Build.
//
// Errors: ErrUnknownFunction for an unregistered name.
func Build(name string, cfg Config) (fidelity.Objective, error) {
	e, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFunction, name)
	}

	return e.Build(cfg)
}

func nativeOptions(c Config) []mfso.Option {
	var opts []mfso.Option
	if c.CostFactor != 0 {
		opts = append(opts, mfso.WithCostFactor(c.CostFactor))
	}
	if c.MaxFidelity != 0 {
		opts = append(opts, mfso.WithMaxFidelity(c.MaxFidelity))
	}

	return opts
}

// optimised is a true objective with a known global optimum, which the
// optimum-biased error variants need.
type optimised interface {
	core.Objective
	core.GlobalOptimumInput
}

// injected wraps f with the configured error models.
func injected(f optimised, c Config) (fidelity.Objective, error) {
	optimum := f.GlobalOptimumInput()

	opts := []mfb.Option{mfb.WithSeed(c.Seed)}
	if c.Resolution != 0 {
		m, err := noise.ResolutionVariant(c.Resolution, optimum[0])
		if err != nil {
			return nil, err
		}
		opts = append(opts, mfb.WithResolution(m))
	}
	if c.Stochastic != 0 {
		m, err := noise.StochasticVariant(c.Stochastic, optimum)
		if err != nil {
			return nil, err
		}
		opts = append(opts, mfb.WithStochastic(m))
	}
	if c.Instability != 0 {
		m, err := noise.InstabilityVariant(c.Instability)
		if err != nil {
			return nil, err
		}
		opts = append(opts, mfb.WithInstability(m))
	}

	o, err := mfb.New(f, c.levels(), opts...)
	if err != nil {
		return nil, err
	}

	return o, nil
}
