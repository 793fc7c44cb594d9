package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/mfbench/catalog"
	"github.com/katalvlaran/mfbench/fidelity"
)

// objectiveFlags select and configure a catalogued function.
func objectiveFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "func",
			Aliases:  []string{"f"},
			Usage:    "Function name (see `mfbench list`)",
			EnvVars:  []string{"MFBENCH_FUNC"},
			Required: true,
		},
		&cli.IntFlag{
			Name:    "dim",
			Usage:   "Dimension of error-injected functions (0 = default)",
			EnvVars: []string{"MFBENCH_DIM"},
		},
		&cli.Uint64Flag{
			Name:    "cost-factor",
			Usage:   "Cost ratio between adjacent native tiers (0 = default)",
			EnvVars: []string{"MFBENCH_COST_FACTOR"},
		},
		&cli.IntFlag{
			Name:    "max-fidelity",
			Usage:   "Number of Hartmann tiers (0 = default)",
			EnvVars: []string{"MFBENCH_MAX_FIDELITY"},
		},
		&cli.Int64Flag{
			Name:    "seed",
			Usage:   "Seed for stochastic and instability errors",
			EnvVars: []string{"MFBENCH_SEED"},
		},
		&cli.StringFlag{
			Name:    "levels",
			Usage:   "Comma-separated fidelity levels in [0, 10000) for error-injected functions",
			EnvVars: []string{"MFBENCH_LEVELS"},
		},
		&cli.IntFlag{Name: "resolution", Usage: "Resolution error variant 1-4 (0 = off)"},
		&cli.IntFlag{Name: "stochastic", Usage: "Stochastic error variant 1-4 (0 = off)"},
		&cli.IntFlag{Name: "instability", Usage: "Instability error variant 1-2 (0 = off)"},
	}
}

// buildObjective resolves the objective flags into a catalogued function.
func buildObjective(c *cli.Context) (fidelity.Objective, error) {
	levels, err := parseFloats(c.String("levels"))
	if err != nil {
		return nil, fmt.Errorf("invalid --levels: %w", err)
	}
	cfg := catalog.Config{
		Dim:         c.Int("dim"),
		CostFactor:  c.Uint64("cost-factor"),
		MaxFidelity: c.Int("max-fidelity"),
		Seed:        c.Int64("seed"),
		Levels:      levels,
		Resolution:  c.Int("resolution"),
		Stochastic:  c.Int("stochastic"),
		Instability: c.Int("instability"),
	}
	name := c.String("func")
	f, err := catalog.Build(name, cfg)
	if err != nil {
		return nil, err
	}
	log.Info().Str("func", name).Stringer("domain", f.InputDomain()).Msg("Built function")

	return f, nil
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List the available functions",
		Action: func(c *cli.Context) error {
			return renderList(c.App.Writer)
		},
	}
}

func evalCommand() *cli.Command {
	return &cli.Command{
		Name:  "eval",
		Usage: "Evaluate a function at a point, cheapest fidelity first",
		Flags: append(objectiveFlags(),
			&cli.StringFlag{
				Name:     "x",
				Usage:    "Comma-separated input point",
				Required: true,
			},
			&cli.Uint64Flag{
				Name:    "budget",
				Aliases: []string{"b"},
				Usage:   "Stop before the cumulative cost would exceed this (0 = no limit)",
				EnvVars: []string{"MFBENCH_BUDGET"},
			},
			&cli.StringFlag{
				Name:    "format",
				Value:   "table",
				Usage:   "Output format (table, json)",
				EnvVars: []string{"MFBENCH_FORMAT"},
			},
		),
		Action: runEval,
	}
}

func runEval(c *cli.Context) error {
	format := c.String("format")
	if format != "table" && format != "json" {
		return fmt.Errorf("unknown --format %q", format)
	}
	xs, err := parseFloats(c.String("x"))
	if err != nil {
		return fmt.Errorf("invalid --x: %w", err)
	}
	f, err := buildObjective(c)
	if err != nil {
		return err
	}
	if d := f.InputDomain().Dimension(); len(xs) != d {
		return fmt.Errorf("--x has %d coordinates, %s takes %d", len(xs), c.String("func"), d)
	}
	if !f.InputDomain().Contains(xs) {
		log.Warn().Floats64("x", xs).Stringer("domain", f.InputDomain()).Msg("Point lies outside the domain")
	}

	res := evaluate(f, xs, c.Uint64("budget"))
	res.Function = c.String("func")
	log.Info().Int("estimates", len(res.Outputs)).Uint64("spent", res.Spent).Bool("truncated", res.Truncated).Msg("Evaluation done")

	if format == "json" {
		return renderJSON(c.App.Writer, res)
	}
	return renderTable(c.App.Writer, res)
}

func maxCostCommand() *cli.Command {
	return &cli.Command{
		Name:  "maxcost",
		Usage: "Print the cost of the highest fidelity",
		Flags: objectiveFlags(),
		Action: func(c *cli.Context) error {
			f, err := buildObjective(c)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.App.Writer, fidelity.MaxCost(f))
			return err
		},
	}
}

// parseFloats splits a comma-separated list. An empty string yields nil.
func parseFloats(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	xs := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		xs[i] = v
	}

	return xs, nil
}
