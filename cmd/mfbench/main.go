// mfbench evaluates multi-fidelity benchmark functions from the command line.
//
// Usage:
//
//	mfbench list
//	mfbench eval --func hartmann3 --x 0.1,0.5,0.8 [--budget 50] [--format json]
//	mfbench maxcost --func borehole --cost-factor 5
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newApp assembles the CLI writing results to out and diagnostics to errOut.
func newApp(out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:      "mfbench",
		Usage:     "Multi-fidelity optimisation benchmark functions",
		Version:   fmt.Sprintf("%s (commit: %s)", version, commit),
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "Log construction and evaluation details to stderr",
				EnvVars: []string{"MFBENCH_VERBOSE"},
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("verbose") {
				log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: c.App.ErrWriter, NoColor: true}).
					With().Timestamp().Str("app", c.App.Name).Logger()
			} else {
				log.Logger = zerolog.Nop()
			}
			return nil
		},
		Commands: []*cli.Command{
			listCommand(),
			evalCommand(),
			maxCostCommand(),
		},
	}
}
