package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/katalvlaran/mfbench/catalog"
	"github.com/katalvlaran/mfbench/fidelity"
)

type estimate struct {
	Cost       fidelity.Cost `json:"cost"`
	Cumulative fidelity.Cost `json:"cumulative"`
	Value      float64       `json:"value"`
}

// MarshalJSON writes a non-finite value (Park on x1 = 0 is NaN) as null,
// which encoding/json cannot represent as a number.
func (e estimate) MarshalJSON() ([]byte, error) {
	type wire struct {
		Cost       fidelity.Cost `json:"cost"`
		Cumulative fidelity.Cost `json:"cumulative"`
		Value      *float64      `json:"value"`
	}
	w := wire{Cost: e.Cost, Cumulative: e.Cumulative}
	if !math.IsNaN(e.Value) && !math.IsInf(e.Value, 0) {
		v := e.Value
		w.Value = &v
	}

	return json.Marshal(w)
}

type evalResult struct {
	Function string     `json:"function"`
	X        []float64  `json:"x"`
	Outputs  []estimate `json:"outputs"`
	Spent    uint64     `json:"spent"`
	// Truncated is set when the budget stopped the evaluation early.
	Truncated bool `json:"truncated"`
}

// evaluate pulls estimates until the sequence ends or the next one would
// take the cumulative cost past budget. A zero budget means no limit.
func evaluate(f fidelity.Objective, xs []float64, budget uint64) evalResult {
	res := evalResult{X: xs, Outputs: []estimate{}}
	out := f.Evaluate(xs)
	for {
		o, ok := out.Next()
		if !ok {
			return res
		}
		if budget > 0 && res.Spent+o.Cost > budget {
			res.Truncated = true
			return res
		}
		res.Spent += o.Cost
		res.Outputs = append(res.Outputs, estimate{Cost: o.Cost, Cumulative: res.Spent, Value: o.Value})
	}
}

func renderTable(w io.Writer, res evalResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FIDELITY\tCOST\tCUMULATIVE\tVALUE")
	for i, e := range res.Outputs {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%.10g\n", i, e.Cost, e.Cumulative, e.Value)
	}
	if res.Truncated {
		fmt.Fprintf(tw, "(budget reached after %d)\t\t\t\n", res.Spent)
	}

	return tw.Flush()
}

func renderJSON(w io.Writer, res evalResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	return nil
}

func renderList(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDESCRIPTION")
	for _, name := range catalog.Names() {
		e, _ := catalog.Lookup(name)
		fmt.Fprintf(tw, "%s\t%s\n", e.Name, e.Description)
	}

	return tw.Flush()
}
