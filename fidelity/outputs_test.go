package fidelity_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/mfbench/fidelity"
)

// OutputsSuite exercises the single-pass lazy sequence contract.
type OutputsSuite struct {
	suite.Suite
}

// counting returns a producer over the given costs that records how many
// values it has computed.
func counting(costs []fidelity.Cost, computed *int) func() (fidelity.Output, bool) {
	i := 0
	return func() (fidelity.Output, bool) {
		if i >= len(costs) {
			return fidelity.Output{}, false
		}
		*computed++
		o := fidelity.Output{Cost: costs[i], Value: float64(i)}
		i++
		return o, true
	}
}

// TestExhaustedAfterDrain verifies a drained sequence yields nothing more.
func (s *OutputsSuite) TestExhaustedAfterDrain() {
	computed := 0
	out := fidelity.NewOutputs(counting([]fidelity.Cost{1, 10, 100}, &computed))

	all := out.Drain()
	s.Require().Len(all, 3)
	s.True(out.Done())
	s.Equal(3, out.Pulled())

	_, ok := out.Next()
	s.False(ok, "exhausted sequence must not yield again")
	s.Empty(out.Drain())
	s.Equal(3, computed, "producer must not be called after exhaustion")
}

// TestLazy verifies nothing is computed before it is pulled.
func (s *OutputsSuite) TestLazy() {
	computed := 0
	out := fidelity.NewOutputs(counting([]fidelity.Cost{1, 2, 3}, &computed))
	s.Equal(0, computed)

	first, ok := out.Next()
	s.Require().True(ok)
	s.Equal(fidelity.Output{Cost: 1, Value: 0}, first)
	s.Equal(1, computed)
	s.False(out.Done())
}

// TestAllStopsOnBreak verifies range-over-func leaves the tail unpulled.
func (s *OutputsSuite) TestAllStopsOnBreak() {
	computed := 0
	out := fidelity.NewOutputs(counting([]fidelity.Cost{1, 10, 100, 1000}, &computed))

	var seen []fidelity.Cost
	for cost := range out.All() {
		seen = append(seen, cost)
		if cost >= 10 {
			break
		}
	}
	s.Equal([]fidelity.Cost{1, 10}, seen)
	s.Equal(2, computed)

	rest := out.Drain()
	s.Len(rest, 2, "the sequence continues where the loop stopped")
}

// TestWithinBudget verifies budget-limited consumption.
func (s *OutputsSuite) TestWithinBudget() {
	computed := 0
	out := fidelity.NewOutputs(counting([]fidelity.Cost{1, 10, 100}, &computed))

	got, over := out.Within(50)
	s.Len(got, 2)
	s.Require().NotNil(over)
	s.Equal(fidelity.Cost(100), over.Cost)

	out = fidelity.NewOutputs(counting([]fidelity.Cost{1, 10}, &computed))
	got, over = out.Within(50)
	s.Len(got, 2)
	s.Nil(over)
}

// TestLast verifies Last returns the final pair and handles empty sequences.
func (s *OutputsSuite) TestLast() {
	computed := 0
	last, ok := fidelity.NewOutputs(counting([]fidelity.Cost{1, 5, 5, 9}, &computed)).Last()
	s.True(ok)
	s.Equal(fidelity.Cost(9), last.Cost)

	_, ok = fidelity.NewOutputs(nil).Last()
	s.False(ok)
}

// TestCostDecreasedPanics verifies non-monotone producers are rejected.
func (s *OutputsSuite) TestCostDecreasedPanics() {
	computed := 0
	out := fidelity.NewOutputs(counting([]fidelity.Cost{10, 1}, &computed))
	_, _ = out.Next()

	err := panicErr(func() { out.Next() })
	s.True(errors.Is(err, fidelity.ErrCostDecreased), "got %v", err)
	s.True(out.Done(), "a broken producer is released")
}

// TestZeroCostPanics verifies a zero cost is rejected.
func (s *OutputsSuite) TestZeroCostPanics() {
	computed := 0
	out := fidelity.NewOutputs(counting([]fidelity.Cost{0}, &computed))

	err := panicErr(func() { out.Next() })
	s.True(errors.Is(err, fidelity.ErrZeroCost), "got %v", err)
}

// TestTiersAndLevels exercises the generator helpers.
func (s *OutputsSuite) TestTiersAndLevels() {
	calls := 0
	tiers := fidelity.Tiers(3,
		func(t fidelity.Tier) fidelity.Cost { return fidelity.Geometric(10, t) },
		func(t fidelity.Tier) float64 { calls++; return float64(t) * 0.5 },
	)
	s.Equal(0, calls)
	s.Equal([]fidelity.Output{{Cost: 1, Value: 0}, {Cost: 10, Value: 0.5}, {Cost: 100, Value: 1}}, tiers.Drain())
	s.Equal(3, calls)

	levels := []fidelity.Level{0, 2500, 5000}
	seq := fidelity.Levels(levels,
		func(phi fidelity.Level) fidelity.Cost { return fidelity.Cost(phi) + 1 },
		func(phi fidelity.Level) float64 { return phi / fidelity.MaxLevel },
	)
	levels[0] = 9999 // must not leak into the sequence
	s.Equal([]fidelity.Output{{Cost: 1, Value: 0}, {Cost: 2501, Value: 0.25}, {Cost: 5001, Value: 0.5}}, seq.Drain())
}

func TestOutputsSuite(t *testing.T) {
	suite.Run(t, new(OutputsSuite))
}

// TestOutput_String checks the pair rendering.
func TestOutput_String(t *testing.T) {
	require.Equal(t, "(10, 0.5)", fidelity.Output{Cost: 10, Value: 0.5}.String())
	require.Equal(t, "Outputs(pulled=0, done=true)", fidelity.NewOutputs(nil).String())
}
