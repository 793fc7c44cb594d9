package mfso_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mfbench/core"
	"github.com/katalvlaran/mfbench/fidelity"
	"github.com/katalvlaran/mfbench/mfso"
)

// tiered is the surface shared by every function in the package.
type tiered interface {
	fidelity.Objective
	fidelity.CostBounder
	EvaluateTier(xs []float64, t fidelity.Tier) float64
	Tiers() int
}

var (
	_ tiered = (*mfso.CurrinExponential)(nil)
	_ tiered = (*mfso.Park)(nil)
	_ tiered = (*mfso.Borehole)(nil)
	_ tiered = (*mfso.Hartmann3)(nil)
	_ tiered = (*mfso.Hartmann6)(nil)

	_ core.GlobalOptimumInput = (*mfso.Hartmann3)(nil)
	_ core.GlobalOptimumInput = (*mfso.Hartmann6)(nil)
)

func panicErr(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	fn()
	return nil
}

func costs(outs []fidelity.Output) []fidelity.Cost {
	cs := make([]fidelity.Cost, len(outs))
	for i, o := range outs {
		cs[i] = o.Cost
	}
	return cs
}

// TestHartmann3_CostSequence checks the cost ladder and that MaxCost is
// available before anything is pulled.
func TestHartmann3_CostSequence(t *testing.T) {
	h, err := mfso.NewHartmann3(mfso.WithMaxFidelity(3), mfso.WithCostFactor(10))
	require.NoError(t, err)

	assert.Equal(t, fidelity.Cost(100), h.MaxCost())
	assert.Equal(t, fidelity.Cost(100), fidelity.MaxCost(h))
	assert.Equal(t, 3, h.Tiers())

	out := h.Evaluate([]float64{0.5, 0.5, 0.5})
	assert.Equal(t, 0, out.Pulled())
	outs := out.Drain()
	assert.Equal(t, []fidelity.Cost{1, 10, 100}, costs(outs))
	assert.True(t, out.Done())
	_, ok := out.Next()
	assert.False(t, ok, "an evaluation is single-pass")
	assert.InDelta(t, -0.6280220150705937, outs[2].Value, 1e-12)
}

// TestHartmann_Minima checks the highest tier at the published optimum and
// the per-tier α shift.
func TestHartmann_Minima(t *testing.T) {
	h3, err := mfso.NewHartmann3(mfso.WithMaxFidelity(3))
	require.NoError(t, err)
	want3 := []float64{-4.03892997703802, -3.9508548819936777, -3.8627797869493365}
	outs := h3.Evaluate(h3.GlobalOptimumInput()).Drain()
	require.Len(t, outs, 3)
	for i, o := range outs {
		assert.InDelta(t, want3[i], o.Value, 1e-9, "tier %d", i)
	}
	assert.InDelta(t, -3.86278, outs[2].Value, 1e-4)

	h6, err := mfso.NewHartmann6()
	require.NoError(t, err)
	want6 := []float64{-3.0440822403477434, -3.1368441640289415, -3.22960608771014, -3.322368011391339}
	x6 := h6.GlobalOptimumInput()
	for i, w := range want6 {
		assert.InDelta(t, w, h6.EvaluateTier(x6, fidelity.Tier(i)), 1e-9, "tier %d", i)
	}
	assert.InDelta(t, -3.32237, h6.EvaluateTier(x6, 3), 1e-4)
	assert.Equal(t, fidelity.Cost(1000), h6.MaxCost())
}

// TestHartmann_Overflow rejects tier counts whose top cost overflows.
func TestHartmann_Overflow(t *testing.T) {
	_, err := mfso.NewHartmann3(mfso.WithMaxFidelity(21))
	assert.True(t, errors.Is(err, fidelity.ErrCostOverflow))

	h, err := mfso.NewHartmann6(mfso.WithMaxFidelity(20))
	require.NoError(t, err)
	assert.Equal(t, fidelity.Cost(1e19), h.MaxCost())
}

// TestHartmann_OptimumIsCopy verifies callers cannot corrupt the optimum.
func TestHartmann_OptimumIsCopy(t *testing.T) {
	h, err := mfso.NewHartmann3()
	require.NoError(t, err)
	xs := h.GlobalOptimumInput()
	xs[0] = 42
	assert.InDelta(t, 0.114614, h.GlobalOptimumInput()[0], 1e-12)
}

// TestTwoTier_References pins F1/F2 at interior points.
func TestTwoTier_References(t *testing.T) {
	currin := mfso.NewCurrinExponential()
	park := mfso.NewPark()
	bore := mfso.NewBorehole()
	nominal := []float64{0.1, 25050, 89335, 1050, 89.55, 760, 1400, 10950}

	cases := []struct {
		name   string
		f1, f2 float64
		gotF1  float64
		gotF2  float64
	}{
		{"currin", 2.593954726581009, 2.591289886088276, currin.F1([]float64{0.5, 0.5}), currin.F2([]float64{0.5, 0.5})},
		{"park", 9.354071849074643, 8.926130363363933, park.F1([]float64{0.5, 0.5, 0.5, 0.5}), park.F2([]float64{0.5, 0.5, 0.5, 0.5})},
		{"borehole", 56.398719259575394, 70.87291263681897, bore.F1(nominal), bore.F2(nominal)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.f1, tc.gotF1, 1e-9)
			assert.InDelta(t, tc.f2, tc.gotF2, 1e-9)
		})
	}
}

// TestCurrin_Boundary checks the x2 = 0 edge, where f2 vanishes and f1
// clamps its shifted points into the domain.
func TestCurrin_Boundary(t *testing.T) {
	c := mfso.NewCurrinExponential()
	assert.Equal(t, 0.0, c.F2([]float64{0, 0}))
	assert.Equal(t, 0.0, c.F2([]float64{0.7, 0}))
	assert.InDelta(t, 0.14492708945808974, c.F1([]float64{0.5, 0}), 1e-9)
}

// TestPark_UndefinedAtZero documents the x1 = 0 singularity.
func TestPark_UndefinedAtZero(t *testing.T) {
	p := mfso.NewPark()
	assert.True(t, math.IsNaN(p.F2([]float64{0, 0.5, 0.5, 0.5})))
}

// TestTwoTier_Evaluate checks costs, laziness, and agreement with F1/F2.
func TestTwoTier_Evaluate(t *testing.T) {
	c := mfso.NewCurrinExponential(mfso.WithCostFactor(7))
	xs := []float64{0.3, 0.8}

	out := c.Evaluate(xs)
	first, ok := out.Next()
	require.True(t, ok)
	assert.Equal(t, fidelity.Output{Cost: 1, Value: c.F1(xs)}, first)
	assert.Equal(t, 1, out.Pulled())

	last, ok := out.Last()
	require.True(t, ok)
	assert.Equal(t, fidelity.Output{Cost: 7, Value: c.F2(xs)}, last)
	assert.Equal(t, fidelity.Cost(7), c.MaxCost())
	assert.Equal(t, 2, c.Tiers())
}

// TestEvaluate_EvaluationIsolated verifies that mutating the input after
// Evaluate does not change the lazily computed estimates.
func TestEvaluate_EvaluationIsolated(t *testing.T) {
	h, err := mfso.NewHartmann3(mfso.WithMaxFidelity(2))
	require.NoError(t, err)
	xs := []float64{0.2, 0.4, 0.6}
	want := h.EvaluateTier(xs, 1)

	out := h.Evaluate(xs)
	xs[0] = 0.9
	last, ok := out.Last()
	require.True(t, ok)
	assert.Equal(t, want, last.Value)
}

// TestContractPanics covers dimension and tier violations.
func TestContractPanics(t *testing.T) {
	h, err := mfso.NewHartmann3(mfso.WithMaxFidelity(3))
	require.NoError(t, err)

	cases := []struct {
		name string
		fn   func()
		want error
	}{
		{"currin dimension", func() { mfso.NewCurrinExponential().Evaluate([]float64{1}) }, core.ErrDimensionMismatch},
		{"park dimension", func() { mfso.NewPark().F1(make([]float64, 5)) }, core.ErrDimensionMismatch},
		{"borehole dimension", func() { mfso.NewBorehole().F2(nil) }, core.ErrDimensionMismatch},
		{"hartmann dimension", func() { h.Evaluate(make([]float64, 6)) }, core.ErrDimensionMismatch},
		{"hartmann tier", func() { h.EvaluateTier([]float64{0, 0, 0}, 3) }, fidelity.ErrTierOutOfRange},
		{"hartmann negative tier", func() { h.EvaluateTier([]float64{0, 0, 0}, -1) }, fidelity.ErrTierOutOfRange},
		{"two-tier tier", func() { mfso.NewPark().EvaluateTier(make([]float64, 4), 2) }, fidelity.ErrTierOutOfRange},
		{"cost factor", func() { mfso.WithCostFactor(1) }, mfso.ErrCostFactor},
		{"max fidelity", func() { mfso.WithMaxFidelity(0) }, mfso.ErrMaxFidelity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := panicErr(tc.fn)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

// TestDomains checks dimensions and the borehole bounds order.
func TestDomains(t *testing.T) {
	h6, err := mfso.NewHartmann6()
	require.NoError(t, err)

	assert.Equal(t, 2, core.Dimension(mfso.NewCurrinExponential()))
	assert.Equal(t, 4, core.Dimension(mfso.NewPark()))
	assert.Equal(t, 6, core.Dimension(h6))

	bd := mfso.NewBorehole().InputDomain()
	require.Equal(t, 8, bd.Dimension())
	assert.Equal(t, []float64{0.05, 100, 63070, 990, 63.1, 700, 1120, 9855}, bd.MinCorner())
	assert.Equal(t, []float64{0.15, 50000, 115600, 1110, 116, 820, 1680, 12045}, bd.MaxCorner())
}
