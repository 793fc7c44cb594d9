package mfb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mfbench/fidelity"
	"github.com/katalvlaran/mfbench/mfb"
)

// TestCostModels checks each schedule, including the clamp to 1 at φ = 0.
func TestCostModels(t *testing.T) {
	cases := []struct {
		name string
		m    mfb.CostModel
		phi  fidelity.Level
		want fidelity.Cost
	}{
		{"linear zero", mfb.LinearCost{}, 0, 1},
		{"linear fraction", mfb.LinearCost{}, 0.7, 1},
		{"linear", mfb.LinearCost{}, 2500.9, 2500},
		{"nonlinear low", mfb.NonLinearCost{}, 500, 1},
		{"nonlinear", mfb.NonLinearCost{}, 5000, 625},
		{"nonlinear top", mfb.NonLinearCost{}, 9999, 9996},
		{"geometric zero", mfb.GeometricCost{Factor: 10, Step: 1000}, 0, 1},
		{"geometric", mfb.GeometricCost{Factor: 10, Step: 1000}, 2999, 100},
		{"func", mfb.CostFunc(func(phi fidelity.Level) fidelity.Cost { return 7 }), 3, 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.m.Cost(tc.phi))
		})
	}

	err := panicErr(func() { mfb.GeometricCost{Factor: 10}.Cost(1) })
	assert.ErrorIs(t, err, mfb.ErrInvalidCostModel)
}

// TestCostModels_NonDecreasing sweeps the dial for every built-in model.
func TestCostModels_NonDecreasing(t *testing.T) {
	models := []mfb.CostModel{mfb.LinearCost{}, mfb.NonLinearCost{}, mfb.GeometricCost{Factor: 3, Step: 500}}
	for _, m := range models {
		prev := fidelity.Cost(0)
		for phi := 0.0; phi < fidelity.MaxLevel; phi += 37.5 {
			c := m.Cost(phi)
			assert.GreaterOrEqual(t, c, prev, "%T at %g", m, phi)
			assert.GreaterOrEqual(t, c, fidelity.MinCost)
			prev = c
		}
	}
}
