package mfb_test

import (
	"fmt"

	"github.com/katalvlaran/mfbench/fidelity"
	"github.com/katalvlaran/mfbench/mfb"
	"github.com/katalvlaran/mfbench/noise"
	"github.com/katalvlaran/mfbench/single"
)

// ExampleNew wraps the 2-D Rastrigin with the staircase resolution error and
// reads both fidelities at the optimum. The bias is gone by φ = 9000.
func ExampleNew() {
	f, _ := single.NewModifiedRastrigin(2)
	obj, err := mfb.New(f, []fidelity.Level{1000, 9000}, mfb.WithResolution(noise.Resolution3{}))
	if err != nil {
		fmt.Println(err)
		return
	}
	for cost, value := range obj.Evaluate([]float64{0, 0}).All() {
		fmt.Printf("%d %.4f\n", cost, value)
	}
	fmt.Println("max cost:", obj.MaxCost())
	// Output:
	// 1000 -0.4944
	// 9000 0.0000
	// max cost: 9000
}

// ExampleObjective_EvaluateRand stops reading once a budget is spent.
func ExampleObjective_EvaluateRand() {
	f, _ := single.NewModifiedRastrigin(1)
	obj, _ := mfb.New(f, []fidelity.Level{0, 2000, 4000, 8000},
		mfb.WithStochastic(noise.Stochastic2{}),
		mfb.WithCost(mfb.GeometricCost{Factor: 10, Step: 2000}),
		mfb.WithSeed(1),
	)
	out, err := obj.EvaluateRand([]float64{0.5}, noise.NewRand(7))
	if err != nil {
		fmt.Println(err)
		return
	}
	within, over := out.Within(100)
	fmt.Println(len(within), over.Cost)
	// Output:
	// 3 10000
}
