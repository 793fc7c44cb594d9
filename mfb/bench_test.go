package mfb_test

import (
	"testing"

	"github.com/katalvlaran/mfbench/fidelity"
	"github.com/katalvlaran/mfbench/mfb"
	"github.com/katalvlaran/mfbench/noise"
	"github.com/katalvlaran/mfbench/single"
)

// BenchmarkEvaluate_AllModels drains ten levels of a fully-noised 10-D
// Rastrigin per iteration.
func BenchmarkEvaluate_AllModels(b *testing.B) {
	f, err := single.NewModifiedRastrigin(10)
	if err != nil {
		b.Fatalf("NewModifiedRastrigin failed: %v", err)
	}
	levels := make([]fidelity.Level, 10)
	for i := range levels {
		levels[i] = fidelity.Tier(i).Level(len(levels))
	}
	obj, err := mfb.New(f, levels,
		mfb.WithResolution(noise.Resolution2{}),
		mfb.WithStochastic(noise.Stochastic1{}),
		mfb.WithInstability(noise.Instability1{}),
		mfb.WithSeed(1),
	)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	xs := make([]float64, 10)
	for i := range xs {
		xs[i] = 0.9 - 0.2*float64(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = obj.Evaluate(xs).Drain()
	}
}
