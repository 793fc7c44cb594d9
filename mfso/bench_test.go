package mfso_test

import (
	"testing"

	"github.com/katalvlaran/mfbench/mfso"
)

// BenchmarkHartmann6_Drain drains all four tiers at an interior point.
func BenchmarkHartmann6_Drain(b *testing.B) {
	h, err := mfso.NewHartmann6()
	if err != nil {
		b.Fatalf("NewHartmann6 failed: %v", err)
	}
	xs := []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = h.Evaluate(xs).Drain()
	}
}

// BenchmarkBorehole_F2 measures the high-fidelity formula alone.
func BenchmarkBorehole_F2(b *testing.B) {
	f := mfso.NewBorehole()
	xs := []float64{0.1, 25050, 89335, 1050, 89.55, 760, 1400, 10950}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.F2(xs)
	}
}
