// Package core defines the shared vocabulary of mfbench test functions:
// closed intervals, input domains, the single-objective capability and the
// dimension contract every evaluator honours.
//
// What lives here:
//
//   - Interval — a closed numeric range [min, max] with min <= max.
//   - Domain   — one Interval per input coordinate; its length is the dimension.
//   - Objective — "has an input domain, evaluates a point to a float64".
//   - Property — descriptive tags (continuous, multimodal, ...) from the
//     benchmark literature.
//
// Construction paths for Interval:
//
//	NewInterval(min, max)  — validated; returns ok=false when min > max or a bound is NaN.
//	MustInterval(min, max) — trusted literals only (package-level domains whose
//	                          bounds are written in source). Panics on a bad literal.
//
// MustInterval must never be fed with runtime input; bounds that come from
// callers, flags or files go through NewInterval.
//
// Contract violations:
//
//	Evaluating a point whose length differs from the domain dimension is a
//	programmer error. CheckDimension panics with an error wrapping
//	ErrDimensionMismatch, so a recover() site can still use errors.Is.
//
// Example:
//
//	iv, ok := core.NewInterval(-1, 1)
//	if !ok {
//		// reject the bounds
//	}
//	d := core.Uniform(3, iv) // [-1,1]^3
//	fmt.Println(d.Dimension(), d.MinCorner())
package core
