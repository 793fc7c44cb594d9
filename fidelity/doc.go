// Package fidelity defines the multi-fidelity evaluation protocol: fidelity
// dials, resource costs and the lazy Outputs sequence an evaluation returns.
//
// 🚀 What is a multi-fidelity evaluation?
//
//	Instead of one number, evaluating a point yields a sequence of
//	(cost, value) estimates ordered from cheapest/coarsest to most
//	expensive/accurate. A caller pulls as many estimates as its budget allows
//	and simply stops pulling when it has seen enough.
//
// Two notions of fidelity coexist and are kept apart by type:
//
//	Level — continuous dial in [0, MaxLevel) used by error-injection objectives.
//	Tier  — discrete index 0..n-1 used by natively multi-fidelity functions.
//
// Tier.Level(n) places a tier on the dial (t·MaxLevel/n) when a caller needs
// to compare the two; nothing converts between them implicitly.
//
// Outputs contract:
//
//   - single pass, forward only, not restartable;
//   - lazy: each Next may run an arbitrarily expensive evaluation;
//   - costs are non-zero and non-decreasing; a producer that breaks this
//     panics with ErrZeroCost or ErrCostDecreased;
//   - once exhausted, Next keeps returning ok=false.
//
// MaxCost:
//
//	Objectives that know their cost schedule implement CostBounder and answer
//	in O(1). For the rest, MaxCost drains one evaluation at the domain's
//	minimum corner and returns the last cost, which costs a full evaluation.
//
// Example:
//
//	out := f.Evaluate(xs)
//	for cost, value := range out.All() {
//		if cost > budget {
//			break
//		}
//		use(value)
//	}
package fidelity
