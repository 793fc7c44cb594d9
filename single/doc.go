// Package single holds closed-form single-objective test functions.
//
// The functions here are the objectives the multi-fidelity layer wraps:
// each one satisfies core.Objective, reports its properties, and panics on
// a point of the wrong dimension.
//
//	Ackley            d-dimensional, [-32,32]^d, minimum 0 at the origin
//	AckleyN2          2-D, [-32,32]^2, minimum -200 at the origin
//	AckleyN3          2-D, [-32,32]^2
//	AckleyN4          d >= 2, [-35,35]^d
//	Adjiman           2-D, [-1,2]×[-1,1], minimum ≈ -2.02181 at (2, 0.10578)
//	ModifiedRastrigin d-dimensional, [-1,1]^d, minimum 0 at the origin
//
// References:
//
//	A Literature Survey of Benchmark Functions For Global Optimization Problems,
//	https://arxiv.org/abs/1308.4008
//	BenchmarkFcns, http://benchmarkfcns.xyz/fcns
package single
