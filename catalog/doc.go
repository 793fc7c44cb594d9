// Package catalog maps stable names to constructors of multi-fidelity
// objectives, so that command-line tools and experiment configurations can
// select a benchmark by string.
//
// Two families are registered:
//
//	native      currin, park, borehole, hartmann3, hartmann6 (package mfso)
//	injected    mfb-rastrigin, mfb-ackley (package mfb over package single)
//
// Every entry builds from the same Config; fields a family does not use are
// ignored, and zero values select documented defaults.
package catalog
