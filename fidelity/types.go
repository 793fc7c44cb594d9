package fidelity

import (
	"fmt"
	"math"
	"math/bits"
)

// Level is a continuous fidelity dial. Valid levels lie in [0, MaxLevel);
// lower levels are cheaper and noisier.
type Level = float64

// MaxLevel is the exclusive upper bound of the Level dial.
const MaxLevel Level = 10000

// Tier is a discrete fidelity index 0..n-1; tier 0 is the cheapest.
type Tier int

// Cost is the resource expenditure of one estimate. Valid costs are >= 1.
type Cost = uint64

// MinCost is the smallest valid cost.
const MinCost Cost = 1

// Output is one (cost, value) estimate.
type Output struct {
	Cost  Cost
	Value float64
}

// String renders the pair as "(cost, value)".
func (o Output) String() string { return fmt.Sprintf("(%d, %g)", o.Cost, o.Value) }

// ValidateLevel returns an error wrapping ErrLevelOutOfRange unless
// 0 <= phi < MaxLevel.
func ValidateLevel(phi Level) error {
	if math.IsNaN(phi) || phi < 0 || phi >= MaxLevel {
		return fmt.Errorf("%w: %g not in [0, %g)", ErrLevelOutOfRange, phi, MaxLevel)
	}

	return nil
}

// MustLevel panics with the ValidateLevel error when phi is out of range.
func MustLevel(phi Level) {
	if err := ValidateLevel(phi); err != nil {
		panic(err)
	}
}

// Level places tier t of n on the continuous dial: t·MaxLevel/n.
// It panics with ErrTierOutOfRange unless 0 <= t < n.
func (t Tier) Level(n int) Level {
	if t < 0 || int(t) >= n {
		panic(fmt.Errorf("%w: tier %d of %d", ErrTierOutOfRange, t, n))
	}

	return Level(t) * MaxLevel / Level(n)
}

// Geometric returns factor^t, the cost of tier t under a geometric schedule.
// It panics with ErrCostOverflow when the result does not fit in a uint64
// and with ErrTierOutOfRange when t < 0. Use CheckedGeometric for
// schedules built from user input.
//
// Complexity: O(log t).
func Geometric(factor uint64, t Tier) Cost {
	c, err := CheckedGeometric(factor, t)
	if err != nil {
		panic(err)
	}

	return c
}

// CheckedGeometric is Geometric reporting failures as errors wrapping
// ErrTierOutOfRange or ErrCostOverflow.
func CheckedGeometric(factor uint64, t Tier) (Cost, error) {
	if t < 0 {
		return 0, fmt.Errorf("%w: negative tier %d", ErrTierOutOfRange, t)
	}
	result := uint64(1)
	base := factor
	for e := uint64(t); e > 0; e >>= 1 {
		if e&1 == 1 {
			hi, lo := bits.Mul64(result, base)
			if hi != 0 {
				return 0, fmt.Errorf("%w: %d^%d", ErrCostOverflow, factor, t)
			}
			result = lo
		}
		if e > 1 {
			hi, lo := bits.Mul64(base, base)
			if hi != 0 {
				return 0, fmt.Errorf("%w: %d^%d", ErrCostOverflow, factor, t)
			}
			base = lo
		}
	}

	return result, nil
}
