package core

import (
	"fmt"
	"math"
	"strings"
)

// Interval is a closed range [min, max]. The zero value is the degenerate
// interval [0, 0]. Intervals are immutable once constructed.
type Interval struct {
	min float64
	max float64
}

// NewInterval returns the interval [min, max].
// ok is false when min > max or either bound is NaN.
func NewInterval(min, max float64) (Interval, bool) {
	if math.IsNaN(min) || math.IsNaN(max) || min > max {
		return Interval{}, false
	}

	return Interval{min: min, max: max}, true
}

// MustInterval builds an interval from bounds written in source code.
// It exists for package-level domains and panics if the literal is invalid;
// never call it with values supplied at runtime.
func MustInterval(min, max float64) Interval {
	iv, ok := NewInterval(min, max)
	if !ok {
		panic(fmt.Errorf("%w: [%g, %g]", ErrInvalidInterval, min, max))
	}

	return iv
}

// Min returns the lower bound.
func (iv Interval) Min() float64 { return iv.min }

// Max returns the upper bound.
func (iv Interval) Max() float64 { return iv.max }

// Width returns max - min.
func (iv Interval) Width() float64 { return iv.max - iv.min }

// Contains reports whether min <= x <= max.
func (iv Interval) Contains(x float64) bool { return iv.min <= x && x <= iv.max }

// String renders the interval as "[min, max]".
func (iv Interval) String() string { return fmt.Sprintf("[%g, %g]", iv.min, iv.max) }

// Domain is an input domain: one Interval per coordinate.
type Domain []Interval

// Uniform returns a Domain of n copies of iv.
func Uniform(n int, iv Interval) Domain {
	d := make(Domain, n)
	for i := range d {
		d[i] = iv
	}

	return d
}

// Dimension returns the number of coordinates.
func (d Domain) Dimension() int { return len(d) }

// MinCorner returns the point made of every lower bound.
func (d Domain) MinCorner() []float64 {
	xs := make([]float64, len(d))
	for i, iv := range d {
		xs[i] = iv.min
	}

	return xs
}

// MaxCorner returns the point made of every upper bound.
func (d Domain) MaxCorner() []float64 {
	xs := make([]float64, len(d))
	for i, iv := range d {
		xs[i] = iv.max
	}

	return xs
}

// Contains reports whether xs has the domain's dimension and every
// coordinate lies inside its interval.
func (d Domain) Contains(xs []float64) bool {
	if len(xs) != len(d) {
		return false
	}
	for i, iv := range d {
		if !iv.Contains(xs[i]) {
			return false
		}
	}

	return true
}

// String renders the domain as "[a, b] × [c, d] × ...".
func (d Domain) String() string {
	parts := make([]string, len(d))
	for i, iv := range d {
		parts[i] = iv.String()
	}

	return strings.Join(parts, " × ")
}
