package fidelity

import (
	"fmt"
	"iter"
)

// Outputs is the lazy, single-pass sequence of estimates returned by one
// evaluation. It is owned by the caller that requested the evaluation and
// holds no reference back to the objective.
//
// Outputs is not safe for concurrent use.
type Outputs struct {
	next   func() (Output, bool)
	last   Cost
	pulled int
}

// NewOutputs wraps a producer. The producer is called once per Next until
// it reports ok=false, after which it is released and never called again.
// A nil producer yields an empty sequence.
func NewOutputs(next func() (Output, bool)) *Outputs {
	return &Outputs{next: next}
}

// Tiers returns the lazy sequence over tiers 0..n-1 where tier t has cost
// cost(t) and value value(t). value runs only when the tier is pulled.
func Tiers(n int, cost func(Tier) Cost, value func(Tier) float64) *Outputs {
	var t Tier
	return NewOutputs(func() (Output, bool) {
		if int(t) >= n {
			return Output{}, false
		}
		o := Output{Cost: cost(t), Value: value(t)}
		t++

		return o, true
	})
}

// Levels returns the lazy sequence over the given levels, in order.
// The slice is copied so later mutation by the caller has no effect.
func Levels(levels []Level, cost func(Level) Cost, value func(Level) float64) *Outputs {
	ls := append([]Level(nil), levels...)
	i := 0
	return NewOutputs(func() (Output, bool) {
		if i >= len(ls) {
			return Output{}, false
		}
		phi := ls[i]
		i++

		return Output{Cost: cost(phi), Value: value(phi)}, true
	})
}

// Next pulls the next estimate. ok is false once the sequence is exhausted.
//
// Next panics with ErrZeroCost or ErrCostDecreased if the producer breaks
// the cost contract.
func (o *Outputs) Next() (out Output, ok bool) {
	if o.next == nil {
		return Output{}, false
	}
	out, ok = o.next()
	if !ok {
		o.next = nil
		return Output{}, false
	}
	if out.Cost < MinCost {
		o.next = nil
		panic(fmt.Errorf("%w: output #%d", ErrZeroCost, o.pulled))
	}
	if out.Cost < o.last {
		o.next = nil
		panic(fmt.Errorf("%w: output #%d has cost %d after %d", ErrCostDecreased, o.pulled, out.Cost, o.last))
	}
	o.last = out.Cost
	o.pulled++

	return out, true
}

// Done reports whether the sequence is known to be exhausted. A sequence
// whose producer has not yet reported its end is not Done.
func (o *Outputs) Done() bool { return o.next == nil }

// Pulled returns the number of estimates consumed so far.
func (o *Outputs) Pulled() int { return o.pulled }

// All returns a range-over-func view that pulls from o. Breaking out of
// the loop leaves the remaining estimates unpulled (and uncomputed).
func (o *Outputs) All() iter.Seq2[Cost, float64] {
	return func(yield func(Cost, float64) bool) {
		for {
			out, ok := o.Next()
			if !ok || !yield(out.Cost, out.Value) {
				return
			}
		}
	}
}

// Drain pulls every remaining estimate.
func (o *Outputs) Drain() []Output {
	var outs []Output
	for {
		out, ok := o.Next()
		if !ok {
			return outs
		}
		outs = append(outs, out)
	}
}

// Last drains the sequence and returns its final estimate.
// ok is false if nothing remained to pull.
func (o *Outputs) Last() (last Output, ok bool) {
	for {
		out, more := o.Next()
		if !more {
			return last, ok
		}
		last, ok = out, true
	}
}

// Within pulls estimates while their cost does not exceed budget and
// returns them. The first estimate over budget is computed (it must be, to
// learn its cost) but not returned; the sequence stays usable afterwards.
func (o *Outputs) Within(budget Cost) (outs []Output, over *Output) {
	for {
		out, ok := o.Next()
		if !ok {
			return outs, nil
		}
		if out.Cost > budget {
			return outs, &out
		}
		outs = append(outs, out)
	}
}

// String implements fmt.Stringer without consuming the sequence.
func (o *Outputs) String() string {
	return fmt.Sprintf("Outputs(pulled=%d, done=%t)", o.pulled, o.Done())
}
