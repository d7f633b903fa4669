// Package threshold classifies field values as "on" (1) or "off" (0) against
// the midpoint of the observed value range.
//
// Threshold is an immutable value. It is built once from the sampled values
// and passed by value to every classification, so there is no shared mutable
// min/max state to race on. The zero Threshold is not ready and refuses to
// classify.
//
// Ties at the midpoint classify as "on".
package threshold

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrNotReady indicates classification before any value was observed.
	ErrNotReady = errors.New("threshold: no values observed yet")
	// ErrNoValues indicates an empty input to FromValues.
	ErrNoValues = errors.New("threshold: at least one value is required")
)

// Class labels.
const (
	Off = 0
	On  = 1
)

// Threshold holds the observed value range.
type Threshold struct {
	min, max float64
	ready    bool
}

// FromValues returns the Threshold spanning values.
// Returns ErrNoValues if values is empty.
func FromValues(values []float64) (Threshold, error) {
	if len(values) == 0 {
		return Threshold{}, ErrNoValues
	}

	return Threshold{min: floats.Min(values), max: floats.Max(values), ready: true}, nil
}

// Observe returns a copy of t widened to cover values. The receiver is not
// modified; observing nothing returns t unchanged.
func (t Threshold) Observe(values ...float64) Threshold {
	if len(values) == 0 {
		return t
	}
	lo, hi := floats.Min(values), floats.Max(values)
	if !t.ready {
		return Threshold{min: lo, max: hi, ready: true}
	}
	if lo < t.min {
		t.min = lo
	}
	if hi > t.max {
		t.max = hi
	}

	return t
}

// Ready reports whether at least one value has been observed.
func (t Threshold) Ready() bool { return t.ready }

// Min returns the smallest observed value.
func (t Threshold) Min() float64 { return t.min }

// Max returns the largest observed value.
func (t Threshold) Max() float64 { return t.max }

// Midpoint returns (min+max)/2, recomputed on each call.
func (t Threshold) Midpoint() (float64, error) {
	if !t.ready {
		return 0, ErrNotReady
	}

	return (t.min + t.max) / 2, nil
}

// Classify returns On if v ≥ (min+max)/2 and Off otherwise.
// Returns ErrNotReady on a zero Threshold.
func (t Threshold) Classify(v float64) (int, error) {
	mid, err := t.Midpoint()
	if err != nil {
		return Off, err
	}
	if v < mid {
		return Off, nil
	}

	return On, nil
}

// IsOn is the boolean form of Classify.
func (t Threshold) IsOn(v float64) (bool, error) {
	c, err := t.Classify(v)

	return c == On, err
}

// String implements fmt.Stringer.
func (t Threshold) String() string {
	if !t.ready {
		return "threshold(unset)"
	}

	return fmt.Sprintf("threshold(min=%g max=%g mid=%g)", t.min, t.max, (t.min+t.max)/2)
}
