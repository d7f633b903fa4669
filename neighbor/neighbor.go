// Package neighbor enumerates the d-infinity (Chebyshev) neighbors of a grid
// coordinate, clipped to the grid bounds.
//
// Only distance 1 is supported. Any other non-negative distance returns
// ErrDistanceNotImplemented rather than an approximation.
//
// Ordering is deterministic: offsets are the Cartesian product of
// {-1, 0, +1} per dimension with the first dimension varying slowest, so in
// 2-D the neighbors of (1,1) come out as
//
//	(0,0) (0,1) (0,2) (1,0) (1,2) (2,0) (2,1) (2,2)
//
// Complexity: O(3^D · D) time and memory per call.
package neighbor

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/bcsd/coord"
)

var (
	// ErrNegativeDistance indicates a distance below zero.
	ErrNegativeDistance = errors.New("neighbor: distance must be non-negative")
	// ErrDistanceNotImplemented indicates a distance other than 1.
	ErrDistanceNotImplemented = errors.New("neighbor: only distance 1 is implemented")
)

// CheckDistance reports whether distance can be enumerated: nil for 1,
// ErrNegativeDistance below zero and ErrDistanceNotImplemented otherwise.
func CheckDistance(distance int) error {
	if distance < 0 {
		return fmt.Errorf("distance %d: %w", distance, ErrNegativeDistance)
	}
	if distance != 1 {
		return fmt.Errorf("distance %d: %w", distance, ErrDistanceNotImplemented)
	}

	return nil
}

// Offsets returns the 3^dims − 1 non-zero offset vectors with components in
// {-1, 0, +1}, in enumeration order (first dimension slowest).
func Offsets(dims int) [][]int {
	if dims <= 0 {
		return nil
	}
	total := 1
	for i := 0; i < dims; i++ {
		total *= 3
	}
	out := make([][]int, 0, total-1)
	for n := 0; n < total; n++ {
		delta := make([]int, dims)
		zero := true
		// decode n in base 3; the last dimension is the least significant digit
		rem := n
		for i := dims - 1; i >= 0; i-- {
			delta[i] = rem%3 - 1
			rem /= 3
			if delta[i] != 0 {
				zero = false
			}
		}
		if zero {
			continue
		}
		out = append(out, delta)
	}

	return out
}

// Chebyshev returns every coordinate at Chebyshev distance exactly distance
// from point that lies inside shape.
// Returns ErrNegativeDistance, ErrDistanceNotImplemented, or
// coord.ErrDimensionMismatch when point and shape disagree on dimensionality.
func Chebyshev(point coord.Coordinate, shape coord.Shape, distance int) ([]coord.Coordinate, error) {
	if err := CheckDistance(distance); err != nil {
		return nil, err
	}
	if len(point) != len(shape) {
		return nil, fmt.Errorf("point %v for shape %v: %w", point, []int(shape), coord.ErrDimensionMismatch)
	}

	return Apply(point, shape, Offsets(len(shape))), nil
}

// Apply adds each offset to point and keeps the in-bounds results, preserving
// offset order. Callers that enumerate many points precompute offsets once.
func Apply(point coord.Coordinate, shape coord.Shape, offsets [][]int) []coord.Coordinate {
	out := make([]coord.Coordinate, 0, len(offsets))
	for _, delta := range offsets {
		nb := make(coord.Coordinate, len(point))
		inside := true
		for i := range point {
			nb[i] = point[i] + delta[i]
			if nb[i] < 0 || nb[i] >= shape[i] {
				inside = false
				break
			}
		}
		if inside {
			out = append(out, nb)
		}
	}

	return out
}
