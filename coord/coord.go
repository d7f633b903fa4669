package coord

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Coordinate is a grid position, one non-negative integer per dimension.
type Coordinate []int

// Shape lists the extent of every grid dimension. It is fixed for a run.
type Shape []int

// Of is a small convenience constructor: coord.Of(1, 2) == Coordinate{1, 2}.
func Of(xs ...int) Coordinate {
	c := make(Coordinate, len(xs))
	copy(c, xs)

	return c
}

// Clone returns an independent copy of c.
func (c Coordinate) Clone() Coordinate {
	if c == nil {
		return nil
	}
	out := make(Coordinate, len(c))
	copy(out, c)

	return out
}

// Equal reports whether c and o have the same length and components.
func (c Coordinate) Equal(o Coordinate) bool {
	if len(c) != len(o) {
		return false
	}
	for i := range c {
		if c[i] != o[i] {
			return false
		}
	}

	return true
}

// String formats c as "(x0,x1,...)".
func (c Coordinate) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, x := range c {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(x))
	}
	b.WriteByte(')')

	return b.String()
}

// Dims returns the dimensionality of s.
func (s Shape) Dims() int { return len(s) }

// Validate checks that s has at least one dimension, that every extent is
// positive and that the total volume fits in an int.
// Complexity: O(D).
func (s Shape) Validate() error {
	if len(s) == 0 {
		return ErrEmptyShape
	}
	vol := 1
	for i, n := range s {
		if n <= 0 {
			return fmt.Errorf("dimension %d has extent %d: %w", i, n, ErrBadShape)
		}
		if vol > math.MaxInt/n {
			return fmt.Errorf("shape %v: %w", []int(s), ErrVolumeOverflow)
		}
		vol *= n
	}

	return nil
}

// Volume returns the product of all extents. The shape is assumed valid.
func (s Shape) Volume() int {
	vol := 1
	for _, n := range s {
		vol *= n
	}

	return vol
}

// Contains reports whether c lies inside s. A coordinate of the wrong
// dimensionality is never contained.
// Complexity: O(D).
func (s Shape) Contains(c Coordinate) bool {
	if len(c) != len(s) {
		return false
	}
	for i, x := range c {
		if x < 0 || x >= s[i] {
			return false
		}
	}

	return true
}

// Index maps c to its row-major linear index: the last dimension varies
// fastest, matching numpy's C order.
// Returns ErrDimensionMismatch or ErrOutOfBounds for invalid coordinates.
// Complexity: O(D).
func (s Shape) Index(c Coordinate) (int, error) {
	if len(c) != len(s) {
		return 0, fmt.Errorf("coordinate %v for shape %v: %w", c, []int(s), ErrDimensionMismatch)
	}
	idx := 0
	for i, x := range c {
		if x < 0 || x >= s[i] {
			return 0, fmt.Errorf("coordinate %v for shape %v: %w", c, []int(s), ErrOutOfBounds)
		}
		idx = idx*s[i] + x
	}

	return idx, nil
}

// Coordinate converts a row-major index back to a Coordinate.
// Returns ErrOutOfBounds if idx is outside [0, Volume()).
// Complexity: O(D).
func (s Shape) Coordinate(idx int) (Coordinate, error) {
	if idx < 0 || idx >= s.Volume() {
		return nil, fmt.Errorf("index %d for shape %v: %w", idx, []int(s), ErrOutOfBounds)
	}
	c := make(Coordinate, len(s))
	for i := len(s) - 1; i >= 0; i-- {
		c[i] = idx % s[i]
		idx /= s[i]
	}

	return c, nil
}

// Clone returns an independent copy of s.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	copy(out, s)

	return out
}
