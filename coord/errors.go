package coord

import "errors"

var (
	// ErrEmptyShape indicates a shape with no dimensions.
	ErrEmptyShape = errors.New("coord: shape must have at least one dimension")
	// ErrBadShape indicates a non-positive extent.
	ErrBadShape = errors.New("coord: every extent must be > 0")
	// ErrVolumeOverflow indicates that the cell count does not fit in an int.
	ErrVolumeOverflow = errors.New("coord: shape volume overflows int")
	// ErrDimensionMismatch indicates a coordinate whose length differs from the shape's.
	ErrDimensionMismatch = errors.New("coord: coordinate and shape dimensionality differ")
	// ErrOutOfBounds indicates a coordinate or index outside the shape.
	ErrOutOfBounds = errors.New("coord: coordinate out of bounds")
)
