package grid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/bcsd/coord"
)

// Accessor is the read-only view of a sampled field.
// Sample is only defined for coordinates inside Shape.
type Accessor interface {
	Shape() coord.Shape
	Sample(c coord.Coordinate) (float64, error)
}

// Dense is an n-dimensional field stored row-major in a flat slice.
// It is immutable once shared; Set exists only for fixture construction
// before the grid is handed to readers.
type Dense struct {
	shape coord.Shape
	data  []float64
}

var _ Accessor = (*Dense)(nil)

// NewDense builds a Dense from shape and row-major data. The data is copied.
// Returns coord shape errors, ErrDataLength or ErrNaN.
// Complexity: O(V).
func NewDense(shape coord.Shape, data []float64) (*Dense, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(data) != shape.Volume() {
		return nil, fmt.Errorf("got %d values for shape %v: %w", len(data), []int(shape), ErrDataLength)
	}
	buf := make([]float64, len(data))
	for i, v := range data {
		if math.IsNaN(v) {
			return nil, fmt.Errorf("value at index %d: %w", i, ErrNaN)
		}
		buf[i] = v
	}

	return &Dense{shape: shape.Clone(), data: buf}, nil
}

// Zeros returns an all-zero Dense of the given shape.
func Zeros(shape coord.Shape) (*Dense, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}

	return &Dense{shape: shape.Clone(), data: make([]float64, shape.Volume())}, nil
}

// FromMatrix copies a gonum matrix into a 2-D Dense with shape (rows, cols).
func FromMatrix(m mat.Matrix) (*Dense, error) {
	r, c := m.Dims()
	d, err := Zeros(coord.Shape{r, c})
	if err != nil {
		return nil, err
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := m.At(i, j)
			if math.IsNaN(v) {
				return nil, fmt.Errorf("value at (%d,%d): %w", i, j, ErrNaN)
			}
			d.data[i*c+j] = v
		}
	}

	return d, nil
}

// Shape returns a copy of the grid shape.
func (d *Dense) Shape() coord.Shape { return d.shape.Clone() }

// Sample returns the value stored at c.
// Complexity: O(D).
func (d *Dense) Sample(c coord.Coordinate) (float64, error) {
	idx, err := d.shape.Index(c)
	if err != nil {
		return 0, err
	}

	return d.data[idx], nil
}

// Set stores v at c. Not safe to call while other goroutines read the grid.
func (d *Dense) Set(c coord.Coordinate, v float64) error {
	if math.IsNaN(v) {
		return fmt.Errorf("value at %v: %w", c, ErrNaN)
	}
	idx, err := d.shape.Index(c)
	if err != nil {
		return err
	}
	d.data[idx] = v

	return nil
}

// Matrix returns a 2-D Dense as a gonum *mat.Dense (a copy).
// Returns coord.ErrDimensionMismatch for grids that are not two-dimensional.
func (d *Dense) Matrix() (*mat.Dense, error) {
	if d.shape.Dims() != 2 {
		return nil, fmt.Errorf("matrix view of shape %v: %w", []int(d.shape), coord.ErrDimensionMismatch)
	}
	buf := make([]float64, len(d.data))
	copy(buf, d.data)

	return mat.NewDense(d.shape[0], d.shape[1], buf), nil
}
