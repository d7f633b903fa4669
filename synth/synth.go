// Package synth builds synthetic charge-stability fields for tests, examples
// and benchmarks.
//
//   - Diagonal: an identity matrix plus rounded half-normal noise, a single
//     transition line along the main diagonal.
//   - Hyperplanes: an n-dimensional cube tiling in which every cell with a
//     coordinate divisible by the period lies on a transition hyperplane.
//     The resulting manifold is connected, cyclic and branching.
package synth

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/bcsd/coord"
	"github.com/katalvlaran/bcsd/grid"
)

var (
	// ErrSize indicates a non-positive grid size.
	ErrSize = errors.New("synth: size must be > 0")
	// ErrSigma indicates a negative noise standard deviation.
	ErrSigma = errors.New("synth: sigma must be >= 0")
	// ErrPeriod indicates a non-positive hyperplane period.
	ErrPeriod = errors.New("synth: period must be > 0")
	// ErrNeedRandSource indicates that noise was requested without an RNG.
	ErrNeedRandSource = errors.New("synth: rng is required when sigma > 0")
)

// Diagonal returns a size×size grid holding 1 on the main diagonal and 0
// elsewhere, plus |N(0, sigma)| noise rounded to two decimals on every cell.
// sigma == 0 yields the exact identity and does not need rng.
func Diagonal(size int, sigma float64, rng *rand.Rand) (*grid.Dense, error) {
	if size <= 0 {
		return nil, fmt.Errorf("size %d: %w", size, ErrSize)
	}
	if sigma < 0 || math.IsNaN(sigma) {
		return nil, fmt.Errorf("sigma %v: %w", sigma, ErrSigma)
	}
	if sigma > 0 && rng == nil {
		return nil, ErrNeedRandSource
	}

	var noise func() float64
	if sigma > 0 {
		n := distuv.Normal{Mu: 0, Sigma: sigma, Src: rng}
		noise = func() float64 { return math.Round(math.Abs(n.Rand())*100) / 100 }
	} else {
		noise = func() float64 { return 0 }
	}

	data := make([]float64, size*size)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			v := noise()
			if i == j {
				v++
			}
			data[i*size+j] = v
		}
	}

	return grid.NewDense(coord.Shape{size, size}, data)
}

// Hyperplanes returns a grid of the given shape holding 1 wherever any
// coordinate is a multiple of period and 0 elsewhere.
func Hyperplanes(shape coord.Shape, period int) (*grid.Dense, error) {
	if period <= 0 {
		return nil, fmt.Errorf("period %d: %w", period, ErrPeriod)
	}
	d, err := grid.Zeros(shape)
	if err != nil {
		return nil, err
	}
	for idx := 0; idx < shape.Volume(); idx++ {
		c, err := shape.Coordinate(idx)
		if err != nil {
			return nil, err
		}
		if OnHyperplane(c, period) {
			if err := d.Set(c, 1); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}

// OnHyperplane reports whether c lies on a Hyperplanes transition.
func OnHyperplane(c coord.Coordinate, period int) bool {
	for _, x := range c {
		if x%period == 0 {
			return true
		}
	}

	return false
}
