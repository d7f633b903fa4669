package sampling

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/bcsd/coord"
	"github.com/katalvlaran/bcsd/grid"
	"github.com/katalvlaran/bcsd/threshold"
)

// EstimateBatchSize returns floor(V·0.1^(D−1)) + floor(ln V) for the given
// shape, clamped to at least 1. The shape is assumed valid.
// Example: shape (10,10) → 10 + 4 = 14.
// Complexity: O(D).
func EstimateBatchSize(shape coord.Shape) int {
	v := float64(shape.Volume())
	d := float64(shape.Dims())
	batch := int(v*math.Pow(0.1, d-1)) + int(math.Log(v))
	if batch < 1 {
		batch = 1
	}

	return batch
}

// Sample is one observed cell.
type Sample struct {
	Coord coord.Coordinate
	Value float64
}

// Batch is the outcome of one sampling pass.
type Batch struct {
	// Samples holds one entry per distinct drawn coordinate, in order of
	// first draw. A repeated draw overwrites the value in place.
	Samples []Sample
	// Threshold spans the values in Samples.
	Threshold threshold.Threshold
	// Draws is the number of coordinates drawn, duplicates included.
	Draws int
}

// On returns the coordinates of Samples that classify as "on", in sample order.
func (b *Batch) On() ([]coord.Coordinate, error) {
	var out []coord.Coordinate
	for _, s := range b.Samples {
		on, err := b.Threshold.IsOn(s.Value)
		if err != nil {
			return nil, err
		}
		if on {
			out = append(out, s.Coord)
		}
	}

	return out, nil
}

// Sampler draws random batches from a grid.
type Sampler struct {
	opts Options
}

// NewSampler applies opts over DefaultOptions.
// Returns ErrOptionViolation for invalid options.
func NewSampler(opts ...Option) (*Sampler, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Sampler{opts: o}, nil
}

// Sample draws batch coordinates, each dimension uniform in [0, shape[i]),
// with replacement, and reads their values from g.
// The context is checked before every read; the first read error cancels the
// remaining reads and is returned.
func (s *Sampler) Sample(ctx context.Context, g grid.Accessor, batch int) (*Batch, error) {
	if g == nil {
		return nil, ErrAccessorNil
	}
	if batch < 1 {
		return nil, fmt.Errorf("batch %d: %w", batch, ErrBatchSize)
	}
	shape := g.Shape()
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("sampling: %w", err)
	}

	// 1) draw all coordinates from the single RNG
	draws := make([]coord.Coordinate, batch)
	for i := range draws {
		c := make(coord.Coordinate, len(shape))
		for d, n := range shape {
			c[d] = s.opts.Rand.Intn(n)
		}
		draws[i] = c
	}

	// 2) read values; each draw is independent
	values := make([]float64, batch)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(s.opts.Workers)
	for i := range draws {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			v, err := g.Sample(draws[i])
			if err != nil {
				return fmt.Errorf("sampling: read %v: %w", draws[i], err)
			}
			values[i] = v

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 3) merge barrier: collapse duplicates, then reduce min/max
	return merge(shape, draws, values)
}

// merge collapses repeated coordinates (first position kept, last value wins)
// and computes the Threshold over the distinct samples.
func merge(shape coord.Shape, draws []coord.Coordinate, values []float64) (*Batch, error) {
	pos := make(map[int]int, len(draws))
	samples := make([]Sample, 0, len(draws))
	for i, c := range draws {
		idx, err := shape.Index(c)
		if err != nil {
			return nil, err
		}
		if p, ok := pos[idx]; ok {
			samples[p].Value = values[i]
			continue
		}
		pos[idx] = len(samples)
		samples = append(samples, Sample{Coord: c, Value: values[i]})
	}

	distinct := make([]float64, len(samples))
	for i, smp := range samples {
		distinct[i] = smp.Value
	}
	th, err := threshold.FromValues(distinct)
	if err != nil {
		return nil, err
	}

	return &Batch{Samples: samples, Threshold: th, Draws: len(draws)}, nil
}
