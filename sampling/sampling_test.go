package sampling_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bcsd/coord"
	"github.com/katalvlaran/bcsd/grid"
	"github.com/katalvlaran/bcsd/sampling"
)

// rampGrid returns a 2-D grid whose value at (x,y) is x*cols+y.
func rampGrid(t *testing.T, rows, cols int) *grid.Dense {
	t.Helper()
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = float64(i)
	}
	g, err := grid.NewDense(coord.Shape{rows, cols}, data)
	require.NoError(t, err)

	return g
}

// failingGrid reports an error for every read.
type failingGrid struct{ shape coord.Shape }

var errRead = errors.New("read failed")

func (f failingGrid) Shape() coord.Shape                       { return f.shape }
func (f failingGrid) Sample(coord.Coordinate) (float64, error) { return 0, errRead }

func TestEstimateBatchSize(t *testing.T) {
	cases := []struct {
		shape coord.Shape
		want  int
	}{
		{coord.Shape{10, 10}, 14},     // 100·0.1 + ⌊ln 100⌋ = 10 + 4
		{coord.Shape{1}, 1},           // 1 + ⌊ln 1⌋ = 1
		{coord.Shape{100}, 104},       // 100 + ⌊4.605⌋
		{coord.Shape{10, 10, 10}, 16}, // 1000·0.01 + ⌊6.907⌋ = 10 + 6
		{coord.Shape{50, 50}, 257},    // 2500·0.1 + ⌊7.824⌋ = 250 + 7
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, sampling.EstimateBatchSize(tc.shape), "shape %v", tc.shape)
		assert.Equal(t, tc.want, sampling.EstimateBatchSize(tc.shape), "shape %v must be pure", tc.shape)
	}
}

func TestEstimateBatchSize_NeverBelowOne(t *testing.T) {
	// 2^20 cells over 20 dimensions: the power term underflows to 0
	shape := make(coord.Shape, 20)
	for i := range shape {
		shape[i] = 2
	}
	assert.GreaterOrEqual(t, sampling.EstimateBatchSize(shape), 1)
}

func TestSample_ValuesMatchGrid(t *testing.T) {
	g := rampGrid(t, 8, 8)
	s, err := sampling.NewSampler(sampling.WithSeed(7))
	require.NoError(t, err)

	b, err := s.Sample(context.Background(), g, 30)
	require.NoError(t, err)
	assert.Equal(t, 30, b.Draws)
	require.NotEmpty(t, b.Samples)
	assert.LessOrEqual(t, len(b.Samples), 30)

	lo, hi := b.Samples[0].Value, b.Samples[0].Value
	for _, smp := range b.Samples {
		require.True(t, g.Shape().Contains(smp.Coord))
		v, err := g.Sample(smp.Coord)
		require.NoError(t, err)
		assert.Equal(t, v, smp.Value)
		lo, hi = min(lo, smp.Value), max(hi, smp.Value)
	}
	assert.Equal(t, lo, b.Threshold.Min())
	assert.Equal(t, hi, b.Threshold.Max())
}

// TestSample_DuplicatesCollapse draws repeatedly from a single-cell grid.
func TestSample_DuplicatesCollapse(t *testing.T) {
	g, err := grid.NewDense(coord.Shape{1, 1}, []float64{0.25})
	require.NoError(t, err)
	s, err := sampling.NewSampler(sampling.WithSeed(1))
	require.NoError(t, err)

	b, err := s.Sample(context.Background(), g, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, b.Draws)
	require.Len(t, b.Samples, 1)
	assert.Equal(t, coord.Coordinate{0, 0}, b.Samples[0].Coord)

	on, err := b.On()
	require.NoError(t, err)
	assert.Equal(t, []coord.Coordinate{{0, 0}}, on, "a single value sits on its own midpoint")
}

// TestSample_SeedIndependentOfWorkers checks that parallel reads do not
// perturb the drawn batch.
func TestSample_SeedIndependentOfWorkers(t *testing.T) {
	g := rampGrid(t, 20, 20)

	seq, err := sampling.NewSampler(sampling.WithSeed(42))
	require.NoError(t, err)
	par, err := sampling.NewSampler(sampling.WithRand(rand.New(rand.NewSource(42))), sampling.WithWorkers(8))
	require.NoError(t, err)

	a, err := seq.Sample(context.Background(), g, 64)
	require.NoError(t, err)
	b, err := par.Sample(context.Background(), g, 64)
	require.NoError(t, err)

	if diff := cmp.Diff(a.Samples, b.Samples); diff != "" {
		t.Errorf("samples differ between 1 and 8 workers (-seq +par):\n%s", diff)
	}
	assert.Equal(t, a.Threshold, b.Threshold)
}

func TestBatch_OnUsesMidpoint(t *testing.T) {
	g, err := grid.NewDense(coord.Shape{4}, []float64{0, 1, 0, 1})
	require.NoError(t, err)
	s, err := sampling.NewSampler(sampling.WithSeed(3))
	require.NoError(t, err)

	b, err := s.Sample(context.Background(), g, 200)
	require.NoError(t, err)
	require.Len(t, b.Samples, 4, "200 draws over 4 cells should hit every cell")

	on, err := b.On()
	require.NoError(t, err)
	assert.ElementsMatch(t, []coord.Coordinate{{1}, {3}}, on)
}

func TestSample_Errors(t *testing.T) {
	s, err := sampling.NewSampler(sampling.WithSeed(1))
	require.NoError(t, err)
	ctx := context.Background()

	_, err = s.Sample(ctx, nil, 3)
	assert.ErrorIs(t, err, sampling.ErrAccessorNil)

	_, err = s.Sample(ctx, rampGrid(t, 2, 2), 0)
	assert.ErrorIs(t, err, sampling.ErrBatchSize)

	_, err = s.Sample(ctx, failingGrid{shape: coord.Shape{3, 3}}, 3)
	assert.ErrorIs(t, err, errRead)

	_, err = s.Sample(ctx, failingGrid{shape: coord.Shape{0}}, 3)
	assert.ErrorIs(t, err, coord.ErrBadShape)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = s.Sample(canceled, rampGrid(t, 2, 2), 3)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewSampler_OptionViolation(t *testing.T) {
	_, err := sampling.NewSampler(sampling.WithWorkers(0))
	assert.ErrorIs(t, err, sampling.ErrOptionViolation)

	s, err := sampling.NewSampler(sampling.WithRand(nil))
	require.NoError(t, err)
	assert.NotNil(t, s)
}
