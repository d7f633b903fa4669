package flood

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/bcsd/coord"
	"github.com/katalvlaran/bcsd/grid"
	"github.com/katalvlaran/bcsd/sampling"
	"github.com/katalvlaran/bcsd/threshold"
)

// Engine compresses one grid into its bCSD. It holds no per-run state, so
// Run may be called repeatedly; concurrent Runs are safe unless they share a
// WithRand source.
type Engine struct {
	grid  grid.Accessor
	shape coord.Shape
	opts  Options
}

// Result describes one completed run.
type Result struct {
	RunID       uuid.UUID
	Coordinates []coord.Coordinate // the bCSD, in visit order
	BatchSize   int                // draws requested from the sampler
	Samples     int                // distinct sampled coordinates
	Seeds       int                // samples classified "on"
	Threshold   threshold.Threshold
	GridReads   int64 // neighbor reads during the flood
	Duration    time.Duration
}

// New validates g's shape and opts and returns an Engine.
// Returns ErrGridNil, ErrOptionViolation or a coord shape error.
func New(g grid.Accessor, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	shape := g.Shape()
	if err := shape.Validate(); err != nil {
		return nil, err
	}

	return &Engine{grid: g, shape: shape, opts: o}, nil
}

// Shape returns the grid shape the engine was built for.
func (e *Engine) Shape() coord.Shape { return e.shape.Clone() }

// Run executes the full pipeline and returns the bCSD.
// On error the partial bCSD is discarded and nil is returned.
func (e *Engine) Run(ctx context.Context) ([]coord.Coordinate, error) {
	res, err := e.RunDetailed(ctx)
	if err != nil {
		return nil, err
	}

	return res.Coordinates, nil
}

// RunDetailed is Run with run statistics.
func (e *Engine) RunDetailed(ctx context.Context) (res *Result, err error) {
	start := time.Now()
	runID := uuid.New()
	log := e.opts.Logger.With().Str("run_id", runID.String()).Logger()
	defer func() {
		elapsed := time.Since(start)
		e.opts.Metrics.finished(err, elapsed)
		if err != nil {
			log.Error().Err(err).Dur("elapsed", elapsed).Msg("bcsd run failed")
		}
	}()

	// 1) batch size
	batch := e.opts.BatchSize
	if batch == 0 {
		batch = sampling.EstimateBatchSize(e.shape)
	}
	log.Debug().Ints("shape", []int(e.shape)).Int("batch_size", batch).Msg("sampling batch size")

	// 2) sample and seed
	sampler, err := sampling.NewSampler(
		sampling.WithRand(e.rng()),
		sampling.WithWorkers(e.opts.Workers),
	)
	if err != nil {
		return nil, err
	}
	b, err := sampler.Sample(ctx, e.grid, batch)
	if err != nil {
		return nil, err
	}
	e.opts.Metrics.sampled(b.Draws)
	seeds, err := b.On()
	if err != nil {
		return nil, err
	}
	log.Debug().
		Float64("min", b.Threshold.Min()).
		Float64("max", b.Threshold.Max()).
		Int("samples", len(b.Samples)).
		Int("seeds", len(seeds)).
		Msg("threshold estimated")

	// 3) drain
	w, err := e.newWalker(ctx, b.Threshold, seeds)
	if err != nil {
		return nil, err
	}
	if err := w.run(); err != nil {
		return nil, err
	}

	res = &Result{
		RunID:       runID,
		Coordinates: w.out,
		BatchSize:   batch,
		Samples:     len(b.Samples),
		Seeds:       len(seeds),
		Threshold:   b.Threshold,
		GridReads:   w.reads.Load(),
		Duration:    time.Since(start),
	}
	log.Info().
		Int("bcsd_size", len(res.Coordinates)).
		Int64("grid_reads", res.GridReads).
		Dur("elapsed", res.Duration).
		Msg("bcsd run complete")

	return res, nil
}

// Flood drains a fresh frontier seeded with seeds, classifying neighbors
// with th. Seeds are claimed in order; repeated seeds are ignored.
// Returns threshold.ErrNotReady for a zero th and coord errors for seeds
// outside the grid.
func (e *Engine) Flood(ctx context.Context, th threshold.Threshold, seeds []coord.Coordinate) ([]coord.Coordinate, error) {
	if !th.Ready() {
		return nil, threshold.ErrNotReady
	}
	w, err := e.newWalker(ctx, th, seeds)
	if err != nil {
		return nil, err
	}
	if err := w.run(); err != nil {
		return nil, err
	}

	return w.out, nil
}

// rng returns the RNG for one run.
func (e *Engine) rng() *rand.Rand {
	switch {
	case e.opts.Seed != nil:
		return rand.New(rand.NewSource(*e.opts.Seed))
	case e.opts.Rand != nil:
		return e.opts.Rand
	default:
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
}
