package flood

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/bcsd/coord"
)

// Sentinel errors for engine construction.
var (
	// ErrGridNil is returned if a nil accessor is passed to New.
	ErrGridNil = errors.New("flood: grid accessor is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("flood: invalid option supplied")
)

// Defaults.
const (
	// DefaultDistance is the only neighbor distance currently supported.
	DefaultDistance = 1

	// DefaultWorkers keeps the reference, strictly sequential drain order.
	DefaultWorkers = 1
)

// Option configures an Engine via functional arguments.
// If an Option is invalid it is recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds Engine parameters and hooks.
type Options struct {
	// BatchSize overrides the estimated sampling batch when > 0.
	BatchSize int

	// Distance is the Chebyshev neighbor distance. Only 1 is implemented;
	// other values fail the run with the neighbor package errors.
	Distance int

	// Workers is the number of goroutines reading the grid, both for
	// sampling and for draining the frontier.
	Workers int

	// Rand, if set, is shared by successive runs.
	Rand *rand.Rand

	// Seed, if set, gives every run a fresh RNG seeded with *Seed, so
	// repeated runs draw identical batches.
	Seed *int64

	// Logger receives diagnostics. Defaults to a no-op logger.
	Logger zerolog.Logger

	// Metrics, if non-nil, is updated during runs.
	Metrics *Metrics

	// OnVisit is called for every coordinate appended to the bCSD. Returning
	// an error aborts the run. With several workers it is called concurrently.
	OnVisit func(c coord.Coordinate) error

	err error
}

// DefaultOptions returns Options with sane defaults:
//   - estimated batch size
//   - distance 1
//   - one worker
//   - time-seeded RNG per run
//   - no-op logger, no metrics, no-op OnVisit
func DefaultOptions() Options {
	return Options{
		Distance: DefaultDistance,
		Workers:  DefaultWorkers,
		Logger:   zerolog.Nop(),
		OnVisit:  func(coord.Coordinate) error { return nil },
	}
}

// WithBatchSize fixes the sampling batch instead of estimating it.
//
//	n > 0: use n draws
//	n == 0: estimate from the grid shape
//	n < 0: invalid → ErrOptionViolation
func WithBatchSize(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: batch size cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.BatchSize = n
	}
}

// WithDistance sets the neighbor distance. Any value is accepted here; the
// run fails if the neighbor package cannot enumerate it.
func WithDistance(d int) Option {
	return func(o *Options) {
		o.Distance = d
	}
}

// WithWorkers sets the number of concurrent grid readers; n must be ≥ 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithRand shares r across runs. nil is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
			o.Seed = nil
		}
	}
}

// WithSeed reseeds the RNG at the start of every run.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = &seed
		o.Rand = nil
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithMetrics enables Prometheus instrumentation.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}

// WithOnVisit registers a callback run for every bCSD coordinate.
func WithOnVisit(fn func(c coord.Coordinate) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
