package sampling

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

var (
	// ErrBatchSize indicates a batch size below one.
	ErrBatchSize = errors.New("sampling: batch size must be >= 1")
	// ErrAccessorNil indicates a nil grid accessor.
	ErrAccessorNil = errors.New("sampling: grid accessor is nil")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("sampling: invalid option supplied")
)

// DefaultWorkers is the default number of concurrent grid reads.
const DefaultWorkers = 1

// Option configures a Sampler.
// Invalid values are recorded and surfaced as ErrOptionViolation by NewSampler.
type Option func(*Options)

// Options holds Sampler parameters.
type Options struct {
	// Rand is the source of coordinate draws. It is only used from the
	// goroutine calling Sample.
	Rand *rand.Rand

	// Workers bounds concurrent grid reads; 1 reads sequentially.
	Workers int

	err error
}

// DefaultOptions returns Options with a time-seeded RNG and sequential reads.
func DefaultOptions() Options {
	return Options{
		Rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
		Workers: DefaultWorkers,
	}
}

// WithRand sets the RNG used for coordinate draws. nil is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSeed seeds a fresh RNG, making the drawn batch reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithWorkers bounds concurrent grid reads. n must be ≥ 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}
