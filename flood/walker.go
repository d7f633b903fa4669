package flood

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/bcsd/coord"
	"github.com/katalvlaran/bcsd/frontier"
	"github.com/katalvlaran/bcsd/neighbor"
	"github.com/katalvlaran/bcsd/threshold"
)

// walker encapsulates the mutable state of one drain.
type walker struct {
	e       *Engine
	ctx     context.Context
	th      threshold.Threshold
	offsets [][]int
	queue   *frontier.Queue

	mu    sync.Mutex // guards out
	out   []coord.Coordinate
	reads atomic.Int64
}

// newWalker validates the distance, then claims every seed in order.
func (e *Engine) newWalker(ctx context.Context, th threshold.Threshold, seeds []coord.Coordinate) (*walker, error) {
	if err := neighbor.CheckDistance(e.opts.Distance); err != nil {
		return nil, err
	}
	w := &walker{
		e:       e,
		ctx:     ctx,
		th:      th,
		offsets: neighbor.Offsets(e.shape.Dims()),
		queue:   frontier.New(len(seeds)),
		out:     make([]coord.Coordinate, 0, len(seeds)),
	}
	for _, s := range seeds {
		idx, err := e.shape.Index(s)
		if err != nil {
			return nil, fmt.Errorf("flood: seed: %w", err)
		}
		w.queue.Push(idx)
	}

	return w, nil
}

// run drains the queue with the configured number of workers.
func (w *walker) run() error {
	eg, egCtx := errgroup.WithContext(w.ctx)
	// wake blocked workers as soon as one fails or the caller cancels
	stop := context.AfterFunc(egCtx, w.queue.Close)
	defer stop()

	for i := 0; i < w.e.opts.Workers; i++ {
		eg.Go(func() error { return w.loop(egCtx) })
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	return w.ctx.Err()
}

// loop processes the queue until it drains, fails or is cancelled.
func (w *walker) loop(ctx context.Context) error {
	for {
		idx, ok, err := w.queue.Pop(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		err = w.expand(idx)
		w.queue.Done()
		if err != nil {
			return err
		}
	}
}

// expand appends idx to the bCSD, then reads, classifies and claims its
// neighbors. Neighbor values always come from the grid, never from samples.
func (w *walker) expand(idx int) error {
	c, err := w.e.shape.Coordinate(idx)
	if err != nil {
		return err
	}
	w.visit(c)
	if err := w.e.opts.OnVisit(c); err != nil {
		return fmt.Errorf("flood: OnVisit error at %v: %w", c, err)
	}

	for _, nb := range neighbor.Apply(c, w.e.shape, w.offsets) {
		v, err := w.e.grid.Sample(nb)
		w.reads.Add(1)
		w.e.opts.Metrics.read()
		if err != nil {
			return fmt.Errorf("flood: read %v: %w", nb, err)
		}
		on, err := w.th.IsOn(v)
		if err != nil {
			return err
		}
		if !on {
			continue
		}
		nidx, err := w.e.shape.Index(nb)
		if err != nil {
			return err
		}
		if !w.queue.Push(nidx) {
			w.e.opts.Metrics.rejected()
		}
	}

	return nil
}

// visit appends c to the bCSD.
func (w *walker) visit(c coord.Coordinate) {
	w.mu.Lock()
	w.out = append(w.out, c)
	w.mu.Unlock()
	w.e.opts.Metrics.visited()
}
