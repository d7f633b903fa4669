// Package frontier provides the work queue that drives a flood: a FIFO of
// linear cell indices in which every cell moves through three states,
//
//	Unseen ──Push──▶ Queued ──Pop──▶ Visited
//
// and never moves backwards. Push succeeds only from Unseen, so a cell is
// claimed at most once per Queue lifetime however many workers discover it.
// All transitions happen under one mutex, which makes check-and-claim a single
// atomic step.
//
// Pop blocks while the queue is empty but some worker still holds a popped
// cell (its expansion may push more work). It reports ok == false once the
// queue is empty and no popped cell is outstanding, which is the flood's
// termination condition for any number of workers.
//
// State is kept in a map rather than a volume-sized table: a flood touches
// only the transition manifold and its rim, a vanishing fraction of the grid.
package frontier

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned by Pop after Close.
var ErrClosed = errors.New("frontier: queue closed")

// State is the lifecycle position of one cell.
type State uint8

const (
	// Unseen cells were never pushed.
	Unseen State = iota
	// Queued cells wait in the queue.
	Queued
	// Visited cells were popped.
	Visited
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Unseen:
		return "unseen"
	case Queued:
		return "queued"
	case Visited:
		return "visited"
	default:
		return "unknown"
	}
}

// Queue is a concurrency-safe FIFO with per-cell claim states.
type Queue struct {
	mu       sync.Mutex
	cond     *sync.Cond
	states   map[int]State
	items    []int
	active   int // popped but not yet Done
	closed   bool
	rejected int
}

// New returns an empty Queue. sizeHint pre-sizes the state table.
func New(sizeHint int) *Queue {
	if sizeHint < 0 {
		sizeHint = 0
	}
	q := &Queue{states: make(map[int]State, sizeHint)}
	q.cond = sync.NewCond(&q.mu)

	return q
}

// Push claims idx and appends it to the queue. It returns false, leaving the
// queue untouched, if idx is already Queued or Visited or the queue is closed.
func (q *Queue) Push(idx int) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return false
	}
	if q.states[idx] != Unseen {
		q.rejected++
		return false
	}
	q.states[idx] = Queued
	q.items = append(q.items, idx)
	q.cond.Signal()

	return true
}

// Pop removes the oldest queued index and marks it Visited. The caller must
// call Done once it has finished pushing the cell's successors.
//
// Pop blocks while the queue is empty and other popped cells are outstanding.
// It returns ok == false when the queue has drained, ctx.Err() once ctx ends
// (checked on every wake-up) or ErrClosed after Close.
func (q *Queue) Pop(ctx context.Context) (idx int, ok bool, err error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for {
		if err := ctx.Err(); err != nil {
			return 0, false, err
		}
		if q.closed {
			return 0, false, ErrClosed
		}
		if len(q.items) > 0 {
			idx = q.items[0]
			q.items = q.items[1:]
			q.states[idx] = Visited
			q.active++

			return idx, true, nil
		}
		if q.active == 0 {
			// drained: wake any other waiter so it can observe the same
			q.cond.Broadcast()
			return 0, false, nil
		}
		q.cond.Wait()
	}
}

// Done records that the expansion of one popped cell is finished.
func (q *Queue) Done() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.active > 0 {
		q.active--
	}
	if q.active == 0 && len(q.items) == 0 {
		q.cond.Broadcast()
	}
}

// Close wakes every blocked Pop, which then returns ErrClosed. Further
// pushes are ignored. Close is idempotent.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.closed = true
	q.cond.Broadcast()
}

// State returns the current state of idx.
func (q *Queue) State(idx int) State {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.states[idx]
}

// Len returns the number of queued, not yet popped, indices.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.items)
}

// Claimed returns how many distinct indices were ever pushed.
func (q *Queue) Claimed() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.states)
}

// Rejected returns how many pushes were refused because the index had already
// been claimed.
func (q *Queue) Rejected() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.rejected
}
