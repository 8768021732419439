// Package dispatch implements the logical thread of the player: a single ordered
// queue of callbacks drained by one goroutine. Other goroutines (animation frames,
// engine callbacks, the progress clock, UI handlers) never touch player state
// directly; they Post a closure and the queue runs it in issue order.
package dispatch

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// Queue is an unbounded FIFO of callbacks. Post never blocks.
type Queue struct {
	mu      sync.Mutex
	pending []func()
	wake    chan struct{}
	closed  bool
	log     *logrus.Entry
}

// New creates an empty queue
func New() *Queue {
	return &Queue{
		wake: make(chan struct{}, 1),
		log:  logrus.WithField("component", "dispatch"),
	}
}

// Post appends fn to the queue. It returns false if the queue is closed.
func (q *Queue) Post(fn func()) bool {
	if fn == nil {
		return false
	}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.pending = append(q.pending, fn)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
	return true
}

// Len returns the number of callbacks waiting to run
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Run drains the queue until ctx is cancelled or the queue is closed
func (q *Queue) Run(ctx context.Context) error {
	for {
		q.Drain()

		q.mu.Lock()
		closed := q.closed && len(q.pending) == 0
		q.mu.Unlock()
		if closed {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-q.wake:
		}
	}
}

// Drain runs every callback queued so far, including ones posted while draining,
// on the calling goroutine. It returns the number of callbacks run.
func (q *Queue) Drain() int {
	count := 0
	for {
		q.mu.Lock()
		batch := q.pending
		q.pending = nil
		q.mu.Unlock()

		if len(batch) == 0 {
			return count
		}
		for _, fn := range batch {
			q.run(fn)
			count++
		}
	}
}

// Close rejects further posts. Callbacks already queued still run.
func (q *Queue) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

func (q *Queue) run(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			q.log.Errorf("callback panicked: %v", r)
		}
	}()
	fn()
}
