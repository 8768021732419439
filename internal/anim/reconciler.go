package anim

import "sync"

// BoundEpsilon is how close y must get to a bound to count as having reached it
const BoundEpsilon = 0.5

// Reconciler turns the continuous surface position into the discrete expanded flag.
// The flag flips only when y reaches a bound and each flip is posted exactly once.
type Reconciler struct {
	mu       sync.Mutex
	expanded bool
	post     func(expanded bool)
	writes   int
}

// NewReconciler creates a reconciler starting from the given flag. post is called
// on every flip and must hand the value to the logical thread without blocking.
func NewReconciler(initial bool, post func(expanded bool)) *Reconciler {
	return &Reconciler{expanded: initial, post: post}
}

// Observe classifies y against the bounds and posts a change if the flag flipped
func (r *Reconciler) Observe(y, expandedOffset, collapsedOffset float64) {
	var next bool
	switch {
	case y <= expandedOffset+BoundEpsilon:
		next = true
	case y >= collapsedOffset-BoundEpsilon:
		next = false
	default:
		return
	}

	r.mu.Lock()
	if next == r.expanded {
		r.mu.Unlock()
		return
	}
	r.expanded = next
	r.writes++
	post := r.post
	r.mu.Unlock()

	if post != nil {
		post(next)
	}
}

// Expanded returns the last posted flag
func (r *Reconciler) Expanded() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.expanded
}

// Writes returns how many flips have been posted
func (r *Reconciler) Writes() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.writes
}
