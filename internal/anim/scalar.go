package anim

import (
	"math"
	"sync/atomic"
)

// Scalar is a float64 cell that can be read and written from any goroutine
// without further synchronization.
type Scalar struct {
	bits atomic.Uint64
}

// NewScalar creates a scalar holding v
func NewScalar(v float64) *Scalar {
	s := &Scalar{}
	s.Store(v)
	return s
}

// Load returns the current value
func (s *Scalar) Load() float64 {
	return math.Float64frombits(s.bits.Load())
}

// Store replaces the current value
func (s *Scalar) Store(v float64) {
	s.bits.Store(math.Float64bits(v))
}
