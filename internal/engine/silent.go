package engine

import (
	"sync"

	"github.com/ytget/swipeplayer/internal/model"
)

// Silent is an engine that plays nothing. Progress is left to the player's own clock.
type Silent struct {
	mu      sync.Mutex
	current Handle
	playing bool
	closed  bool
}

// NewSilent creates a silent engine
func NewSilent() *Silent {
	return &Silent{}
}

// Load returns a new handle for track
func (s *Silent) Load(model.Track) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	h := NewHandle()
	if !s.closed {
		s.current = h
		s.playing = false
	}
	return h
}

// Play marks h as playing
func (s *Silent) Play(h Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if h == s.current && !s.closed {
		s.playing = true
	}
}

// Pause marks h as paused
func (s *Silent) Pause(h Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if h == s.current {
		s.playing = false
	}
}

// Playing reports whether the current handle is playing
func (s *Silent) Playing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playing
}

// PositionFraction is never known
func (s *Silent) PositionFraction(Handle) (float64, bool) {
	return 0, false
}

// SetCallbacks is a no-op; a silent engine never finishes or fails
func (s *Silent) SetCallbacks(func(Handle), func(Handle, error)) {}

// Close stops the engine
func (s *Silent) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.closed = true
	s.playing = false
	return nil
}
