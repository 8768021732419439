package engine

import (
	"errors"

	"github.com/google/uuid"

	"github.com/ytget/swipeplayer/internal/model"
)

var (
	// ErrNoSource is returned for tracks without an audio locator
	ErrNoSource = errors.New("track has no audio source")
	// ErrUnsupportedFormat is returned for files the engine cannot decode
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	// ErrClosed is returned once the engine has been shut down
	ErrClosed = errors.New("engine closed")
)

// Handle identifies one loaded track
type Handle uuid.UUID

// NoHandle is the zero handle; it never refers to a loaded track
var NoHandle Handle

// NewHandle returns a fresh handle
func NewHandle() Handle {
	return Handle(uuid.New())
}

// IsZero reports whether h is NoHandle
func (h Handle) IsZero() bool {
	return h == NoHandle
}

// String returns the string representation of Handle
func (h Handle) String() string {
	return uuid.UUID(h).String()
}

// Engine is the playback backend seen by the player
type Engine interface {
	// Load prepares track for playback, paused, and returns its handle.
	// Loading replaces whatever was loaded before.
	Load(track model.Track) Handle
	Play(h Handle)
	Pause(h Handle)
	// PositionFraction returns elapsed/length for h when the engine knows it
	PositionFraction(h Handle) (float64, bool)
	// SetCallbacks registers the completion and failure hooks. Callbacks may run
	// on any goroutine and must not block.
	SetCallbacks(onFinished func(Handle), onFailure func(Handle, error))
	Close() error
}
