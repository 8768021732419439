package model

import (
	"fmt"
	"math"

	"github.com/samber/mo"
)

// PlaybackError is a recoverable engine failure attached to a track
type PlaybackError struct {
	TrackID int
	Err     error
}

// Error implements the error interface
func (e *PlaybackError) Error() string {
	return fmt.Sprintf("track %d: %v", e.TrackID, e.Err)
}

// Unwrap returns the underlying engine error
func (e *PlaybackError) Unwrap() error {
	return e.Err
}

// Snapshot is a read-only copy of the player state handed to the presentation layer.
// Tracks is shared with the store and must not be modified.
type Snapshot struct {
	Status       PlayerStatus
	Tracks       []Track
	CurrentIndex int
	CurrentTrack mo.Option[Track]
	IsPlaying    bool
	Progress     float64 // 0.0 to 1.0
	IsExpanded   bool
	Liked        map[int]struct{}
	Error        *PlaybackError
}

// HasTrack returns true if there is a current track
func (s Snapshot) HasTrack() bool {
	return s.CurrentTrack.IsPresent()
}

// IsLiked reports whether the track id is in the liked set
func (s Snapshot) IsLiked(trackID int) bool {
	_, ok := s.Liked[trackID]
	return ok
}

// IsCurrent reports whether index is the current track
func (s Snapshot) IsCurrent(index int) bool {
	return s.HasTrack() && s.CurrentIndex == index
}

// Elapsed returns elapsed seconds of the current track for the given duration
func (s Snapshot) Elapsed(durationSeconds int) int {
	return int(math.Round(s.Progress * float64(durationSeconds)))
}
