package model

import (
	"errors"
	"testing"

	"github.com/samber/mo"
)

func TestSnapshot_EmptyHasNoTrack(t *testing.T) {
	snap := Snapshot{Status: PlayerStatusIdle, CurrentTrack: mo.None[Track]()}

	if snap.HasTrack() {
		t.Error("Idle snapshot should not have a current track")
	}
	if snap.IsCurrent(0) {
		t.Error("Idle snapshot should not report index 0 as current")
	}
}

func TestSnapshot_IsLiked(t *testing.T) {
	snap := Snapshot{Liked: map[int]struct{}{1: {}, 3: {}}}

	if !snap.IsLiked(1) || !snap.IsLiked(3) {
		t.Error("Expected ids 1 and 3 to be liked")
	}
	if snap.IsLiked(2) {
		t.Error("Expected id 2 not to be liked")
	}
}

func TestSnapshot_Elapsed(t *testing.T) {
	snap := Snapshot{Progress: 0.5}
	if got := snap.Elapsed(260); got != 130 {
		t.Errorf("Elapsed(260) = %d, expected 130", got)
	}
}

func TestPlaybackError_Unwrap(t *testing.T) {
	cause := errors.New("decode failed")
	err := &PlaybackError{TrackID: 7, Err: cause}

	if !errors.Is(err, cause) {
		t.Error("PlaybackError should unwrap to its cause")
	}
	if err.Error() != "track 7: decode failed" {
		t.Errorf("Unexpected error text: %s", err.Error())
	}
}
