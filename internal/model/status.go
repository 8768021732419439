package model

// PlayerStatus represents the coarse state of the player state machine
type PlayerStatus string

const (
	// PlayerStatusIdle means no tracks are loaded
	PlayerStatusIdle PlayerStatus = "Idle"

	// PlayerStatusReady means tracks are loaded and one of them is current
	PlayerStatusReady PlayerStatus = "Ready"
)

// String returns the string representation of PlayerStatus
func (ps PlayerStatus) String() string {
	return string(ps)
}

// HasContent returns true if the player has a current track
func (ps PlayerStatus) HasContent() bool {
	return ps == PlayerStatusReady
}

// LibraryStatus represents the state of the device media library
type LibraryStatus string

const (
	// LibraryStatusUnknown means access has not been resolved yet
	LibraryStatusUnknown LibraryStatus = "Unknown"

	// LibraryStatusLoading means tracks are being enumerated
	LibraryStatusLoading LibraryStatus = "Loading"

	// LibraryStatusReady means enumeration finished (possibly with zero tracks)
	LibraryStatusReady LibraryStatus = "Ready"

	// LibraryStatusDenied means the library could not be read
	LibraryStatusDenied LibraryStatus = "Denied"
)

// String returns the string representation of LibraryStatus
func (ls LibraryStatus) String() string {
	return string(ls)
}

// IsSettled returns true once enumeration has produced a final answer
func (ls LibraryStatus) IsSettled() bool {
	return ls == LibraryStatusReady || ls == LibraryStatusDenied
}

// Direction selects the neighbour track for AdvanceTrack
type Direction int

const (
	DirectionNext Direction = iota
	DirectionPrev
)

// String returns a human-friendly name for the direction
func (d Direction) String() string {
	switch d {
	case DirectionNext:
		return "next"
	case DirectionPrev:
		return "prev"
	default:
		return "unknown"
	}
}

// Pulse identifies a one-shot scale animation triggered by a user action
type Pulse int

const (
	// PulsePlayButton is the press feedback on the play/pause button
	PulsePlayButton Pulse = iota

	// PulseHeart is the like feedback on the heart button
	PulseHeart
)

// String returns a human-friendly name for the pulse
func (p Pulse) String() string {
	switch p {
	case PulsePlayButton:
		return "play_button"
	case PulseHeart:
		return "heart"
	default:
		return "unknown"
	}
}
