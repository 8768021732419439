package player

import (
	"fmt"
	"strings"
)

// DefaultTrackDurationSeconds is the nominal track length used by the progress clock
const DefaultTrackDurationSeconds = 261

// ProgressSource selects what drives the progress value
type ProgressSource int

const (
	// ProgressFromClock counts logical ticks against the nominal track length
	ProgressFromClock ProgressSource = iota
	// ProgressFromEngine samples the engine's playback position on every tick
	ProgressFromEngine
)

// String returns the string representation of ProgressSource
func (p ProgressSource) String() string {
	switch p {
	case ProgressFromClock:
		return "clock"
	case ProgressFromEngine:
		return "engine"
	default:
		return "unknown"
	}
}

// ParseProgressSource parses "clock" or "engine"
func ParseProgressSource(s string) (ProgressSource, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "clock":
		return ProgressFromClock, nil
	case "engine":
		return ProgressFromEngine, nil
	default:
		return ProgressFromClock, fmt.Errorf("unknown progress source %q", s)
	}
}

// Options configures a Machine
type Options struct {
	TrackDurationSeconds int
	ProgressSource       ProgressSource
}

// DefaultOptions returns the reference configuration
func DefaultOptions() Options {
	return Options{
		TrackDurationSeconds: DefaultTrackDurationSeconds,
		ProgressSource:       ProgressFromClock,
	}
}

// ClockState tells the progress clock whether to run. Gen changes on every
// play/pause flip and track change; ticks from an older generation are ignored.
type ClockState struct {
	Gen     uint64
	Running bool
}
