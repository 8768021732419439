package player

import (
	"maps"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/sirupsen/logrus"

	"github.com/ytget/swipeplayer/internal/engine"
	"github.com/ytget/swipeplayer/internal/model"
)

// Machine is the player state machine
type Machine struct {
	engine engine.Engine
	opts   Options

	tracks   []model.Track
	index    int
	playing  bool
	elapsed  int
	progress float64
	expanded bool
	liked    map[int]struct{}
	seeded   bool
	err      *model.PlaybackError

	handle   engine.Handle
	loadedID int
	gen      uint64

	onUpdate        func(model.Snapshot)
	onPulse         func(model.Pulse)
	onClock         func(ClockState)
	onExpandRequest func()

	log *logrus.Entry
}

// NewMachine creates an idle machine driving eng
func NewMachine(eng engine.Engine, opts Options) *Machine {
	if opts.TrackDurationSeconds < 1 {
		opts.TrackDurationSeconds = DefaultTrackDurationSeconds
	}
	return &Machine{
		engine: eng,
		opts:   opts,
		liked:  make(map[int]struct{}),
		log:    logrus.WithField("component", "player"),
	}
}

// SetUpdateCallback sets the callback receiving a snapshot after every change
func (m *Machine) SetUpdateCallback(callback func(model.Snapshot)) {
	m.onUpdate = callback
}

// SetPulseCallback sets the callback receiving pulse animation triggers
func (m *Machine) SetPulseCallback(callback func(model.Pulse)) {
	m.onPulse = callback
}

// SetClockCallback sets the callback controlling the progress clock
func (m *Machine) SetClockCallback(callback func(ClockState)) {
	m.onClock = callback
}

// SetExpandRequestCallback sets the callback asking the surface to expand
func (m *Machine) SetExpandRequestCallback(callback func()) {
	m.onExpandRequest = callback
}

// Status returns Idle when there are no tracks
func (m *Machine) Status() model.PlayerStatus {
	if len(m.tracks) == 0 {
		return model.PlayerStatusIdle
	}
	return model.PlayerStatusReady
}

// Clock returns the current clock state
func (m *Machine) Clock() ClockState {
	return ClockState{Gen: m.gen, Running: m.clockRunning()}
}

// Snapshot returns a copy of the current state
func (m *Machine) Snapshot() model.Snapshot {
	current := mo.None[model.Track]()
	if len(m.tracks) > 0 {
		current = mo.Some(m.tracks[m.index])
	}
	return model.Snapshot{
		Status:       m.Status(),
		Tracks:       m.tracks,
		CurrentIndex: m.index,
		CurrentTrack: current,
		IsPlaying:    m.playing,
		Progress:     m.progress,
		IsExpanded:   m.expanded,
		Liked:        maps.Clone(m.liked),
		Error:        m.err,
	}
}

// TogglePlayPause flips between playing and paused
func (m *Machine) TogglePlayPause() {
	if len(m.tracks) == 0 {
		return
	}

	m.playing = !m.playing
	if m.playing {
		m.err = nil
		m.ensureLoaded()
		m.engine.Play(m.handle)
	} else if !m.handle.IsZero() {
		m.engine.Pause(m.handle)
	}

	m.log.WithField("playing", m.playing).Debug("play state toggled")
	m.restartClock()
	m.pulse(model.PulsePlayButton)
	m.notify()
}

// SelectTrack makes index current and starts playing it. Selecting the current
// track only asks the surface to expand.
func (m *Machine) SelectTrack(index int) {
	if index < 0 || index >= len(m.tracks) {
		return
	}
	if index == m.index {
		if m.onExpandRequest != nil {
			m.onExpandRequest()
		}
		return
	}
	m.switchTo(index)
}

// AdvanceTrack moves to the neighbour track, wrapping at both ends
func (m *Machine) AdvanceTrack(direction model.Direction) {
	n := len(m.tracks)
	if n == 0 {
		return
	}

	next := (m.index + 1) % n
	if direction == model.DirectionPrev {
		next = (m.index - 1 + n) % n
	}
	m.switchTo(next)
}

// ToggleLike adds or removes trackID from the liked set
func (m *Machine) ToggleLike(trackID int) {
	if !m.hasTrackID(trackID) {
		return
	}

	if _, ok := m.liked[trackID]; ok {
		delete(m.liked, trackID)
	} else {
		m.liked[trackID] = struct{}{}
		m.pulse(model.PulseHeart)
	}
	m.notify()
}

// Tick advances progress by one clock period. Ticks from an older clock
// generation are dropped.
func (m *Machine) Tick(gen uint64) {
	if gen != m.gen || !m.clockRunning() {
		return
	}

	if m.opts.ProgressSource == ProgressFromEngine {
		if fraction, ok := m.engine.PositionFraction(m.handle); ok {
			if fraction >= 1 {
				m.AdvanceTrack(model.DirectionNext)
				return
			}
			m.progress = lo.Clamp(fraction, 0, 1)
			m.notify()
			return
		}
	}

	if m.elapsed+1 >= m.opts.TrackDurationSeconds {
		m.AdvanceTrack(model.DirectionNext)
		return
	}
	m.elapsed++
	m.progress = float64(m.elapsed) / float64(m.opts.TrackDurationSeconds)
	m.notify()
}

// SetTracks replaces the track list. The current track keeps its place when it
// is still present; otherwise the index is clamped. likedSeed is applied once,
// with the first non-empty list.
func (m *Machine) SetTracks(tracks []model.Track, likedSeed []int) {
	prev, hadTrack := m.currentTrack()
	m.tracks = tracks

	if len(tracks) == 0 {
		if m.playing && !m.handle.IsZero() {
			m.engine.Pause(m.handle)
		}
		wasRunning := m.playing
		m.playing = false
		m.index = 0
		m.resetProgress()
		m.handle = engine.NoHandle
		m.liked = make(map[int]struct{})
		m.err = nil
		if wasRunning {
			m.restartClock()
		}
		m.log.Info("track list is empty")
		m.notify()
		return
	}

	for id := range m.liked {
		if !m.hasTrackID(id) {
			delete(m.liked, id)
		}
	}
	if !m.seeded {
		for _, id := range likedSeed {
			if m.hasTrackID(id) {
				m.liked[id] = struct{}{}
			}
		}
		m.seeded = true
	}

	m.index = lo.Clamp(m.index, 0, len(tracks)-1)
	if hadTrack {
		if i := m.indexOf(prev.ID); i >= 0 {
			m.index = i
		}
	}

	current := m.tracks[m.index]
	if !hadTrack || current.ID != prev.ID {
		m.resetProgress()
		m.err = nil
		if m.playing {
			m.load()
			m.engine.Play(m.handle)
			m.restartClock()
		} else {
			m.handle = engine.NoHandle
		}
	}

	m.log.WithField("tracks", len(tracks)).Debug("track list updated")
	m.notify()
}

// SetExpanded records the surface state. Only reconciliation calls this.
func (m *Machine) SetExpanded(expanded bool) {
	if expanded == m.expanded {
		return
	}
	m.expanded = expanded
	m.notify()
}

// TrackFinished advances when the engine reports the end of the current track
func (m *Machine) TrackFinished(h engine.Handle) {
	if h != m.handle || len(m.tracks) == 0 {
		return
	}
	m.AdvanceTrack(model.DirectionNext)
}

// PlaybackFailed rolls back to paused and records the error
func (m *Machine) PlaybackFailed(h engine.Handle, err error) {
	if h != m.handle || len(m.tracks) == 0 {
		return
	}

	track := m.tracks[m.index]
	m.log.WithError(err).WithField("track", track.ID).Warn("playback failed")

	m.err = &model.PlaybackError{TrackID: track.ID, Err: err}
	m.handle = engine.NoHandle
	if m.playing {
		m.playing = false
		m.restartClock()
	}
	m.notify()
}

func (m *Machine) switchTo(index int) {
	m.index = index
	m.resetProgress()
	m.err = nil
	m.playing = true
	m.load()
	m.engine.Play(m.handle)

	m.log.WithField("track", m.tracks[index].ID).Debug("track changed")
	m.restartClock()
	m.notify()
}

func (m *Machine) ensureLoaded() {
	if m.handle.IsZero() || m.loadedID != m.tracks[m.index].ID {
		m.load()
	}
}

func (m *Machine) load() {
	track := m.tracks[m.index]
	m.handle = m.engine.Load(track)
	m.loadedID = track.ID
}

func (m *Machine) resetProgress() {
	m.elapsed = 0
	m.progress = 0
}

func (m *Machine) clockRunning() bool {
	return m.playing && len(m.tracks) > 0
}

func (m *Machine) restartClock() {
	m.gen++
	if m.onClock != nil {
		m.onClock(m.Clock())
	}
}

func (m *Machine) pulse(p model.Pulse) {
	if m.onPulse != nil {
		m.onPulse(p)
	}
}

func (m *Machine) notify() {
	if m.onUpdate != nil {
		m.onUpdate(m.Snapshot())
	}
}

func (m *Machine) currentTrack() (model.Track, bool) {
	if len(m.tracks) == 0 {
		return model.Track{}, false
	}
	return m.tracks[m.index], true
}

func (m *Machine) hasTrackID(id int) bool {
	return m.indexOf(id) >= 0
}

func (m *Machine) indexOf(id int) int {
	_, i, ok := lo.FindIndexOf(m.tracks, func(t model.Track) bool { return t.ID == id })
	if !ok {
		return -1
	}
	return i
}
