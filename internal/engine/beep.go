package engine

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/ytget/swipeplayer/internal/dispatch"
	"github.com/ytget/swipeplayer/internal/model"
)

// Output defaults
const (
	DefaultSampleRate = beep.SampleRate(44100)
	DefaultBufferTime = 100 * time.Millisecond
	resampleQuality   = 4
)

// Output is where decoded audio is sent
type Output interface {
	Play(s ...beep.Streamer)
	Clear()
	Lock()
	Unlock()
}

type speakerOutput struct{}

func (speakerOutput) Play(s ...beep.Streamer) { speaker.Play(s...) }
func (speakerOutput) Clear()                  { speaker.Clear() }
func (speakerOutput) Lock()                   { speaker.Lock() }
func (speakerOutput) Unlock()                 { speaker.Unlock() }

var (
	speakerOnce sync.Once
	speakerErr  error
)

// InitSpeaker opens the system audio device once per process
func InitSpeaker(sampleRate beep.SampleRate) error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(sampleRate, sampleRate.N(DefaultBufferTime))
	})
	return speakerErr
}

type playback struct {
	handle   Handle
	streamer beep.StreamSeekCloser
	ctrl     *beep.Ctrl
	silent   bool
}

// BeepEngine plays mp3 and wav files through beep. Decoding and device access
// happen on the engine's own goroutine.
type BeepEngine struct {
	fs         afero.Fs
	out        Output
	sampleRate beep.SampleRate
	commands   *dispatch.Queue

	mu         sync.Mutex
	current    *playback
	onFinished func(Handle)
	onFailure  func(Handle, error)
	closed     bool

	log *logrus.Entry
}

// NewBeepEngine initialises the speaker and starts an engine reading files from fs
func NewBeepEngine(fs afero.Fs) (*BeepEngine, error) {
	if err := InitSpeaker(DefaultSampleRate); err != nil {
		return nil, err
	}
	return NewBeepEngineWithOutput(fs, speakerOutput{}, DefaultSampleRate), nil
}

// NewBeepEngineWithOutput starts an engine writing to out at sampleRate
func NewBeepEngineWithOutput(fs afero.Fs, out Output, sampleRate beep.SampleRate) *BeepEngine {
	e := &BeepEngine{
		fs:         fs,
		out:        out,
		sampleRate: sampleRate,
		commands:   dispatch.New(),
		log:        logrus.WithField("component", "engine"),
	}
	go func() {
		if err := e.commands.Run(context.Background()); err != nil {
			e.log.WithError(err).Error("command loop stopped")
		}
	}()
	return e
}

// SetCallbacks registers the completion and failure hooks
func (e *BeepEngine) SetCallbacks(onFinished func(Handle), onFailure func(Handle, error)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onFinished = onFinished
	e.onFailure = onFailure
}

// Load decodes track in the background and returns its handle
func (e *BeepEngine) Load(track model.Track) Handle {
	h := NewHandle()
	if !e.commands.Post(func() { e.load(h, track) }) {
		e.fail(h, ErrClosed)
	}
	return h
}

// Play resumes h if it is still the loaded track
func (e *BeepEngine) Play(h Handle) {
	e.commands.Post(func() { e.setPaused(h, false) })
}

// Pause pauses h if it is still the loaded track
func (e *BeepEngine) Pause(h Handle) {
	e.commands.Post(func() { e.setPaused(h, true) })
}

// PositionFraction returns the playback position of h as a fraction of its length
func (e *BeepEngine) PositionFraction(h Handle) (float64, bool) {
	e.mu.Lock()
	p := e.current
	e.mu.Unlock()

	if p == nil || p.handle != h || p.silent {
		return 0, false
	}

	e.out.Lock()
	pos, length := p.streamer.Position(), p.streamer.Len()
	e.out.Unlock()

	if length <= 0 {
		return 0, false
	}
	return float64(pos) / float64(length), true
}

// Close stops playback and the command goroutine
func (e *BeepEngine) Close() error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return ErrClosed
	}
	e.closed = true
	e.mu.Unlock()

	e.commands.Post(e.release)
	e.commands.Close()
	return nil
}

func (e *BeepEngine) load(h Handle, track model.Track) {
	e.release()

	log := e.log.WithFields(logrus.Fields{"handle": h, "track": track.ID})
	streamer, format, err := Decode(e.fs, track)
	if errors.Is(err, ErrNoSource) {
		log.Debug("track has no source, playing silently")
		e.setCurrent(&playback{handle: h, silent: true})
		return
	}
	if err != nil {
		log.WithError(err).Warn("failed to load track")
		e.fail(h, err)
		return
	}

	var s beep.Streamer = streamer
	if format.SampleRate != e.sampleRate {
		s = beep.Resample(resampleQuality, format.SampleRate, e.sampleRate, streamer)
	}
	ctrl := &beep.Ctrl{Streamer: s, Paused: true}

	e.setCurrent(&playback{handle: h, streamer: streamer, ctrl: ctrl})
	e.out.Play(beep.Seq(ctrl, beep.Callback(func() {
		e.commands.Post(func() { e.finished(h) })
	})))
	log.Debug("track loaded")
}

func (e *BeepEngine) setPaused(h Handle, paused bool) {
	e.mu.Lock()
	p := e.current
	e.mu.Unlock()

	if p == nil || p.handle != h || p.silent {
		return
	}

	e.out.Lock()
	p.ctrl.Paused = paused
	e.out.Unlock()
}

func (e *BeepEngine) finished(h Handle) {
	e.mu.Lock()
	p := e.current
	callback := e.onFinished
	e.mu.Unlock()

	if p == nil || p.handle != h {
		return
	}
	if callback != nil {
		callback(h)
	}
}

func (e *BeepEngine) fail(h Handle, err error) {
	e.mu.Lock()
	callback := e.onFailure
	e.mu.Unlock()

	if callback != nil {
		callback(h, err)
	}
}

func (e *BeepEngine) setCurrent(p *playback) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.current = p
}

// release stops and closes whatever is loaded
func (e *BeepEngine) release() {
	e.mu.Lock()
	p := e.current
	e.current = nil
	e.mu.Unlock()

	if p == nil || p.silent {
		return
	}

	e.out.Clear()
	if err := p.streamer.Close(); err != nil {
		e.log.WithError(err).Debug("failed to close stream")
	}
}
