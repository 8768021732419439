package anim

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ytget/swipeplayer/internal/model"
)

// FrameInterval is the cadence of the animation path (60 Hz)
const FrameInterval = time.Second / 60

// Positioner owns the surface position. Advance moves any in-flight transition
// to now and returns the resulting position.
type Positioner interface {
	Advance(now time.Time) float64
	Bounds() (expandedOffset, collapsedOffset float64)
}

// Frame is the full set of animated outputs for one frame
type Frame struct {
	Time            time.Time
	Y               float64
	MiniOpacity     float64
	ExpandedOpacity float64
	Bars            [BarCount]float64
	PlayScale       float64
	HeartScale      float64
}

// Driver recomputes every animated output from the surface position and the
// pulse triggers once per frame.
type Driver struct {
	mu         sync.Mutex
	position   Positioner
	reconciler *Reconciler
	equalizer  *Equalizer
	playPulse  *Keyframes
	heartPulse *Keyframes
	onFrame    func(Frame)
	now        func() time.Time
	log        *logrus.Entry
}

// NewDriver creates a frame driver. rng may be nil.
func NewDriver(position Positioner, reconciler *Reconciler, rng *rand.Rand) *Driver {
	return &Driver{
		position:   position,
		reconciler: reconciler,
		equalizer:  NewEqualizer(rng),
		playPulse:  NewPlayButtonPulse(),
		heartPulse: NewHeartPulse(),
		now:        time.Now,
		log:        logrus.WithField("component", "anim"),
	}
}

// SetFrameCallback sets the function receiving every computed frame
func (d *Driver) SetFrameCallback(callback func(Frame)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onFrame = callback
}

// SetPlaying starts or freezes the equalizer
func (d *Driver) SetPlaying(playing bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.equalizer.SetPlaying(playing, d.now())
}

// Trigger starts a pulse animation
func (d *Driver) Trigger(pulse model.Pulse) {
	now := d.now()
	switch pulse {
	case model.PulsePlayButton:
		d.playPulse.Trigger(now)
	case model.PulseHeart:
		d.heartPulse.Trigger(now)
	default:
		d.log.Warnf("unknown pulse %d", pulse)
	}
}

// Step computes the frame for now, runs reconciliation and publishes the frame
func (d *Driver) Step(now time.Time) Frame {
	d.mu.Lock()
	y := d.position.Advance(now)
	expandedOffset, collapsedOffset := d.position.Bounds()

	frame := Frame{
		Time:            now,
		Y:               y,
		MiniOpacity:     MiniOpacity(y, collapsedOffset),
		ExpandedOpacity: ExpandedOpacity(y, expandedOffset),
		Bars:            d.equalizer.Step(now),
		PlayScale:       d.playPulse.Value(now),
		HeartScale:      d.heartPulse.Value(now),
	}
	onFrame := d.onFrame
	d.mu.Unlock()

	if d.reconciler != nil {
		d.reconciler.Observe(y, expandedOffset, collapsedOffset)
	}
	if onFrame != nil {
		onFrame(frame)
	}
	return frame
}

// Run steps the driver every FrameInterval until ctx is cancelled
func (d *Driver) Run(ctx context.Context) error {
	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	d.log.Debug("frame loop started")
	for {
		select {
		case <-ctx.Done():
			d.log.Debug("frame loop stopped")
			return nil
		case now := <-ticker.C:
			d.Step(now)
		}
	}
}
