package anim

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"github.com/samber/lo"
)

// Tween is a fixed-duration transition from one value to another
type Tween struct {
	From     float64
	To       float64
	Start    time.Time
	Duration time.Duration
	Curve    fyne.AnimationCurve
}

// NewTween creates an ease-in-out tween starting at start
func NewTween(from, to float64, start time.Time, duration time.Duration) Tween {
	return Tween{
		From:     from,
		To:       to,
		Start:    start,
		Duration: duration,
		Curve:    fyne.AnimationEaseInOut,
	}
}

// End returns the instant the tween reaches its target
func (t Tween) End() time.Time {
	return t.Start.Add(t.Duration)
}

// At returns the value at now and whether the tween has finished
func (t Tween) At(now time.Time) (float64, bool) {
	if t.Duration <= 0 || !now.Before(t.End()) {
		return t.To, true
	}
	if now.Before(t.Start) {
		return t.From, false
	}

	progress := float32(now.Sub(t.Start)) / float32(t.Duration)
	curve := t.Curve
	if curve == nil {
		curve = fyne.AnimationLinear
	}
	eased := float64(curve(lo.Clamp(progress, 0, 1)))
	return t.From + (t.To-t.From)*eased, false
}

// Step is one leg of a keyframe sequence
type Step struct {
	To       float64
	Duration time.Duration
}

// Keyframes plays a short sequence of tweens from a resting value and returns to it.
// It is safe for concurrent use.
type Keyframes struct {
	mu     sync.Mutex
	rest   float64
	steps  []Step
	start  time.Time
	active bool
}

// NewKeyframes creates a sequence that starts and ends at rest
func NewKeyframes(rest float64, steps ...Step) *Keyframes {
	return &Keyframes{rest: rest, steps: steps}
}

// Duration returns the total length of the sequence
func (k *Keyframes) Duration() time.Duration {
	var total time.Duration
	for _, s := range k.steps {
		total += s.Duration
	}
	return total
}

// Trigger restarts the sequence at now
func (k *Keyframes) Trigger(now time.Time) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.start = now
	k.active = true
}

// Active reports whether the sequence is still running at now
func (k *Keyframes) Active(now time.Time) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.active && now.Before(k.start.Add(k.Duration()))
}

// Value returns the animated value at now
func (k *Keyframes) Value(now time.Time) float64 {
	k.mu.Lock()
	defer k.mu.Unlock()

	if !k.active {
		return k.rest
	}

	from := k.rest
	legStart := k.start
	for _, s := range k.steps {
		leg := NewTween(from, s.To, legStart, s.Duration)
		if now.Before(leg.End()) {
			v, _ := leg.At(now)
			return v
		}
		from = s.To
		legStart = leg.End()
	}

	k.active = false
	return k.rest
}

// NewPlayButtonPulse returns the press feedback for the play button: 1 → 0.85 → 1 over 200ms
func NewPlayButtonPulse() *Keyframes {
	return NewKeyframes(1,
		Step{To: 0.85, Duration: 100 * time.Millisecond},
		Step{To: 1, Duration: 100 * time.Millisecond},
	)
}

// NewHeartPulse returns the like feedback for the heart: 1 → 1.3 → 1 over 300ms
func NewHeartPulse() *Keyframes {
	return NewKeyframes(1,
		Step{To: 1.3, Duration: 150 * time.Millisecond},
		Step{To: 1, Duration: 150 * time.Millisecond},
	)
}
