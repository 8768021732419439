package anim

import (
	"math/rand/v2"
	"time"
)

// Equalizer bar constants
const (
	BarCount = 4

	BarMin = 0.3
	BarMax = 1.0

	BarLegMin = 250 * time.Millisecond
	BarLegMax = 300 * time.Millisecond
)

// InitialBarValues are the resting magnitudes before the first playback
var InitialBarValues = [BarCount]float64{0.3, 0.6, 0.4, 0.8}

type bar struct {
	value float64
	leg   Tween
}

// Equalizer animates decorative now-playing bars. Each bar moves back and forth
// between random targets on its own timing; nothing here follows the audio signal.
// Not safe for concurrent use; the Driver serializes access.
type Equalizer struct {
	bars    [BarCount]bar
	rng     *rand.Rand
	playing bool
}

// NewEqualizer creates an equalizer using rng for targets and leg timing
func NewEqualizer(rng *rand.Rand) *Equalizer {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	e := &Equalizer{rng: rng}
	for i := range e.bars {
		e.bars[i].value = InitialBarValues[i]
	}
	return e
}

// Playing reports whether the bars are animating
func (e *Equalizer) Playing() bool {
	return e.playing
}

// SetPlaying starts or freezes the bars at now
func (e *Equalizer) SetPlaying(playing bool, now time.Time) {
	if playing == e.playing {
		return
	}

	if !playing {
		// Settle on the value reached so far.
		for i := range e.bars {
			v, _ := e.bars[i].leg.At(now)
			e.bars[i].value = v
		}
		e.playing = false
		return
	}

	e.playing = true
	for i := range e.bars {
		e.bars[i].leg = e.nextLeg(e.bars[i].value, now)
	}
}

// Step advances the bars to now and returns their magnitudes
func (e *Equalizer) Step(now time.Time) [BarCount]float64 {
	var out [BarCount]float64
	for i := range e.bars {
		b := &e.bars[i]
		if e.playing {
			v, done := b.leg.At(now)
			for done {
				start := b.leg.End()
				// Fell more than a leg behind (e.g. a stalled frame loop): restart from now.
				if now.Sub(start) > BarLegMax {
					start = now
				}
				b.leg = e.nextLeg(b.leg.To, start)
				v, done = b.leg.At(now)
			}
			b.value = v
		}
		out[i] = b.value
	}
	return out
}

// Values returns the last computed magnitudes without advancing time
func (e *Equalizer) Values() [BarCount]float64 {
	var out [BarCount]float64
	for i := range e.bars {
		out[i] = e.bars[i].value
	}
	return out
}

func (e *Equalizer) nextLeg(from float64, start time.Time) Tween {
	target := BarMin + e.rng.Float64()*(BarMax-BarMin)
	jitter := time.Duration(e.rng.Int64N(int64(BarLegMax-BarLegMin) + 1))
	return NewTween(from, target, start, BarLegMin+jitter)
}
