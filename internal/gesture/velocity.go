package gesture

import (
	"sync"
	"time"
)

// VelocityWindow is how far back release velocity is measured
const VelocityWindow = 100 * time.Millisecond

type sample struct {
	at time.Time
	y  float64
}

// VelocityTracker estimates drag velocity in units per second from recent
// position samples. Fyne drag events carry deltas only.
type VelocityTracker struct {
	mu      sync.Mutex
	samples []sample
}

// Add records the position at the given time
func (v *VelocityTracker) Add(at time.Time, y float64) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.samples = append(v.samples, sample{at: at, y: y})
	v.trimLocked(at)
}

// Velocity returns the average velocity over the window ending at now
func (v *VelocityTracker) Velocity(now time.Time) float64 {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.trimLocked(now)
	if len(v.samples) < 2 {
		return 0
	}

	first := v.samples[0]
	last := v.samples[len(v.samples)-1]
	dt := last.at.Sub(first.at).Seconds()
	if dt <= 0 {
		return 0
	}
	return (last.y - first.y) / dt
}

// Reset forgets all samples
func (v *VelocityTracker) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.samples = v.samples[:0]
}

func (v *VelocityTracker) trimLocked(now time.Time) {
	cutoff := now.Add(-VelocityWindow)
	i := 0
	for i < len(v.samples) && v.samples[i].at.Before(cutoff) {
		i++
	}
	if i > 0 {
		v.samples = append(v.samples[:0], v.samples[i:]...)
	}
}
