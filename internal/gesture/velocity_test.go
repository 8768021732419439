package gesture

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVelocityTracker(t *testing.T) {
	var v VelocityTracker
	assert.Zero(t, v.Velocity(epoch))

	v.Add(epoch, 700)
	assert.Zero(t, v.Velocity(epoch), "one sample has no velocity")

	v.Add(epoch.Add(50*time.Millisecond), 675)
	assert.InDelta(t, -500.0, v.Velocity(epoch.Add(50*time.Millisecond)), 1e-9)
}

func TestVelocityTracker_DropsOldSamples(t *testing.T) {
	var v VelocityTracker

	v.Add(epoch, 0)
	v.Add(epoch.Add(10*time.Millisecond), 100)
	v.Add(epoch.Add(300*time.Millisecond), 100)
	v.Add(epoch.Add(350*time.Millisecond), 110)

	assert.InDelta(t, 200.0, v.Velocity(epoch.Add(350*time.Millisecond)), 1e-9)

	// Holding still past the window leaves nothing to measure.
	assert.Zero(t, v.Velocity(epoch.Add(time.Second)))
}

func TestVelocityTracker_Reset(t *testing.T) {
	var v VelocityTracker
	v.Add(epoch, 0)
	v.Add(epoch.Add(10*time.Millisecond), 10)

	v.Reset()
	assert.Zero(t, v.Velocity(epoch.Add(10*time.Millisecond)))
}
