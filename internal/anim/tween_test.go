package anim

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestScalar_LoadStore(t *testing.T) {
	s := NewScalar(44)
	assert.Equal(t, 44.0, s.Load())

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(v float64) {
			defer wg.Done()
			s.Store(v)
		}(float64(i))
	}
	wg.Wait()

	v := s.Load()
	assert.True(t, v >= 0 && v < 10, "unexpected value %v", v)
}

func TestTween_At(t *testing.T) {
	tw := NewTween(0, 100, epoch, 400*time.Millisecond)

	v, done := tw.At(epoch.Add(-time.Millisecond))
	assert.Equal(t, 0.0, v)
	assert.False(t, done)

	v, done = tw.At(epoch)
	assert.Equal(t, 0.0, v)
	assert.False(t, done)

	v, done = tw.At(epoch.Add(200 * time.Millisecond))
	assert.InDelta(t, 50.0, v, 0.001)
	assert.False(t, done)

	v, done = tw.At(epoch.Add(400 * time.Millisecond))
	assert.Equal(t, 100.0, v)
	assert.True(t, done)
}

func TestTween_ZeroDurationIsDone(t *testing.T) {
	v, done := NewTween(3, 7, epoch, 0).At(epoch)
	assert.Equal(t, 7.0, v)
	assert.True(t, done)
}

func TestKeyframes_PlayButtonPulse(t *testing.T) {
	k := NewPlayButtonPulse()
	assert.Equal(t, 200*time.Millisecond, k.Duration())
	assert.Equal(t, 1.0, k.Value(epoch), "idle pulse should rest at 1")

	k.Trigger(epoch)
	assert.True(t, k.Active(epoch.Add(50*time.Millisecond)))
	assert.Equal(t, 1.0, k.Value(epoch))
	assert.InDelta(t, 0.85, k.Value(epoch.Add(100*time.Millisecond)), 1e-9)
	assert.InDelta(t, 0.925, k.Value(epoch.Add(150*time.Millisecond)), 1e-9)
	assert.Equal(t, 1.0, k.Value(epoch.Add(200*time.Millisecond)))
	assert.False(t, k.Active(epoch.Add(250*time.Millisecond)))
}

func TestKeyframes_HeartPulsePeaks(t *testing.T) {
	k := NewHeartPulse()
	k.Trigger(epoch)

	assert.InDelta(t, 1.3, k.Value(epoch.Add(150*time.Millisecond)), 1e-9)
	for ms := 0; ms <= 300; ms += 10 {
		v := k.Value(epoch.Add(time.Duration(ms) * time.Millisecond))
		assert.True(t, v >= 1-1e-9 && v <= 1.3+1e-9, "heart scale %v out of range at %dms", v, ms)
	}
}

func TestKeyframes_RetriggerRestarts(t *testing.T) {
	k := NewPlayButtonPulse()
	k.Trigger(epoch)
	k.Trigger(epoch.Add(150 * time.Millisecond))

	assert.InDelta(t, 0.85, k.Value(epoch.Add(250*time.Millisecond)), 1e-9)
}

func TestInterpolate(t *testing.T) {
	tests := []struct {
		x        float64
		in, out  [2]float64
		expected float64
	}{
		{5, [2]float64{0, 10}, [2]float64{0, 1}, 0.5},
		{-5, [2]float64{0, 10}, [2]float64{0, 1}, 0},
		{15, [2]float64{0, 10}, [2]float64{0, 1}, 1},
		{2.5, [2]float64{10, 0}, [2]float64{0, 1}, 0.75},
		{3, [2]float64{3, 3}, [2]float64{0, 1}, 1},
		{2, [2]float64{3, 3}, [2]float64{0, 1}, 0},
	}

	for _, test := range tests {
		result := Interpolate(test.x, test.in, test.out)
		assert.InDelta(t, test.expected, result, 1e-9, "Interpolate(%v, %v, %v)", test.x, test.in, test.out)
	}
}

func TestOpacities(t *testing.T) {
	const expanded, collapsed = 44.0, 700.0

	assert.Equal(t, 1.0, MiniOpacity(collapsed, collapsed))
	assert.Equal(t, 0.0, MiniOpacity(collapsed-50, collapsed))
	assert.InDelta(t, 0.5, MiniOpacity(collapsed-25, collapsed), 1e-9)
	assert.Equal(t, 0.0, MiniOpacity(expanded, collapsed))

	assert.Equal(t, 1.0, ExpandedOpacity(expanded, expanded))
	assert.Equal(t, 0.0, ExpandedOpacity(expanded+100, expanded))
	assert.InDelta(t, 0.5, ExpandedOpacity(expanded+50, expanded), 1e-9)
	assert.Equal(t, 0.0, ExpandedOpacity(collapsed, expanded))
}
