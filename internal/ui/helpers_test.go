package ui

import (
	"sync"
	"time"

	"github.com/samber/mo"

	"github.com/ytget/swipeplayer/internal/anim"
	"github.com/ytget/swipeplayer/internal/gesture"
	"github.com/ytget/swipeplayer/internal/model"
)

// fakeController records intents and lets tests push core callbacks
type fakeController struct {
	mu sync.Mutex

	onSnapshot func(model.Snapshot)
	onFrame    func(anim.Frame)
	onStatus   func(model.LibraryStatus)
	name       string

	calls        []string
	selected     []int
	liked        []int
	translations []float64
	bounds       [2]float64
	target       gesture.Target
}

func (c *fakeController) record(call string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, call)
}

func (c *fakeController) Calls() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.calls...)
}

func (c *fakeController) SetSnapshotCallback(cb func(model.Snapshot))     { c.onSnapshot = cb }
func (c *fakeController) SetFrameCallback(cb func(anim.Frame))            { c.onFrame = cb }
func (c *fakeController) SetStatusCallback(cb func(model.LibraryStatus)) { c.onStatus = cb }
func (c *fakeController) CatalogName() string                            { return c.name }

func (c *fakeController) TogglePlayPause() { c.record("toggle") }
func (c *fakeController) SelectTrack(index int) {
	c.record("select")
	c.selected = append(c.selected, index)
}
func (c *fakeController) AdvanceTrack(direction model.Direction) { c.record("advance:" + direction.String()) }
func (c *fakeController) ToggleLike(trackID int) {
	c.record("like")
	c.liked = append(c.liked, trackID)
}
func (c *fakeController) Retry() { c.record("retry") }

func (c *fakeController) DragStart(time.Time) { c.record("drag_start") }
func (c *fakeController) DragUpdate(_ time.Time, translation float64) {
	c.record("drag_update")
	c.translations = append(c.translations, translation)
}
func (c *fakeController) DragEnd(time.Time) gesture.Target {
	c.record("drag_end")
	return c.target
}
func (c *fakeController) Expand()   { c.record("expand") }
func (c *fakeController) Collapse() { c.record("collapse") }
func (c *fakeController) SetBounds(expandedOffset, collapsedOffset float64) {
	c.record("bounds")
	c.bounds = [2]float64{expandedOffset, collapsedOffset}
}

// sampleSnapshot returns a ready snapshot over the sample catalog at index
func sampleSnapshot(index int, playing bool) model.Snapshot {
	catalog := model.SampleCatalog()
	liked := make(map[int]struct{}, len(catalog.Liked))
	for _, id := range catalog.Liked {
		liked[id] = struct{}{}
	}
	return model.Snapshot{
		Status:       model.PlayerStatusReady,
		Tracks:       catalog.Tracks,
		CurrentIndex: index,
		CurrentTrack: mo.Some(catalog.Tracks[index]),
		IsPlaying:    playing,
		Progress:     0.5,
		Liked:        liked,
	}
}

// emptySnapshot is the idle state without tracks
func emptySnapshot() model.Snapshot {
	return model.Snapshot{Status: model.PlayerStatusIdle, CurrentTrack: mo.None[model.Track]()}
}
