package ui

import (
	"time"

	"github.com/ytget/swipeplayer/internal/anim"
	"github.com/ytget/swipeplayer/internal/gesture"
	"github.com/ytget/swipeplayer/internal/model"
)

// Controller is the player core as seen from the UI. Intent methods never block;
// callbacks may fire on any goroutine.
type Controller interface {
	SetSnapshotCallback(callback func(model.Snapshot))
	SetFrameCallback(callback func(anim.Frame))
	SetStatusCallback(callback func(model.LibraryStatus))
	CatalogName() string

	TogglePlayPause()
	SelectTrack(index int)
	AdvanceTrack(direction model.Direction)
	ToggleLike(trackID int)
	Retry()

	DragStart(now time.Time)
	DragUpdate(now time.Time, translation float64)
	DragEnd(now time.Time) gesture.Target
	Expand()
	Collapse()
	SetBounds(expandedOffset, collapsedOffset float64)
}
