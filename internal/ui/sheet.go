package ui

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/ytget/swipeplayer/internal/anim"
)

// Sheet is the draggable player surface. It stacks the mini player over the
// expanded player and shows exactly one of them, chosen by the expanded flag.
// Frame opacities only fade the shown view. Vertical drags anywhere on the
// sheet, buttons included, move it through the Controller.
type Sheet struct {
	widget.BaseWidget

	ctrl     Controller
	mini     *MiniPlayer
	expanded *ExpandedPlayer

	background    *canvas.Rectangle
	miniLayer     *fadeLayer
	expandedLayer *fadeLayer

	dragging    bool
	translation float64
	now         func() time.Time
	log         *logrus.Entry
}

// NewSheet creates the player surface around the two player views
func NewSheet(ctrl Controller, mini *MiniPlayer, expanded *ExpandedPlayer) *Sheet {
	s := &Sheet{
		ctrl:          ctrl,
		mini:          mini,
		expanded:      expanded,
		background:    canvas.NewRectangle(theme.Color(theme.ColorNameOverlayBackground)),
		miniLayer:     newFadeLayer(mini.Object()),
		expandedLayer: newFadeLayer(container.NewPadded(expanded.Object())),
		now:           time.Now,
		log:           logrus.WithField("component", "ui"),
	}
	s.SetExpanded(false)
	s.ExtendBaseWidget(s)
	return s
}

// Dragged implements fyne.Draggable. Fyne reports per-event deltas; the
// controller expects the translation since the drag began.
func (s *Sheet) Dragged(ev *fyne.DragEvent) {
	now := s.now()
	if !s.dragging {
		s.dragging = true
		s.translation = 0
		s.ctrl.DragStart(now)
	}
	s.translation += float64(ev.Dragged.DY)
	s.ctrl.DragUpdate(now, s.translation)
}

// DragEnd implements fyne.Draggable
func (s *Sheet) DragEnd() {
	if !s.dragging {
		return
	}
	s.dragging = false
	target := s.ctrl.DragEnd(s.now())
	s.log.WithField("target", target).Debug("sheet released")
}

// Dragging reports whether a drag is in progress
func (s *Sheet) Dragging() bool {
	return s.dragging
}

// SetExpanded shows exactly one of the two player views: the expanded view
// while expanded, the mini player otherwise
func (s *Sheet) SetExpanded(expanded bool) {
	s.miniLayer.SetVisible(!expanded)
	s.expandedLayer.SetVisible(expanded)
}

// Expanded reports which view is shown
func (s *Sheet) Expanded() bool {
	return s.expandedLayer.Visible()
}

// ApplyFrame renders opacities and scales of one animation frame
func (s *Sheet) ApplyFrame(frame anim.Frame, background color.Color) {
	s.miniLayer.SetOpacity(frame.MiniOpacity, background)
	s.expandedLayer.SetOpacity(frame.ExpandedOpacity, background)
	s.mini.ApplyFrame(frame)
	s.expanded.ApplyFrame(frame)
}

// Refresh also recolors the surface after a theme change
func (s *Sheet) Refresh() {
	s.background.FillColor = theme.Color(theme.ColorNameOverlayBackground)
	s.background.Refresh()
	s.BaseWidget.Refresh()
}

// CreateRenderer implements fyne.Widget
func (s *Sheet) CreateRenderer() fyne.WidgetRenderer {
	miniSlot := canvas.NewRectangle(color.Transparent)
	miniSlot.SetMinSize(fyne.NewSize(0, MiniPlayerHeight))
	top := container.NewStack(miniSlot, s.miniLayer.Container)

	return widget.NewSimpleRenderer(container.NewStack(
		s.background,
		s.expandedLayer.Container,
		container.NewBorder(top, nil, nil, nil),
	))
}
