package ui

import (
	"image/color"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/ytget/swipeplayer/internal/anim"
	"github.com/ytget/swipeplayer/internal/gesture"
)

func newTestSheet(ctrl *fakeController) *Sheet {
	loc := NewLocalization()
	s := NewSheet(ctrl, NewMiniPlayer(ctrl, loc), NewExpandedPlayer(ctrl, loc, 261))
	s.now = func() time.Time { return time.Unix(0, 0) }
	return s
}

func TestSheet_DragAccumulatesTranslation(t *testing.T) {
	test.NewApp()

	ctrl := &fakeController{target: gesture.TargetExpanded}
	s := newTestSheet(ctrl)

	s.Dragged(&fyne.DragEvent{Dragged: fyne.Delta{DY: -20}})
	s.Dragged(&fyne.DragEvent{Dragged: fyne.Delta{DY: -30}})
	s.Dragged(&fyne.DragEvent{Dragged: fyne.Delta{DX: 15, DY: 5}})
	if !s.Dragging() {
		t.Error("Sheet should report an active drag")
	}
	s.DragEnd()

	expectedCalls := []string{"drag_start", "drag_update", "drag_update", "drag_update", "drag_end"}
	calls := ctrl.Calls()
	if len(calls) != len(expectedCalls) {
		t.Fatalf("Expected calls %v, got %v", expectedCalls, calls)
	}
	for i := range expectedCalls {
		if calls[i] != expectedCalls[i] {
			t.Errorf("Call %d = %s, expected %s", i, calls[i], expectedCalls[i])
		}
	}

	expectedTranslations := []float64{-20, -50, -45}
	for i, want := range expectedTranslations {
		if ctrl.translations[i] != want {
			t.Errorf("Translation %d = %v, expected %v", i, ctrl.translations[i], want)
		}
	}
	if s.Dragging() {
		t.Error("Drag should be over")
	}
}

func TestSheet_DragEndWithoutDragIsIgnored(t *testing.T) {
	test.NewApp()

	ctrl := &fakeController{}
	s := newTestSheet(ctrl)
	s.DragEnd()

	if len(ctrl.Calls()) != 0 {
		t.Errorf("Expected no calls, got %v", ctrl.Calls())
	}
}

func TestSheet_NewDragRestartsTranslation(t *testing.T) {
	test.NewApp()

	ctrl := &fakeController{}
	s := newTestSheet(ctrl)

	s.Dragged(&fyne.DragEvent{Dragged: fyne.Delta{DY: 40}})
	s.DragEnd()
	s.Dragged(&fyne.DragEvent{Dragged: fyne.Delta{DY: 10}})

	if got := ctrl.translations[len(ctrl.translations)-1]; got != 10 {
		t.Errorf("Second drag should start from zero, got %v", got)
	}
}

func TestSheet_ApplyFrameFadesAndScales(t *testing.T) {
	test.NewApp()

	s := newTestSheet(&fakeController{})
	bg := color.RGBA{A: 255}

	s.ApplyFrame(anim.Frame{MiniOpacity: 0.5, ExpandedOpacity: 0, PlayScale: 0.85, HeartScale: 1.3}, bg)
	if s.miniLayer.Opacity() != 0.5 || s.expandedLayer.Opacity() != 0 {
		t.Errorf("Opacities = %v / %v", s.miniLayer.Opacity(), s.expandedLayer.Opacity())
	}
	if s.mini.playBox.Scale() != float64(float32(0.85)) {
		t.Errorf("Mini play scale = %v", s.mini.playBox.Scale())
	}
	if s.expanded.heartBox.Scale() != float64(float32(1.3)) {
		t.Errorf("Expanded heart scale = %v", s.expanded.heartBox.Scale())
	}
}

func TestSheet_ExactlyOneViewVisible(t *testing.T) {
	test.NewApp()

	s := newTestSheet(&fakeController{})
	bg := color.RGBA{A: 255}
	expandedOffset, collapsedOffset := 44.0, 700.0

	assertOneVisible := func(expanded bool, y float64) {
		t.Helper()
		s.ApplyFrame(anim.Frame{
			Y:               y,
			MiniOpacity:     anim.MiniOpacity(y, collapsedOffset),
			ExpandedOpacity: anim.ExpandedOpacity(y, expandedOffset),
			PlayScale:       1,
			HeartScale:      1,
		}, bg)
		if s.miniLayer.Visible() == s.expandedLayer.Visible() {
			t.Fatalf("expanded=%v y=%v: mini=%v expanded=%v", expanded, y, s.miniLayer.Visible(), s.expandedLayer.Visible())
		}
		if s.expandedLayer.Visible() != expanded || s.Expanded() != expanded {
			t.Errorf("expanded=%v y=%v: wrong view shown", expanded, y)
		}
	}

	if s.Expanded() {
		t.Fatal("New sheet should start collapsed")
	}
	for _, expanded := range []bool{false, true, false} {
		s.SetExpanded(expanded)
		// Both opacities are zero in the middle of the travel
		for _, y := range []float64{collapsedOffset, 600, 372, 150, expandedOffset} {
			assertOneVisible(expanded, y)
		}
	}
}
