package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// TapArea makes any canvas object tappable without changing its look.
// Drags pass through to the nearest draggable parent.
type TapArea struct {
	widget.BaseWidget

	content fyne.CanvasObject
	onTap   func()
	pressed bool
}

// NewTapArea wraps content so that taps call onTap
func NewTapArea(content fyne.CanvasObject, onTap func()) *TapArea {
	t := &TapArea{content: content, onTap: onTap}
	t.ExtendBaseWidget(t)
	return t
}

// SetOnTap replaces the tap callback
func (t *TapArea) SetOnTap(onTap func()) {
	t.onTap = onTap
}

// Tapped implements fyne.Tappable
func (t *TapArea) Tapped(*fyne.PointEvent) {
	if t.onTap != nil {
		t.onTap()
	}
}

// TouchDown implements mobile.Touchable
func (t *TapArea) TouchDown(*mobile.TouchEvent) {
	t.pressed = true
}

// TouchUp implements mobile.Touchable
func (t *TapArea) TouchUp(*mobile.TouchEvent) {
	t.pressed = false
}

// TouchCancel implements mobile.Touchable
func (t *TapArea) TouchCancel(*mobile.TouchEvent) {
	t.pressed = false
}

// Pressed reports whether a touch is currently down on the area
func (t *TapArea) Pressed() bool {
	return t.pressed
}

// CreateRenderer implements fyne.Widget
func (t *TapArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(t.content)
}
