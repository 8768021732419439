package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"github.com/samber/lo"
)

// scaleLayout sizes every object to the available space times scale, centered.
// Objects may overflow the container while scale is above 1.
type scaleLayout struct {
	scale float32
}

func (l *scaleLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	scaled := fyne.NewSize(size.Width*l.scale, size.Height*l.scale)
	pos := fyne.NewPos((size.Width-scaled.Width)/2, (size.Height-scaled.Height)/2)
	for _, o := range objects {
		o.Resize(scaled)
		o.Move(pos)
	}
}

func (l *scaleLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	minSize := fyne.NewSize(0, 0)
	for _, o := range objects {
		minSize = minSize.Max(o.MinSize())
	}
	return minSize
}

// ScaledBox renders its content scaled around the center
type ScaledBox struct {
	*fyne.Container
	layout *scaleLayout
}

// NewScaledBox wraps content at scale 1
func NewScaledBox(content fyne.CanvasObject) *ScaledBox {
	l := &scaleLayout{scale: 1}
	return &ScaledBox{Container: container.New(l, content), layout: l}
}

// SetScale updates the scale, relaying out only on change
func (b *ScaledBox) SetScale(scale float64) {
	s := float32(scale)
	if s == b.layout.scale {
		return
	}
	b.layout.scale = s
	b.Container.Refresh()
}

// Scale returns the current scale
func (b *ScaledBox) Scale() float64 {
	return float64(b.layout.scale)
}

// fadeLayer fakes opacity for a subtree by drawing a background-colored veil over it.
// Visibility is left to the owner; opacity only tints what is shown.
type fadeLayer struct {
	*fyne.Container
	veil       *canvas.Rectangle
	opacity    float64
	background color.Color
}

func newFadeLayer(content fyne.CanvasObject) *fadeLayer {
	veil := canvas.NewRectangle(color.Transparent)
	veil.Hide()
	return &fadeLayer{
		Container: container.NewStack(content, veil),
		veil:      veil,
		opacity:   1,
	}
}

// SetOpacity applies opacity in [0, 1] using background as the veil color
func (f *fadeLayer) SetOpacity(opacity float64, background color.Color) {
	opacity = lo.Clamp(opacity, 0, 1)
	if opacity == f.opacity && background == f.background {
		return
	}
	f.opacity = opacity
	f.background = background

	if opacity >= 1 {
		f.veil.Hide()
		return
	}
	f.veil.FillColor = withAlpha(background, 1-opacity)
	f.veil.Show()
	f.veil.Refresh()
}

// SetVisible shows or hides the whole layer
func (f *fadeLayer) SetVisible(visible bool) {
	if visible == f.Container.Visible() {
		return
	}
	if visible {
		f.Container.Show()
	} else {
		f.Container.Hide()
	}
}

// Opacity returns the last applied opacity
func (f *fadeLayer) Opacity() float64 {
	return f.opacity
}
