package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/swipeplayer/internal/anim"
)

// EqualizerBars draws the now-playing indicator from frame bar heights
type EqualizerBars struct {
	widget.BaseWidget

	values [anim.BarCount]float64
}

// NewEqualizerBars creates the indicator at the equalizer's initial heights
func NewEqualizerBars() *EqualizerBars {
	e := &EqualizerBars{values: anim.InitialBarValues}
	e.ExtendBaseWidget(e)
	return e
}

// SetValues updates the bar heights, each in [0, 1]
func (e *EqualizerBars) SetValues(values [anim.BarCount]float64) {
	if values == e.values {
		return
	}
	e.values = values
	e.Refresh()
}

// Values returns the current bar heights
func (e *EqualizerBars) Values() [anim.BarCount]float64 {
	return e.values
}

// CreateRenderer implements fyne.Widget
func (e *EqualizerBars) CreateRenderer() fyne.WidgetRenderer {
	r := &equalizerRenderer{eq: e}
	for i := range r.bars {
		r.bars[i] = canvas.NewRectangle(theme.Color(theme.ColorNamePrimary))
		r.objects = append(r.objects, r.bars[i])
	}
	return r
}

type equalizerRenderer struct {
	eq      *EqualizerBars
	bars    [anim.BarCount]*canvas.Rectangle
	objects []fyne.CanvasObject
}

func (r *equalizerRenderer) Layout(size fyne.Size) {
	for i, bar := range r.bars {
		h := float32(r.eq.values[i]) * size.Height
		bar.Resize(fyne.NewSize(EqualizerBarWidth, h))
		bar.Move(fyne.NewPos(float32(i)*(EqualizerBarWidth+EqualizerBarGap), size.Height-h))
	}
}

func (r *equalizerRenderer) MinSize() fyne.Size {
	n := float32(len(r.bars))
	return fyne.NewSize(n*EqualizerBarWidth+(n-1)*EqualizerBarGap, EqualizerMaxHeight)
}

func (r *equalizerRenderer) Refresh() {
	r.Layout(r.eq.Size())
	for _, bar := range r.bars {
		bar.FillColor = theme.Color(theme.ColorNamePrimary)
		bar.Refresh()
	}
}

func (r *equalizerRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *equalizerRenderer) Destroy() {}
