package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/swipeplayer/internal/model"
)

// Artwork draws a track's color token as a gradient with its image glyph centered on top
type Artwork struct {
	widget.BaseWidget

	gradient *canvas.LinearGradient
	glyph    *canvas.Text
	token    string
}

// NewArtwork creates an artwork square of the given edge and glyph size
func NewArtwork(edge, glyphSize float32) *Artwork {
	start, end := artworkColors(FallbackColorToken)
	a := &Artwork{
		gradient: canvas.NewLinearGradient(start, end, 135),
		glyph:    canvas.NewText(IconMusic, ContrastText(ParseColorToken(FallbackColorToken))),
	}
	a.gradient.SetMinSize(fyne.NewSize(edge, edge))
	a.glyph.TextSize = glyphSize
	a.glyph.Alignment = fyne.TextAlignCenter
	a.ExtendBaseWidget(a)
	return a
}

// SetTrack shows the artwork of track
func (a *Artwork) SetTrack(track model.Track) {
	glyph := track.ImageToken
	if glyph == "" {
		glyph = IconMusic
	}
	if track.ColorToken == a.token && glyph == a.glyph.Text {
		return
	}

	a.token = track.ColorToken
	start, end := artworkColors(track.ColorToken)
	a.gradient.StartColor = start
	a.gradient.EndColor = end
	a.glyph.Text = glyph
	a.glyph.Color = ContrastText(ParseColorToken(track.ColorToken))
	a.Refresh()
}

// Clear shows the neutral placeholder
func (a *Artwork) Clear() {
	a.SetTrack(model.Track{ColorToken: FallbackColorToken})
}

// Glyph returns the text drawn on top of the gradient
func (a *Artwork) Glyph() string {
	return a.glyph.Text
}

// CreateRenderer implements fyne.Widget
func (a *Artwork) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(a.gradient, container.NewCenter(a.glyph)))
}
