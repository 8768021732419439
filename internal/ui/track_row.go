package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/swipeplayer/internal/anim"
	"github.com/ytget/swipeplayer/internal/model"
)

// TrackRow is one entry of the track list: swatch, title, artist and genre,
// the now-playing equalizer and a like button. Selection is handled by the list.
type TrackRow struct {
	widget.BaseWidget

	track   model.Track
	index   int
	current bool
	playing bool
	liked   bool

	// UI components
	swatch      *Artwork
	titleLabel  *widget.Label
	detailLabel *widget.Label
	genreLabel  *widget.Label
	equalizer   *EqualizerBars
	likeBtn     *widget.Button

	onLike func(trackID int)
}

// NewTrackRow creates an empty row; SetTrack fills it
func NewTrackRow() *TrackRow {
	tr := &TrackRow{index: -1}
	tr.ExtendBaseWidget(tr)
	tr.createUI()
	return tr
}

// SetLikeCallback sets the like button action
func (tr *TrackRow) SetLikeCallback(onLike func(trackID int)) {
	tr.onLike = onLike
}

// SetTrack binds the row to the track at index with its current flags
func (tr *TrackRow) SetTrack(track model.Track, index int, current, playing, liked bool) {
	tr.track = track
	tr.index = index
	tr.current = current
	tr.playing = playing
	tr.liked = liked
	tr.updateFromTrack()
}

// SetBars forwards equalizer heights; rows other than the current one ignore them
func (tr *TrackRow) SetBars(values [anim.BarCount]float64) {
	if tr.current && tr.playing {
		tr.equalizer.SetValues(values)
	}
}

// Index returns the list index the row is bound to, -1 when unbound
func (tr *TrackRow) Index() int {
	return tr.index
}

// IsCurrent reports whether the row shows the current track
func (tr *TrackRow) IsCurrent() bool {
	return tr.current
}

// createUI creates the UI components
func (tr *TrackRow) createUI() {
	tr.swatch = NewArtwork(SwatchSize, SwatchTextSize)

	tr.titleLabel = widget.NewLabel("")
	tr.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	tr.titleLabel.Truncation = fyne.TextTruncateEllipsis

	tr.detailLabel = widget.NewLabel("")
	tr.detailLabel.Truncation = fyne.TextTruncateEllipsis

	tr.genreLabel = widget.NewLabel("")
	tr.genreLabel.Importance = widget.LowImportance
	tr.genreLabel.Alignment = fyne.TextAlignTrailing

	tr.equalizer = NewEqualizerBars()
	tr.equalizer.Hide()

	tr.likeBtn = widget.NewButton(IconHeartOff, func() {
		if tr.onLike != nil && tr.index >= 0 {
			tr.onLike(tr.track.ID)
		}
	})
	tr.likeBtn.Importance = widget.LowImportance
}

// updateFromTrack pushes the bound track and flags into the components
func (tr *TrackRow) updateFromTrack() {
	tr.swatch.SetTrack(tr.track)
	tr.titleLabel.SetText(tr.track.GetDisplayTitle())
	tr.detailLabel.SetText(tr.track.Artist)
	tr.genreLabel.SetText(tr.track.Genre)

	if tr.current {
		tr.titleLabel.Importance = widget.SuccessImportance
	} else {
		tr.titleLabel.Importance = widget.MediumImportance
	}
	tr.titleLabel.Refresh()

	if tr.current && tr.playing {
		tr.equalizer.Show()
	} else {
		tr.equalizer.Hide()
	}

	if tr.liked {
		tr.likeBtn.SetText(IconHeart)
		tr.likeBtn.Importance = widget.DangerImportance
	} else {
		tr.likeBtn.SetText(IconHeartOff)
		tr.likeBtn.Importance = widget.LowImportance
	}
	tr.likeBtn.Refresh()
}

// CreateRenderer creates the widget renderer
func (tr *TrackRow) CreateRenderer() fyne.WidgetRenderer {
	return &trackRowRenderer{trackRow: tr}
}

// trackRowRenderer renders the track row widget
type trackRowRenderer struct {
	trackRow *TrackRow
	layout   *fyne.Container
}

// Layout arranges the components
func (r *trackRowRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	if size.Height < RowMinHeight {
		size.Height = RowMinHeight
	}
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *trackRowRenderer) MinSize() fyne.Size {
	if r.layout == nil {
		r.createLayout()
	}
	return r.layout.MinSize().Max(fyne.NewSize(0, RowMinHeight))
}

// Refresh refreshes the renderer
func (r *trackRowRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *trackRowRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *trackRowRenderer) Destroy() {}

// createLayout creates the main layout
func (r *trackRowRenderer) createLayout() {
	tr := r.trackRow

	text := container.NewVBox(tr.titleLabel, tr.detailLabel)

	// The equalizer keeps its slot when hidden so titles do not jump
	eqSlot := canvas.NewRectangle(color.Transparent)
	eqSlot.SetMinSize(tr.equalizer.MinSize())
	indicator := container.NewCenter(container.NewStack(eqSlot, tr.equalizer))

	right := container.NewHBox(tr.genreLabel, indicator, tr.likeBtn)

	r.layout = container.NewVBox(
		container.NewBorder(nil, nil, container.NewCenter(tr.swatch), right, text),
		widget.NewSeparator(),
	)
}
