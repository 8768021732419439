package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/swipeplayer/internal/anim"
	"github.com/ytget/swipeplayer/internal/model"
)

// MiniPlayer is the collapsed view of the sheet: artwork, title, like and
// transport controls with a thin progress line. Tapping the body expands the sheet.
type MiniPlayer struct {
	ctrl         Controller
	localization *Localization

	artwork     *Artwork
	titleLabel  *widget.Label
	artistLabel *widget.Label
	progress    *widget.ProgressBar
	prevBtn     *widget.Button
	playBtn     *widget.Button
	nextBtn     *widget.Button
	heartBtn    *widget.Button
	playBox     *ScaledBox
	heartBox    *ScaledBox
	body        *TapArea

	content fyne.CanvasObject
	trackID int
}

// NewMiniPlayer creates the collapsed player view
func NewMiniPlayer(ctrl Controller, localization *Localization) *MiniPlayer {
	mp := &MiniPlayer{ctrl: ctrl, localization: localization, trackID: -1}
	mp.createUI()
	return mp
}

// Object returns the canvas object to place in the sheet
func (mp *MiniPlayer) Object() fyne.CanvasObject {
	return mp.content
}

// Apply renders a player snapshot
func (mp *MiniPlayer) Apply(snap model.Snapshot) {
	track, ok := snap.CurrentTrack.Get()
	if !ok {
		mp.trackID = -1
		mp.artwork.Clear()
		mp.titleLabel.SetText(mp.localization.GetText(KeyNothingPlaying))
		mp.artistLabel.SetText(DashPlaceholder)
		mp.progress.SetValue(0)
		mp.playBtn.SetText(IconPlay)
		mp.setTransportEnabled(false)
		return
	}

	mp.trackID = track.ID
	mp.artwork.SetTrack(track)
	mp.titleLabel.SetText(track.GetDisplayTitle())
	mp.artistLabel.SetText(track.Artist)
	mp.progress.SetValue(snap.Progress)
	mp.setTransportEnabled(true)

	if snap.IsPlaying {
		mp.playBtn.SetText(IconPause)
	} else {
		mp.playBtn.SetText(IconPlay)
	}
	if snap.IsLiked(track.ID) {
		mp.heartBtn.SetText(IconHeart)
		mp.heartBtn.Importance = widget.DangerImportance
	} else {
		mp.heartBtn.SetText(IconHeartOff)
		mp.heartBtn.Importance = widget.LowImportance
	}
	mp.heartBtn.Refresh()
}

// ApplyFrame renders the animated button scales
func (mp *MiniPlayer) ApplyFrame(frame anim.Frame) {
	mp.playBox.SetScale(frame.PlayScale)
	mp.heartBox.SetScale(frame.HeartScale)
}

func (mp *MiniPlayer) setTransportEnabled(enabled bool) {
	for _, b := range []*widget.Button{mp.prevBtn, mp.playBtn, mp.nextBtn, mp.heartBtn} {
		if enabled {
			b.Enable()
		} else {
			b.Disable()
		}
	}
}

// refreshTexts updates texts after a language change
func (mp *MiniPlayer) refreshTexts() {
	if mp.trackID < 0 {
		mp.titleLabel.SetText(mp.localization.GetText(KeyNothingPlaying))
	}
}

// createUI creates the UI components
func (mp *MiniPlayer) createUI() {
	mp.artwork = NewArtwork(SwatchSize, SwatchTextSize)

	mp.titleLabel = widget.NewLabel(mp.localization.GetText(KeyNothingPlaying))
	mp.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	mp.titleLabel.Truncation = fyne.TextTruncateEllipsis
	mp.artistLabel = widget.NewLabel(DashPlaceholder)
	mp.artistLabel.Truncation = fyne.TextTruncateEllipsis

	mp.progress = widget.NewProgressBar()
	mp.progress.TextFormatter = func() string { return "" }

	mp.prevBtn = widget.NewButton(IconPrev, func() { mp.ctrl.AdvanceTrack(model.DirectionPrev) })
	mp.prevBtn.Importance = widget.LowImportance
	mp.nextBtn = widget.NewButton(IconNext, func() { mp.ctrl.AdvanceTrack(model.DirectionNext) })
	mp.nextBtn.Importance = widget.LowImportance
	mp.playBtn = widget.NewButton(IconPlay, mp.ctrl.TogglePlayPause)
	mp.playBtn.Importance = widget.HighImportance
	mp.heartBtn = widget.NewButton(IconHeartOff, func() {
		if mp.trackID >= 0 {
			mp.ctrl.ToggleLike(mp.trackID)
		}
	})
	mp.heartBtn.Importance = widget.LowImportance
	mp.setTransportEnabled(false)

	mp.playBox = NewScaledBox(mp.playBtn)
	mp.heartBox = NewScaledBox(mp.heartBtn)

	text := container.NewVBox(mp.titleLabel, mp.artistLabel)
	mp.body = NewTapArea(
		container.NewBorder(nil, nil, container.NewCenter(mp.artwork), nil, text),
		mp.ctrl.Expand,
	)

	controls := container.NewHBox(mp.heartBox.Container, mp.prevBtn, mp.playBox.Container, mp.nextBtn)
	mp.content = container.NewBorder(
		nil,
		mp.progress,
		nil,
		container.NewCenter(controls),
		mp.body,
	)
}
