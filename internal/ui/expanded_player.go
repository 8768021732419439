package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/swipeplayer/internal/anim"
	"github.com/ytget/swipeplayer/internal/model"
)

// ExpandedPlayer is the full-height view of the sheet
type ExpandedPlayer struct {
	ctrl            Controller
	localization    *Localization
	durationSeconds int

	collapseBtn   *widget.Button
	artwork       *Artwork
	titleLabel    *widget.Label
	artistLabel   *widget.Label
	genreLabel    *widget.Label
	progress      *widget.ProgressBar
	elapsedLabel  *widget.Label
	totalLabel    *widget.Label
	times         *fyne.Container
	prevBtn       *widget.Button
	playBtn       *widget.Button
	nextBtn       *widget.Button
	heartBtn      *widget.Button
	revealBtn     *widget.Button
	errorLabel    *widget.Label
	playBox       *ScaledBox
	heartBox      *ScaledBox
	content       fyne.CanvasObject
	current       model.Track
	hasTrack      bool
	lastError     *model.PlaybackError
	onRevealTrack func(path string)
}

// NewExpandedPlayer creates the expanded view. durationSeconds labels the progress
// bar; with zero the time labels are hidden since the track length is unknown.
func NewExpandedPlayer(ctrl Controller, localization *Localization, durationSeconds int) *ExpandedPlayer {
	ep := &ExpandedPlayer{
		ctrl:            ctrl,
		localization:    localization,
		durationSeconds: durationSeconds,
	}
	ep.createUI()
	return ep
}

// SetRevealCallback sets the handler of the "show in folder" action
func (ep *ExpandedPlayer) SetRevealCallback(onReveal func(path string)) {
	ep.onRevealTrack = onReveal
}

// Object returns the canvas object to place in the sheet
func (ep *ExpandedPlayer) Object() fyne.CanvasObject {
	return ep.content
}

// Apply renders a player snapshot
func (ep *ExpandedPlayer) Apply(snap model.Snapshot) {
	track, ok := snap.CurrentTrack.Get()
	ep.current, ep.hasTrack = track, ok
	ep.lastError = snap.Error

	if !ok {
		ep.artwork.Clear()
		ep.titleLabel.SetText(ep.localization.GetText(KeyNothingPlaying))
		ep.artistLabel.SetText(DashPlaceholder)
		ep.genreLabel.SetText("")
		ep.setProgress(0)
		ep.playBtn.SetText(IconPlay)
		for _, b := range []*widget.Button{ep.prevBtn, ep.playBtn, ep.nextBtn, ep.heartBtn} {
			b.Disable()
		}
		ep.revealBtn.Hide()
		ep.errorLabel.Hide()
		return
	}

	ep.artwork.SetTrack(track)
	ep.titleLabel.SetText(track.GetDisplayTitle())
	ep.artistLabel.SetText(track.Artist)
	ep.genreLabel.SetText(track.Genre)
	ep.setProgress(snap.Progress)
	for _, b := range []*widget.Button{ep.prevBtn, ep.playBtn, ep.nextBtn, ep.heartBtn} {
		b.Enable()
	}

	if snap.IsPlaying {
		ep.playBtn.SetText(IconPause)
	} else {
		ep.playBtn.SetText(IconPlay)
	}
	if snap.IsLiked(track.ID) {
		ep.heartBtn.SetText(IconHeart)
		ep.heartBtn.Importance = widget.DangerImportance
	} else {
		ep.heartBtn.SetText(IconHeartOff)
		ep.heartBtn.Importance = widget.LowImportance
	}
	ep.heartBtn.Refresh()

	if track.HasSource() {
		ep.revealBtn.Show()
	} else {
		ep.revealBtn.Hide()
	}
	ep.updateError()
}

// ApplyFrame renders the animated button scales
func (ep *ExpandedPlayer) ApplyFrame(frame anim.Frame) {
	ep.playBox.SetScale(frame.PlayScale)
	ep.heartBox.SetScale(frame.HeartScale)
}

// setProgress moves the bar and the m:ss labels
func (ep *ExpandedPlayer) setProgress(progress float64) {
	ep.progress.SetValue(progress)
	if ep.durationSeconds <= 0 {
		return
	}
	elapsed := model.Snapshot{Progress: progress}.Elapsed(ep.durationSeconds)
	ep.elapsedLabel.SetText(model.FormatTime(elapsed))
	ep.totalLabel.SetText(model.FormatTime(ep.durationSeconds))
}

// updateError shows the last playback failure, if any
func (ep *ExpandedPlayer) updateError() {
	if ep.lastError == nil {
		ep.errorLabel.Hide()
		return
	}
	ep.errorLabel.SetText(IconError + " " + ep.localization.GetText(KeyPlaybackFailed) + ": " + ep.lastError.Err.Error())
	ep.errorLabel.Show()
}

// refreshTexts updates texts after a language change
func (ep *ExpandedPlayer) refreshTexts() {
	ep.revealBtn.SetText(IconFolder + " " + ep.localization.GetText(KeyShowInFolder))
	if !ep.hasTrack {
		ep.titleLabel.SetText(ep.localization.GetText(KeyNothingPlaying))
	}
	ep.updateError()
}

// createUI creates the UI components
func (ep *ExpandedPlayer) createUI() {
	ep.collapseBtn = widget.NewButton(IconCollapse, ep.ctrl.Collapse)
	ep.collapseBtn.Importance = widget.LowImportance

	ep.artwork = NewArtwork(ArtworkSize, ArtworkTextSize)

	ep.titleLabel = widget.NewLabel(ep.localization.GetText(KeyNothingPlaying))
	ep.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	ep.titleLabel.Alignment = fyne.TextAlignCenter
	ep.titleLabel.Truncation = fyne.TextTruncateEllipsis
	ep.titleLabel.SizeName = theme.SizeNameSubHeadingText
	ep.artistLabel = widget.NewLabel(DashPlaceholder)
	ep.artistLabel.Alignment = fyne.TextAlignCenter
	ep.genreLabel = widget.NewLabel("")
	ep.genreLabel.Alignment = fyne.TextAlignCenter
	ep.genreLabel.Importance = widget.LowImportance

	ep.progress = widget.NewProgressBar()
	ep.progress.TextFormatter = func() string { return "" }
	ep.elapsedLabel = widget.NewLabel(model.FormatTime(0))
	ep.elapsedLabel.TextStyle = fyne.TextStyle{Monospace: true}
	ep.totalLabel = widget.NewLabel(model.FormatTime(ep.durationSeconds))
	ep.totalLabel.TextStyle = fyne.TextStyle{Monospace: true}
	ep.totalLabel.Alignment = fyne.TextAlignTrailing

	ep.prevBtn = widget.NewButton(IconPrev, func() { ep.ctrl.AdvanceTrack(model.DirectionPrev) })
	ep.nextBtn = widget.NewButton(IconNext, func() { ep.ctrl.AdvanceTrack(model.DirectionNext) })
	ep.playBtn = widget.NewButton(IconPlay, ep.ctrl.TogglePlayPause)
	ep.playBtn.Importance = widget.HighImportance
	ep.heartBtn = widget.NewButton(IconHeartOff, func() {
		if ep.hasTrack {
			ep.ctrl.ToggleLike(ep.current.ID)
		}
	})
	ep.heartBtn.Importance = widget.LowImportance
	ep.playBox = NewScaledBox(ep.playBtn)
	ep.heartBox = NewScaledBox(ep.heartBtn)

	ep.revealBtn = widget.NewButton(IconFolder+" "+ep.localization.GetText(KeyShowInFolder), func() {
		if ep.hasTrack && ep.current.HasSource() && ep.onRevealTrack != nil {
			ep.onRevealTrack(ep.current.SourceURI)
		}
	})
	ep.revealBtn.Importance = widget.LowImportance
	ep.revealBtn.Hide()

	ep.errorLabel = widget.NewLabel("")
	ep.errorLabel.Importance = widget.DangerImportance
	ep.errorLabel.Wrapping = fyne.TextWrapWord
	ep.errorLabel.Hide()

	ep.times = container.NewBorder(nil, nil, ep.elapsedLabel, ep.totalLabel)
	if ep.durationSeconds <= 0 {
		ep.times.Hide()
	}
	transport := container.NewCenter(container.NewHBox(ep.prevBtn, ep.playBox.Container, ep.nextBtn, ep.heartBox.Container))

	ep.content = container.NewVBox(
		container.NewHBox(ep.collapseBtn),
		container.NewCenter(ep.artwork),
		ep.titleLabel,
		ep.artistLabel,
		ep.genreLabel,
		ep.progress,
		ep.times,
		transport,
		container.NewCenter(ep.revealBtn),
		ep.errorLabel,
	)
}
