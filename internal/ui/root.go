package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/ytget/swipeplayer/internal/anim"
	"github.com/ytget/swipeplayer/internal/config"
	"github.com/ytget/swipeplayer/internal/model"
	"github.com/ytget/swipeplayer/internal/platform"
	"github.com/ytget/swipeplayer/internal/player"
)

// screen identifies what the area under the header shows
type screen int

const (
	screenLoading screen = iota
	screenDenied
	screenEmpty
	screenTracks
)

// String returns a human-friendly name, used in logs
func (s screen) String() string {
	switch s {
	case screenLoading:
		return "loading"
	case screenDenied:
		return "denied"
	case screenEmpty:
		return "empty"
	case screenTracks:
		return "tracks"
	default:
		return "unknown"
	}
}

// stageLayout places the main content above the collapsed sheet and the sheet at its offset
type stageLayout struct {
	y          float32
	positioned bool
	last       fyne.Size
	onResize   func(fyne.Size)
}

func (l *stageLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 2 {
		return
	}
	objects[0].Move(fyne.NewPos(0, 0))
	objects[0].Resize(fyne.NewSize(size.Width, size.Height-MiniPlayerHeight))

	if !l.positioned {
		// Off screen until the first frame arrives
		l.y = size.Height
	}
	objects[1].Resize(fyne.NewSize(size.Width, size.Height-HeaderHeight))
	objects[1].Move(fyne.NewPos(0, l.y))

	if size != l.last {
		l.last = size
		if l.onResize != nil {
			l.onResize(size)
		}
	}
}

func (l *stageLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) == 0 {
		return fyne.NewSize(0, 0)
	}
	minSize := objects[0].MinSize()
	return fyne.NewSize(minSize.Width, minSize.Height+MiniPlayerHeight)
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	ctrl         Controller
	settings     *config.Settings
	localization *Localization
	theme        *PlayerTheme
	metrics      DeviceMetrics

	// Header
	playingFromLabel *widget.Label
	catalogLabel     *widget.Label
	themeBtn         *widget.Button
	settingsBtn      *widget.Button

	// Body screens
	trackList    *widget.List
	rows         []*TrackRow
	loadingLabel *widget.Label
	deniedLabel  *widget.Label
	retryBtn     *widget.Button
	emptyLabel   *widget.Label
	screens      map[screen]fyne.CanvasObject
	current      screen

	// Player sheet
	mini     *MiniPlayer
	expanded *ExpandedPlayer
	sheet    *Sheet
	stage    *stageLayout

	snapshot model.Snapshot
	status   model.LibraryStatus
	log      *logrus.Entry
}

// NewRootUI creates and initializes the main UI and subscribes it to ctrl
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, ctrl Controller) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		ctrl:         ctrl,
		settings:     settings,
		localization: localization,
		theme:        NewPlayerTheme(settings.GetDarkMode()),
		metrics:      NewDeviceMetrics(),
		status:       model.LibraryStatusUnknown,
		current:      screenLoading,
		log:          logrus.WithField("component", "ui"),
	}

	app.Settings().SetTheme(ui.theme)
	window.SetTitle(localization.GetText(KeyAppTitle))
	window.SetIcon(LogoResource())

	ui.setupUI()

	// Core callbacks arrive on worker goroutines
	ctrl.SetSnapshotCallback(func(snap model.Snapshot) {
		fyne.Do(func() { ui.applySnapshot(snap) })
	})
	ctrl.SetStatusCallback(func(status model.LibraryStatus) {
		fyne.Do(func() { ui.applyStatus(status) })
	})
	ctrl.SetFrameCallback(func(frame anim.Frame) {
		fyne.Do(func() { ui.applyFrame(frame) })
	})

	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Header: catalog name on the left, theme and settings on the right
	ui.playingFromLabel = widget.NewLabel(ui.localization.GetText(KeyPlayingFrom))
	ui.playingFromLabel.Importance = widget.LowImportance
	ui.playingFromLabel.SizeName = theme.SizeNameCaptionText
	ui.catalogLabel = widget.NewLabel(DashPlaceholder)
	ui.catalogLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.catalogLabel.Truncation = fyne.TextTruncateEllipsis

	ui.themeBtn = widget.NewButton(ui.themeIcon(), ui.onToggleTheme)
	ui.themeBtn.Importance = widget.LowImportance
	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	header := container.NewBorder(
		nil, nil, nil,
		container.NewHBox(ui.themeBtn, ui.settingsBtn),
		container.NewHBox(ui.playingFromLabel, ui.catalogLabel),
	)

	// Track list
	ui.trackList = widget.NewList(
		func() int {
			return len(ui.snapshot.Tracks)
		},
		ui.createTrackItem,
		ui.updateTrackItem,
	)
	ui.trackList.OnSelected = func(id widget.ListItemID) {
		ui.trackList.UnselectAll()
		ui.ctrl.SelectTrack(id)
	}

	// Status screens
	ui.loadingLabel = widget.NewLabel(ui.localization.GetText(KeyLoading))
	ui.deniedLabel = widget.NewLabel(ui.localization.GetText(KeyAccessDenied))
	ui.deniedLabel.Alignment = fyne.TextAlignCenter
	ui.retryBtn = widget.NewButton(ui.localization.GetText(KeyRetry), ui.onRetry)
	ui.retryBtn.Importance = widget.HighImportance
	ui.emptyLabel = widget.NewLabel(ui.localization.GetText(KeyEmptyLibrary))

	ui.screens = map[screen]fyne.CanvasObject{
		screenLoading: container.NewCenter(container.NewVBox(widget.NewProgressBarInfinite(), ui.loadingLabel)),
		screenDenied:  container.NewCenter(container.NewVBox(ui.deniedLabel, container.NewCenter(ui.retryBtn))),
		screenEmpty:   container.NewCenter(container.NewVBox(widget.NewLabel(IconMusic), ui.emptyLabel)),
		screenTracks:  ui.trackList,
	}
	bodies := make([]fyne.CanvasObject, 0, len(ui.screens))
	for _, s := range []screen{screenLoading, screenDenied, screenEmpty, screenTracks} {
		if s != ui.current {
			ui.screens[s].Hide()
		}
		bodies = append(bodies, ui.screens[s])
	}

	content := container.NewBorder(header, nil, nil, nil, container.NewStack(bodies...))

	// Player sheet
	ui.mini = NewMiniPlayer(ui.ctrl, ui.localization)
	ui.expanded = NewExpandedPlayer(ui.ctrl, ui.localization, ui.labelDuration())
	ui.expanded.SetRevealCallback(ui.onRevealTrack)
	ui.sheet = NewSheet(ui.ctrl, ui.mini, ui.expanded)

	ui.stage = &stageLayout{onResize: ui.onStageResize}
	ui.window.SetContent(container.New(ui.stage, content, ui.sheet))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	t := ui.localization.GetText
	ui.window.SetTitle(t(KeyAppTitle))
	ui.playingFromLabel.SetText(t(KeyPlayingFrom))
	ui.loadingLabel.SetText(t(KeyLoading))
	ui.deniedLabel.SetText(t(KeyAccessDenied))
	ui.retryBtn.SetText(t(KeyRetry))
	ui.emptyLabel.SetText(t(KeyEmptyLibrary))
	ui.mini.refreshTexts()
	ui.expanded.refreshTexts()
}

// themeIcon shows the variant a tap would switch to
func (ui *RootUI) themeIcon() string {
	if ui.theme.IsDark() {
		return IconTheme
	}
	return IconThemeDark
}

// onToggleTheme flips between the light and dark palette and persists the choice
func (ui *RootUI) onToggleTheme() {
	ui.setDarkMode(!ui.theme.IsDark())
	ui.settings.SetDarkMode(ui.theme.IsDark())
}

func (ui *RootUI) setDarkMode(dark bool) {
	if dark == ui.theme.IsDark() {
		return
	}
	ui.theme = NewPlayerTheme(dark)
	ui.app.Settings().SetTheme(ui.theme)
	ui.themeBtn.SetText(ui.themeIcon())
	ui.sheet.Refresh()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies the settings that take effect without a restart
func (ui *RootUI) onSettingsSaved() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()
	ui.setDarkMode(ui.settings.GetDarkMode())
}

// labelDuration is the track length shown next to the progress bar. Engine
// progress follows the real file, so the nominal length would be wrong there.
func (ui *RootUI) labelDuration() int {
	if ui.settings.GetProgressSource() == player.ProgressFromEngine {
		return 0
	}
	return ui.settings.GetTrackDuration()
}

// onRetry asks the core to read the library again
func (ui *RootUI) onRetry() {
	ui.applyStatus(model.LibraryStatusLoading)
	ui.ctrl.Retry()
}

// onRevealTrack shows a track's file in the system file manager
func (ui *RootUI) onRevealTrack(path string) {
	if err := platform.OpenFileInManager(path); err != nil {
		ui.log.WithError(err).WithField("path", path).Warn("reveal track failed")
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error()), ui.window.Canvas())
	}
}

// onStageResize recomputes the sheet bounds for the new height
func (ui *RootUI) onStageResize(size fyne.Size) {
	expanded, collapsed := ui.metrics.SheetBounds(size.Height)
	ui.ctrl.SetBounds(expanded, collapsed)
}

// createTrackItem creates a new track row for the list
func (ui *RootUI) createTrackItem() fyne.CanvasObject {
	row := NewTrackRow()
	row.SetLikeCallback(ui.ctrl.ToggleLike)
	ui.rows = append(ui.rows, row)
	return row
}

// updateTrackItem binds a list row to the track at id
func (ui *RootUI) updateTrackItem(id widget.ListItemID, item fyne.CanvasObject) {
	row, ok := item.(*TrackRow)
	if !ok || id < 0 || id >= len(ui.snapshot.Tracks) {
		return
	}
	track := ui.snapshot.Tracks[id]
	row.SetTrack(track, id, ui.snapshot.IsCurrent(id), ui.snapshot.IsPlaying, ui.snapshot.IsLiked(track.ID))
}

// applySnapshot renders player state. Must run on the Fyne thread.
func (ui *RootUI) applySnapshot(snap model.Snapshot) {
	ui.snapshot = snap
	ui.catalogLabel.SetText(ui.catalogName())
	ui.mini.Apply(snap)
	ui.expanded.Apply(snap)
	ui.sheet.SetExpanded(snap.IsExpanded)
	ui.trackList.Refresh()
	ui.updateScreen()
}

// applyStatus renders a library status change. Must run on the Fyne thread.
func (ui *RootUI) applyStatus(status model.LibraryStatus) {
	ui.status = status
	ui.catalogLabel.SetText(ui.catalogName())
	ui.updateScreen()
}

// applyFrame moves the sheet and renders animated values. Must run on the Fyne thread.
func (ui *RootUI) applyFrame(frame anim.Frame) {
	ui.stage.positioned = true
	ui.stage.y = float32(frame.Y)
	ui.sheet.Move(fyne.NewPos(0, ui.stage.y))
	ui.sheet.ApplyFrame(frame, ui.theme.surfaceColor())
	for _, row := range ui.rows {
		row.SetBars(frame.Bars)
	}
}

func (ui *RootUI) catalogName() string {
	if name := ui.ctrl.CatalogName(); name != "" {
		return name
	}
	return DashPlaceholder
}

// updateScreen shows the body screen matching library status and tracks
func (ui *RootUI) updateScreen() {
	next := screenTracks
	switch {
	case ui.status == model.LibraryStatusDenied:
		next = screenDenied
	case !ui.status.IsSettled():
		next = screenLoading
	case len(ui.snapshot.Tracks) == 0:
		next = screenEmpty
	}
	if next == ui.current {
		return
	}

	ui.log.WithField("screen", next).Debug("switch screen")
	ui.screens[ui.current].Hide()
	ui.screens[next].Show()
	ui.current = next
}
