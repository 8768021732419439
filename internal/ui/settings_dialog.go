package ui

import (
	"errors"
	"maps"
	"slices"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/swipeplayer/internal/config"
	"github.com/ytget/swipeplayer/internal/player"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	musicDirEntry  *widget.Entry
	catalogEntry   *widget.Entry
	durationEntry  *widget.Entry
	progressSelect *widget.Select
	languageSelect *widget.Select
	darkModeCheck  *widget.Check
	muteCheck      *widget.Check

	languageCodes map[string]string // display name -> code
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after a confirmed save.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	t := sd.localization.GetText

	// Music directory selection
	sd.musicDirEntry = widget.NewEntry()
	sd.musicDirEntry.SetPlaceHolder(t(KeyMusicDirectoryHint))
	browseDirBtn := widget.NewButton(t(KeyBrowse), sd.onBrowseDirectory)
	musicDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.musicDirEntry)

	// Catalog file selection
	sd.catalogEntry = widget.NewEntry()
	sd.catalogEntry.SetPlaceHolder(t(KeyCatalogPathHint))
	browseFileBtn := widget.NewButton(t(KeyBrowse), sd.onBrowseCatalog)
	catalogRow := container.NewBorder(nil, nil, nil, browseFileBtn, sd.catalogEntry)

	// Track duration
	sd.durationEntry = widget.NewEntry()
	sd.durationEntry.SetPlaceHolder(t(KeyTrackDurationHint))
	sd.durationEntry.Validator = sd.validateDuration

	// Progress source
	sd.progressSelect = widget.NewSelect([]string{
		player.ProgressFromClock.String(),
		player.ProgressFromEngine.String(),
	}, nil)

	// Language selection, shown by display name
	languageLabels := sd.settings.GetLanguageOptions()
	sd.languageCodes = make(map[string]string, len(languageLabels))
	for code, name := range languageLabels {
		sd.languageCodes[name] = code
	}
	sd.languageSelect = widget.NewSelect(slices.Sorted(maps.Keys(sd.languageCodes)), nil)
	sd.languageSelect.PlaceHolder = t(KeySelectLanguage)

	sd.darkModeCheck = widget.NewCheck(t(KeyDarkMode), nil)
	sd.muteCheck = widget.NewCheck(t(KeyMute), nil)

	// Create form
	form := container.NewVBox(
		widget.NewLabel(t(KeyLibrarySettings)),
		widget.NewSeparator(),

		widget.NewLabel(t(KeyMusicDirectory)+":"),
		musicDirRow,

		widget.NewLabel(t(KeyCatalogPath)+":"),
		catalogRow,

		widget.NewSeparator(),
		widget.NewLabel(t(KeyPlaybackSettings)),
		widget.NewSeparator(),

		widget.NewLabel(t(KeyTrackDuration)+":"),
		sd.durationEntry,

		widget.NewLabel(t(KeyProgressSource)+":"),
		sd.progressSelect,

		sd.muteCheck,

		widget.NewSeparator(),
		widget.NewLabel(t(KeyInterfaceSettings)),
		widget.NewSeparator(),

		widget.NewLabel(t(KeyLanguage)+":"),
		sd.languageSelect,

		sd.darkModeCheck,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		t(KeySettings),
		t(KeySave),
		t(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.musicDirEntry.SetText(sd.settings.GetMusicDirectory())
	sd.catalogEntry.SetText(sd.settings.GetCatalogPath())
	sd.durationEntry.SetText(strconv.Itoa(sd.settings.GetTrackDuration()))
	sd.progressSelect.SetSelected(sd.settings.GetProgressSource().String())
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
	sd.darkModeCheck.SetChecked(sd.settings.GetDarkMode())
	sd.muteCheck.SetChecked(sd.settings.GetMute())
}

// validateDuration accepts whole seconds within the configured limits
func (sd *SettingsDialog) validateDuration(text string) error {
	seconds, err := strconv.Atoi(text)
	if err != nil || seconds < config.MinTrackDuration || seconds > config.MaxTrackDuration {
		return errors.New(sd.localization.GetText(KeyInvalidDuration))
	}
	return nil
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.musicDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onBrowseCatalog handles catalog file browsing
func (sd *SettingsDialog) onBrowseCatalog() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		sd.catalogEntry.SetText(reader.URI().Path())
	}, sd.window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".yaml", ".yml"}))
	fd.Show()
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	sd.apply()

	if sd.onSaved != nil {
		sd.onSaved()
	}

	// Show confirmation
	dialog.ShowInformation(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved)+"\n"+sd.localization.GetText(KeyRestartRequired),
		sd.window,
	)
}

// apply writes the form values into settings
func (sd *SettingsDialog) apply() {
	// Untouched paths stay unset so environment defaults keep applying
	if sd.musicDirEntry.Text != sd.settings.GetMusicDirectory() {
		sd.settings.SetMusicDirectory(sd.musicDirEntry.Text)
	}
	if sd.catalogEntry.Text != sd.settings.GetCatalogPath() {
		sd.settings.SetCatalogPath(sd.catalogEntry.Text)
	}

	// Invalid durations keep the stored value
	if sd.validateDuration(sd.durationEntry.Text) == nil {
		seconds, _ := strconv.Atoi(sd.durationEntry.Text)
		sd.settings.SetTrackDuration(seconds)
	}

	if sd.progressSelect.Selected != "" {
		if source, err := player.ParseProgressSource(sd.progressSelect.Selected); err == nil {
			sd.settings.SetProgressSource(source)
		}
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	sd.settings.SetDarkMode(sd.darkModeCheck.Checked)
	sd.settings.SetMute(sd.muteCheck.Checked)
}
