package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/swipeplayer/internal/player"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, nil)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
	if settings.Defaults() == nil {
		t.Error("Settings should create a defaults layer when none is given")
	}
}

func TestMusicDirectory(t *testing.T) {
	settings := NewSettings(test.NewApp(), nil)

	if dir := settings.GetMusicDirectory(); dir != "" {
		t.Errorf("Expected empty music directory by default, got %s", dir)
	}

	customDir := "/custom/music"
	settings.SetMusicDirectory(customDir)

	if dir := settings.GetMusicDirectory(); dir != customDir {
		t.Errorf("Expected music directory %s, got %s", customDir, dir)
	}
}

func TestTrackDuration(t *testing.T) {
	settings := NewSettings(test.NewApp(), nil)

	if d := settings.GetTrackDuration(); d != DefaultTrackDuration {
		t.Errorf("Expected default track duration %d, got %d", DefaultTrackDuration, d)
	}

	settings.SetTrackDuration(180)
	if d := settings.GetTrackDuration(); d != 180 {
		t.Errorf("Expected track duration 180, got %d", d)
	}

	settings.SetTrackDuration(0) // Should be clamped to 1
	if settings.GetTrackDuration() != MinTrackDuration {
		t.Error("Track duration should be clamped to minimum 1")
	}

	settings.SetTrackDuration(10_000) // Should be clamped to 3600
	if settings.GetTrackDuration() != MaxTrackDuration {
		t.Error("Track duration should be clamped to maximum 3600")
	}
}

func TestEnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("SWIPEPLAYER_PLAYER_TRACK_DURATION", "90")
	t.Setenv("SWIPEPLAYER_LIBRARY_MUSIC_DIR", "/env/music")

	settings := NewSettings(test.NewApp(), NewDefaults())

	if d := settings.GetTrackDuration(); d != 90 {
		t.Errorf("Expected track duration from environment 90, got %d", d)
	}
	if dir := settings.GetMusicDirectory(); dir != "/env/music" {
		t.Errorf("Expected music directory from environment, got %s", dir)
	}

	// Stored preferences win over the environment
	settings.SetTrackDuration(120)
	if d := settings.GetTrackDuration(); d != 120 {
		t.Errorf("Expected stored track duration 120, got %d", d)
	}
}

func TestProgressSource(t *testing.T) {
	settings := NewSettings(test.NewApp(), nil)

	if src := settings.GetProgressSource(); src != player.ProgressFromClock {
		t.Errorf("Expected default progress source clock, got %s", src)
	}

	settings.SetProgressSource(player.ProgressFromEngine)
	if src := settings.GetProgressSource(); src != player.ProgressFromEngine {
		t.Errorf("Expected progress source engine, got %s", src)
	}

	settings.app.Preferences().SetString(KeyProgressSource, "bogus")
	if src := settings.GetProgressSource(); src != player.ProgressFromClock {
		t.Errorf("Unknown progress source should fall back to clock, got %s", src)
	}
}

func TestGestureTuning(t *testing.T) {
	settings := NewSettings(test.NewApp(), nil)

	cfg := settings.GestureConfig()
	if cfg.FlickVelocity != DefaultFlickVelocity {
		t.Errorf("Expected default flick velocity %v, got %v", DefaultFlickVelocity, cfg.FlickVelocity)
	}
	if cfg.CommitDuration != 400*time.Millisecond {
		t.Errorf("Expected default commit duration 400ms, got %v", cfg.CommitDuration)
	}

	settings.SetFlickVelocity(1)
	if v := settings.GetFlickVelocity(); v != MinFlickVelocity {
		t.Errorf("Flick velocity should be clamped to %v, got %v", MinFlickVelocity, v)
	}

	settings.SetCommitDuration(250 * time.Millisecond)
	if d := settings.GestureConfig().CommitDuration; d != 250*time.Millisecond {
		t.Errorf("Expected commit duration 250ms, got %v", d)
	}
}

func TestDarkModeAndMute(t *testing.T) {
	settings := NewSettings(test.NewApp(), nil)

	if !settings.GetDarkMode() {
		t.Error("Dark mode should be on by default")
	}
	settings.SetDarkMode(false)
	if settings.GetDarkMode() {
		t.Error("Dark mode should be off after SetDarkMode(false)")
	}

	if settings.GetMute() {
		t.Error("Mute should be off by default")
	}
	settings.SetMute(true)
	if !settings.GetMute() {
		t.Error("Mute should be on after SetMute(true)")
	}
}

func TestLanguage(t *testing.T) {
	settings := NewSettings(test.NewApp(), nil)

	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("es")
	if lang := settings.GetLanguage(); lang != "es" {
		t.Errorf("Expected language es, got %s", lang)
	}

	options := settings.GetLanguageOptions()
	for _, code := range []string{"system", "en", "es", "ru", "pt"} {
		if _, ok := options[code]; !ok {
			t.Errorf("Language option %s should be available", code)
		}
	}
}

func TestPlayerOptions(t *testing.T) {
	settings := NewSettings(test.NewApp(), nil)
	settings.SetTrackDuration(30)

	opts := settings.PlayerOptions()
	if opts.TrackDurationSeconds != 30 {
		t.Errorf("Expected track duration 30, got %d", opts.TrackDurationSeconds)
	}
	if opts.ProgressSource != player.ProgressFromClock {
		t.Errorf("Expected clock progress source, got %s", opts.ProgressSource)
	}
}

func TestDefaultTableIsComplete(t *testing.T) {
	keys := []string{
		KeyMusicDir, KeyCatalogPath, KeyTrackDuration, KeyProgressSource, KeyFlickVelocity,
		KeyCommitDuration, KeyDarkMode, KeyLanguage, KeyMute, KeyLogsLevel, KeyLogsJSON, KeyLogsWrite,
	}
	for _, k := range keys {
		if _, ok := Default[k]; !ok {
			t.Errorf("Missing default for %s", k)
		}
	}
}

func TestPinnedKeysIgnoreStoredPreferences(t *testing.T) {
	defaults := NewDefaults()
	settings := NewSettings(test.NewApp(), defaults)

	settings.SetMusicDirectory("/stored/music")
	settings.SetMute(false)

	defaults.Set(KeyMusicDir, "/from/flag")
	defaults.Set(KeyMute, true)
	settings.Pin(KeyMusicDir, KeyMute)

	if dir := settings.GetMusicDirectory(); dir != "/from/flag" {
		t.Errorf("Expected pinned music directory /from/flag, got %s", dir)
	}
	if !settings.GetMute() {
		t.Error("Expected pinned mute to win over the stored preference")
	}
	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Unpinned keys should keep their usual lookup, got %s", lang)
	}
}

func TestLogSettings(t *testing.T) {
	defaults := NewDefaults()
	settings := NewSettings(test.NewApp(), defaults)

	if level := settings.GetLogLevel(); level != "info" {
		t.Errorf("Expected default log level info, got %s", level)
	}
	if settings.GetLogJSON() || settings.GetLogToFile() {
		t.Error("Expected text logs on stderr by default")
	}

	defaults.Set(KeyLogsLevel, "debug")
	defaults.Set(KeyLogsJSON, true)
	if level := settings.GetLogLevel(); level != "debug" {
		t.Errorf("Expected overridden log level debug, got %s", level)
	}
	if !settings.GetLogJSON() {
		t.Error("Expected JSON logs after override")
	}
}
