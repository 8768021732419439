package config

import (
	"time"

	"fyne.io/fyne/v2"
	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/ytget/swipeplayer/internal/gesture"
	"github.com/ytget/swipeplayer/internal/player"
)

// Default values
const (
	DefaultTrackDuration    = player.DefaultTrackDurationSeconds
	DefaultProgressSource   = "clock"
	DefaultFlickVelocity    = gesture.DefaultFlickVelocity
	DefaultCommitDurationMs = 400
	DefaultDarkMode         = true
	DefaultLanguage         = "system"
)

// Limits
const (
	MinTrackDuration    = 1
	MaxTrackDuration    = 3600
	MinFlickVelocity    = 100.0
	MaxFlickVelocity    = 5000.0
	MinCommitDurationMs = 100
	MaxCommitDurationMs = 2000
)

// Settings manages application configuration. Stored preferences win; unset
// ones fall back to the viper defaults, which include environment overrides.
type Settings struct {
	app      fyne.App
	defaults *viper.Viper
	pinned   map[string]struct{}
}

// NewSettings creates a new settings manager. defaults may be nil.
func NewSettings(app fyne.App, defaults *viper.Viper) *Settings {
	if defaults == nil {
		defaults = NewDefaults()
	}
	return &Settings{app: app, defaults: defaults, pinned: make(map[string]struct{})}
}

// Pin makes keys read from the viper layer even when a preference is stored.
// Used for values given on the command line.
func (s *Settings) Pin(keys ...string) {
	for _, key := range keys {
		s.pinned[key] = struct{}{}
	}
}

func (s *Settings) isPinned(key string) bool {
	_, ok := s.pinned[key]
	return ok
}

// Defaults returns the fallback layer
func (s *Settings) Defaults() *viper.Viper {
	return s.defaults
}

func (s *Settings) prefs() fyne.Preferences {
	return s.app.Preferences()
}

func (s *Settings) stringValue(key string) string {
	if s.isPinned(key) {
		return s.defaults.GetString(key)
	}
	return s.prefs().StringWithFallback(key, s.defaults.GetString(key))
}

func (s *Settings) intValue(key string) int {
	if s.isPinned(key) {
		return s.defaults.GetInt(key)
	}
	return s.prefs().IntWithFallback(key, s.defaults.GetInt(key))
}

func (s *Settings) floatValue(key string) float64 {
	if s.isPinned(key) {
		return s.defaults.GetFloat64(key)
	}
	return s.prefs().FloatWithFallback(key, s.defaults.GetFloat64(key))
}

func (s *Settings) boolValue(key string) bool {
	if s.isPinned(key) {
		return s.defaults.GetBool(key)
	}
	return s.prefs().BoolWithFallback(key, s.defaults.GetBool(key))
}

// GetMusicDirectory returns the configured music directory, empty when unset
func (s *Settings) GetMusicDirectory() string {
	return s.stringValue(KeyMusicDir)
}

// SetMusicDirectory sets the music directory
func (s *Settings) SetMusicDirectory(dir string) {
	s.prefs().SetString(KeyMusicDir, dir)
}

// GetCatalogPath returns the configured catalog file, empty when unset
func (s *Settings) GetCatalogPath() string {
	return s.stringValue(KeyCatalogPath)
}

// SetCatalogPath sets the catalog file
func (s *Settings) SetCatalogPath(path string) {
	s.prefs().SetString(KeyCatalogPath, path)
}

// GetTrackDuration returns the nominal track length in seconds
func (s *Settings) GetTrackDuration() int {
	value := s.intValue(KeyTrackDuration)
	return lo.Clamp(value, MinTrackDuration, MaxTrackDuration)
}

// SetTrackDuration sets the nominal track length in seconds
func (s *Settings) SetTrackDuration(seconds int) {
	s.prefs().SetInt(KeyTrackDuration, lo.Clamp(seconds, MinTrackDuration, MaxTrackDuration))
}

// GetProgressSource returns what drives the progress bar
func (s *Settings) GetProgressSource() player.ProgressSource {
	value := s.stringValue(KeyProgressSource)
	source, err := player.ParseProgressSource(value)
	if err != nil {
		return player.ProgressFromClock
	}
	return source
}

// SetProgressSource sets what drives the progress bar
func (s *Settings) SetProgressSource(source player.ProgressSource) {
	s.prefs().SetString(KeyProgressSource, source.String())
}

// GetFlickVelocity returns the release velocity that forces a commit
func (s *Settings) GetFlickVelocity() float64 {
	value := s.floatValue(KeyFlickVelocity)
	return lo.Clamp(value, MinFlickVelocity, MaxFlickVelocity)
}

// SetFlickVelocity sets the release velocity that forces a commit
func (s *Settings) SetFlickVelocity(velocity float64) {
	s.prefs().SetFloat(KeyFlickVelocity, lo.Clamp(velocity, MinFlickVelocity, MaxFlickVelocity))
}

// GetCommitDuration returns the length of the expand/collapse animation
func (s *Settings) GetCommitDuration() time.Duration {
	ms := s.intValue(KeyCommitDuration)
	return time.Duration(lo.Clamp(ms, MinCommitDurationMs, MaxCommitDurationMs)) * time.Millisecond
}

// SetCommitDuration sets the length of the expand/collapse animation
func (s *Settings) SetCommitDuration(d time.Duration) {
	s.prefs().SetInt(KeyCommitDuration, lo.Clamp(int(d/time.Millisecond), MinCommitDurationMs, MaxCommitDurationMs))
}

// GetDarkMode returns whether the dark theme is selected
func (s *Settings) GetDarkMode() bool {
	return s.boolValue(KeyDarkMode)
}

// SetDarkMode selects the dark or light theme
func (s *Settings) SetDarkMode(dark bool) {
	s.prefs().SetBool(KeyDarkMode, dark)
}

// GetMute returns whether audio output is disabled
func (s *Settings) GetMute() bool {
	return s.boolValue(KeyMute)
}

// SetMute enables or disables audio output
func (s *Settings) SetMute(mute bool) {
	s.prefs().SetBool(KeyMute, mute)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.stringValue(KeyLanguage)
	if lang == "" {
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.prefs().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"es":     "Español",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GestureConfig returns the gesture tuning derived from settings
func (s *Settings) GestureConfig() gesture.Config {
	cfg := gesture.DefaultConfig()
	cfg.FlickVelocity = s.GetFlickVelocity()
	cfg.CommitDuration = s.GetCommitDuration()
	return cfg
}

// PlayerOptions returns the state machine options derived from settings
func (s *Settings) PlayerOptions() player.Options {
	return player.Options{
		TrackDurationSeconds: s.GetTrackDuration(),
		ProgressSource:       s.GetProgressSource(),
	}
}

// GetLogLevel returns the logrus level name
func (s *Settings) GetLogLevel() string {
	return s.stringValue(KeyLogsLevel)
}

// GetLogJSON reports whether logs are written as JSON
func (s *Settings) GetLogJSON() bool {
	return s.boolValue(KeyLogsJSON)
}

// GetLogToFile reports whether logs go to a dated file
func (s *Settings) GetLogToFile() bool {
	return s.boolValue(KeyLogsWrite)
}
