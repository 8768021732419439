package config

import (
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. SWIPEPLAYER_PLAYER_TRACK_DURATION
const EnvPrefix = "swipeplayer"

// EnvKeyReplacer normalizes configuration keys into environment variable names
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Configuration keys, shared by viper and Fyne preferences
const (
	KeyMusicDir       = "library.music_dir"
	KeyCatalogPath    = "library.catalog"
	KeyTrackDuration  = "player.track_duration"
	KeyProgressSource = "player.progress_source"
	KeyFlickVelocity  = "gesture.flick_velocity"
	KeyCommitDuration = "gesture.commit_duration_ms"
	KeyDarkMode       = "ui.dark_mode"
	KeyLanguage       = "ui.language"
	KeyMute           = "audio.mute"
	KeyLogsLevel      = "logs.level"
	KeyLogsJSON       = "logs.json"
	KeyLogsWrite      = "logs.write"
)

// Field is one configuration entry with its factory default
type Field struct {
	Key         string
	Value       any
	Description string
}

// Default holds every configuration field by key
var Default = make(map[string]Field)

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
	}

	register(KeyMusicDir, "", "Directory scanned for mp3 and wav files")
	register(KeyCatalogPath, "", "YAML catalog file; takes precedence over the music directory")
	register(KeyTrackDuration, DefaultTrackDuration, "Nominal track length in seconds for the progress clock")
	register(KeyProgressSource, DefaultProgressSource, "What drives progress: clock or engine")
	register(KeyFlickVelocity, DefaultFlickVelocity, "Release velocity that commits regardless of position")
	register(KeyCommitDuration, DefaultCommitDurationMs, "Length of the expand and collapse animation in milliseconds")
	register(KeyDarkMode, DefaultDarkMode, "Use the dark theme")
	register(KeyLanguage, DefaultLanguage, "Interface language")
	register(KeyMute, false, "Do not open the audio device")
	register(KeyLogsLevel, "info", "Available options are: panic, fatal, error, warn, info, debug, trace")
	register(KeyLogsJSON, false, "Write logs as JSON")
	register(KeyLogsWrite, false, "Write logs to a dated file instead of stderr")
}

// NewDefaults returns a viper instance holding the factory defaults with
// environment overrides bound
func NewDefaults() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(EnvKeyReplacer)
	v.AutomaticEnv()

	v.SetTypeByDefaultValue(true)
	for name, field := range Default {
		v.SetDefault(name, field.Value)
	}
	return v
}
