// Package bootstrap assembles the player from settings and runs its window.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/ytget/swipeplayer/internal/config"
	"github.com/ytget/swipeplayer/internal/engine"
	"github.com/ytget/swipeplayer/internal/library"
	"github.com/ytget/swipeplayer/internal/logging"
	"github.com/ytget/swipeplayer/internal/platform"
	"github.com/ytget/swipeplayer/internal/session"
	"github.com/ytget/swipeplayer/internal/ui"
)

const (
	AppID   = "com.ytget.swipeplayer"
	AppName = "SwipePlayer"

	WindowWidth  = 420
	WindowHeight = 780
)

var _ ui.Controller = (*session.Session)(nil)

// Options configures Run
type Options struct {
	Version string
	// Defaults is the viper layer behind stored preferences; nil uses config.NewDefaults
	Defaults *viper.Viper
	// Pinned keys are read from Defaults even when a preference is stored
	Pinned []string
}

// Run opens the player window and blocks until it is closed
func Run(opts Options) error {
	fyneApp := app.NewWithID(AppID)

	settings := config.NewSettings(fyneApp, opts.Defaults)
	settings.Pin(opts.Pinned...)

	fs := afero.NewOsFs()
	if closer := setupLogging(fs, settings); closer != nil {
		defer closer.Close()
	}
	log := logrus.WithField("component", "bootstrap")
	log.WithField("version", opts.Version).Infof("%s starting", AppName)

	sess := NewSession(fs, settings)

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	ui.NewRootUI(window, fyneApp, settings, sess)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- sess.Run(ctx) }()

	window.ShowAndRun()

	cancel()
	if err := <-done; err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("session: %w", err)
	}
	log.Info("bye")
	return nil
}

// NewSession builds a session from settings
func NewSession(fs afero.Fs, settings *config.Settings) *session.Session {
	source, watchDir := NewSource(fs, settings.GetCatalogPath(), ResolveMusicDir(settings))

	opts := session.DefaultOptions()
	opts.Player = settings.PlayerOptions()
	opts.Gesture = settings.GestureConfig()
	opts.WatchDir = watchDir

	return session.New(NewEngine(fs, settings.GetMute()), library.NewStore(), source, opts)
}

// NewEngine opens the audio device unless muted. A device that cannot be opened
// falls back to the silent engine so the player stays usable.
func NewEngine(fs afero.Fs, mute bool) engine.Engine {
	if mute {
		return engine.NewSilent()
	}
	eng, err := engine.NewBeepEngine(fs)
	if err != nil {
		logrus.WithField("component", "bootstrap").WithError(err).Warn("audio device unavailable, playing silently")
		return engine.NewSilent()
	}
	return eng
}

// NewSource picks the library source: a catalog file wins over a music
// directory, and with neither the built-in sample catalog is used. The returned
// directory, if any, should be watched for changes.
func NewSource(fs afero.Fs, catalogPath, musicDir string) (library.Source, string) {
	switch {
	case catalogPath != "":
		return library.CatalogSource{Fs: fs, Path: catalogPath}, ""
	case musicDir != "":
		scanner := library.NewScanner(fs, musicDir)
		return scanner, scanner.Dir
	default:
		return library.Sample, ""
	}
}

// ResolveMusicDir returns the configured music directory. On Android, where
// device tracks are the point, the shared Music directory is the default.
func ResolveMusicDir(settings *config.Settings) string {
	if dir := settings.GetMusicDirectory(); dir != "" {
		return dir
	}
	if !platform.IsAndroid() {
		return ""
	}
	dir, err := platform.GetHomeMusicDir()
	if err != nil {
		return ""
	}
	return dir
}

// LogOptions maps settings to logging options
func LogOptions(settings *config.Settings) logging.Options {
	opts := logging.Options{
		Level: settings.GetLogLevel(),
		JSON:  settings.GetLogJSON(),
	}
	if settings.GetLogToFile() {
		if dir, err := platform.GetLogDir(); err == nil {
			opts.Dir = dir
		}
	}
	return opts
}

func setupLogging(fs afero.Fs, settings *config.Settings) io.Closer {
	closer, err := logging.Setup(logrus.StandardLogger(), fs, LogOptions(settings))
	if err != nil {
		logrus.WithError(err).Warn("file logging disabled")
		return nil
	}
	return closer
}
