package bootstrap

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/swipeplayer/internal/config"
	"github.com/ytget/swipeplayer/internal/engine"
	"github.com/ytget/swipeplayer/internal/library"
	"github.com/ytget/swipeplayer/internal/model"
)

func TestNewSourceCatalogWins(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, library.SaveCatalog(fs, "/catalog.yaml", model.SampleCatalog()))

	source, watchDir := NewSource(fs, "/catalog.yaml", "/music")

	assert.Empty(t, watchDir)
	catalog, err := source.Load()
	require.NoError(t, err)
	assert.Len(t, catalog.Tracks, len(model.SampleCatalog().Tracks))
}

func TestNewSourceMusicDirIsWatched(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/music/a/song.mp3", []byte("x"), 0o644))

	source, watchDir := NewSource(fs, "", "/music")

	assert.Equal(t, "/music", watchDir)
	catalog, err := source.Load()
	require.NoError(t, err)
	require.Len(t, catalog.Tracks, 1)
	assert.Equal(t, "song", catalog.Tracks[0].Title)
}

func TestNewSourceFallsBackToSample(t *testing.T) {
	source, watchDir := NewSource(afero.NewMemMapFs(), "", "")

	assert.Empty(t, watchDir)
	catalog, err := source.Load()
	require.NoError(t, err)
	assert.Equal(t, model.SampleCatalog().Tracks, catalog.Tracks)
}

func TestNewEngineMuted(t *testing.T) {
	eng := NewEngine(afero.NewMemMapFs(), true)

	_, silent := eng.(*engine.Silent)
	assert.True(t, silent)
	assert.NoError(t, eng.Close())
}

func TestResolveMusicDirUsesSettings(t *testing.T) {
	settings := config.NewSettings(test.NewApp(), nil)
	settings.SetMusicDirectory("/srv/music")

	assert.Equal(t, "/srv/music", ResolveMusicDir(settings))
}

func TestLogOptions(t *testing.T) {
	defaults := config.NewDefaults()
	defaults.Set(config.KeyLogsLevel, "debug")
	defaults.Set(config.KeyLogsJSON, true)
	settings := config.NewSettings(test.NewApp(), defaults)

	opts := LogOptions(settings)

	assert.Equal(t, "debug", opts.Level)
	assert.True(t, opts.JSON)
	assert.Empty(t, opts.Dir)
}
