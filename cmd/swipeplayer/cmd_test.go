package main

import (
	"testing"

	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/swipeplayer/internal/config"
	"github.com/ytget/swipeplayer/internal/library"
)

func TestWriteCatalog(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/music/b.wav", []byte("x"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/music/a.mp3", []byte("x"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/music/notes.txt", []byte("x"), 0o644))

	count, err := writeCatalog(fs, "/music", "/out/catalog.yaml", "Mix")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	catalog, err := library.LoadCatalog(fs, "/out/catalog.yaml")
	require.NoError(t, err)
	assert.Equal(t, "Mix", catalog.Name)
	require.Len(t, catalog.Tracks, 2)
	assert.Equal(t, "a", catalog.Tracks[0].Title)
	assert.Equal(t, "/music/a.mp3", catalog.Tracks[0].SourceURI)
}

func TestWriteCatalogRejectsEmptyDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/empty", 0o755))

	_, err := writeCatalog(fs, "/empty", "/catalog.yaml", "")
	assert.Error(t, err)

	exists, err := afero.Exists(fs, "/catalog.yaml")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestPinnedKeys(t *testing.T) {
	require.NoError(t, rootCmd.ParseFlags([]string{"--mute", "--music-dir", "/srv/music"}))

	assert.ElementsMatch(t, []string{config.KeyMute, config.KeyMusicDir}, pinnedKeys(rootCmd))
	assert.Equal(t, "/srv/music", defaults.GetString(config.KeyMusicDir))
	assert.True(t, defaults.GetBool(config.KeyMute))
}

func TestSelectFields(t *testing.T) {
	fields, err := selectFields(nil)
	require.NoError(t, err)
	assert.Len(t, fields, len(config.Default))
	assert.IsIncreasing(t, lo.Map(fields, func(field config.Field, _ int) string { return field.Key }))

	fields, err = selectFields([]string{config.KeyMute})
	require.NoError(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, config.KeyMute, fields[0].Key)

	_, err = selectFields([]string{"no.such.key"})
	assert.Error(t, err)
}

func TestEnvName(t *testing.T) {
	assert.Equal(t, "SWIPEPLAYER_PLAYER_TRACK_DURATION", envName(config.KeyTrackDuration))
}
