package library

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/swipeplayer/internal/model"
)

const catalogYAML = `
name: Late Night
liked: [2]
tracks:
  - id: 1
    title: First
    artist: Someone
    genre: Ambient
    color: "#112233"
    image: "🌙"
  - id: 2
    title: Second
    artist: Someone Else
    source: /music/second.mp3
`

func TestParseCatalog(t *testing.T) {
	c, err := ParseCatalog([]byte(catalogYAML))
	require.NoError(t, err)

	assert.Equal(t, "Late Night", c.Name)
	assert.Equal(t, []int{2}, c.Liked)
	require.Len(t, c.Tracks, 2)
	assert.Equal(t, model.Track{
		ID: 1, Title: "First", Artist: "Someone", Genre: "Ambient", ColorToken: "#112233", ImageToken: "🌙",
	}, c.Tracks[0])
	assert.Equal(t, "/music/second.mp3", c.Tracks[1].SourceURI)
	assert.False(t, c.Tracks[0].HasSource())
}

func TestParseCatalog_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{"duplicate id", "tracks:\n  - {id: 1, title: A}\n  - {id: 1, title: B}\n", ErrDuplicateID},
		{"empty title", "tracks:\n  - {id: 1, title: \"  \"}\n", ErrEmptyTitle},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(test.data))
			assert.ErrorIs(t, err, test.wantErr)
		})
	}

	_, err := ParseCatalog([]byte("tracks: [unterminated"))
	assert.Error(t, err)
}

func TestLoadAndSaveCatalog(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := LoadCatalog(fs, "/missing.yaml")
	assert.Error(t, err)

	sample := model.SampleCatalog()
	require.NoError(t, SaveCatalog(fs, "/catalog.yaml", sample))

	loaded, err := CatalogSource{Fs: fs, Path: "/catalog.yaml"}.Load()
	require.NoError(t, err)
	assert.Equal(t, sample, loaded)

	bad := model.Catalog{Tracks: []model.Track{{ID: 1, Title: "A"}, {ID: 1, Title: "B"}}}
	assert.ErrorIs(t, SaveCatalog(fs, "/bad.yaml", bad), ErrDuplicateID)
}
