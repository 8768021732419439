package engine

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/wav"
	"github.com/spf13/afero"

	"github.com/ytget/swipeplayer/internal/model"
)

// SupportedExtensions lists the file types the engine can decode
var SupportedExtensions = []string{".mp3", ".wav"}

// IsSupported reports whether path has a decodable extension
func IsSupported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range SupportedExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Decode opens the track's source on fs and returns a seekable stream
func Decode(fs afero.Fs, track model.Track) (beep.StreamSeekCloser, beep.Format, error) {
	if !track.HasSource() {
		return nil, beep.Format{}, ErrNoSource
	}

	ext := strings.ToLower(filepath.Ext(track.SourceURI))
	if !IsSupported(ext) {
		return nil, beep.Format{}, fmt.Errorf("%s: %w", track.SourceURI, ErrUnsupportedFormat)
	}

	f, err := fs.Open(track.SourceURI)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("failed to open %s: %w", track.SourceURI, err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	}
	if err != nil {
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("failed to decode %s: %w", track.SourceURI, err)
	}
	return streamer, format, nil
}
