package library

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/ytget/swipeplayer/internal/engine"
	"github.com/ytget/swipeplayer/internal/model"
)

// Defaults for tracks found on disk
const (
	UnknownArtist    = "Unknown"
	ScannedColor     = "#374151"
	ScannedImage     = "♪"
	ScannedGenre     = ""
	scannedNameLabel = "Music"
)

// ErrDenied is returned when the music directory cannot be read
var ErrDenied = errors.New("library access denied")

// Scanner enumerates audio files under a directory
type Scanner struct {
	Fs  afero.Fs
	Dir string
}

// NewScanner creates a scanner for dir on fs. On the OS filesystem dir is made
// absolute so track sources are absolute paths.
func NewScanner(fsys afero.Fs, dir string) *Scanner {
	if _, ok := fsys.(*afero.OsFs); ok {
		if abs, err := filepath.Abs(dir); err == nil {
			dir = abs
		}
	}
	return &Scanner{Fs: fsys, Dir: dir}
}

// Load implements Source
func (s *Scanner) Load() (model.Catalog, error) {
	tracks, err := s.Scan()
	if err != nil {
		return model.Catalog{}, err
	}
	name := filepath.Base(s.Dir)
	if name == "." || name == string(filepath.Separator) {
		name = scannedNameLabel
	}
	return model.Catalog{Name: name, Tracks: tracks}, nil
}

// Scan walks the directory and returns one track per playable file, ordered by
// path and numbered from 1. A missing directory yields no tracks.
func (s *Scanner) Scan() ([]model.Track, error) {
	var paths []string
	err := afero.Walk(s.Fs, s.Dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path != s.Dir && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if engine.IsSupported(path) {
			paths = append(paths, path)
		}
		return nil
	})
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, nil
	case errors.Is(err, fs.ErrPermission):
		return nil, fmt.Errorf("%s: %w: %v", s.Dir, ErrDenied, err)
	case err != nil:
		return nil, fmt.Errorf("failed to scan %s: %w", s.Dir, err)
	}

	sort.Strings(paths)
	tracks := make([]model.Track, 0, len(paths))
	for i, path := range paths {
		tracks = append(tracks, trackFromPath(i+1, path))
	}
	return tracks, nil
}

func trackFromPath(id int, path string) model.Track {
	base := filepath.Base(path)
	return model.Track{
		ID:         id,
		Title:      strings.TrimSuffix(base, filepath.Ext(base)),
		Artist:     UnknownArtist,
		Genre:      ScannedGenre,
		ColorToken: ScannedColor,
		ImageToken: ScannedImage,
		SourceURI:  path,
	}
}
