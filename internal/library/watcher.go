package library

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/ytget/swipeplayer/internal/engine"
)

// DefaultDebounce collapses bursts of file events into one rescan
const DefaultDebounce = 100 * time.Millisecond

// Watcher reports changes to audio files in a directory
type Watcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	onChange func()
	closeCh  chan struct{}
	once     sync.Once
	log      *logrus.Entry
}

// NewWatcher watches dir and its visible subdirectories and calls onChange after
// each burst of audio file changes
func NewWatcher(dir string, onChange func()) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher:  fw,
		debounce: DefaultDebounce,
		onChange: onChange,
		closeCh:  make(chan struct{}),
		log:      logrus.WithFields(logrus.Fields{"component": "library", "dir": dir}),
	}
	w.addTree(dir)
	return w, nil
}

// addTree watches every visible directory below root. Unreadable ones are skipped.
func (w *Watcher) addTree(root string) {
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() || path == root {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			w.log.WithError(err).WithField("path", path).Debug("cannot watch directory")
		}
		return nil
	})
}

// isNewDir reports whether event created a visible directory
func isNewDir(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) || strings.HasPrefix(filepath.Base(event.Name), ".") {
		return false
	}
	info, err := os.Stat(event.Name)
	return err == nil && info.IsDir()
}

// Close stops watching
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// Run delivers change notifications until ctx is cancelled or the watcher is closed
func (w *Watcher) Run(ctx context.Context) error {
	defer w.Close()

	var (
		timer   *time.Timer
		trigger <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.closeCh:
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			switch {
			case isNewDir(event):
				if err := w.watcher.Add(event.Name); err != nil {
					w.log.WithError(err).WithField("path", event.Name).Debug("cannot watch directory")
				}
				w.addTree(event.Name)
			case !relevant(event):
				continue
			}
			w.log.WithField("event", event.String()).Debug("library changed")
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			trigger = timer.C
		case <-trigger:
			trigger = nil
			if w.onChange != nil {
				w.onChange()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.WithError(err).Warn("watch error")
		}
	}
}

func relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return false
	}
	return engine.IsSupported(filepath.Base(event.Name))
}
