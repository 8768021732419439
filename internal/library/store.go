package library

import (
	"errors"
	"slices"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ytget/swipeplayer/internal/model"
)

// Source produces a catalog
type Source interface {
	Load() (model.Catalog, error)
}

// SourceFunc adapts a function to Source
type SourceFunc func() (model.Catalog, error)

// Load calls f
func (f SourceFunc) Load() (model.Catalog, error) {
	return f()
}

// Sample is the built-in demo catalog
var Sample Source = SourceFunc(func() (model.Catalog, error) {
	return model.SampleCatalog(), nil
})

// Store holds the current track list and library status. Safe for concurrent use.
type Store struct {
	mu                sync.RWMutex
	name              string
	tracks            []model.Track
	liked             []int
	status            model.LibraryStatus
	subscribers       []func([]model.Track)
	statusSubscribers []func(model.LibraryStatus)
	log               *logrus.Entry
}

// NewStore creates an empty store with unknown status
func NewStore() *Store {
	return &Store{
		status: model.LibraryStatusUnknown,
		log:    logrus.WithField("component", "library"),
	}
}

// Tracks returns the ordered track list
func (s *Store) Tracks() []model.Track {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tracks
}

// Name returns the catalog name
func (s *Store) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

// Liked returns the catalog's initially liked ids
func (s *Store) Liked() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.liked)
}

// Status returns the library status
func (s *Store) Status() model.LibraryStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Subscribe registers fn to be called with the new list after every change.
// Subscribers run in registration order, outside the store lock.
func (s *Store) Subscribe(fn func([]model.Track)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// SubscribeStatus registers fn to be called after every status change
func (s *Store) SubscribeStatus(fn func(model.LibraryStatus)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statusSubscribers = append(s.statusSubscribers, fn)
}

// Set replaces the track list. The slice is copied.
func (s *Store) Set(tracks []model.Track) {
	s.mu.Lock()
	s.tracks = slices.Clone(tracks)
	current := s.tracks
	subscribers := slices.Clone(s.subscribers)
	s.mu.Unlock()

	for _, fn := range subscribers {
		fn(current)
	}
}

// SetCatalog replaces the name, liked seed and track list
func (s *Store) SetCatalog(c model.Catalog) {
	s.mu.Lock()
	s.name = c.Name
	s.liked = slices.Clone(c.Liked)
	s.mu.Unlock()

	s.Set(c.Tracks)
}

// SetStatus changes the library status, notifying on change only
func (s *Store) SetStatus(status model.LibraryStatus) {
	s.mu.Lock()
	if status == s.status {
		s.mu.Unlock()
		return
	}
	s.status = status
	subscribers := slices.Clone(s.statusSubscribers)
	s.mu.Unlock()

	for _, fn := range subscribers {
		fn(status)
	}
}

// Refresh loads src into the store. A denied source leaves the previous list
// in place and sets the Denied status.
func (s *Store) Refresh(src Source) error {
	s.SetStatus(model.LibraryStatusLoading)

	c, err := src.Load()
	if err != nil {
		if errors.Is(err, ErrDenied) {
			s.log.WithError(err).Warn("library access denied")
			s.SetStatus(model.LibraryStatusDenied)
			return err
		}
		s.log.WithError(err).Error("failed to load library")
		s.SetStatus(model.LibraryStatusReady)
		return err
	}

	s.SetCatalog(c)
	s.SetStatus(model.LibraryStatusReady)
	s.log.WithFields(logrus.Fields{"name": c.Name, "tracks": len(c.Tracks)}).Info("library loaded")
	return nil
}
