package library

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/swipeplayer/internal/model"
)

func TestStore_SetNotifiesInOrder(t *testing.T) {
	s := NewStore()
	assert.Equal(t, model.LibraryStatusUnknown, s.Status())

	var order []string
	var got []model.Track
	s.Subscribe(func(tracks []model.Track) {
		order = append(order, "first")
		got = tracks
	})
	s.Subscribe(func([]model.Track) { order = append(order, "second") })

	tracks := []model.Track{{ID: 1, Title: "A"}}
	s.Set(tracks)
	tracks[0].Title = "mutated"

	assert.Equal(t, []string{"first", "second"}, order)
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Title, "the store keeps its own copy")
	assert.Equal(t, "A", s.Tracks()[0].Title)
}

func TestStore_SubscriberMayReadStore(t *testing.T) {
	s := NewStore()
	var seen int
	s.Subscribe(func([]model.Track) { seen = len(s.Tracks()) })

	s.Set([]model.Track{{ID: 1}, {ID: 2}})
	assert.Equal(t, 2, seen)
}

func TestStore_SetStatusOnlyOnChange(t *testing.T) {
	s := NewStore()
	var statuses []model.LibraryStatus
	s.SubscribeStatus(func(st model.LibraryStatus) { statuses = append(statuses, st) })

	s.SetStatus(model.LibraryStatusLoading)
	s.SetStatus(model.LibraryStatusLoading)
	s.SetStatus(model.LibraryStatusReady)

	assert.Equal(t, []model.LibraryStatus{model.LibraryStatusLoading, model.LibraryStatusReady}, statuses)
}

func TestStore_RefreshSample(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Refresh(Sample))

	assert.Equal(t, model.LibraryStatusReady, s.Status())
	assert.Equal(t, "Polk Top Tracks this Week", s.Name())
	assert.Len(t, s.Tracks(), 5)
	assert.Equal(t, []int{1, 3}, s.Liked())
}

func TestStore_RefreshDenied(t *testing.T) {
	s := NewStore()
	s.Set([]model.Track{{ID: 7, Title: "kept"}})

	err := s.Refresh(SourceFunc(func() (model.Catalog, error) {
		return model.Catalog{}, ErrDenied
	}))

	assert.ErrorIs(t, err, ErrDenied)
	assert.Equal(t, model.LibraryStatusDenied, s.Status())
	assert.Len(t, s.Tracks(), 1)
}

func TestStore_RefreshOtherError(t *testing.T) {
	s := NewStore()
	boom := errors.New("boom")

	err := s.Refresh(SourceFunc(func() (model.Catalog, error) {
		return model.Catalog{}, boom
	}))

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, model.LibraryStatusReady, s.Status())
	assert.Empty(t, s.Tracks())
}
