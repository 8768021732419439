package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/swipeplayer/internal/anim"
	"github.com/ytget/swipeplayer/internal/model"
)

func TestTrackRow_SetTrack(t *testing.T) {
	test.NewApp()

	track := model.SampleCatalog().Tracks[2]
	row := NewTrackRow()
	row.SetTrack(track, 2, false, false, true)

	if row.titleLabel.Text != "Humility" {
		t.Errorf("Unexpected title %s", row.titleLabel.Text)
	}
	if row.detailLabel.Text != "Gorillaz" {
		t.Errorf("Unexpected artist %s", row.detailLabel.Text)
	}
	if row.genreLabel.Text != "3d • Alternative" {
		t.Errorf("Unexpected genre %s", row.genreLabel.Text)
	}
	if row.likeBtn.Text != IconHeart {
		t.Errorf("Liked track should show %s, got %s", IconHeart, row.likeBtn.Text)
	}
	if row.swatch.Glyph() != "🎸" {
		t.Errorf("Unexpected glyph %s", row.swatch.Glyph())
	}
	if row.Index() != 2 || row.IsCurrent() {
		t.Errorf("Unexpected binding index=%d current=%v", row.Index(), row.IsCurrent())
	}
}

func TestTrackRow_EqualizerOnlyForPlayingCurrent(t *testing.T) {
	test.NewApp()

	track := model.SampleCatalog().Tracks[0]
	row := NewTrackRow()
	bars := [anim.BarCount]float64{0.9, 0.9, 0.9, 0.9}

	row.SetTrack(track, 0, true, false, false)
	if row.equalizer.Visible() {
		t.Error("Equalizer should be hidden while paused")
	}
	row.SetBars(bars)
	if row.equalizer.Values() == bars {
		t.Error("Paused row should ignore bar updates")
	}

	row.SetTrack(track, 0, true, true, false)
	if !row.equalizer.Visible() {
		t.Error("Equalizer should show for the playing current track")
	}
	row.SetBars(bars)
	if row.equalizer.Values() != bars {
		t.Errorf("Expected bars %v, got %v", bars, row.equalizer.Values())
	}

	row.SetTrack(track, 0, false, true, false)
	if row.equalizer.Visible() {
		t.Error("Equalizer should be hidden for other tracks")
	}
}

func TestTrackRow_LikeButton(t *testing.T) {
	test.NewApp()

	var liked []int
	row := NewTrackRow()
	row.SetLikeCallback(func(id int) { liked = append(liked, id) })

	test.Tap(row.likeBtn)
	if len(liked) != 0 {
		t.Error("Unbound row should not report likes")
	}

	row.SetTrack(model.SampleCatalog().Tracks[4], 4, false, false, false)
	if row.likeBtn.Text != IconHeartOff {
		t.Errorf("Unliked track should show %s", IconHeartOff)
	}
	test.Tap(row.likeBtn)
	if len(liked) != 1 || liked[0] != 5 {
		t.Errorf("Expected like of track 5, got %v", liked)
	}
}
