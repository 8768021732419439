package model

import "testing"

func TestPlayerStatus_HasContent(t *testing.T) {
	tests := []struct {
		status   PlayerStatus
		expected bool
	}{
		{PlayerStatusIdle, false},
		{PlayerStatusReady, true},
	}

	for _, test := range tests {
		result := test.status.HasContent()
		if result != test.expected {
			t.Errorf("PlayerStatus(%s).HasContent() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestLibraryStatus_IsSettled(t *testing.T) {
	tests := []struct {
		status   LibraryStatus
		expected bool
	}{
		{LibraryStatusUnknown, false},
		{LibraryStatusLoading, false},
		{LibraryStatusReady, true},
		{LibraryStatusDenied, true},
	}

	for _, test := range tests {
		result := test.status.IsSettled()
		if result != test.expected {
			t.Errorf("LibraryStatus(%s).IsSettled() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestDirection_String(t *testing.T) {
	if DirectionNext.String() != "next" {
		t.Errorf("DirectionNext.String() = %s, expected next", DirectionNext.String())
	}
	if DirectionPrev.String() != "prev" {
		t.Errorf("DirectionPrev.String() = %s, expected prev", DirectionPrev.String())
	}
	if Direction(42).String() != "unknown" {
		t.Errorf("Direction(42).String() = %s, expected unknown", Direction(42).String())
	}
}

func TestPulse_String(t *testing.T) {
	if PulsePlayButton.String() != "play_button" {
		t.Errorf("PulsePlayButton.String() = %s", PulsePlayButton.String())
	}
	if PulseHeart.String() != "heart" {
		t.Errorf("PulseHeart.String() = %s", PulseHeart.String())
	}
}
