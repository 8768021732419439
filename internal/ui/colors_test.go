package ui

import (
	"image/color"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestParseColorToken(t *testing.T) {
	c := ParseColorToken("#EF4444")
	if c.Hex() != "#ef4444" {
		t.Errorf("ParseColorToken(#EF4444).Hex() = %s", c.Hex())
	}

	short := ParseColorToken(" #fff ")
	if short.Hex() != "#ffffff" {
		t.Errorf("Expected short form to expand, got %s", short.Hex())
	}
}

func TestParseColorToken_InvalidFallsBack(t *testing.T) {
	for _, token := range []string{"", "red", "#12345", "♪"} {
		if got := ParseColorToken(token).Hex(); got != "#374151" {
			t.Errorf("ParseColorToken(%q) = %s, expected fallback", token, got)
		}
	}
}

func TestDarken(t *testing.T) {
	c := ParseColorToken("#06B6D4")
	dark := Darken(c, artworkShade)

	l1, _, _ := c.Lab()
	l2, _, _ := dark.Lab()
	if l2 >= l1 {
		t.Errorf("Darkened lightness %.3f should be below %.3f", l2, l1)
	}
	if Darken(c, 1).Hex() != (colorful.Color{}).Hex() {
		t.Error("Full darkening should reach black")
	}
}

func TestContrastText(t *testing.T) {
	if ContrastText(ParseColorToken("#FFFFFF")) != color.Black {
		t.Error("Expected black text on white")
	}
	if ContrastText(ParseColorToken("#374151")) != color.White {
		t.Error("Expected white text on slate")
	}
}

func TestWithAlpha(t *testing.T) {
	got := withAlpha(color.RGBA{R: 10, G: 20, B: 30, A: 255}, 0.5).(color.NRGBA)
	if got.R != 10 || got.G != 20 || got.B != 30 || got.A != 128 {
		t.Errorf("Unexpected color %+v", got)
	}
	if withAlpha(color.White, 2).(color.NRGBA).A != 255 {
		t.Error("Opacity above 1 should clamp")
	}
}
