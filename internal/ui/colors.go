package ui

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/samber/lo"
)

// FallbackColorToken is used when a track carries no usable color
const FallbackColorToken = "#374151"

const (
	// artworkShade is how far the gradient end is blended towards black
	artworkShade = 0.45
	// lightTextL is the Lab lightness above which dark text is used
	lightTextL = 0.65
)

// ParseColorToken parses a #rgb or #rrggbb token. Invalid tokens yield the fallback color.
func ParseColorToken(token string) colorful.Color {
	c, err := colorful.Hex(strings.TrimSpace(token))
	if err != nil {
		c, _ = colorful.Hex(FallbackColorToken)
	}
	return c
}

// Darken blends c towards black by amount in [0, 1]
func Darken(c colorful.Color, amount float64) colorful.Color {
	return c.BlendLab(colorful.Color{}, amount).Clamped()
}

// ContrastText returns black or white, whichever reads better on c
func ContrastText(c colorful.Color) color.Color {
	l, _, _ := c.Lab()
	if l > lightTextL {
		return color.Black
	}
	return color.White
}

// artworkColors returns the gradient endpoints for a track's artwork
func artworkColors(token string) (color.Color, color.Color) {
	c := ParseColorToken(token)
	return c, Darken(c, artworkShade)
}

// withAlpha returns c with its alpha replaced by opacity in [0, 1]
func withAlpha(c color.Color, opacity float64) color.Color {
	r, g, b, _ := c.RGBA()
	opacity = lo.Clamp(opacity, 0, 1)
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(opacity*255 + 0.5)}
}
