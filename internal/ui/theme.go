package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// PlayerTheme is a compact theme with a fixed light or dark variant
type PlayerTheme struct {
	dark bool
}

// NewPlayerTheme creates a new theme. The variant requested by the OS is ignored.
func NewPlayerTheme(dark bool) *PlayerTheme {
	return &PlayerTheme{dark: dark}
}

// IsDark reports whether the dark palette is used
func (t *PlayerTheme) IsDark() bool {
	return t.dark
}

func (t *PlayerTheme) variant() fyne.ThemeVariant {
	if t.dark {
		return theme.VariantDark
	}
	return theme.VariantLight
}

// Color returns theme colors
func (t *PlayerTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameError:
		return color.RGBA{R: 239, G: 68, B: 68, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 29, G: 185, B: 84, A: 255} // accent for playing state
	case theme.ColorNameBackground:
		if t.dark {
			return color.RGBA{R: 18, G: 18, B: 18, A: 255}
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255}
	case theme.ColorNameOverlayBackground, theme.ColorNameMenuBackground:
		if t.dark {
			return color.RGBA{R: 32, G: 32, B: 32, A: 255}
		}
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	case theme.ColorNameForeground:
		if t.dark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		return color.RGBA{R: 17, G: 24, B: 39, A: 255}
	case theme.ColorNamePlaceHolder:
		if t.dark {
			return color.RGBA{R: 156, G: 163, B: 175, A: 255}
		}
		return color.RGBA{R: 107, G: 114, B: 128, A: 255}
	}

	return theme.DefaultTheme().Color(name, t.variant())
}

// Font returns theme fonts
func (t *PlayerTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *PlayerTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *PlayerTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameScrollBar:
		return 12
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 18
	case theme.SizeNameSubHeadingText:
		return 15
	case theme.SizeNameCaptionText:
		return 11
	case theme.SizeNameInputRadius:
		return 3
	case theme.SizeNameSelectionRadius:
		return 2
	}

	return theme.DefaultTheme().Size(name)
}

// surfaceColor returns the solid color of the player sheet
func (t *PlayerTheme) surfaceColor() color.Color {
	return t.Color(theme.ColorNameOverlayBackground, t.variant())
}
