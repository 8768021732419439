package ui

import (
	_ "embed"

	"fyne.io/fyne/v2"
)

const (
	AppIcon = "swipeplayer.svg"
)

//go:embed assets/swipeplayer.svg
var appIconSVG []byte

// LogoResource returns the embedded application icon
func LogoResource() fyne.Resource {
	return fyne.NewStaticResource(AppIcon, appIconSVG)
}
