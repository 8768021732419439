package ui

import (
	"fyne.io/fyne/v2"
)

// DeviceMetrics adapts sizes to the device the app runs on
type DeviceMetrics struct {
	mobile bool
}

// NewDeviceMetrics detects the current device. Without a running app it assumes desktop.
func NewDeviceMetrics() DeviceMetrics {
	if fyne.CurrentApp() == nil {
		return DeviceMetrics{}
	}
	return DeviceMetrics{mobile: fyne.CurrentDevice().IsMobile()}
}

// IsMobileDevice reports whether the app is running on a phone or tablet
func (m DeviceMetrics) IsMobileDevice() bool {
	return m.mobile
}

// TouchTarget returns the minimum edge for tappable controls
func (m DeviceMetrics) TouchTarget() float32 {
	if m.mobile {
		return MobileTouchTargetSize
	}
	return MinTouchTargetSize
}

// GetSpacing returns appropriate spacing for the device
func (m DeviceMetrics) GetSpacing() float32 {
	if m.mobile {
		return 16
	}
	return 8
}

// SheetBounds returns the expanded and collapsed offsets of the player sheet
// for a stage of the given height. The expanded sheet stops below the header;
// the collapsed one leaves exactly the mini player visible.
func (m DeviceMetrics) SheetBounds(stageHeight float32) (expandedOffset, collapsedOffset float64) {
	expanded := HeaderHeight
	collapsed := stageHeight - MiniPlayerHeight
	if collapsed <= expanded {
		collapsed = expanded + MiniPlayerHeight
	}
	return float64(expanded), float64(collapsed)
}
