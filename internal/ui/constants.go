package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings  = "⚙"
	IconPlay      = "▶"
	IconPause     = "⏸"
	IconNext      = "⏭"
	IconPrev      = "⏮"
	IconHeart     = "♥"
	IconHeartOff  = "♡"
	IconCollapse  = "⌄"
	IconFolder    = "📁"
	IconThemeDark = "☾"
	IconTheme     = "☀"
	IconError     = "❌"
	IconMusic     = "🎵"
)

// Text fragments
const (
	DashPlaceholder = "—"
)

// Layout sizing
const (
	HeaderHeight       float32 = 44
	MiniPlayerHeight   float32 = 64
	SwatchSize         float32 = 48
	ArtworkSize        float32 = 240
	ArtworkTextSize    float32 = 96
	SwatchTextSize     float32 = 22
	RowMinHeight       float32 = 64
	EqualizerBarWidth  float32 = 3
	EqualizerBarGap    float32 = 2
	EqualizerMaxHeight float32 = 16

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize    float32 = 44
	MobileTouchTargetSize float32 = 48
)

// Dialog sizing
const (
	SettingsDialogWidth  float32 = 520
	SettingsDialogHeight float32 = 460
)
