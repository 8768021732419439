package ui

// Package ui contains the Fyne-based user interface for the player.
// It renders the track list and the draggable player sheet, forwards user
// intents to a Controller and applies snapshots and animation frames on the
// Fyne thread. All UI strings are localized via Localization.
