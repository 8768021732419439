package model

// Package model defines domain data structures shared across the player: tracks,
// catalogs, the read-only player snapshot, and the small enums exchanged between the
// state machine, the animation path and the UI. Values here carry no behavior beyond
// simple derivations so they can be copied freely between goroutines.
