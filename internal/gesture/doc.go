package gesture

// Package gesture maps continuous drag input onto the player surface position
// and commits released drags to one of its two bounds.
