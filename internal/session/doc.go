package session

// Package session wires the player together. It owns the logical thread, the
// frame loop, the progress clock and the library watcher, and exposes the
// intents the presentation layer calls.
