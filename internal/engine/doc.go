package engine

// Package engine adapts an audio backend to the player. Every call returns
// immediately; completion and failure are reported through callbacks.
