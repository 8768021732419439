package anim

// Package anim is the animation path of the player. It holds the shared animated
// position cell, fixed-duration eased tweens, the decorative equalizer, pulse
// keyframes and the 60 Hz frame driver that derives every visual output from the
// surface position. Discrete outcomes leave this package only through the
// Reconciler's post callback.
