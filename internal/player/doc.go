package player

// Package player holds the player state machine. A Machine is not safe for
// concurrent use; every call is made from the logical thread.
