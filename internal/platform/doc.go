package platform

// Package platform contains OS integration: well-known directories, directory
// creation and revealing a file in the system file manager.
