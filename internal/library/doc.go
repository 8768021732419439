package library

// Package library supplies the ordered track list: from a YAML catalog, from a
// scan of the music directory, or from the built-in sample. The list may change
// at any time; subscribers of a Store are told when it does.
