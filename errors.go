package main

import "errors"

// Error kinds surfaced by the core. Callers wrap them with the offending
// path via fmt.Errorf so errors.Is still matches the kind.
var (
	ErrPathNotFound       = errors.New("path does not exist")
	ErrNotADirectory      = errors.New("not a directory")
	ErrSourceNotDirectory = errors.New("source is not a directory")
	ErrUnsupportedFormat  = errors.New("unsupported archive format")
	ErrCorruptArchive     = errors.New("corrupt archive")
)
