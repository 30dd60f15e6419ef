package main

import "time"

// FileRecord is an immutable snapshot of one regular file taken at scan time.
// Records are plain values; nothing mutates them after the walk and nothing
// persists them across runs.
type FileRecord struct {
	Path    string
	Size    int64
	ModTime time.Time
	Ext     string // lowercased, compound-aware (".tar.gz")
}

// SkippedFile reports a file that a scan or analysis pass could not process.
// Per-file failures are collected here instead of aborting the whole run.
type SkippedFile struct {
	Path string
	Err  error
}

// ScanResult holds the outcome of walking one root.
type ScanResult struct {
	Files   []FileRecord
	Skipped []SkippedFile
}

// DuplicateGroup is a content fingerprint together with every record that
// shares it, in discovery order. The first record is the survivor; the rest
// are redundant by construction, not by any secondary ranking.
type DuplicateGroup struct {
	Fingerprint string
	Files       []FileRecord
}

// Survivor returns the record that is kept when the group is applied.
func (g DuplicateGroup) Survivor() FileRecord { return g.Files[0] }

// Redundant returns the records that are deletion candidates.
func (g DuplicateGroup) Redundant() []FileRecord { return g.Files[1:] }

// ActionOp is the kind of a planned action.
type ActionOp int

const (
	ActionMove ActionOp = iota
	ActionDelete
)

// PlannedAction is one filesystem mutation the executor may perform. It
// carries enough to be previewed verbatim in a dry run and executed as-is.
type PlannedAction struct {
	Op       ActionOp
	Source   string
	DestDir  string // destination directory, move only
	Category string // destination category name, move only
	Size     int64
}

// ActionOutcome records the result of executing one PlannedAction.
type ActionOutcome struct {
	Action PlannedAction
	Err    error
}

// RunSummary aggregates the outcomes of one apply pass.
type RunSummary struct {
	Succeeded int
	Failed    int
	Bytes     int64 // total size of successfully affected files
}
