// Package model defines the data structures shared by the rename engine.
package model

// Path represents a file system path.
type Path string

// EntryKind distinguishes the two kinds of filesystem entries the scanner
// collects.
type EntryKind int

const (
	// KindFile is a regular file candidate.
	KindFile EntryKind = iota
	// KindDir is a directory candidate.
	KindDir
)

func (k EntryKind) String() string {
	if k == KindDir {
		return "dir"
	}

	return "file"
}

// Candidate is a filesystem entry whose base name contains at least one Han
// rune and is therefore queued for renaming.
type Candidate struct {
	Path Path
	Kind EntryKind
}

// MatchSpan is an accepted dictionary match inside a name. Start and End are
// half-open byte offsets into the original string; Replacement is the target
// term substituted for the matched range.
type MatchSpan struct {
	Start       int
	End         int
	Replacement string
}

// Overlaps reports whether the span shares any offset with [start, end).
func (s MatchSpan) Overlaps(start, end int) bool {
	return !(end <= s.Start || start >= s.End)
}

// RenamePlan is the computed target location for a candidate, created
// immediately before the filesystem mutation.
type RenamePlan struct {
	OldPath Path
	NewPath Path
}

// Outcome is the terminal state of a processed candidate.
type Outcome int

const (
	// Applied means the filesystem rename was executed.
	Applied Outcome = iota
	// Simulated means the rename was resolved but not executed (dry run).
	Simulated
	// SkippedUnchanged means the resolved name equals the original.
	SkippedUnchanged
	// SkippedMissing means the path vanished before planning, typically
	// because an ancestor directory was renamed first.
	SkippedMissing
	// Failed means translation or the rename call errored for this candidate.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "renamed"
	case Simulated:
		return "simulated"
	case SkippedUnchanged:
		return "unchanged"
	case SkippedMissing:
		return "missing"
	case Failed:
		return "failed"
	}

	return "unknown"
}

// ItemResult records what happened to a single candidate.
type ItemResult struct {
	Candidate Candidate
	OldName   string
	NewName   string
	Outcome   Outcome
	Err       error
}

// Summary aggregates a whole run. Renamed counts both applied and simulated
// renames; DryRun tells the reader which of the two it was.
type Summary struct {
	Found     int
	Renamed   int
	Unchanged int
	Missing   int
	Failed    int
	DryRun    bool
}
