// Package controller provides the output layers for the hanrename CLI.
package controller

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "github.com/dsptools/hanrename/internal/model"
)

// ScanItem is one row of the offline scan listing: a candidate and the name
// the dictionary alone would give it.
type ScanItem struct {
	Path     string
	Kind     m.EntryKind
	Proposed string
}

// UI defines how run progress and results are presented. Implementations
// can print plainly or paginate interactively.
type UI interface {
	// RunStarted announces the root, mode and dictionary size.
	RunStarted(root string, dryRun bool, termCount int)
	// NoCandidates reports an empty scan.
	NoCandidates()
	// CandidatesFound reports how many entries will be processed.
	CandidatesFound(count int)
	// ItemProcessed reports one candidate's outcome as it happens.
	ItemProcessed(result m.ItemResult)
	// RunSummary renders the final counts.
	RunSummary(summary m.Summary)
	// ScanListing renders the dictionary-only preview rows.
	ScanListing(items []ScanItem) error
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewUI picks the UI implementation: paginated listings on a terminal,
// plain output otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	simple := NewSimpleUI(cmd)
	if tty {
		return NewTUI(simple)
	}

	return simple
}
