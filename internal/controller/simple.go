package controller

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/dsptools/hanrename/internal/model"
)

var (
	styleRenamed   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	styleSimulated = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	styleSkipped   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleFailed    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// SimpleUI prints through the cobra command's writer, one line per
// candidate plus a final summary table.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// RunStarted announces the root directory, mode and dictionary size.
func (s *SimpleUI) RunStarted(root string, dryRun bool, termCount int) {
	mode := "LIVE"
	if dryRun {
		mode = "DRY RUN"
	}

	s.printf("Processing directory: %s\n", root)
	s.printf("Mode: %s\n", mode)
	s.printf("Using %d curated term mappings\n\n", termCount)
}

// NoCandidates reports an empty scan.
func (s *SimpleUI) NoCandidates() {
	s.printf("No files or folders with Chinese names found.\n")
}

// CandidatesFound reports the number of entries queued for processing.
func (s *SimpleUI) CandidatesFound(count int) {
	s.printf("Found %d item(s) to translate.\n\n", count)
}

// ItemProcessed prints one candidate's outcome.
func (s *SimpleUI) ItemProcessed(result m.ItemResult) {
	switch result.Outcome {
	case m.Applied:
		s.printf("  %s %s -> %s\n", styleRenamed.Render("Renamed:"), result.OldName, result.NewName)
	case m.Simulated:
		s.printf("  %s %s -> %s\n", styleSimulated.Render("[DRY RUN]"), result.OldName, result.NewName)
	case m.SkippedUnchanged:
		s.printf("  %s %s\n", styleSkipped.Render("Unchanged:"), result.OldName)
	case m.SkippedMissing:
		// Already moved along with a renamed ancestor; nothing to report
		// beyond the summary count.
	case m.Failed:
		s.printf("  %s %s (%v)\n", styleFailed.Render("Failed:"), result.OldName, result.Err)
	}
}

// RunSummary renders the final counts as a table.
func (s *SimpleUI) RunSummary(summary m.Summary) {
	renamedLabel := "Renamed"
	if summary.DryRun {
		renamedLabel = "Would rename"
	}

	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Result", "Count"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	table.Append([]string{"Found", strconv.Itoa(summary.Found)})
	table.Append([]string{renamedLabel, strconv.Itoa(summary.Renamed)})
	table.Append([]string{"Unchanged", strconv.Itoa(summary.Unchanged)})
	table.Append([]string{"Already moved", strconv.Itoa(summary.Missing)})
	table.Append([]string{"Failed", strconv.Itoa(summary.Failed)})
	table.Render()

	s.printf("\n%s\n", buf.String())

	if summary.Failed > 0 {
		s.printf("%s\n", styleFailed.Render(fmt.Sprintf("%d item(s) failed; see the log for details.", summary.Failed)))
	}
}

// ScanListing renders the dictionary-only preview as a table.
func (s *SimpleUI) ScanListing(items []ScanItem) error {
	if len(items) == 0 {
		s.NoCandidates()
		return nil
	}

	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Kind", "Path", "Dictionary Preview"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, item := range items {
		table.Append([]string{item.Kind.String(), item.Path, item.Proposed})
	}

	table.SetFooter([]string{"", "Total", strconv.Itoa(len(items))})
	table.Render()

	s.printf("\n%s", buf.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
