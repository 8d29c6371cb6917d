package controller

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	m "github.com/dsptools/hanrename/internal/model"
)

func newCapturedUI(t *testing.T) (*SimpleUI, *bytes.Buffer) {
	t.Helper()

	cmd := &cobra.Command{}
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)

	return NewSimpleUI(cmd), buf
}

func TestRunStartedModes(t *testing.T) {
	ui, buf := newCapturedUI(t)

	ui.RunStarted("/tmp/blueprints", true, 42)

	out := buf.String()
	require.Contains(t, out, "/tmp/blueprints")
	require.Contains(t, out, "DRY RUN")
	require.Contains(t, out, "42")

	buf.Reset()
	ui.RunStarted("/tmp/blueprints", false, 42)
	require.Contains(t, buf.String(), "LIVE")
}

func TestItemProcessedLines(t *testing.T) {
	ui, buf := newCapturedUI(t)

	ui.ItemProcessed(m.ItemResult{OldName: "铁矿.txt", NewName: "Iron-Ore.txt", Outcome: m.Applied})
	require.Contains(t, buf.String(), "铁矿.txt -> Iron-Ore.txt")

	buf.Reset()
	ui.ItemProcessed(m.ItemResult{OldName: "铁矿.txt", NewName: "Iron-Ore.txt", Outcome: m.Simulated})
	require.Contains(t, buf.String(), "DRY RUN")

	buf.Reset()
	ui.ItemProcessed(m.ItemResult{OldName: "坏名字", Outcome: m.Failed, Err: errors.New("backend down")})
	require.Contains(t, buf.String(), "backend down")

	buf.Reset()
	ui.ItemProcessed(m.ItemResult{OldName: "gone", Outcome: m.SkippedMissing})
	require.Empty(t, buf.String())
}

func TestRunSummaryTable(t *testing.T) {
	ui, buf := newCapturedUI(t)

	ui.RunSummary(m.Summary{Found: 5, Renamed: 3, Unchanged: 1, Missing: 1, DryRun: false})

	out := buf.String()
	require.Contains(t, out, "Renamed")
	require.Contains(t, out, "3")
	require.NotContains(t, out, "Would rename")
}

func TestRunSummaryDryRunLabel(t *testing.T) {
	ui, buf := newCapturedUI(t)

	ui.RunSummary(m.Summary{Found: 3, Renamed: 3, DryRun: true})

	require.Contains(t, buf.String(), "Would rename")
}

func TestRunSummaryReportsFailures(t *testing.T) {
	ui, buf := newCapturedUI(t)

	ui.RunSummary(m.Summary{Found: 2, Renamed: 1, Failed: 1})

	require.Contains(t, buf.String(), "1 item(s) failed")
}

func TestScanListingEmpty(t *testing.T) {
	ui, buf := newCapturedUI(t)

	require.NoError(t, ui.ScanListing(nil))
	require.Contains(t, buf.String(), "No files or folders")
}

func TestScanListingRows(t *testing.T) {
	ui, buf := newCapturedUI(t)

	err := ui.ScanListing([]ScanItem{
		{Path: "铁矿.txt", Kind: m.KindFile, Proposed: "Iron-Ore.txt"},
		{Path: "蓝图", Kind: m.KindDir, Proposed: "Blueprint"},
	})
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "Iron-Ore.txt")
	require.Contains(t, out, "Blueprint")
	require.Contains(t, out, "2")
}
