package engine

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dsptools/hanrename/internal/adapter"
	"github.com/dsptools/hanrename/internal/dict"
	m "github.com/dsptools/hanrename/internal/model"
)

type recordingReporter struct {
	results []m.ItemResult
}

func (r *recordingReporter) ItemProcessed(result m.ItemResult) {
	r.results = append(r.results, result)
}

func coalDict() *dict.Dictionary {
	return dict.New([]dict.Entry{
		{Source: "煤矿", Target: "Coal"},
		{Source: "煤", Target: "Coal"},
		{Source: "铁矿", Target: "Iron-Ore"},
		{Source: "蓝图", Target: "Blueprint"},
	})
}

func newTestRunner(t *testing.T, dryRun bool) (*Runner, *Scanner) {
	t.Helper()

	fs := adapter.NewLocalTreeFS()
	resolver := NewResolver(coalDict(), &mapTranslator{})

	return NewRunner(fs, resolver, dryRun), NewScanner(fs, nil)
}

func TestRunRenamesOnDisk(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "铁矿.txt"))

	runner, scanner := newTestRunner(t, false)
	candidates, err := scanner.Collect(m.Path(root))
	require.NoError(t, err)

	summary := runner.Run(context.Background(), candidates, nil)

	require.Equal(t, 1, summary.Found)
	require.Equal(t, 1, summary.Renamed)
	require.Zero(t, summary.Failed)
	require.FileExists(t, filepath.Join(root, "Iron-Ore.txt"))
	require.NoFileExists(t, filepath.Join(root, "铁矿.txt"))
}

func TestRunDryRunMutatesNothing(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"铁矿.txt", "煤矿.txt", "蓝图.txt"} {
		writeFile(t, filepath.Join(root, name))
	}

	runner, scanner := newTestRunner(t, true)
	candidates, err := scanner.Collect(m.Path(root))
	require.NoError(t, err)

	reporter := &recordingReporter{}
	summary := runner.Run(context.Background(), candidates, reporter)

	require.Equal(t, 3, summary.Found)
	require.Equal(t, 3, summary.Renamed)
	require.True(t, summary.DryRun)

	for _, result := range reporter.results {
		require.Equal(t, m.Simulated, result.Outcome)
	}

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	for _, entry := range entries {
		require.True(t, HasHan(entry.Name()), "dry run must not rename %q", entry.Name())
	}
}

func TestRunCollisionSuffix(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "煤矿.txt"))
	writeFile(t, filepath.Join(root, "煤.txt"))

	runner, scanner := newTestRunner(t, false)
	candidates, err := scanner.Collect(m.Path(root))
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	summary := runner.Run(context.Background(), candidates, nil)

	require.Equal(t, 2, summary.Renamed)
	require.FileExists(t, filepath.Join(root, "Coal.txt"))
	require.FileExists(t, filepath.Join(root, "Coal_1.txt"))
}

func TestRunCollisionSuffixInDryRun(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "煤矿.txt"))
	writeFile(t, filepath.Join(root, "煤.txt"))

	runner, scanner := newTestRunner(t, true)
	candidates, err := scanner.Collect(m.Path(root))
	require.NoError(t, err)

	reporter := &recordingReporter{}
	runner.Run(context.Background(), candidates, reporter)

	names := make(map[string]struct{})
	for _, result := range reporter.results {
		_, duplicate := names[result.NewName]
		require.False(t, duplicate, "duplicate simulated target %q", result.NewName)
		names[result.NewName] = struct{}{}
	}

	require.Contains(t, names, "Coal.txt")
	require.Contains(t, names, "Coal_1.txt")
}

func TestRunCollisionWithExistingEntry(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Coal.txt"))
	writeFile(t, filepath.Join(root, "煤矿.txt"))

	runner, scanner := newTestRunner(t, false)
	candidates, err := scanner.Collect(m.Path(root))
	require.NoError(t, err)
	require.Len(t, candidates, 1)

	runner.Run(context.Background(), candidates, nil)

	require.FileExists(t, filepath.Join(root, "Coal.txt"))
	require.FileExists(t, filepath.Join(root, "Coal_1.txt"))
}

func TestRunMissingPathSkippedSilently(t *testing.T) {
	root := t.TempDir()

	runner, _ := newTestRunner(t, false)
	candidates := []m.Candidate{
		{Path: m.Path(filepath.Join(root, "铁矿.txt")), Kind: m.KindFile},
	}

	reporter := &recordingReporter{}
	summary := runner.Run(context.Background(), candidates, reporter)

	require.Equal(t, 1, summary.Missing)
	require.Zero(t, summary.Failed)
	require.Equal(t, m.SkippedMissing, reporter.results[0].Outcome)
	require.NoError(t, reporter.results[0].Err)
}

func TestRunTranslationFailureIsolatedPerCandidate(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "未知词.txt")) // not in dictionary, stub has no entry
	writeFile(t, filepath.Join(root, "铁矿.txt"))

	fs := adapter.NewLocalTreeFS()
	resolver := NewResolver(coalDict(), &mapTranslator{translations: map[string]string{}})
	runner := NewRunner(fs, resolver, false)

	scanner := NewScanner(fs, nil)
	candidates, err := scanner.Collect(m.Path(root))
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	reporter := &recordingReporter{}
	summary := runner.Run(context.Background(), candidates, reporter)

	require.Equal(t, 1, summary.Failed)
	require.Equal(t, 1, summary.Renamed)
	require.FileExists(t, filepath.Join(root, "Iron-Ore.txt"))
	require.FileExists(t, filepath.Join(root, "未知词.txt"))
}

func TestRunUnchangedNameSkipped(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "煤"))

	fs := adapter.NewLocalTreeFS()
	identity := dict.New([]dict.Entry{{Source: "煤", Target: "煤"}})
	runner := NewRunner(fs, NewResolver(identity, &mapTranslator{}), false)

	scanner := NewScanner(fs, nil)
	candidates, err := scanner.Collect(m.Path(root))
	require.NoError(t, err)

	summary := runner.Run(context.Background(), candidates, nil)

	require.Equal(t, 1, summary.Unchanged)
	require.Zero(t, summary.Renamed)
	require.FileExists(t, filepath.Join(root, "煤"))
}

func TestRunBottomUpParentAndChild(t *testing.T) {
	root := t.TempDir()
	parent := filepath.Join(root, "蓝图")
	require.NoError(t, os.Mkdir(parent, 0o750))
	writeFile(t, filepath.Join(parent, "铁矿.txt"))

	runner, scanner := newTestRunner(t, false)
	candidates, err := scanner.Collect(m.Path(root))
	require.NoError(t, err)

	summary := runner.Run(context.Background(), candidates, nil)

	require.Equal(t, 2, summary.Renamed)
	require.FileExists(t, filepath.Join(root, "Blueprint", "Iron-Ore.txt"))
}

func TestRunContextCancelledBetweenCandidates(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "铁矿.txt"))
	writeFile(t, filepath.Join(root, "煤矿.txt"))

	runner, scanner := newTestRunner(t, false)
	candidates, err := scanner.Collect(m.Path(root))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary := runner.Run(ctx, candidates, nil)

	require.Equal(t, 2, summary.Found)
	require.Zero(t, summary.Renamed)
	require.FileExists(t, filepath.Join(root, "铁矿.txt"))
	require.FileExists(t, filepath.Join(root, "煤矿.txt"))
}

func TestRunFailedRenameDoesNotCountAsRenamed(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "铁矿.txt"))

	failing := &failingRenameFS{TreeFS: adapter.NewLocalTreeFS()}
	runner := NewRunner(failing, NewResolver(coalDict(), &mapTranslator{}), false)

	scanner := NewScanner(adapter.NewLocalTreeFS(), nil)
	candidates, err := scanner.Collect(m.Path(root))
	require.NoError(t, err)

	reporter := &recordingReporter{}
	summary := runner.Run(context.Background(), candidates, reporter)

	require.Equal(t, 1, summary.Failed)
	require.Zero(t, summary.Renamed)
	require.Equal(t, m.Failed, reporter.results[0].Outcome)
	require.Error(t, reporter.results[0].Err)
}

type failingRenameFS struct {
	adapter.TreeFS
}

func (f *failingRenameFS) Rename(_, _ m.Path) error {
	return os.ErrPermission
}
