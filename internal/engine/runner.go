package engine

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/dsptools/hanrename/internal/adapter"
	m "github.com/dsptools/hanrename/internal/model"
)

// Reporter receives each candidate's result as it is processed.
// Implementations must not mutate the result.
type Reporter interface {
	ItemProcessed(result m.ItemResult)
}

// Runner resolves and executes (or simulates) the rename for every collected
// candidate. Candidates are processed strictly one at a time; per-candidate
// failures are reported and never abort the run.
type Runner struct {
	fs       adapter.TreeFS
	resolver *Resolver
	dryRun   bool
}

// NewRunner constructs a Runner. With dryRun set, resolution runs in full
// but the filesystem is never touched.
func NewRunner(treeFS adapter.TreeFS, resolver *Resolver, dryRun bool) *Runner {
	return &Runner{fs: treeFS, resolver: resolver, dryRun: dryRun}
}

// Run processes the candidates in order and returns the summary. Context
// cancellation is honored between candidates: the current candidate is
// finished, the rest are left untouched.
func (r *Runner) Run(ctx context.Context, candidates []m.Candidate, reporter Reporter) m.Summary {
	summary := m.Summary{Found: len(candidates), DryRun: r.dryRun}

	// Paths already targeted in this run, on disk or simulated. Keeps
	// dry-run output collision-free too, since nothing lands on disk there.
	claimed := make(map[m.Path]struct{})

	for _, candidate := range candidates {
		if err := ctx.Err(); err != nil {
			slog.Warn("run interrupted", "remaining", summary.Found-processed(summary), "error", err)
			break
		}

		result := r.processOne(ctx, candidate, claimed)

		switch result.Outcome {
		case m.Applied, m.Simulated:
			summary.Renamed++
		case m.SkippedUnchanged:
			summary.Unchanged++
		case m.SkippedMissing:
			summary.Missing++
		case m.Failed:
			summary.Failed++
		}

		if result.Err != nil {
			slog.Error("candidate failed", "path", candidate.Path, "error", result.Err)
		} else {
			slog.Debug("candidate processed", "path", candidate.Path, "outcome", result.Outcome.String())
		}

		if reporter != nil {
			reporter.ItemProcessed(result)
		}
	}

	return summary
}

func processed(s m.Summary) int {
	return s.Renamed + s.Unchanged + s.Missing + s.Failed
}

func (r *Runner) processOne(ctx context.Context, candidate m.Candidate, claimed map[m.Path]struct{}) m.ItemResult {
	oldName := filepath.Base(string(candidate.Path))
	result := m.ItemResult{Candidate: candidate, OldName: oldName}

	// An ancestor rename may already have moved this entry; that is not an
	// error.
	if !r.fs.Exists(candidate.Path) {
		result.Outcome = m.SkippedMissing
		return result
	}

	newName, err := r.resolver.ResolveName(ctx, oldName)
	if err != nil {
		result.Outcome = m.Failed
		result.Err = err

		return result
	}

	if newName == oldName {
		result.Outcome = m.SkippedUnchanged
		return result
	}

	plan := r.plan(candidate.Path, newName, claimed)
	claimed[plan.NewPath] = struct{}{}
	result.NewName = filepath.Base(string(plan.NewPath))

	if r.dryRun {
		result.Outcome = m.Simulated
		return result
	}

	if err := r.fs.Rename(plan.OldPath, plan.NewPath); err != nil {
		result.Outcome = m.Failed
		result.Err = fmt.Errorf("rename failed: %w", err)

		return result
	}

	result.Outcome = m.Applied

	return result
}

// plan picks the first free sibling path for the proposed name, appending
// _<counter> before the extension until neither the disk nor this run's
// claimed set holds the path.
func (r *Runner) plan(oldPath m.Path, name string, claimed map[m.Path]struct{}) m.RenamePlan {
	parent := filepath.Dir(string(oldPath))

	target := m.Path(filepath.Join(parent, name))
	if !r.taken(target, claimed) {
		return m.RenamePlan{OldPath: oldPath, NewPath: target}
	}

	stem, suffix := SplitExt(name)

	for counter := 1; ; counter++ {
		next := fmt.Sprintf("%s_%d%s", stem, counter, suffix)

		target = m.Path(filepath.Join(parent, next))
		if !r.taken(target, claimed) {
			return m.RenamePlan{OldPath: oldPath, NewPath: target}
		}
	}
}

func (r *Runner) taken(path m.Path, claimed map[m.Path]struct{}) bool {
	if _, ok := claimed[path]; ok {
		return true
	}

	return r.fs.Exists(path)
}
