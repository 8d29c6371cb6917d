package engine

import (
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/dsptools/hanrename/internal/adapter"
	m "github.com/dsptools/hanrename/internal/model"
)

// Scanner enumerates rename candidates under a root: every file and
// directory whose base name contains a Han rune, excluding configured
// directory names and their entire subtrees.
type Scanner struct {
	fs       adapter.TreeFS
	excluded map[string]struct{}
}

// NewScanner constructs a Scanner. excluded entries are matched against
// individual path components.
func NewScanner(treeFS adapter.TreeFS, excluded []string) *Scanner {
	set := make(map[string]struct{}, len(excluded))
	for _, name := range excluded {
		set[name] = struct{}{}
	}

	return &Scanner{fs: treeFS, excluded: set}
}

// Collect gathers all candidates in one pass before any mutation happens.
// Ordering is depth-first bottom-up: a directory's children always precede
// the directory itself, so renaming a candidate never invalidates the paths
// of candidates still to come, only of deeper ones already handled. Within a
// directory, files come before subdirectories.
func (s *Scanner) Collect(root m.Path) ([]m.Candidate, error) {
	var candidates []m.Candidate

	s.collectDir(root, &candidates)

	return candidates, nil
}

func (s *Scanner) collectDir(dir m.Path, out *[]m.Candidate) {
	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		// An unreadable directory is logged and skipped, not fatal.
		slog.Warn("failed to read directory", "path", dir, "error", err)
		return
	}

	var files, dirs []fs.DirEntry

	for _, entry := range entries {
		if entry.IsDir() {
			if _, skip := s.excluded[entry.Name()]; skip {
				continue
			}

			dirs = append(dirs, entry)

			continue
		}

		files = append(files, entry)
	}

	for _, d := range dirs {
		s.collectDir(m.Path(filepath.Join(string(dir), d.Name())), out)
	}

	for _, f := range files {
		if HasHan(f.Name()) {
			*out = append(*out, m.Candidate{
				Path: m.Path(filepath.Join(string(dir), f.Name())),
				Kind: m.KindFile,
			})
		}
	}

	for _, d := range dirs {
		if HasHan(d.Name()) {
			*out = append(*out, m.Candidate{
				Path: m.Path(filepath.Join(string(dir), d.Name())),
				Kind: m.KindDir,
			})
		}
	}
}
