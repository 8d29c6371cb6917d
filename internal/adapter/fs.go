// Package adapter contains the infrastructure adapters for the hanrename CLI.
package adapter

import (
	"io/fs"
	"os"

	m "github.com/dsptools/hanrename/internal/model"
)

// TreeFS abstracts the filesystem operations the rename engine relies on. It
// hides direct `os` access so scanning and planning logic can be tested
// against a real temp dir or exercised without mutating anything.
type TreeFS interface {
	// ReadDir lists the entries of a directory.
	ReadDir(path m.Path) ([]fs.DirEntry, error)

	// Exists reports whether a filesystem entry is present at path without
	// following symlinks.
	Exists(path m.Path) bool

	// IsDir reports whether path is an existing directory.
	IsDir(path m.Path) bool

	// Rename moves an entry to a new path within the same parent.
	Rename(oldPath, newPath m.Path) error
}

// LocalTreeFS is the os-backed TreeFS implementation.
type LocalTreeFS struct{}

// NewLocalTreeFS constructs a LocalTreeFS ready to be wired into the engine.
func NewLocalTreeFS() *LocalTreeFS {
	return &LocalTreeFS{}
}

// ReadDir lists directory entries via os.ReadDir.
func (a *LocalTreeFS) ReadDir(path m.Path) ([]fs.DirEntry, error) {
	return os.ReadDir(string(path))
}

// Exists checks for the entry with os.Lstat so dangling symlinks still count.
func (a *LocalTreeFS) Exists(path m.Path) bool {
	_, err := os.Lstat(string(path))
	return err == nil
}

// IsDir reports whether path names an existing directory.
func (a *LocalTreeFS) IsDir(path m.Path) bool {
	info, err := os.Stat(string(path))
	return err == nil && info.IsDir()
}

// Rename performs the filesystem rename.
func (a *LocalTreeFS) Rename(oldPath, newPath m.Path) error {
	return os.Rename(string(oldPath), string(newPath))
}
