// Package fs provides file system adapters for discovering fix snippets.
package fs

import (
	"errors"
	iofs "io/fs"
	"path/filepath"
	"strings"

	"go.trai.ch/fixit/internal/core/domain"
	"go.trai.ch/zerr"
)

// SnippetDir is the flat directory holding fix snippets and challenge info documents.
// Every path it hands out has been checked to lie inside the directory.
type SnippetDir struct {
	root string
}

// NewSnippetDir canonicalizes path and returns it as a SnippetDir.
// Symlinks in path are resolved when the directory exists.
func NewSnippetDir(path string) (SnippetDir, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return SnippetDir{}, zerr.With(zerr.Wrap(err, domain.ErrSnippetDirResolveFailed.Error()), "dir", path)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	switch {
	case err == nil:
		abs = resolved
	case errors.Is(err, iofs.ErrNotExist):
		// Reported by the first scan instead.
	default:
		return SnippetDir{}, zerr.With(zerr.Wrap(err, domain.ErrSnippetDirResolveFailed.Error()), "dir", path)
	}

	return SnippetDir{root: abs}, nil
}

// Root returns the canonical directory path.
func (d SnippetDir) Root() string {
	return d.root
}

// Resolve joins name onto the directory and returns the canonical path.
// It returns domain.ErrPathOutsideSnippetDir when the lexical or the symlink-resolved
// path leaves the directory. A path that does not exist yet is returned as is.
func (d SnippetDir) Resolve(name string) (string, error) {
	path := filepath.Join(d.root, name)
	if !d.contains(path) {
		return "", domain.ErrPathOutsideSnippetDir
	}

	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return path, nil
		}
		return "", zerr.With(zerr.Wrap(err, "failed to canonicalize snippet path"), "file", name)
	}

	if !d.contains(resolved) {
		return "", domain.ErrPathOutsideSnippetDir
	}

	return resolved, nil
}

// contains reports whether path names an entry strictly below the directory.
func (d SnippetDir) contains(path string) bool {
	rel, err := filepath.Rel(d.root, path)
	if err != nil || filepath.IsAbs(rel) {
		return false
	}
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}
	return true
}
