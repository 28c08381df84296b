// Package worktree reads and writes user files in the working tree. Files are
// addressed by slash-separated names relative to the working tree root.
package worktree

import (
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/keshon/gitlet/internal/config"
	"github.com/keshon/gitlet/internal/errs"
	"github.com/keshon/gitlet/internal/fs"
)

// WorktreeContext wraps file-level operations on the working tree.
type WorktreeContext struct {
	Root   string
	FS     fs.FS
	Ignore *Ignore
}

// NewWorktreeContext creates a WorktreeContext and loads ignore patterns.
func NewWorktreeContext(root string, fsys fs.FS) *WorktreeContext {
	return &WorktreeContext{
		Root:   root,
		FS:     fsys,
		Ignore: NewIgnore(fsys, filepath.Join(root, config.IgnoreFile)),
	}
}

// Name converts a user-supplied path, relative to cwd, into a tracked file
// name relative to root.
func Name(root, cwd, arg string) (string, error) {
	p := arg
	if !filepath.IsAbs(p) {
		p = filepath.Join(cwd, p)
	}
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return "", errs.New(errs.NotFound, "File does not exist.")
	}
	name := filepath.ToSlash(rel)
	if name == "." || name == ".." || strings.HasPrefix(name, "../") {
		return "", errs.New(errs.NotFound, "File does not exist.")
	}
	// repository internals are never user files
	if name == config.RepoDir || strings.HasPrefix(name, config.RepoDir+"/") {
		return "", errs.New(errs.NotFound, "File does not exist.")
	}
	return name, nil
}

func (wc *WorktreeContext) abs(name string) string {
	return filepath.Join(wc.Root, filepath.FromSlash(name))
}

// Exists reports whether name is a regular file in the working tree.
func (wc *WorktreeContext) Exists(name string) bool {
	p := wc.abs(name)
	return wc.FS.Exists(p) && !wc.FS.IsDir(p)
}

// Read returns the content of name.
func (wc *WorktreeContext) Read(name string) ([]byte, error) {
	p := wc.abs(name)
	if wc.FS.IsDir(p) {
		return nil, errs.New(errs.NotFound, "File does not exist.")
	}
	data, err := wc.FS.ReadFile(p)
	if err != nil {
		if wc.FS.IsNotExist(err) {
			return nil, errs.New(errs.NotFound, "File does not exist.")
		}
		return nil, fmt.Errorf("read %q: %w", name, err)
	}
	return data, nil
}

// Write replaces name with data, creating parent directories.
func (wc *WorktreeContext) Write(name string, data []byte) error {
	if err := fs.WriteFileAtomic(wc.FS, wc.abs(name), data); err != nil {
		return fmt.Errorf("write %q: %w", name, err)
	}
	return nil
}

// Remove deletes name if present and prunes directories it leaves empty.
func (wc *WorktreeContext) Remove(name string) error {
	if err := wc.FS.Remove(wc.abs(name)); err != nil {
		if wc.FS.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("remove %q: %w", name, err)
	}

	for dir := path.Dir(name); dir != "." && dir != "/"; dir = path.Dir(dir) {
		entries, err := wc.FS.ReadDir(wc.abs(dir))
		if err != nil || len(entries) > 0 {
			break
		}
		if err := wc.FS.Remove(wc.abs(dir)); err != nil {
			break
		}
	}
	return nil
}

// Scan returns all user files in the working tree (excluding .gitlet and
// ignored paths), sorted.
func (wc *WorktreeContext) Scan() ([]string, error) {
	var names []string
	if err := wc.walk("", &names); err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

func (wc *WorktreeContext) walk(rel string, out *[]string) error {
	entries, err := wc.FS.ReadDir(wc.abs(rel))
	if err != nil {
		return fmt.Errorf("scan %q: %w", wc.abs(rel), err)
	}

	for _, e := range entries {
		name := e.Name()
		if rel != "" {
			name = rel + "/" + name
		}

		// Skip ignored directories
		if e.IsDir() {
			if e.Name() == config.RepoDir || wc.Ignore.Match(name) {
				continue
			}
			if err := wc.walk(name, out); err != nil {
				return err
			}
			continue
		}

		if wc.Ignore.Match(name) {
			continue
		}
		*out = append(*out, name)
	}
	return nil
}
