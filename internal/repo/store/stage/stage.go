// Package stage persists the staging area: files staged for addition (with
// their content) and files staged for removal.
package stage

import (
	"fmt"
	"net/url"
	"path/filepath"
	"sort"
	"strings"

	"github.com/keshon/gitlet/internal/errs"
	"github.com/keshon/gitlet/internal/fs"
)

// StageContext handles the two staging areas. A name is never staged for
// addition and removal at the same time.
type StageContext struct {
	AddDir    string
	RemoveDir string
	FS        fs.FS
}

// NewStageContext creates a new StageContext.
func NewStageContext(addDir, removeDir string, fsys fs.FS) *StageContext {
	return &StageContext{AddDir: addDir, RemoveDir: removeDir, FS: fsys}
}

// escape flattens name into a single path segment. A leading dot is encoded
// so staged dotfiles never collide with temp files.
func escape(name string) string {
	e := url.PathEscape(name)
	if strings.HasPrefix(e, ".") {
		e = "%2E" + e[1:]
	}
	return e
}

func (sc *StageContext) addPath(name string) string {
	return filepath.Join(sc.AddDir, escape(name))
}

func (sc *StageContext) removePath(name string) string {
	return filepath.Join(sc.RemoveDir, escape(name))
}

// StageAdd records content for name. When digest equals the digest tracked
// for name in the current commit, nothing is staged and any pending addition
// or removal of name is cleared instead.
func (sc *StageContext) StageAdd(name string, content []byte, digest, tracked string) error {
	if digest == tracked {
		return sc.Unstage(name)
	}
	if err := fs.WriteFileAtomic(sc.FS, sc.addPath(name), content); err != nil {
		return fmt.Errorf("stage %q: %w", name, err)
	}
	return sc.clear(sc.removePath(name))
}

// StageRemove unstages a pending addition of name and, if name is tracked,
// marks it for removal. It reports whether the file should be deleted from
// the working tree.
func (sc *StageContext) StageRemove(name string, tracked bool) (bool, error) {
	staged := sc.IsAdded(name)
	if !staged && !tracked {
		return false, errs.New(errs.NothingToRemove, "No reason to remove the file.")
	}
	if staged {
		if err := sc.clear(sc.addPath(name)); err != nil {
			return false, err
		}
	}
	if !tracked {
		return false, nil
	}
	if err := fs.WriteFileAtomic(sc.FS, sc.removePath(name), nil); err != nil {
		return false, fmt.Errorf("stage removal of %q: %w", name, err)
	}
	return true, nil
}

// Unstage clears any pending addition or removal of name.
func (sc *StageContext) Unstage(name string) error {
	if err := sc.clear(sc.addPath(name)); err != nil {
		return err
	}
	return sc.clear(sc.removePath(name))
}

func (sc *StageContext) IsAdded(name string) bool   { return sc.FS.Exists(sc.addPath(name)) }
func (sc *StageContext) IsRemoved(name string) bool { return sc.FS.Exists(sc.removePath(name)) }

// Content returns the staged content of name.
func (sc *StageContext) Content(name string) ([]byte, error) {
	data, err := sc.FS.ReadFile(sc.addPath(name))
	if err != nil {
		return nil, fmt.Errorf("read staged %q: %w", name, err)
	}
	return data, nil
}

// Added returns the names staged for addition, sorted.
func (sc *StageContext) Added() ([]string, error) { return sc.names(sc.AddDir) }

// Removed returns the names staged for removal, sorted.
func (sc *StageContext) Removed() ([]string, error) { return sc.names(sc.RemoveDir) }

// IsEmpty reports whether nothing is staged.
func (sc *StageContext) IsEmpty() (bool, error) {
	added, err := sc.Added()
	if err != nil {
		return false, err
	}
	removed, err := sc.Removed()
	if err != nil {
		return false, err
	}
	return len(added) == 0 && len(removed) == 0, nil
}

// Clear empties both areas.
func (sc *StageContext) Clear() error {
	for _, dir := range []string{sc.AddDir, sc.RemoveDir} {
		entries, err := sc.FS.ReadDir(dir)
		if err != nil {
			if sc.FS.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("clear staging %q: %w", dir, err)
		}
		for _, e := range entries {
			if err := sc.clear(filepath.Join(dir, e.Name())); err != nil {
				return err
			}
		}
	}
	return nil
}

func (sc *StageContext) names(dir string) ([]string, error) {
	entries, err := sc.FS.ReadDir(dir)
	if err != nil {
		if sc.FS.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list staging %q: %w", dir, err)
	}

	var out []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue // temp files
		}
		name, err := url.PathUnescape(e.Name())
		if err != nil {
			return nil, fmt.Errorf("invalid staging entry %q: %w", e.Name(), err)
		}
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}

func (sc *StageContext) clear(path string) error {
	if err := sc.FS.Remove(path); err != nil && !sc.FS.IsNotExist(err) {
		return fmt.Errorf("unstage %q: %w", path, err)
	}
	return nil
}
