package worktree

import (
	"bufio"
	"bytes"
	"path"
	"path/filepath"
	"strings"

	"github.com/keshon/gitlet/internal/config"
	"github.com/keshon/gitlet/internal/fs"
)

type Ignore struct {
	static  map[string]bool
	pattern []string
}

// NewIgnore loads defaults and the ignore file at ignorePath, if present.
func NewIgnore(fsys fs.FS, ignorePath string) *Ignore {
	m := &Ignore{static: make(map[string]bool)}

	// Default ignored files
	for _, s := range config.IgnoredFiles {
		m.static[filepath.ToSlash(filepath.Clean(s))] = true
	}

	data, err := fsys.ReadFile(ignorePath)
	if err != nil {
		return m
	}
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m.pattern = append(m.pattern, line)
	}
	return m
}

// Match returns true if the slash-separated relative path should be ignored
func (m *Ignore) Match(p string) bool {
	clean := filepath.ToSlash(filepath.Clean(p))

	// static exact match
	if m.static[clean] {
		return true
	}

	// pattern match
	for _, pat := range m.pattern {
		if matchPattern(pat, clean) {
			return true
		}
		// a pattern without a slash also matches the base name at any depth
		if !strings.Contains(pat, "/") && matchPattern(pat, path.Base(clean)) {
			return true
		}
	}

	return false
}

// matchPattern handles *, ?, and ** like Git
func matchPattern(pattern, p string) bool {
	pattern = filepath.ToSlash(pattern)
	if len(pattern) > 1 {
		pattern = strings.TrimSuffix(pattern, "/")
	}
	return matchSegments(strings.Split(pattern, "/"), strings.Split(p, "/"))
}

// matchSegments matches pattern segments recursively
func matchSegments(pats, parts []string) bool {
	for len(pats) > 0 {
		p := pats[0]
		pats = pats[1:]

		if p == "**" {
			if len(pats) == 0 {
				return true // trailing ** matches anything
			}
			for i := 0; i <= len(parts); i++ {
				if matchSegments(pats, parts[i:]) {
					return true
				}
			}
			return false
		}

		if len(parts) == 0 {
			return false
		}

		ok, _ := path.Match(p, parts[0])
		if !ok {
			return false
		}

		parts = parts[1:]
	}

	return len(parts) == 0
}
