package meta

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/keshon/gitlet/internal/fs"
)

// HeadRef names the active branch, e.g. "branches/master".
type HeadRef string

func (h HeadRef) String() string { return string(h) }

// GetHeadRef reads the active-branch file.
func (mc *MetaContext) GetHeadRef() (HeadRef, error) {
	data, err := mc.FS.ReadFile(mc.Config.ActiveFile())
	if err != nil {
		return "", fmt.Errorf("failed to read ACTIVE %q: %w", mc.Config.ActiveFile(), err)
	}

	const prefix = "ref: "
	s := strings.TrimSpace(string(data))
	if !strings.HasPrefix(s, prefix) {
		return "", fmt.Errorf("invalid ACTIVE content: %q", s)
	}
	return HeadRef(s[len(prefix):]), nil
}

// SetHeadRef makes branch active.
// Accepts either "branches/<name>" or just "<name>" (interpreted as branch name).
func (mc *MetaContext) SetHeadRef(branch string) (HeadRef, error) {
	// normalize: if branch doesn't contain '/', treat as branch name
	refVal := branch
	if filepath.Base(branch) == branch {
		refVal = "branches/" + branch
	}
	content := "ref: " + refVal
	if err := fs.WriteFileAtomic(mc.FS, mc.Config.ActiveFile(), []byte(content)); err != nil {
		return "", fmt.Errorf("failed to write ACTIVE %q: %w", mc.Config.ActiveFile(), err)
	}
	return HeadRef(refVal), nil
}

// GetHead returns the commit ID of the current checkout position.
func (mc *MetaContext) GetHead() (string, error) {
	data, err := mc.FS.ReadFile(mc.Config.HeadFile())
	if err != nil {
		return "", fmt.Errorf("failed to read HEAD %q: %w", mc.Config.HeadFile(), err)
	}
	id := strings.TrimSpace(string(data))
	if id == "" {
		return "", fmt.Errorf("HEAD is empty")
	}
	return id, nil
}

// SetHead moves the checkout position to commitID.
func (mc *MetaContext) SetHead(commitID string) error {
	if err := fs.WriteFileAtomic(mc.FS, mc.Config.HeadFile(), []byte(commitID)); err != nil {
		return fmt.Errorf("failed to write HEAD %q: %w", mc.Config.HeadFile(), err)
	}
	return nil
}
