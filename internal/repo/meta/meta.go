// Package meta manages repository metadata: commit records, branch pointer
// files, the active-branch file and the HEAD file.
package meta

import (
	"fmt"

	"github.com/keshon/gitlet/internal/config"
	"github.com/keshon/gitlet/internal/fs"
	"github.com/keshon/gitlet/internal/repo/store/object"
)

// MetaContext represents the metadata of an initialized repository.
type MetaContext struct {
	Config  *config.RepoConfig
	FS      fs.FS
	Commits *object.ObjectContext
}

// NewMeta returns a MetaContext storing commits in the given object store.
func NewMeta(cfg *config.RepoConfig, fsys fs.FS, commits *object.ObjectContext) (*MetaContext, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil RepoConfig provided")
	}
	return &MetaContext{Config: cfg, FS: fsys, Commits: commits}, nil
}

// CreateMetaStructure builds a fresh layout, points the default branch and
// HEAD at root and makes the default branch active.
func (mc *MetaContext) CreateMetaStructure(root string) error {
	for _, d := range mc.Config.Dirs() {
		if err := mc.FS.MkdirAll(d, 0o755); err != nil {
			return fmt.Errorf("failed to create dir %q: %w", d, err)
		}
	}
	if err := mc.SetLastCommitID(config.DefaultBranch, root); err != nil {
		return err
	}
	if _, err := mc.SetHeadRef(config.DefaultBranch); err != nil {
		return err
	}
	return mc.SetHead(root)
}

// IsMetaExists checks if the configured location holds a repository.
func (mc *MetaContext) IsMetaExists() bool {
	return IsMetaExists(mc.FS, mc.Config)
}

// IsMetaExists checks if cfg points to an existing repository.
func IsMetaExists(fsys fs.FS, cfg *config.RepoConfig) bool {
	return fsys.IsDir(cfg.RepoRoot)
}
