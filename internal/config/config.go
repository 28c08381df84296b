package config

import (
	"fmt"
	"path/filepath"

	"github.com/keshon/gitlet/internal/fs"
	"github.com/keshon/gitlet/internal/util"
)

const (
	RepoDir        = ".gitlet"
	ObjectsDir     = "objects"
	BlobsDir       = "blobs"
	CommitsDir     = "commits"
	BranchesDir    = "branches"
	StagingDir     = "staging"
	StageAddDir    = "add"
	StageRemoveDir = "remove"
	HeadFile       = "HEAD"
	ActiveFile     = "ACTIVE"
	ConfigFile     = "config.json"
	IgnoreFile     = ".gitletignore"
)

const (
	DefaultBranch = "master"
)

const (
	DefaultHash = "sha1" // "sha1" | "sha256" | "xxh3"
)

var IgnoredFiles = []string{RepoDir}

// RepoConfig locates every part of a repository from its working tree root
// and carries the settings persisted in config.json.
type RepoConfig struct {
	WorkingTreeRoot string `json:"-"`
	RepoRoot        string `json:"-"`

	HashFormat string `json:"hash"`
	Compress   bool   `json:"compress,omitempty"`
}

// NewRepoConfig returns the layout for the working tree at root.
func NewRepoConfig(root string) *RepoConfig {
	return &RepoConfig{
		WorkingTreeRoot: root,
		RepoRoot:        filepath.Join(root, RepoDir),
		HashFormat:      DefaultHash,
	}
}

func (c *RepoConfig) ObjectsDir() string  { return filepath.Join(c.RepoRoot, ObjectsDir) }
func (c *RepoConfig) BlobsDir() string    { return filepath.Join(c.ObjectsDir(), BlobsDir) }
func (c *RepoConfig) CommitsDir() string  { return filepath.Join(c.ObjectsDir(), CommitsDir) }
func (c *RepoConfig) BranchesDir() string { return filepath.Join(c.RepoRoot, BranchesDir) }
func (c *RepoConfig) StagingDir() string  { return filepath.Join(c.RepoRoot, StagingDir) }
func (c *RepoConfig) StageAddDir() string { return filepath.Join(c.StagingDir(), StageAddDir) }
func (c *RepoConfig) StageRemoveDir() string {
	return filepath.Join(c.StagingDir(), StageRemoveDir)
}
func (c *RepoConfig) HeadFile() string   { return filepath.Join(c.RepoRoot, HeadFile) }
func (c *RepoConfig) ActiveFile() string { return filepath.Join(c.RepoRoot, ActiveFile) }
func (c *RepoConfig) ConfigFile() string { return filepath.Join(c.RepoRoot, ConfigFile) }
func (c *RepoConfig) IgnoreFile() string { return filepath.Join(c.WorkingTreeRoot, IgnoreFile) }

// Dirs lists every directory of the repository layout.
func (c *RepoConfig) Dirs() []string {
	return []string{
		c.RepoRoot,
		c.BlobsDir(),
		c.CommitsDir(),
		c.BranchesDir(),
		c.StageAddDir(),
		c.StageRemoveDir(),
	}
}

// Save writes config.json.
func (c *RepoConfig) Save(fsys fs.FS) error {
	if err := util.WriteJSON(fsys, c.ConfigFile(), c); err != nil {
		return fmt.Errorf("failed to write %q: %w", c.ConfigFile(), err)
	}
	return nil
}

// Load reads config.json. A missing file or an empty hash falls back to
// DefaultHash.
func (c *RepoConfig) Load(fsys fs.FS) error {
	var stored RepoConfig
	if err := util.ReadJSON(fsys, c.ConfigFile(), &stored); err != nil {
		if fsys.IsNotExist(err) {
			c.HashFormat = DefaultHash
			return nil
		}
		return fmt.Errorf("failed to read %q: %w", c.ConfigFile(), err)
	}
	c.HashFormat = stored.HashFormat
	if c.HashFormat == "" {
		c.HashFormat = DefaultHash
	}
	c.Compress = stored.Compress
	return nil
}

// ResolveWorkingTreeRoot determines the working tree root by walking up from
// start until a directory containing .gitlet is found. It returns "" when
// none is found.
func ResolveWorkingTreeRoot(fsys fs.FS, start string) string {
	cwd := filepath.Clean(start)
	for {
		if fsys.IsDir(filepath.Join(cwd, RepoDir)) {
			return cwd
		}

		parent := filepath.Dir(cwd)
		if parent == cwd {
			break // reached filesystem root
		}
		cwd = parent
	}
	return ""
}
