package store

import (
	"fmt"

	"github.com/keshon/gitlet/internal/config"
	"github.com/keshon/gitlet/internal/fs"
	"github.com/keshon/gitlet/internal/repo/store/object"
	"github.com/keshon/gitlet/internal/repo/store/stage"
	"github.com/keshon/gitlet/internal/repo/store/worktree"
)

// StoreContext is the high-level store abstraction that unifies all subsystems.
type StoreContext struct {
	Config      *config.RepoConfig
	BlobCtx     *object.ObjectContext
	CommitCtx   *object.ObjectContext
	StageCtx    *stage.StageContext
	WorktreeCtx *worktree.WorktreeContext
}

// NewStoreOptions allows optional dependency injection (FS, object stores)
type NewStoreOptions struct {
	FS        fs.FS
	BlobCtx   *object.ObjectContext
	CommitCtx *object.ObjectContext
}

// NewStoreDefault creates a store with default dependencies.
func NewStoreDefault(cfg *config.RepoConfig) (*StoreContext, error) {
	return NewStore(cfg, nil)
}

// NewStore creates a store with optional dependencies. Objects go through a
// gzip layer when cfg.Compress is set; staging and the working tree never do.
func NewStore(cfg *config.RepoConfig, opts *NewStoreOptions) (*StoreContext, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil RepoConfig provided")
	}

	// Resolve FS
	base := fs.FS(fs.NewOSFS())
	if opts != nil && opts.FS != nil {
		base = opts.FS
	}
	objFS := base
	if cfg.Compress {
		objFS = fs.NewCompressedFS(base)
	}

	hasher, err := object.NewHasher(cfg.HashFormat)
	if err != nil {
		return nil, err
	}

	blobCtx := object.NewObjectContext(cfg.BlobsDir(), objFS, hasher)
	if opts != nil && opts.BlobCtx != nil {
		blobCtx = opts.BlobCtx
	}
	commitCtx := object.NewObjectContext(cfg.CommitsDir(), objFS, hasher)
	if opts != nil && opts.CommitCtx != nil {
		commitCtx = opts.CommitCtx
	}

	return &StoreContext{
		Config:      cfg,
		BlobCtx:     blobCtx,
		CommitCtx:   commitCtx,
		StageCtx:    stage.NewStageContext(cfg.StageAddDir(), cfg.StageRemoveDir(), base),
		WorktreeCtx: worktree.NewWorktreeContext(cfg.WorkingTreeRoot, base),
	}, nil
}
