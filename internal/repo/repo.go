// Package repo is the repository facade: every user-level operation
// (add, commit, checkout, merge, ...) is a method on Repository.
package repo

import (
	"fmt"
	"time"

	"github.com/keshon/gitlet/internal/config"
	"github.com/keshon/gitlet/internal/errs"
	"github.com/keshon/gitlet/internal/fs"
	"github.com/keshon/gitlet/internal/logging"
	"github.com/keshon/gitlet/internal/repo/graph"
	"github.com/keshon/gitlet/internal/repo/meta"
	"github.com/keshon/gitlet/internal/repo/store"
)

// Repository represents an initialized repository.
type Repository struct {
	Config *config.RepoConfig
	FS     fs.FS
	Meta   *meta.MetaContext
	Store  *store.StoreContext
	Graph  *graph.Graph
	Logger logging.Logger

	// Now stamps new commits.
	Now func() time.Time
}

// Options allows dependency injection for tests.
type Options struct {
	FS     fs.FS
	Logger logging.Logger
	Now    func() time.Time
}

func (o *Options) fs() fs.FS {
	if o != nil && o.FS != nil {
		return o.FS
	}
	return fs.NewOSFS()
}

func newRepository(cfg *config.RepoConfig, opts *Options) (*Repository, error) {
	fsys := opts.fs()

	st, err := store.NewStore(cfg, &store.NewStoreOptions{FS: fsys})
	if err != nil {
		return nil, fmt.Errorf("failed to init store: %w", err)
	}
	mc, err := meta.NewMeta(cfg, fsys, st.CommitCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to init meta: %w", err)
	}

	r := &Repository{
		Config: cfg,
		FS:     fsys,
		Meta:   mc,
		Store:  st,
		Graph:  graph.New(mc.Parents),
		Logger: logging.Nop(),
		Now:    time.Now,
	}
	if opts != nil && opts.Logger != nil {
		r.Logger = opts.Logger
	}
	if opts != nil && opts.Now != nil {
		r.Now = opts.Now
	}
	return r, nil
}

// InitAt creates a repository in cfg.WorkingTreeRoot with the hash format and
// compression setting carried by cfg.
func InitAt(cfg *config.RepoConfig, opts *Options) (*Repository, error) {
	if cfg.HashFormat == "" {
		cfg.HashFormat = config.DefaultHash
	}
	fsys := opts.fs()
	if meta.IsMetaExists(fsys, cfg) {
		return nil, errs.New(errs.AlreadyExists, "A Gitlet version-control system already exists in the current directory.")
	}

	r, err := newRepository(cfg, opts)
	if err != nil {
		return nil, err
	}

	if err := fsys.MkdirAll(cfg.RepoRoot, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create dir %q: %w", cfg.RepoRoot, err)
	}
	if err := cfg.Save(fsys); err != nil {
		return nil, fmt.Errorf("failed to save config.json: %w", err)
	}

	root, err := r.Meta.CreateCommit(meta.RootCommit())
	if err != nil {
		return nil, err
	}
	if err := r.Meta.CreateMetaStructure(root); err != nil {
		return nil, err
	}

	r.Logger.Debug("initialized repository", "root", cfg.WorkingTreeRoot, "hash", cfg.HashFormat, "commit", root)
	return r, nil
}

// OpenAt opens the repository whose working tree root is root.
func OpenAt(root string, opts *Options) (*Repository, error) {
	fsys := opts.fs()
	cfg := config.NewRepoConfig(root)
	if !meta.IsMetaExists(fsys, cfg) {
		return nil, errs.New(errs.NotInitialized, "Not in an initialized Gitlet directory.")
	}
	if err := cfg.Load(fsys); err != nil {
		return nil, err
	}
	return newRepository(cfg, opts)
}

// Discover opens the repository enclosing dir.
func Discover(dir string, opts *Options) (*Repository, error) {
	root := config.ResolveWorkingTreeRoot(opts.fs(), dir)
	if root == "" {
		return nil, errs.New(errs.NotInitialized, "Not in an initialized Gitlet directory.")
	}
	return OpenAt(root, opts)
}

// HeadCommit returns the ID and record of the current commit.
func (r *Repository) HeadCommit() (string, *meta.Commit, error) {
	id, err := r.Meta.GetHead()
	if err != nil {
		return "", nil, err
	}
	c, err := r.Meta.GetCommit(id)
	if err != nil {
		return "", nil, err
	}
	return id, c, nil
}

// ActiveBranch returns the name of the active branch.
func (r *Repository) ActiveBranch() (string, error) {
	b, err := r.Meta.GetCurrentBranch()
	if err != nil {
		return "", err
	}
	return b.Name, nil
}

// readBlob returns the content of a blob.
func (r *Repository) readBlob(digest string) ([]byte, error) {
	data, err := r.Store.BlobCtx.Get(digest)
	if err != nil {
		return nil, fmt.Errorf("read blob %q: %w", digest, err)
	}
	return data, nil
}

// moveBranch points the active branch and HEAD at commitID.
func (r *Repository) moveBranch(commitID string) error {
	active, err := r.ActiveBranch()
	if err != nil {
		return err
	}
	if err := r.Meta.SetLastCommitID(active, commitID); err != nil {
		return err
	}
	return r.Meta.SetHead(commitID)
}
