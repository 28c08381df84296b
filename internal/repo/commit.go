package repo

import (
	"fmt"

	"github.com/keshon/gitlet/internal/errs"
	"github.com/keshon/gitlet/internal/repo/meta"
)

// Commit records the staging area as a new commit on the active branch.
func (r *Repository) Commit(message string) (string, error) {
	if message == "" {
		return "", errs.New(errs.EmptyMessage, "Please enter a commit message.")
	}
	empty, err := r.stagingEmpty()
	if err != nil {
		return "", err
	}
	if empty {
		return "", errs.New(errs.NoChangesToCommit, "No changes added to the commit.")
	}

	head, _, err := r.HeadCommit()
	if err != nil {
		return "", err
	}
	return r.commit(message, []string{head})
}

// commit builds a commit from the current commit's files plus the staging
// area, advances the active branch and HEAD, and clears staging.
func (r *Repository) commit(message string, parents []string) (string, error) {
	_, head, err := r.HeadCommit()
	if err != nil {
		return "", err
	}

	files := make(map[string]string, len(head.Files))
	for name, digest := range head.Files {
		files[name] = digest
	}

	added, err := r.Store.StageCtx.Added()
	if err != nil {
		return "", err
	}
	for _, name := range added {
		data, err := r.Store.StageCtx.Content(name)
		if err != nil {
			return "", err
		}
		digest, err := r.Store.BlobCtx.Put(data)
		if err != nil {
			return "", fmt.Errorf("store blob for %q: %w", name, err)
		}
		files[name] = digest
	}

	removed, err := r.Store.StageCtx.Removed()
	if err != nil {
		return "", err
	}
	for _, name := range removed {
		delete(files, name)
	}

	id, err := r.Meta.CreateCommit(meta.NewCommit(message, r.Now(), parents, files))
	if err != nil {
		return "", err
	}
	if err := r.moveBranch(id); err != nil {
		return "", err
	}
	if err := r.Store.StageCtx.Clear(); err != nil {
		return "", err
	}

	r.Logger.Info("commit", "id", id, "parents", parents, "added", len(added), "removed", len(removed))
	return id, nil
}
