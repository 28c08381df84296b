package repo

import (
	"github.com/keshon/gitlet/internal/errs"
	"github.com/keshon/gitlet/internal/repo/meta"
)

// CheckoutFile restores name from the current commit, overwriting the
// working-tree copy. Staging is left untouched.
func (r *Repository) CheckoutFile(name string) error {
	_, head, err := r.HeadCommit()
	if err != nil {
		return err
	}
	return r.checkoutFileFrom(head, name)
}

// CheckoutFileAt restores name from the commit identified by a full or
// abbreviated ID.
func (r *Repository) CheckoutFileAt(prefix, name string) error {
	id, err := r.Meta.ResolveCommit(prefix)
	if err != nil {
		return err
	}
	c, err := r.Meta.GetCommit(id)
	if err != nil {
		return err
	}
	return r.checkoutFileFrom(c, name)
}

func (r *Repository) checkoutFileFrom(c *meta.Commit, name string) error {
	digest, ok := c.Files[name]
	if !ok {
		return errs.New(errs.NotFound, "File does not exist in that commit.")
	}
	data, err := r.readBlob(digest)
	if err != nil {
		return err
	}
	return r.Store.WorktreeCtx.Write(name, data)
}

// CheckoutBranch switches the working tree and the active branch to branch.
func (r *Repository) CheckoutBranch(branch string) error {
	if !r.Meta.BranchExists(branch) {
		return errs.New(errs.NoSuchBranch, "No such branch exists.")
	}
	active, err := r.ActiveBranch()
	if err != nil {
		return err
	}
	if branch == active {
		return errs.New(errs.CurrentBranch, "No need to checkout the current branch.")
	}

	tip, err := r.Meta.GetLastCommitID(branch)
	if err != nil {
		return err
	}
	if err := r.switchTo(tip); err != nil {
		return err
	}
	if _, err := r.Meta.SetHeadRef(branch); err != nil {
		return err
	}
	if err := r.Meta.SetHead(tip); err != nil {
		return err
	}
	r.Logger.Info("checkout", "branch", branch, "commit", tip)
	return nil
}

// Reset checks out the commit identified by a full or abbreviated ID and
// moves the active branch to it.
func (r *Repository) Reset(prefix string) error {
	id, err := r.Meta.ResolveCommit(prefix)
	if err != nil {
		return err
	}
	if err := r.switchTo(id); err != nil {
		return err
	}
	if err := r.moveBranch(id); err != nil {
		return err
	}
	r.Logger.Info("reset", "commit", id)
	return nil
}

// switchTo checks the untracked-file guard, replaces the working tree with
// the files of commitID and clears staging.
func (r *Repository) switchTo(commitID string) error {
	_, head, err := r.HeadCommit()
	if err != nil {
		return err
	}
	target, err := r.Meta.GetCommit(commitID)
	if err != nil {
		return err
	}
	if err := r.checkUntracked(head, target); err != nil {
		return err
	}
	if err := r.checkoutCommit(head, target); err != nil {
		return err
	}
	return r.Store.StageCtx.Clear()
}

// checkUntracked fails when a working-tree file untracked by head would be
// overwritten by target. Ignored files count as well.
func (r *Repository) checkUntracked(head, target *meta.Commit) error {
	for name := range target.Files {
		if _, tracked := head.Files[name]; tracked {
			continue
		}
		if r.Store.WorktreeCtx.Exists(name) {
			return errs.New(errs.WouldOverwriteUntracked,
				"There is an untracked file in the way; delete it, or add and commit it first.")
		}
	}
	return nil
}

// checkoutCommit deletes files tracked by head but absent from target and
// writes every file of target. All blobs are read before the tree changes.
func (r *Repository) checkoutCommit(head, target *meta.Commit) error {
	contents := make(map[string][]byte, len(target.Files))
	for name, digest := range target.Files {
		data, err := r.readBlob(digest)
		if err != nil {
			return err
		}
		contents[name] = data
	}

	for name := range head.Files {
		if _, keep := target.Files[name]; keep {
			continue
		}
		if err := r.Store.WorktreeCtx.Remove(name); err != nil {
			return err
		}
	}
	for name, data := range contents {
		if err := r.Store.WorktreeCtx.Write(name, data); err != nil {
			return err
		}
	}
	return nil
}
