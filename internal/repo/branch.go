package repo

import (
	"github.com/keshon/gitlet/internal/errs"
)

// Branch creates a branch at the current commit. The active branch is
// unchanged.
func (r *Repository) Branch(name string) error {
	head, err := r.Meta.GetHead()
	if err != nil {
		return err
	}
	if _, err := r.Meta.CreateBranch(name, head); err != nil {
		return err
	}
	r.Logger.Debug("branch", "name", name, "commit", head)
	return nil
}

// RemoveBranch deletes a branch pointer. Its commits stay in the store.
func (r *Repository) RemoveBranch(name string) error {
	if !r.Meta.BranchExists(name) {
		return errs.New(errs.NoSuchBranch, "A branch with that name does not exist.")
	}
	active, err := r.ActiveBranch()
	if err != nil {
		return err
	}
	if name == active {
		return errs.New(errs.CurrentBranch, "Cannot remove the current branch.")
	}
	return r.Meta.DeleteBranch(name)
}
