package repo

// Add stages the working-tree content of name. Content identical to the
// current commit's version is unstaged instead.
func (r *Repository) Add(name string) error {
	data, err := r.Store.WorktreeCtx.Read(name)
	if err != nil {
		return err
	}
	_, head, err := r.HeadCommit()
	if err != nil {
		return err
	}

	digest := r.Store.BlobCtx.Hash.Sum(data)
	if err := r.Store.StageCtx.StageAdd(name, data, digest, head.Files[name]); err != nil {
		return err
	}
	r.Logger.Debug("add", "file", name, "digest", digest, "tracked", head.Files[name] != "")
	return nil
}

// Remove unstages name and, when it is tracked by the current commit, stages
// its removal and deletes it from the working tree.
func (r *Repository) Remove(name string) error {
	_, head, err := r.HeadCommit()
	if err != nil {
		return err
	}

	_, tracked := head.Files[name]
	del, err := r.Store.StageCtx.StageRemove(name, tracked)
	if err != nil {
		return err
	}
	if del {
		if err := r.Store.WorktreeCtx.Remove(name); err != nil {
			return err
		}
	}
	r.Logger.Debug("rm", "file", name, "tracked", tracked)
	return nil
}

// stagingEmpty reports whether nothing is staged.
func (r *Repository) stagingEmpty() (bool, error) {
	return r.Store.StageCtx.IsEmpty()
}
