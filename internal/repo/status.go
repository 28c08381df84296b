package repo

import (
	"sort"

	"github.com/keshon/gitlet/internal/errs"
)

// Modification is a working-tree change that is not staged.
type Modification struct {
	Name string
	Kind string // "modified" or "deleted"
}

// Status summarizes branches, the staging area and the working tree.
type Status struct {
	Active    string
	Branches  []string
	Staged    []string
	Removed   []string
	Modified  []Modification
	Untracked []string
}

// Status compares the working tree against the staging area and the
// current commit.
func (r *Repository) Status() (*Status, error) {
	st := &Status{}

	active, err := r.ActiveBranch()
	if err != nil {
		return nil, err
	}
	st.Active = active

	branches, err := r.Meta.ListBranches()
	if err != nil {
		return nil, err
	}
	for _, b := range branches {
		st.Branches = append(st.Branches, b.Name)
	}

	if st.Staged, err = r.Store.StageCtx.Added(); err != nil {
		return nil, err
	}
	if st.Removed, err = r.Store.StageCtx.Removed(); err != nil {
		return nil, err
	}

	_, head, err := r.HeadCommit()
	if err != nil {
		return nil, err
	}
	files, err := r.Store.WorktreeCtx.Scan()
	if err != nil {
		return nil, err
	}
	wt := r.Store.WorktreeCtx
	stage := r.Store.StageCtx
	digestOf := func(name string) (string, error) {
		data, err := wt.Read(name)
		if err != nil {
			return "", err
		}
		return r.Store.BlobCtx.Hash.Sum(data), nil
	}
	modified := map[string]string{}

	for _, name := range st.Staged {
		if !wt.Exists(name) {
			modified[name] = "deleted"
			continue
		}
		staged, err := stage.Content(name)
		if err != nil {
			return nil, err
		}
		cur, err := digestOf(name)
		if err != nil {
			return nil, err
		}
		if cur != r.Store.BlobCtx.Hash.Sum(staged) {
			modified[name] = "modified"
		}
	}

	for name, tracked := range head.Files {
		if stage.IsAdded(name) || stage.IsRemoved(name) {
			continue
		}
		if !wt.Exists(name) {
			modified[name] = "deleted"
			continue
		}
		cur, err := digestOf(name)
		if err != nil && !errs.Is(err, errs.NotFound) {
			return nil, err
		}
		if cur != tracked {
			modified[name] = "modified"
		}
	}

	for name, kind := range modified {
		st.Modified = append(st.Modified, Modification{Name: name, Kind: kind})
	}
	sort.Slice(st.Modified, func(i, j int) bool { return st.Modified[i].Name < st.Modified[j].Name })

	for _, name := range files {
		_, tracked := head.Files[name]
		if (!tracked && !stage.IsAdded(name)) || stage.IsRemoved(name) {
			st.Untracked = append(st.Untracked, name)
		}
	}
	return st, nil
}
