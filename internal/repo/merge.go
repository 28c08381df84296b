package repo

import (
	"fmt"

	"github.com/keshon/gitlet/internal/errs"
	"github.com/keshon/gitlet/internal/repo/merge"
)

// MergeOutcome describes how a merge completed.
type MergeOutcome int

const (
	// MergeCommitted means a merge commit was created.
	MergeCommitted MergeOutcome = iota
	// MergeFastForward means the active branch moved to the target without a
	// new commit.
	MergeFastForward
)

// MergeResult reports a completed merge.
type MergeResult struct {
	Outcome  MergeOutcome
	Commit   string
	Conflict bool
}

// pending is a working-tree write decided before any mutation happens.
type pending struct {
	step    merge.Step
	content []byte
	digest  string
}

// Merge merges branch into the active branch.
func (r *Repository) Merge(branch string) (*MergeResult, error) {
	// preflight, no side effects
	empty, err := r.stagingEmpty()
	if err != nil {
		return nil, err
	}
	if !empty {
		return nil, errs.New(errs.UncommittedChanges, "You have uncommitted changes.")
	}
	if !r.Meta.BranchExists(branch) {
		return nil, errs.New(errs.NoSuchBranch, "A branch with that name does not exist.")
	}
	active, err := r.ActiveBranch()
	if err != nil {
		return nil, err
	}
	if branch == active {
		return nil, errs.New(errs.SelfMerge, "Cannot merge a branch with itself.")
	}

	curID, cur, err := r.HeadCommit()
	if err != nil {
		return nil, err
	}
	tgtID, err := r.Meta.GetLastCommitID(branch)
	if err != nil {
		return nil, err
	}
	tgt, err := r.Meta.GetCommit(tgtID)
	if err != nil {
		return nil, err
	}
	if err := r.checkUntracked(cur, tgt); err != nil {
		return nil, err
	}

	// ancestry
	if tgtID == curID {
		return nil, errs.New(errs.AncestorMerge, "Given branch is an ancestor of the current branch.")
	}
	if ok, err := r.Graph.IsAncestor(tgtID, curID); err != nil {
		return nil, err
	} else if ok {
		return nil, errs.New(errs.AncestorMerge, "Given branch is an ancestor of the current branch.")
	}
	if ok, err := r.Graph.IsAncestor(curID, tgtID); err != nil {
		return nil, err
	} else if ok {
		if err := r.switchTo(tgtID); err != nil {
			return nil, err
		}
		if err := r.moveBranch(tgtID); err != nil {
			return nil, err
		}
		r.Logger.Info("merge fast-forward", "branch", branch, "commit", tgtID)
		return &MergeResult{Outcome: MergeFastForward, Commit: tgtID}, nil
	}

	splitID, err := r.Graph.SplitPoint(curID, tgtID)
	if err != nil {
		return nil, err
	}
	split, err := r.Meta.GetCommit(splitID)
	if err != nil {
		return nil, err
	}

	plan := merge.Classify(split.Files, cur.Files, tgt.Files)
	writes, err := r.preparePlan(plan)
	if err != nil {
		return nil, err
	}
	if err := r.applyPlan(writes); err != nil {
		return nil, err
	}

	id, err := r.commit(fmt.Sprintf("Merged %s into %s.", branch, active), []string{curID, tgtID})
	if err != nil {
		return nil, err
	}

	r.Logger.Info("merge", "branch", branch, "split", splitID, "commit", id,
		"steps", len(plan.Steps), "conflict", plan.HasConflict())
	return &MergeResult{Outcome: MergeCommitted, Commit: id, Conflict: plan.HasConflict()}, nil
}

// preparePlan reads every blob the plan needs.
func (r *Repository) preparePlan(plan merge.Plan) ([]pending, error) {
	out := make([]pending, 0, len(plan.Steps))
	for _, step := range plan.Steps {
		p := pending{step: step}
		switch step.Action {
		case merge.Adopt:
			data, err := r.readBlob(step.Target)
			if err != nil {
				return nil, err
			}
			p.content = data
		case merge.Conflict:
			var cur, tgt []byte
			var err error
			if step.Current != "" {
				if cur, err = r.readBlob(step.Current); err != nil {
					return nil, err
				}
			}
			if step.Target != "" {
				if tgt, err = r.readBlob(step.Target); err != nil {
					return nil, err
				}
			}
			p.content = merge.ConflictContent(cur, tgt)
		}
		if p.content != nil {
			p.digest = r.Store.BlobCtx.Hash.Sum(p.content)
		}
		out = append(out, p)
	}
	return out, nil
}

// applyPlan writes the working tree and stages each change.
func (r *Repository) applyPlan(writes []pending) error {
	wt, stage := r.Store.WorktreeCtx, r.Store.StageCtx
	for _, p := range writes {
		name := p.step.Name
		switch p.step.Action {
		case merge.Adopt, merge.Conflict:
			if err := wt.Write(name, p.content); err != nil {
				return err
			}
			if err := stage.StageAdd(name, p.content, p.digest, p.step.Current); err != nil {
				return err
			}
		case merge.Remove:
			del, err := stage.StageRemove(name, true)
			if err != nil {
				return err
			}
			if del {
				if err := wt.Remove(name); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
