package repo

import (
	"sort"

	"github.com/keshon/gitlet/internal/repo/store/object"
	"github.com/keshon/gitlet/internal/util"
)

// VerifyReport lists the objects that failed verification.
type VerifyReport struct {
	Checked int
	Missing []string
	Damaged []string
}

// OK reports whether every checked object is intact.
func (v *VerifyReport) OK() bool { return len(v.Missing) == 0 && len(v.Damaged) == 0 }

func (v *VerifyReport) add(c object.Check) {
	v.Checked++
	switch c.Status {
	case object.Missing:
		v.Missing = append(v.Missing, c.Digest)
	case object.Damaged:
		v.Damaged = append(v.Damaged, c.Digest)
	}
}

func (v *VerifyReport) sort() {
	sort.Strings(v.Missing)
	sort.Strings(v.Damaged)
}

// CountObjects returns how many objects Verify will check.
func (r *Repository) CountObjects() (int, error) {
	commits, blobs, err := r.collectObjects()
	if err != nil {
		return 0, err
	}
	return len(commits) + len(blobs), nil
}

// Verify re-hashes every stored commit and every blob referenced by a commit
// or present in the store. onCheck, if set, is called for each result.
func (r *Repository) Verify(onCheck func(object.Check)) (*VerifyReport, error) {
	commits, blobs, err := r.collectObjects()
	if err != nil {
		return nil, err
	}

	report := &VerifyReport{}
	workers := util.WorkerCount()
	for _, run := range []struct {
		ctx     *object.ObjectContext
		digests []string
	}{
		{r.Store.CommitCtx, commits},
		{r.Store.BlobCtx, blobs},
	} {
		for c := range run.ctx.Verify(run.digests, workers) {
			report.add(c)
			if onCheck != nil {
				onCheck(c)
			}
		}
	}
	report.sort()

	r.Logger.Info("verify", "checked", report.Checked, "missing", len(report.Missing), "damaged", len(report.Damaged))
	return report, nil
}

// VerifyHead checks only the blobs of the current commit.
func (r *Repository) VerifyHead() (*VerifyReport, error) {
	_, head, err := r.HeadCommit()
	if err != nil {
		return nil, err
	}
	digests := make([]string, 0, len(head.Files))
	for _, d := range head.Files {
		digests = append(digests, d)
	}

	report := &VerifyReport{}
	for c := range r.Store.BlobCtx.Verify(digests, util.WorkerCount()) {
		report.add(c)
	}
	report.sort()
	return report, nil
}

func (r *Repository) collectObjects() (commits, blobs []string, err error) {
	commits, err = r.Meta.AllCommitIDs()
	if err != nil {
		return nil, nil, err
	}

	seen := map[string]struct{}{}
	stored, err := r.Store.BlobCtx.List()
	if err != nil {
		return nil, nil, err
	}
	for _, d := range stored {
		seen[d] = struct{}{}
	}
	for _, id := range commits {
		c, err := r.Meta.GetCommit(id)
		if err != nil {
			// a damaged commit is reported by its own check
			continue
		}
		for _, d := range c.Files {
			seen[d] = struct{}{}
		}
	}
	return commits, util.SortedKeys(seen), nil
}
