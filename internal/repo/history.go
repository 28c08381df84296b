package repo

import (
	"github.com/keshon/gitlet/internal/errs"
	"github.com/keshon/gitlet/internal/repo/meta"
)

// LogEntry pairs a commit with its ID.
type LogEntry struct {
	ID     string
	Commit *meta.Commit
}

// Log returns the first-parent history from HEAD, newest first.
func (r *Repository) Log() ([]LogEntry, error) {
	head, err := r.Meta.GetHead()
	if err != nil {
		return nil, err
	}
	ids, err := r.Meta.FirstParentChain(head)
	if err != nil {
		return nil, err
	}
	return r.entries(ids)
}

// GlobalLog returns every stored commit, in ID order.
func (r *Repository) GlobalLog() ([]LogEntry, error) {
	ids, err := r.Meta.AllCommitIDs()
	if err != nil {
		return nil, err
	}
	return r.entries(ids)
}

// Find returns the IDs of all commits whose message is exactly message.
func (r *Repository) Find(message string) ([]string, error) {
	all, err := r.GlobalLog()
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range all {
		if e.Commit.Message == message {
			out = append(out, e.ID)
		}
	}
	if len(out) == 0 {
		return nil, errs.New(errs.NotFound, "Found no commit with that message.")
	}
	return out, nil
}

// Show returns a single commit by full or abbreviated ID.
func (r *Repository) Show(prefix string) (LogEntry, error) {
	id, err := r.Meta.ResolveCommit(prefix)
	if err != nil {
		return LogEntry{}, err
	}
	c, err := r.Meta.GetCommit(id)
	if err != nil {
		return LogEntry{}, err
	}
	return LogEntry{ID: id, Commit: c}, nil
}

func (r *Repository) entries(ids []string) ([]LogEntry, error) {
	out := make([]LogEntry, 0, len(ids))
	for _, id := range ids {
		c, err := r.Meta.GetCommit(id)
		if err != nil {
			return nil, err
		}
		out = append(out, LogEntry{ID: id, Commit: c})
	}
	return out, nil
}
