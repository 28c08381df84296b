package meta

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/keshon/gitlet/internal/errs"
)

// RootMessage is the message of the commit every repository starts with.
const RootMessage = "initial commit"

// Commit is an immutable snapshot. Files maps tracked names to blob digests.
// Field order and sorted map keys make the encoding deterministic.
type Commit struct {
	Message   string            `json:"message"`
	Timestamp string            `json:"timestamp"`
	Parents   []string          `json:"parents"`
	Files     map[string]string `json:"files"`
}

// NewCommit builds a commit stamped with when (stored as UTC RFC 3339).
func NewCommit(message string, when time.Time, parents []string, files map[string]string) *Commit {
	c := &Commit{
		Message:   message,
		Timestamp: when.UTC().Format(time.RFC3339),
		Parents:   parents,
		Files:     files,
	}
	c.normalize()
	return c
}

// RootCommit returns the initial commit at the Unix epoch.
func RootCommit() *Commit {
	return NewCommit(RootMessage, time.Unix(0, 0), nil, nil)
}

func (c *Commit) normalize() {
	if c.Parents == nil {
		c.Parents = []string{}
	}
	if c.Files == nil {
		c.Files = map[string]string{}
	}
}

// Time parses the commit timestamp.
func (c *Commit) Time() (time.Time, error) {
	return time.Parse(time.RFC3339, c.Timestamp)
}

// IsMerge reports whether c has two parents.
func (c *Commit) IsMerge() bool { return len(c.Parents) > 1 }

// Encode serializes c.
func (c *Commit) Encode() ([]byte, error) {
	c.normalize()
	return json.Marshal(c)
}

// DecodeCommit parses a serialized commit.
func DecodeCommit(data []byte) (*Commit, error) {
	var c Commit
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	c.normalize()
	return &c, nil
}

// GetCommit reads a commit by its full ID.
func (mc *MetaContext) GetCommit(commitID string) (*Commit, error) {
	data, err := mc.Commits.Get(commitID)
	if err != nil {
		if errs.Is(err, errs.NotFound) {
			return nil, errs.New(errs.NotFound, "No commit with that id exists.")
		}
		return nil, fmt.Errorf("failed to read commit %q: %w", commitID, err)
	}
	c, err := DecodeCommit(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode commit %q: %w", commitID, err)
	}
	return c, nil
}

// CreateCommit writes a commit to store and returns its ID.
func (mc *MetaContext) CreateCommit(commit *Commit) (string, error) {
	data, err := commit.Encode()
	if err != nil {
		return "", fmt.Errorf("failed to encode commit: %w", err)
	}
	id, err := mc.Commits.Put(data)
	if err != nil {
		return "", fmt.Errorf("failed to write commit: %w", err)
	}
	return id, nil
}

// ResolveCommit expands a full or abbreviated commit ID.
func (mc *MetaContext) ResolveCommit(prefix string) (string, error) {
	id, err := mc.Commits.Resolve(prefix)
	if err != nil {
		if errs.Is(err, errs.NotFound) {
			return "", errs.New(errs.NotFound, "No commit with that id exists.")
		}
		return "", err
	}
	return id, nil
}

// Parents returns the parent IDs of a commit.
func (mc *MetaContext) Parents(commitID string) ([]string, error) {
	c, err := mc.GetCommit(commitID)
	if err != nil {
		return nil, err
	}
	return c.Parents, nil
}

// AllCommitIDs returns every stored commit ID, sorted.
func (mc *MetaContext) AllCommitIDs() ([]string, error) {
	ids, err := mc.Commits.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list commits: %w", err)
	}
	return ids, nil
}

// FirstParentChain returns the IDs from commitID back to the root following
// first parents (latest -> oldest).
func (mc *MetaContext) FirstParentChain(commitID string) ([]string, error) {
	var ids []string
	seen := map[string]bool{}
	for id := commitID; id != ""; {
		if seen[id] {
			break
		}
		seen[id] = true
		ids = append(ids, id)

		c, err := mc.GetCommit(id)
		if err != nil {
			return nil, fmt.Errorf("failed to read commit %q: %w", id, err)
		}
		if len(c.Parents) == 0 {
			break
		}
		id = c.Parents[0]
	}
	return ids, nil
}
