package meta

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/keshon/gitlet/internal/errs"
	"github.com/keshon/gitlet/internal/fs"
)

// Branch represents a branch name.
type Branch struct {
	Name string
}

// ValidateBranchName rejects names that cannot be stored as a single file
// under the branches directory.
func ValidateBranchName(name string) error {
	if strings.TrimSpace(name) == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		return errs.New(errs.InvalidName, "Invalid branch name %q.", name)
	}
	return nil
}

func (mc *MetaContext) branchPath(name string) string {
	return filepath.Join(mc.Config.BranchesDir(), name)
}

// GetCurrentBranch returns the active branch.
func (mc *MetaContext) GetCurrentBranch() (*Branch, error) {
	ref, err := mc.GetHeadRef()
	if err != nil {
		return &Branch{}, fmt.Errorf("failed to get active ref: %w", err)
	}
	name := filepath.Base(ref.String())
	if name == "" || name == "." {
		return &Branch{}, fmt.Errorf("active ref is empty or invalid")
	}
	return &Branch{Name: name}, nil
}

// BranchExists checks for branch existence (fast).
func (mc *MetaContext) BranchExists(name string) bool {
	if ValidateBranchName(name) != nil {
		return false
	}
	p := mc.branchPath(name)
	return mc.FS.Exists(p) && !mc.FS.IsDir(p)
}

// ListBranches returns all branches sorted by name.
func (mc *MetaContext) ListBranches() ([]Branch, error) {
	dirEntries, err := mc.FS.ReadDir(mc.Config.BranchesDir())
	if err != nil {
		return nil, fmt.Errorf("failed to read branches directory %q: %w", mc.Config.BranchesDir(), err)
	}
	branches := make([]Branch, 0, len(dirEntries))
	for _, e := range dirEntries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		branches = append(branches, Branch{Name: e.Name()})
	}
	sort.Slice(branches, func(i, j int) bool { return branches[i].Name < branches[j].Name })
	return branches, nil
}

// CreateBranch creates a new branch pointing at commitID.
func (mc *MetaContext) CreateBranch(name, commitID string) (Branch, error) {
	if err := ValidateBranchName(name); err != nil {
		return Branch{}, err
	}
	if mc.BranchExists(name) {
		return Branch{}, errs.New(errs.AlreadyExists, "A branch with that name already exists.")
	}
	if err := mc.SetLastCommitID(name, commitID); err != nil {
		return Branch{}, err
	}
	return Branch{Name: name}, nil
}

// DeleteBranch removes a branch pointer. Commits are never deleted.
func (mc *MetaContext) DeleteBranch(name string) error {
	if !mc.BranchExists(name) {
		return errs.New(errs.NoSuchBranch, "A branch with that name does not exist.")
	}
	if err := mc.FS.Remove(mc.branchPath(name)); err != nil {
		return fmt.Errorf("failed to remove branch %q: %w", name, err)
	}
	return nil
}

// SetLastCommitID writes the branch tip pointer.
func (mc *MetaContext) SetLastCommitID(branch, commitID string) error {
	if err := fs.WriteFileAtomic(mc.FS, mc.branchPath(branch), []byte(commitID)); err != nil {
		return fmt.Errorf("failed to set last commit for branch %q: %w", branch, err)
	}
	return nil
}

// GetLastCommitID returns the tip commit ID of branch.
func (mc *MetaContext) GetLastCommitID(branch string) (string, error) {
	if !mc.BranchExists(branch) {
		return "", errs.New(errs.NoSuchBranch, "No such branch exists.")
	}
	data, err := mc.FS.ReadFile(mc.branchPath(branch))
	if err != nil {
		return "", fmt.Errorf("failed to read last commit for branch %q: %w", branch, err)
	}
	return strings.TrimSpace(string(data)), nil
}
