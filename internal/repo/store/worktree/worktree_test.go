package worktree_test

import (
	"strings"
	"testing"

	"github.com/keshon/gitlet/internal/errs"
	"github.com/keshon/gitlet/internal/fs"
	"github.com/keshon/gitlet/internal/repo/store/worktree"
)

func newTestWC(t *testing.T) (*worktree.WorktreeContext, *fs.MemoryFS) {
	t.Helper()
	m := fs.NewMemoryFS()
	m.MkdirAll("/w/.gitlet/objects", 0o755)
	m.WriteFile("/w/.gitletignore", []byte("*.log\n"), 0o644)
	return worktree.NewWorktreeContext("/w", m), m
}

func TestScan(t *testing.T) {
	wc, m := newTestWC(t)
	m.WriteFile("/w/.gitlet/HEAD", []byte("x"), 0o644)
	m.WriteFile("/w/a.txt", []byte("a"), 0o644)
	m.WriteFile("/w/debug.log", []byte("l"), 0o644)
	m.MkdirAll("/w/src/pkg", 0o755)
	m.WriteFile("/w/src/pkg/b.go", []byte("b"), 0o644)
	m.WriteFile("/w/src/pkg/trace.log", []byte("l"), 0o644)

	names, err := wc.Scan()
	if err != nil {
		t.Fatal(err)
	}
	got := strings.Join(names, ",")
	if got != ".gitletignore,a.txt,src/pkg/b.go" {
		t.Fatalf("unexpected scan %q", got)
	}
}

func TestWriteReadRemove(t *testing.T) {
	wc, m := newTestWC(t)

	if err := wc.Write("nested/dir/f.txt", []byte("data")); err != nil {
		t.Fatal(err)
	}
	if !wc.Exists("nested/dir/f.txt") || wc.Exists("nested/dir") {
		t.Fatal("Exists must report regular files only")
	}
	data, err := wc.Read("nested/dir/f.txt")
	if err != nil || string(data) != "data" {
		t.Fatalf("unexpected read %q err=%v", data, err)
	}

	if err := wc.Remove("nested/dir/f.txt"); err != nil {
		t.Fatal(err)
	}
	if m.Exists("/w/nested") {
		t.Fatal("empty parent dirs should be pruned")
	}
	if err := wc.Remove("nested/dir/f.txt"); err != nil {
		t.Fatalf("removing a missing file is a no-op, got %v", err)
	}

	if _, err := wc.Read("nope.txt"); !errs.Is(err, errs.NotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestName(t *testing.T) {
	cases := []struct {
		cwd, arg, want string
		ok             bool
	}{
		{"/w", "a.txt", "a.txt", true},
		{"/w/src", "b.go", "src/b.go", true},
		{"/w/src", "../a.txt", "a.txt", true},
		{"/w", "/w/src/b.go", "src/b.go", true},
		{"/w", "../x", "", false},
		{"/w", ".", "", false},
		{"/w", ".gitlet/HEAD", "", false},
		{"/w/.gitlet", "config.json", "", false},
		{"/w", ".gitlet", "", false},
		{"/w", ".gitletignore", ".gitletignore", true},
	}
	for _, tc := range cases {
		got, err := worktree.Name("/w", tc.cwd, tc.arg)
		if tc.ok != (err == nil) || got != tc.want {
			t.Errorf("Name(%q, %q) = %q, %v", tc.cwd, tc.arg, got, err)
		}
	}
}
