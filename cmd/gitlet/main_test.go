package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/keshon/gitlet/internal/command"
	"github.com/keshon/gitlet/internal/fs"
	"github.com/keshon/gitlet/internal/repo"
)

const root = "/w"

type cli struct {
	t      *testing.T
	fs     *fs.MemoryFS
	runner *command.Runner
	out    *bytes.Buffer
	errOut *bytes.Buffer
}

func newCLI(t *testing.T) *cli {
	m := fs.NewMemoryFS()
	m.MkdirAll(root, 0o755)
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	var out, errOut bytes.Buffer
	return &cli{
		t:  t,
		fs: m,
		runner: &command.Runner{
			Tree:   command.DefaultTree(),
			Dir:    root,
			Stdout: &out,
			Stderr: &errOut,
			Options: &repo.Options{FS: m, Now: func() time.Time {
				now = now.Add(time.Second)
				return now
			}},
		},
		out:    &out,
		errOut: &errOut,
	}
}

// run executes one command and returns its stdout.
func (c *cli) run(args ...string) string {
	c.t.Helper()
	c.out.Reset()
	c.errOut.Reset()
	if code := c.runner.Run(args); code != 0 {
		c.t.Fatalf("%v: exit %d, stderr %q", args, code, c.errOut.String())
	}
	return c.out.String()
}

func (c *cli) write(name, content string) {
	c.t.Helper()
	if err := fs.WriteFileAtomic(c.fs, filepath.Join(root, name), []byte(content)); err != nil {
		c.t.Fatal(err)
	}
}

func (c *cli) read(name string) string {
	data, err := c.fs.ReadFile(filepath.Join(root, name))
	if err != nil {
		return "<missing>"
	}
	return string(data)
}

func (c *cli) commit(msg string, files ...string) {
	c.t.Helper()
	for i := 0; i+1 < len(files); i += 2 {
		c.write(files[i], files[i+1])
		if out := c.run("add", files[i]); out != "" {
			c.t.Fatalf("add %s: %q", files[i], out)
		}
	}
	if out := c.run("commit", msg); out != "" {
		c.t.Fatalf("commit %q: %q", msg, out)
	}
}

func TestMessages(t *testing.T) {
	c := newCLI(t)

	tests := []struct {
		args []string
		want string
	}{
		{nil, "Please enter a command.\n"},
		{[]string{"frobnicate"}, "No command with that name exists.\n"},
		{[]string{"status"}, "Not in an initialized Gitlet directory.\n"},
		{[]string{"init"}, ""},
		{[]string{"init"}, "A Gitlet version-control system already exists in the current directory.\n"},
		{[]string{"add", "nope.txt"}, "File does not exist.\n"},
		{[]string{"add", ".gitlet/HEAD"}, "File does not exist.\n"},
		{[]string{"commit"}, "Please enter a commit message.\n"},
		{[]string{"commit", "x"}, "No changes added to the commit.\n"},
		{[]string{"rm", "nope.txt"}, "No reason to remove the file.\n"},
		{[]string{"find", "nope"}, "Found no commit with that message.\n"},
		{[]string{"checkout", "a", "b", "c", "d"}, "Incorrect operands.\n"},
		{[]string{"checkout", "abc", "++", "f"}, "Incorrect operands.\n"},
		{[]string{"checkout", "nope"}, "No such branch exists.\n"},
		{[]string{"checkout", "master"}, "No need to checkout the current branch.\n"},
		{[]string{"checkout", "ffffff", "--", "a.txt"}, "No commit with that id exists.\n"},
		{[]string{"rm-branch", "master"}, "Cannot remove the current branch.\n"},
		{[]string{"rm-branch", "nope"}, "A branch with that name does not exist.\n"},
		{[]string{"merge", "master"}, "Cannot merge a branch with itself.\n"},
		{[]string{"branch", "master"}, "A branch with that name already exists.\n"},
		{[]string{"log", "extra"}, "Incorrect operands.\n"},
	}
	for _, tt := range tests {
		if got := c.run(tt.args...); got != tt.want {
			t.Errorf("%v: got %q, want %q", tt.args, got, tt.want)
		}
	}
}

func TestBranchScenario(t *testing.T) {
	c := newCLI(t)
	c.run("init")
	c.commit("first", "a.txt", "1")
	c.run("branch", "b")
	c.commit("second", "a.txt", "2")

	log := c.run("log")
	if strings.Count(log, "===\n") != 3 {
		t.Fatalf("expected 3 entries:\n%s", log)
	}
	if !strings.HasPrefix(log, "===\ncommit ") || !strings.Contains(log, "\nsecond\n\n===") ||
		!strings.HasSuffix(log, "\ninitial commit\n\n") || !strings.Contains(log, "\nDate: ") {
		t.Fatalf("unexpected log:\n%s", log)
	}

	c.run("checkout", "b")
	if got := c.read("a.txt"); got != "1" {
		t.Fatalf("a.txt = %q after checkout", got)
	}

	ids := strings.Fields(c.run("find", "second"))
	if len(ids) != 1 {
		t.Fatalf("find: %v", ids)
	}
	c.run("checkout", ids[0][:8], "--", "a.txt")
	if got := c.read("a.txt"); got != "2" {
		t.Fatalf("a.txt = %q after checkout from commit", got)
	}
	c.run("checkout", "--", "a.txt")
	if got := c.read("a.txt"); got != "1" {
		t.Fatalf("a.txt = %q after checkout from head", got)
	}

	if n := strings.Count(c.run("global-log"), "===\n"); n != 3 {
		t.Fatalf("global-log shows %d commits", n)
	}
	if got := c.run("branch"); got != "* b\n  master\n" {
		t.Fatalf("branch list %q", got)
	}
}

func TestStatusOutput(t *testing.T) {
	c := newCLI(t)
	c.run("init")
	c.commit("first", "a.txt", "1", "gone.txt", "g")
	c.run("branch", "other")
	c.write("b.txt", "untracked")
	c.write("c.txt", "staged")
	c.run("add", "c.txt")
	c.write("a.txt", "changed")
	c.run("rm", "gone.txt")

	want := "=== Branches ===\n*master\nother\n" +
		"\n=== Staged Files ===\nc.txt\n" +
		"\n=== Removed Files ===\ngone.txt\n" +
		"\n=== Modifications Not Staged For Commit ===\na.txt (modified)\n" +
		"\n=== Untracked Files ===\nb.txt\n\n"
	if got := c.run("status"); got != want {
		t.Fatalf("status:\n%s\nwant:\n%s", got, want)
	}
}

func TestMergeOutput(t *testing.T) {
	c := newCLI(t)
	c.run("init")
	c.commit("split", "f.txt", "A")
	c.run("branch", "other")
	c.run("branch", "ahead")

	c.run("checkout", "ahead")
	c.commit("ahead", "n.txt", "n")
	c.run("checkout", "master")
	if got := c.run("merge", "ahead"); got != "Current branch fast-forwarded.\n" {
		t.Fatalf("fast-forward: %q", got)
	}
	if got := c.run("merge", "ahead"); got != "Given branch is an ancestor of the current branch.\n" {
		t.Fatalf("ancestor: %q", got)
	}

	c.commit("current", "f.txt", "B\n")
	c.run("checkout", "other")
	c.commit("target", "f.txt", "C\n")
	c.run("checkout", "master")

	c.write("n.txt", "dirty")
	c.run("add", "n.txt")
	if got := c.run("merge", "other"); got != "You have uncommitted changes.\n" {
		t.Fatalf("uncommitted: %q", got)
	}
	c.run("rm", "n.txt")
	c.run("commit", "drop n")

	if got := c.run("merge", "other"); got != "Encountered a merge conflict.\n" {
		t.Fatalf("conflict: %q", got)
	}
	if got := c.read("f.txt"); got != "<<<<<<< HEAD\nB\n=======\nC\n>>>>>>>\n" {
		t.Fatalf("conflict content %q", got)
	}
	log := c.run("log")
	if !strings.Contains(log, "\nMerge: ") || !strings.Contains(log, "Merged other into master.") {
		t.Fatalf("merge commit missing from log:\n%s", log)
	}
}

func TestVerifyAndShow(t *testing.T) {
	c := newCLI(t)
	c.run("init")
	c.commit("first", "a.txt", "hello")

	if got := c.run("verify", "--quiet"); got != "3 objects OK\n" {
		t.Fatalf("verify: %q", got)
	}

	ids := strings.Fields(c.run("find", "first"))
	show := c.run("show", ids[0][:6])
	lines := strings.Split(strings.TrimSpace(show), "\n")
	last := strings.Fields(lines[len(lines)-1])
	if len(last) != 3 || last[0] != "a.txt" || len(last[1]) != 40 || !strings.HasPrefix(last[2], "b") {
		t.Fatalf("unexpected file line %q", lines[len(lines)-1])
	}

	// damage the blob: verify and the integrity check both fail
	blob := filepath.Join(root, ".gitlet", "objects", "blobs", last[1][:2], last[1])
	if err := c.fs.WriteFile(blob, []byte("tampered"), 0o644); err != nil {
		t.Fatal(err)
	}
	c.out.Reset()
	c.errOut.Reset()
	if code := c.runner.Run([]string{"verify", "-q"}); code != 1 {
		t.Fatalf("verify exit %d", code)
	}
	if !strings.Contains(c.out.String(), "damaged "+last[1]) {
		t.Fatalf("verify output %q", c.out.String())
	}

	c.errOut.Reset()
	if code := c.runner.Run([]string{"checkout", "--", "a.txt"}); code != 1 {
		t.Fatalf("checkout exit %d", code)
	}
	if !strings.Contains(c.errOut.String(), "repository verification failed") {
		t.Fatalf("checkout stderr %q", c.errOut.String())
	}
}
