package fs_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/keshon/gitlet/internal/fs"
)

func TestOSFS_Stat(t *testing.T) {
	called := false
	osfs := &fs.OSFS{}

	orig := fs.GetStat()
	defer fs.SetStat(orig)
	fs.SetStat(func(path string) (os.FileInfo, error) {
		called = true
		return nil, errors.New("stat-failed")
	})

	_, err := osfs.Stat("zzz")
	if !called {
		t.Fatal("expected stat hook to be called")
	}
	if err == nil || err.Error() != "stat-failed" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOSFS_WriteFile(t *testing.T) {
	called := false
	osfs := &fs.OSFS{}

	orig := fs.GetWriteFile()
	defer fs.SetWriteFile(orig)
	fs.SetWriteFile(func(path string, data []byte, perm os.FileMode) error {
		called = true
		if path != "aaa" || string(data) != "bbb" || perm != 0o644 {
			t.Fatalf("unexpected write args")
		}
		return nil
	})

	if err := osfs.WriteFile("aaa", []byte("bbb"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !called {
		t.Fatal("writeFile hook not called")
	}
}

func TestOSFS_MkdirAll(t *testing.T) {
	called := false
	osfs := &fs.OSFS{}

	orig := fs.GetMkdirAll()
	defer fs.SetMkdirAll(orig)
	fs.SetMkdirAll(func(path string, perm os.FileMode) error {
		called = true
		if perm != 0o755 {
			t.Fatalf("unexpected perm")
		}
		return nil
	})

	if err := osfs.MkdirAll("dir123", 0o755); err != nil {
		t.Fatal(err)
	}
	if !called {
		t.Fatal("mkdirAll hook not called")
	}
}

func TestOSFS_RemoveAndRename(t *testing.T) {
	osfs := &fs.OSFS{}

	origRm, origRen := fs.GetRemove(), fs.GetRename()
	defer fs.SetRemove(origRm)
	defer fs.SetRename(origRen)

	var removed, renamed string
	fs.SetRemove(func(path string) error {
		removed = path
		return nil
	})
	fs.SetRename(func(old, new string) error {
		renamed = old + "->" + new
		return nil
	})

	if err := osfs.Remove("qqq"); err != nil || removed != "qqq" {
		t.Fatalf("remove hook not used: %q %v", removed, err)
	}
	if err := osfs.Rename("a", "b"); err != nil || renamed != "a->b" {
		t.Fatalf("rename hook not used: %q %v", renamed, err)
	}
}

func TestOSFS_CreateTempFile(t *testing.T) {
	called := false
	osfs := &fs.OSFS{}

	orig := fs.GetCreateTemp()
	defer fs.SetCreateTemp(orig)
	fs.SetCreateTemp(func(dir, pattern string) (*os.File, error) {
		called = true
		if dir != "tmp" || pattern != "x*" {
			t.Fatalf("unexpected CreateTemp args")
		}
		return nil, errors.New("tmp-failed")
	})

	_, _, err := osfs.CreateTempFile("tmp", "x*")
	if err == nil || err.Error() != "tmp-failed" {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatal("CreateTemp hook not called")
	}
}

func TestOSFS_WriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	osfs := fs.NewOSFS()
	target := filepath.Join(dir, "objects", "ab", "abcd")

	if err := fs.WriteFileAtomic(osfs, target, []byte("payload")); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(target)
	if err != nil || string(got) != "payload" {
		t.Fatalf("unexpected %q err=%v", got, err)
	}

	entries, _ := os.ReadDir(filepath.Dir(target))
	if len(entries) != 1 {
		t.Fatalf("temp file left behind")
	}
}

func TestOSFS_WriteFileAtomicRenameFailure(t *testing.T) {
	dir := t.TempDir()
	osfs := fs.NewOSFS()

	orig := fs.GetRename()
	defer fs.SetRename(orig)
	fs.SetRename(func(string, string) error { return io.ErrClosedPipe })

	err := fs.WriteFileAtomic(osfs, filepath.Join(dir, "f"), []byte("x"))
	if !errors.Is(err, io.ErrClosedPipe) {
		t.Fatalf("expected rename error, got %v", err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Fatalf("temp file not cleaned up: %d entries", len(entries))
	}
}

func TestOSFS_IsNotExist(t *testing.T) {
	called := false
	osfs := &fs.OSFS{}
	errFake := errors.New("nope")

	orig := fs.GetIsNotExist()
	defer fs.SetIsNotExist(orig)
	fs.SetIsNotExist(func(err error) bool {
		called = true
		return err == errFake
	})

	if !osfs.IsNotExist(errFake) {
		t.Fatal("expected true")
	}
	if !called {
		t.Fatal("isNotExist not called")
	}
}

func TestOSFS_IsDirAndExists(t *testing.T) {
	tmp := t.TempDir()
	osfs := &fs.OSFS{}

	if !osfs.IsDir(tmp) {
		t.Fatalf("expected %s to be a dir", tmp)
	}

	tmpFile := filepath.Join(tmp, "x")
	os.WriteFile(tmpFile, []byte("1"), 0o644)
	if !osfs.Exists(tmpFile) || osfs.IsDir(tmpFile) {
		t.Fatalf("expected file to exist")
	}
}
