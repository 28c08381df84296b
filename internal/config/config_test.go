package config_test

import (
	"testing"

	"github.com/keshon/gitlet/internal/config"
	"github.com/keshon/gitlet/internal/fs"
)

func TestRepoConfigPaths(t *testing.T) {
	cfg := config.NewRepoConfig("/work")

	cases := map[string]string{
		cfg.RepoRoot:         "/work/.gitlet",
		cfg.BlobsDir():       "/work/.gitlet/objects/blobs",
		cfg.CommitsDir():     "/work/.gitlet/objects/commits",
		cfg.BranchesDir():    "/work/.gitlet/branches",
		cfg.StageAddDir():    "/work/.gitlet/staging/add",
		cfg.StageRemoveDir(): "/work/.gitlet/staging/remove",
		cfg.HeadFile():       "/work/.gitlet/HEAD",
		cfg.ActiveFile():     "/work/.gitlet/ACTIVE",
		cfg.ConfigFile():     "/work/.gitlet/config.json",
		cfg.IgnoreFile():     "/work/.gitletignore",
	}
	for got, want := range cases {
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}

func TestSaveLoad(t *testing.T) {
	m := fs.NewMemoryFS()
	cfg := config.NewRepoConfig("/work")
	if err := m.MkdirAll(cfg.RepoRoot, 0o755); err != nil {
		t.Fatal(err)
	}

	loaded := config.NewRepoConfig("/work")
	loaded.HashFormat = ""
	if err := loaded.Load(m); err != nil {
		t.Fatal(err)
	}
	if loaded.HashFormat != config.DefaultHash {
		t.Fatalf("missing config should default to %s, got %q", config.DefaultHash, loaded.HashFormat)
	}

	cfg.HashFormat = "xxh3"
	cfg.Compress = true
	if err := cfg.Save(m); err != nil {
		t.Fatal(err)
	}

	loaded = config.NewRepoConfig("/work")
	if err := loaded.Load(m); err != nil {
		t.Fatal(err)
	}
	if loaded.HashFormat != "xxh3" || !loaded.Compress {
		t.Fatalf("unexpected config %+v", loaded)
	}

	m.WriteFile(cfg.ConfigFile(), []byte("{"), 0o644)
	if err := loaded.Load(m); err == nil {
		t.Fatal("expected error for corrupt config")
	}
}

func TestResolveWorkingTreeRoot(t *testing.T) {
	m := fs.NewMemoryFS()
	m.MkdirAll("/work/.gitlet", 0o755)
	m.MkdirAll("/work/src/pkg", 0o755)
	m.MkdirAll("/elsewhere", 0o755)

	if got := config.ResolveWorkingTreeRoot(m, "/work/src/pkg"); got != "/work" {
		t.Fatalf("expected /work, got %q", got)
	}
	if got := config.ResolveWorkingTreeRoot(m, "/work"); got != "/work" {
		t.Fatalf("expected /work, got %q", got)
	}
	if got := config.ResolveWorkingTreeRoot(m, "/elsewhere"); got != "" {
		t.Fatalf("expected no root, got %q", got)
	}
}
