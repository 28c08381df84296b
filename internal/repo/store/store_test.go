package store_test

import (
	"testing"

	"github.com/keshon/gitlet/internal/config"
	"github.com/keshon/gitlet/internal/fs"
	"github.com/keshon/gitlet/internal/repo/store"
)

func TestNewStore(t *testing.T) {
	m := fs.NewMemoryFS()
	cfg := config.NewRepoConfig("/w")
	cfg.HashFormat = "sha256"

	st, err := store.NewStore(cfg, &store.NewStoreOptions{FS: m})
	if err != nil {
		t.Fatal(err)
	}
	d, err := st.BlobCtx.Put([]byte("x"))
	if err != nil {
		t.Fatal(err)
	}
	if len(d) != 64 {
		t.Fatalf("expected sha256 digest, got %s", d)
	}
	raw, err := m.ReadFile(cfg.BlobsDir() + "/" + d[:2] + "/" + d)
	if err != nil || string(raw) != "x" {
		t.Fatalf("uncompressed store expected raw bytes, got %q err=%v", raw, err)
	}
}

func TestNewStoreCompressed(t *testing.T) {
	m := fs.NewMemoryFS()
	cfg := config.NewRepoConfig("/w")
	cfg.Compress = true

	st, err := store.NewStore(cfg, &store.NewStoreOptions{FS: m})
	if err != nil {
		t.Fatal(err)
	}
	d, _ := st.BlobCtx.Put([]byte("x"))
	raw, _ := m.ReadFile(cfg.BlobsDir() + "/" + d[:2] + "/" + d)
	if string(raw) == "x" {
		t.Fatal("expected compressed object on disk")
	}
	got, err := st.BlobCtx.Get(d)
	if err != nil || string(got) != "x" {
		t.Fatalf("unexpected %q err=%v", got, err)
	}
}

func TestNewStoreRejectsUnknownHash(t *testing.T) {
	cfg := config.NewRepoConfig("/w")
	cfg.HashFormat = "crc32"
	if _, err := store.NewStore(cfg, &store.NewStoreOptions{FS: fs.NewMemoryFS()}); err == nil {
		t.Fatal("expected error")
	}
}
