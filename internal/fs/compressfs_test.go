package fs_test

import (
	"bytes"
	"testing"

	"github.com/keshon/gitlet/internal/fs"
)

func TestCompressedFS_RoundTrip(t *testing.T) {
	base := fs.NewMemoryFS()
	c := fs.NewCompressedFS(base)

	payload := bytes.Repeat([]byte("gitlet "), 200)
	if err := fs.WriteFileAtomic(c, "objects/aa/aabb", payload); err != nil {
		t.Fatal(err)
	}

	raw, err := base.ReadFile("objects/aa/aabb")
	if err != nil {
		t.Fatal(err)
	}
	if len(raw) >= len(payload) {
		t.Fatalf("expected compressed size < %d, got %d", len(payload), len(raw))
	}

	got, err := c.ReadFile("objects/aa/aabb")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatal("round trip mismatch")
	}
}

func TestCompressedFS_ReadUncompressed(t *testing.T) {
	base := fs.NewMemoryFS()
	base.WriteFile("plain", []byte("not gzip"), 0o644)

	if _, err := fs.NewCompressedFS(base).ReadFile("plain"); err == nil {
		t.Fatal("expected error reading uncompressed data")
	}
}
