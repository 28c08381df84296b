package stage_test

import (
	"strings"
	"testing"

	"github.com/keshon/gitlet/internal/errs"
	"github.com/keshon/gitlet/internal/fs"
	"github.com/keshon/gitlet/internal/repo/store/stage"
)

func newStage(t *testing.T) (*stage.StageContext, *fs.MemoryFS) {
	t.Helper()
	m := fs.NewMemoryFS()
	m.MkdirAll("/r/staging/add", 0o755)
	m.MkdirAll("/r/staging/remove", 0o755)
	return stage.NewStageContext("/r/staging/add", "/r/staging/remove", m), m
}

func TestStageAdd(t *testing.T) {
	sc, _ := newStage(t)

	if err := sc.StageAdd("dir/a.txt", []byte("v1"), "d1", ""); err != nil {
		t.Fatal(err)
	}
	if err := sc.StageAdd(".env", []byte("x"), "d2", ""); err != nil {
		t.Fatal(err)
	}
	added, err := sc.Added()
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(added, ",") != ".env,dir/a.txt" {
		t.Fatalf("unexpected added %v", added)
	}
	content, err := sc.Content("dir/a.txt")
	if err != nil || string(content) != "v1" {
		t.Fatalf("unexpected content %q err=%v", content, err)
	}

	// same digest as tracked: unstaged
	if err := sc.StageAdd("dir/a.txt", []byte("v0"), "d0", "d0"); err != nil {
		t.Fatal(err)
	}
	if sc.IsAdded("dir/a.txt") {
		t.Fatal("content equal to tracked version must not stay staged")
	}
}

func TestStageRemove(t *testing.T) {
	cases := []struct {
		name       string
		staged     bool
		tracked    bool
		wantDelete bool
		wantErr    bool
		wantMarker bool
	}{
		{name: "untracked and unstaged", wantErr: true},
		{name: "staged only", staged: true},
		{name: "tracked only", tracked: true, wantDelete: true, wantMarker: true},
		{name: "staged and tracked", staged: true, tracked: true, wantDelete: true, wantMarker: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sc, _ := newStage(t)
			if tc.staged {
				sc.StageAdd("f", []byte("x"), "d", "")
			}

			del, err := sc.StageRemove("f", tc.tracked)
			if tc.wantErr {
				if !errs.Is(err, errs.NothingToRemove) {
					t.Fatalf("expected NothingToRemove, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if del != tc.wantDelete {
				t.Errorf("delete = %v, want %v", del, tc.wantDelete)
			}
			if sc.IsAdded("f") {
				t.Error("addition should be cleared")
			}
			if sc.IsRemoved("f") != tc.wantMarker {
				t.Errorf("removal marker = %v, want %v", sc.IsRemoved("f"), tc.wantMarker)
			}
		})
	}
}

func TestAddClearsRemoval(t *testing.T) {
	sc, _ := newStage(t)
	sc.StageRemove("f", true)
	if !sc.IsRemoved("f") {
		t.Fatal("expected removal marker")
	}
	if err := sc.StageAdd("f", []byte("new"), "d2", "d1"); err != nil {
		t.Fatal(err)
	}
	if sc.IsRemoved("f") || !sc.IsAdded("f") {
		t.Fatal("add must clear a pending removal")
	}
}

func TestClear(t *testing.T) {
	sc, _ := newStage(t)
	sc.StageAdd("a", []byte("1"), "d1", "")
	sc.StageRemove("b", true)

	empty, err := sc.IsEmpty()
	if err != nil || empty {
		t.Fatalf("expected non-empty staging, err=%v", err)
	}
	if err := sc.Clear(); err != nil {
		t.Fatal(err)
	}
	empty, err = sc.IsEmpty()
	if err != nil || !empty {
		t.Fatalf("expected empty staging, err=%v", err)
	}
}
