package util_test

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/keshon/gitlet/internal/fs"
	"github.com/keshon/gitlet/internal/util"
)

func TestJSONRoundTrip(t *testing.T) {
	m := fs.NewMemoryFS()
	in := map[string]string{"b": "2", "a": "1"}

	if err := util.WriteJSON(m, "cfg/x.json", in); err != nil {
		t.Fatal(err)
	}
	var out map[string]string
	if err := util.ReadJSON(m, "cfg/x.json", &out); err != nil {
		t.Fatal(err)
	}
	if out["a"] != "1" || out["b"] != "2" {
		t.Fatalf("unexpected %v", out)
	}

	if err := util.ReadJSON(m, "cfg/missing.json", &out); !m.IsNotExist(err) {
		t.Fatalf("expected not-exist, got %v", err)
	}
}

func TestSortedKeys(t *testing.T) {
	got := util.SortedKeys(map[string]int{"c": 1, "a": 2, "b": 3})
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("unexpected order %v", got)
	}
}

func TestParallel(t *testing.T) {
	var sum int64
	inputs := []int{1, 2, 3, 4, 5, 6, 7, 8}
	if err := util.Parallel(inputs, 3, func(n int) error {
		atomic.AddInt64(&sum, int64(n))
		return nil
	}); err != nil {
		t.Fatal(err)
	}
	if sum != 36 {
		t.Fatalf("expected 36, got %d", sum)
	}

	boom := errors.New("boom")
	err := util.Parallel(inputs, 0, func(n int) error {
		if n == 5 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}
