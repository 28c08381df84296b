package errs_test

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/keshon/gitlet/internal/errs"
)

func TestKindMatching(t *testing.T) {
	err := errs.New(errs.NoSuchBranch, "A branch with that name does not exist.")
	if err.Error() != "A branch with that name does not exist." {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, errs.Sentinel(errs.NoSuchBranch)) {
		t.Error("errors.Is should match same kind")
	}
	if errors.Is(err, errs.Sentinel(errs.SelfMerge)) {
		t.Error("errors.Is should not match other kinds")
	}

	wrapped := fmt.Errorf("merge: %w", err)
	if !errs.Is(wrapped, errs.NoSuchBranch) {
		t.Error("wrapped error lost its kind")
	}
	if !errs.IsExpected(wrapped) {
		t.Error("wrapped error should be expected")
	}
}

func TestIOFailureIsNotExpected(t *testing.T) {
	err := fmt.Errorf("read commit %q: %w", "abc", io.ErrUnexpectedEOF)
	if errs.IsExpected(err) {
		t.Error("plain I/O error must not be expected")
	}
	if errs.KindOf(nil) != 0 {
		t.Error("nil has no kind")
	}
}
