// Package errs defines the expected, user-recoverable failure kinds of a
// repository operation. Anything that is not one of these kinds is an I/O
// failure and is fatal.
package errs

import (
	"errors"
	"fmt"
)

// Kind classifies an expected failure.
type Kind int

const (
	NotFound Kind = iota + 1
	AmbiguousID
	AlreadyExists
	NothingToRemove
	NoChangesToCommit
	EmptyMessage
	SelfMerge
	NoSuchBranch
	UncommittedChanges
	WouldOverwriteUntracked
	AncestorMerge
	CurrentBranch
	NotInitialized
	InvalidName
	IncorrectOperands
)

var kindNames = map[Kind]string{
	NotFound:                "not found",
	AmbiguousID:             "ambiguous id",
	AlreadyExists:           "already exists",
	NothingToRemove:         "nothing to remove",
	NoChangesToCommit:       "no changes to commit",
	EmptyMessage:            "empty message",
	SelfMerge:               "self merge",
	NoSuchBranch:            "no such branch",
	UncommittedChanges:      "uncommitted changes",
	WouldOverwriteUntracked: "would overwrite untracked file",
	AncestorMerge:           "ancestor merge",
	CurrentBranch:           "current branch",
	NotInitialized:          "not initialized",
	InvalidName:             "invalid name",
	IncorrectOperands:       "incorrect operands",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is an expected failure. Msg is the single line shown to the user.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// Is reports whether target is an *Error of the same kind, so callers can
// write errors.Is(err, errs.Sentinel(errs.NotFound)).
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// New returns an expected failure of the given kind.
func New(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Sentinel returns a comparable value for errors.Is checks.
func Sentinel(kind Kind) error {
	return &Error{Kind: kind, Msg: kind.String()}
}

// KindOf returns the kind of err, or 0 when err is not an expected failure.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// Is reports whether err is an expected failure of the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// IsExpected reports whether err is any expected failure.
func IsExpected(err error) bool {
	return KindOf(err) != 0
}
