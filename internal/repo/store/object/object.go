// Package object implements the content-addressed object store. Objects are
// immutable and named by the digest of their bytes, sharded into
// subdirectories by the first two digest characters.
package object

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/keshon/gitlet/internal/errs"
	"github.com/keshon/gitlet/internal/fs"
	"github.com/keshon/gitlet/internal/util"
)

// MinPrefix is the shortest abbreviated id Resolve accepts.
const MinPrefix = 2

// Status indicates the state of an object on disk.
type Status int

const (
	OK Status = iota
	Missing
	Damaged
)

func (s Status) String() string {
	switch s {
	case OK:
		return "ok"
	case Missing:
		return "missing"
	default:
		return "damaged"
	}
}

// Check is the verification result of a single object.
type Check struct {
	Digest string
	Status Status
}

// ObjectContext handles all storage operations of one object kind.
type ObjectContext struct {
	Dir  string // root of this store, e.g. .gitlet/objects/blobs
	FS   fs.FS
	Hash Hasher
}

// NewObjectContext creates a new ObjectContext.
func NewObjectContext(dir string, fsys fs.FS, h Hasher) *ObjectContext {
	return &ObjectContext{Dir: dir, FS: fsys, Hash: h}
}

func (oc *ObjectContext) path(digest string) string {
	return filepath.Join(oc.Dir, digest[:MinPrefix], digest)
}

// Put stores data if absent and returns its digest. Storing the same bytes
// twice is a no-op.
func (oc *ObjectContext) Put(data []byte) (string, error) {
	digest := oc.Hash.Sum(data)
	dst := oc.path(digest)

	if oc.FS.Exists(dst) {
		return digest, nil
	}
	if err := fs.WriteFileAtomic(oc.FS, dst, data); err != nil {
		return "", fmt.Errorf("write object %q: %w", digest, err)
	}
	return digest, nil
}

// Get reads an object by its full digest.
func (oc *ObjectContext) Get(digest string) ([]byte, error) {
	if !oc.wellFormed(digest) {
		return nil, errs.New(errs.NotFound, "No object with that id exists.")
	}
	data, err := oc.FS.ReadFile(oc.path(digest))
	if err != nil {
		if oc.FS.IsNotExist(err) {
			return nil, errs.New(errs.NotFound, "No object with that id exists.")
		}
		return nil, fmt.Errorf("read object %q: %w", digest, err)
	}
	return data, nil
}

// Has reports whether an object with the full digest is stored.
func (oc *ObjectContext) Has(digest string) bool {
	return oc.wellFormed(digest) && oc.FS.Exists(oc.path(digest))
}

// List returns every stored digest, sorted.
func (oc *ObjectContext) List() ([]string, error) {
	shards, err := oc.FS.ReadDir(oc.Dir)
	if err != nil {
		if oc.FS.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list objects in %q: %w", oc.Dir, err)
	}

	var out []string
	for _, shard := range shards {
		if !shard.IsDir() {
			continue
		}
		names, err := oc.shard(shard.Name())
		if err != nil {
			return nil, err
		}
		out = append(out, names...)
	}
	sort.Strings(out)
	return out, nil
}

// Resolve expands an abbreviated digest to the unique stored digest it
// prefixes.
func (oc *ObjectContext) Resolve(prefix string) (string, error) {
	prefix = strings.ToLower(prefix)
	if len(prefix) < MinPrefix || len(prefix) > oc.Hash.Size() || !isHex(prefix) {
		return "", errs.New(errs.NotFound, "No object with that id exists.")
	}
	if len(prefix) == oc.Hash.Size() {
		if oc.Has(prefix) {
			return prefix, nil
		}
		return "", errs.New(errs.NotFound, "No object with that id exists.")
	}

	names, err := oc.shard(prefix[:MinPrefix])
	if err != nil {
		return "", err
	}
	var match string
	for _, name := range names {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		if match != "" {
			return "", errs.New(errs.AmbiguousID, "Ambiguous id %q: more than one object matches.", prefix)
		}
		match = name
	}
	if match == "" {
		return "", errs.New(errs.NotFound, "No object with that id exists.")
	}
	return match, nil
}

// shard lists the digests stored in one shard directory, skipping temp files.
func (oc *ObjectContext) shard(name string) ([]string, error) {
	entries, err := oc.FS.ReadDir(filepath.Join(oc.Dir, name))
	if err != nil {
		if oc.FS.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list shard %q: %w", name, err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !oc.wellFormed(e.Name()) {
			continue
		}
		out = append(out, e.Name())
	}
	return out, nil
}

// VerifyObject re-hashes a stored object.
func (oc *ObjectContext) VerifyObject(digest string) (Status, error) {
	data, err := oc.Get(digest)
	if err != nil {
		if errs.Is(err, errs.NotFound) {
			return Missing, nil
		}
		// Treat read errors as damaged object.
		return Damaged, err
	}
	if oc.Hash.Sum(data) == digest {
		return OK, nil
	}
	return Damaged, nil
}

// Verify checks a set of digests concurrently and streams results.
// Every digest is reported; read errors surface as Damaged.
func (oc *ObjectContext) Verify(digests []string, workers int) <-chan Check {
	out := make(chan Check, 128)
	if workers <= 0 {
		workers = util.WorkerCount()
	}

	go func() {
		defer close(out)
		_ = util.Parallel(digests, workers, func(d string) error {
			status, _ := oc.VerifyObject(d)
			out <- Check{Digest: d, Status: status}
			return nil
		})
	}()

	return out
}

func (oc *ObjectContext) wellFormed(digest string) bool {
	return len(digest) == oc.Hash.Size() && isHex(digest)
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
