package object

import (
	"encoding/hex"
	"fmt"

	gocid "github.com/ipfs/go-cid"
	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-multihash"
	"github.com/zeebo/xxh3"
)

// Hasher computes the hex digest that names an object.
type Hasher interface {
	Name() string
	Sum(data []byte) string
	// Size is the digest length in hex characters.
	Size() int
}

// NewHasher returns the hasher registered under name.
func NewHasher(name string) (Hasher, error) {
	switch name {
	case "sha1":
		return multihashHasher{name: name, code: multihash.SHA1, size: 40}, nil
	case "sha256":
		return multihashHasher{name: name, code: multihash.SHA2_256, size: 64}, nil
	case "xxh3":
		return xxh3Hasher{}, nil
	}
	return nil, fmt.Errorf("unsupported hash format %q (want sha1, sha256 or xxh3)", name)
}

type multihashHasher struct {
	name string
	code uint64
	size int
}

func (h multihashHasher) Name() string { return h.name }
func (h multihashHasher) Size() int    { return h.size }

// Sum returns the hex of the raw digest, without the multihash prefix.
func (h multihashHasher) Sum(data []byte) string {
	mh, err := multihash.Sum(data, h.code, -1)
	if err != nil {
		// only reachable with an unregistered code
		panic(fmt.Sprintf("multihash %s: %v", h.name, err))
	}
	dec, err := multihash.Decode(mh)
	if err != nil {
		panic(fmt.Sprintf("multihash %s: %v", h.name, err))
	}
	return hex.EncodeToString(dec.Digest)
}

// xxh3Hasher is a fast non-cryptographic xxh3-128 hash.
type xxh3Hasher struct{}

func (xxh3Hasher) Name() string { return "xxh3" }
func (xxh3Hasher) Size() int    { return 32 }

func (xxh3Hasher) Sum(data []byte) string {
	h := xxh3.Hash128(data).Bytes()
	return hex.EncodeToString(h[:])
}

// CID renders a digest as a base32 CIDv1 with the given codec
// (gocid.Raw for blobs, gocid.DagJSON for commits).
// Only multihash-backed formats have a CID form.
func CID(h Hasher, digest string, codec uint64) (string, error) {
	mh, ok := h.(multihashHasher)
	if !ok {
		return "", fmt.Errorf("hash format %q has no CID form", h.Name())
	}
	raw, err := hex.DecodeString(digest)
	if err != nil {
		return "", fmt.Errorf("decode digest %q: %w", digest, err)
	}
	encoded, err := multihash.Encode(raw, mh.code)
	if err != nil {
		return "", fmt.Errorf("multihash: %w", err)
	}
	c := gocid.NewCidV1(codec, encoded)
	return multibase.Encode(multibase.Base32, c.Bytes())
}
