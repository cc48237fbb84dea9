package digester

import (
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"
	"sort"
	"strings"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// ErrUnsupportedAlgorithm is returned by ParseAlgorithm for
// selectors outside the supported set.
var ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

// Algorithm is a validated, lowercase hash selector.
type Algorithm string

// Supported selectors.
const (
	SHA224     Algorithm = "sha224"
	SHA256     Algorithm = "sha256"
	SHA384     Algorithm = "sha384"
	SHA512     Algorithm = "sha512"
	SHA512_224 Algorithm = "sha512_224"
	SHA512_256 Algorithm = "sha512_256"
	SHA3_224   Algorithm = "sha3-224"
	SHA3_256   Algorithm = "sha3-256"
	SHA3_384   Algorithm = "sha3-384"
	SHA3_512   Algorithm = "sha3-512"
	BLAKE2b256 Algorithm = "blake2b-256"
	BLAKE2b512 Algorithm = "blake2b-512"
	BLAKE3     Algorithm = "blake3"
)

// DefaultAlgorithm is used when a request names none.
const DefaultAlgorithm = SHA256

// algorithm describes one supported hash.
type algorithm struct {
	newHash func() hash.Hash
	size    int
}

var algorithms = map[Algorithm]algorithm{
	SHA224:     {newHash: sha256.New224, size: sha256.Size224},
	SHA256:     {newHash: sha256.New, size: sha256.Size},
	SHA384:     {newHash: sha512.New384, size: sha512.Size384},
	SHA512:     {newHash: sha512.New, size: sha512.Size},
	SHA512_224: {newHash: sha512.New512_224, size: sha512.Size224},
	SHA512_256: {newHash: sha512.New512_256, size: sha512.Size256},
	SHA3_224:   {newHash: newSHA3(sha3.New224), size: 28},
	SHA3_256:   {newHash: newSHA3(sha3.New256), size: 32},
	SHA3_384:   {newHash: newSHA3(sha3.New384), size: 48},
	SHA3_512:   {newHash: newSHA3(sha3.New512), size: 64},
	BLAKE2b256: {newHash: newBLAKE2b(blake2b.New256), size: blake2b.Size256},
	BLAKE2b512: {newHash: newBLAKE2b(blake2b.New512), size: blake2b.Size},
	BLAKE3:     {newHash: func() hash.Hash { return blake3.New() }, size: 32},
}

// newSHA3 adapts the x/crypto constructors, whose concrete
// return type differs between releases.
func newSHA3[H hash.Hash](fn func() H) func() hash.Hash {
	return func() hash.Hash { return fn() }
}

// newBLAKE2b binds an unkeyed BLAKE2b constructor. A nil key
// never fails.
func newBLAKE2b(
	fn func(key []byte) (hash.Hash, error),
) func() hash.Hash {
	return func() hash.Hash {
		h, err := fn(nil)
		if err != nil {
			panic(fmt.Sprintf("blake2b without key: %v", err))
		}

		return h
	}
}

// ParseAlgorithm validates a selector. Matching ignores case
// and surrounding whitespace.
func ParseAlgorithm(name string) (Algorithm, error) {
	al := Algorithm(strings.ToLower(strings.TrimSpace(name)))

	if _, ok := algorithms[al]; !ok {
		return "", fmt.Errorf(
			"%w: %s", ErrUnsupportedAlgorithm, name,
		)
	}

	return al, nil
}

// Algorithms returns every supported selector in lexical
// order.
func Algorithms() []Algorithm {
	all := make([]Algorithm, 0, len(algorithms))
	for al := range algorithms {
		all = append(all, al)
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i] < all[j]
	})

	return all
}

// New returns a fresh hash accumulator. It panics for an
// Algorithm that did not come from ParseAlgorithm or the
// exported constants.
func (al Algorithm) New() hash.Hash {
	entry, ok := algorithms[al]
	if !ok {
		panic(fmt.Sprintf("digester: unknown algorithm %q", string(al)))
	}

	return entry.newHash()
}

// Size returns the digest length in bytes, or 0 for an
// unknown Algorithm.
func (al Algorithm) Size() int {
	return algorithms[al].size
}

// String implements fmt.Stringer.
func (al Algorithm) String() string {
	return string(al)
}
