// Package mac implements a secret-prefix message authentication code,
// H(key + message), over any hash. It is vulnerable to length extension
// for every Merkle-Damgård hash and is kept as an attack target.
package mac

import (
	"crypto/subtle"
	"hash"
)

// mac represents a hash for a secret-prefix message authentication code.
type mac struct {
	hash.Hash
	key []byte
}

// New takes a hash and key, and returns a new MAC hash.
func New(fn func() hash.Hash, key []byte) hash.Hash {
	x := mac{fn(), append([]byte{}, key...)}
	x.Reset()
	return x
}

// Reset resets the hash.
func (x mac) Reset() {
	x.Hash.Reset()
	if _, err := x.Hash.Write(x.key); err != nil {
		panic(err)
	}
}

// Verifier returns a function reporting whether a tag is valid for a
// message under the key.
func Verifier(fn func() hash.Hash, key []byte) func(msg, tag []byte) bool {
	h := New(fn, key)
	return func(msg, tag []byte) bool {
		h.Reset()
		h.Write(msg)
		return subtle.ConstantTimeCompare(h.Sum([]byte{}), tag) == 1
	}
}
