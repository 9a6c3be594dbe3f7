// Package md5 implements the MD5 hash algorithm, with its chaining state
// exposed so that a computation can be resumed from a published checksum.
//
// MD5 is broken. This package exists to study it, not to protect anything.
package md5

import (
	"encoding/binary"
	"fmt"
	"hash"

	"github.com/pc165/dp/mdpad"
)

const (
	// An MD5 checksum is 16 bytes long.
	Size = 16

	// MD5 has a block size of 64 bytes.
	BlockSize = 64

	s0 = 0x67452301
	s1 = 0xefcdab89
	s2 = 0x98badcfe
	s3 = 0x10325476
)

// State is the chaining value A, B, C, D carried between blocks.
type State [4]uint32

// InitialState returns the chaining value of an empty computation.
func InitialState() State {
	return State{s0, s1, s2, s3}
}

// StateFromSum reads a chaining value back out of a checksum.
func StateFromSum(sum [Size]byte) State {
	var s State
	for i := range s {
		s[i] = binary.LittleEndian.Uint32(sum[4*i:])
	}
	return s
}

// Sum serializes the state as a checksum, each word little-endian.
func (s State) Sum() [Size]byte {
	var sum [Size]byte
	for i, w := range s {
		binary.LittleEndian.PutUint32(sum[4*i:], w)
	}
	return sum
}

// String shows the four words, for debugging.
func (s State) String() string {
	return fmt.Sprintf("A=%08x B=%08x C=%08x D=%08x", s[0], s[1], s[2], s[3])
}

// Digest is a running MD5 computation. It must not be used from more than
// one goroutine at a time.
type Digest struct {
	s   State
	buf [BlockSize]byte
	nx  int
	len uint64
}

// New returns a new MD5 computation.
func New() *Digest {
	d := new(Digest)
	d.Reset()
	return d
}

// NewHash returns New as a hash.Hash.
func NewHash() hash.Hash {
	return New()
}

// Resume returns a computation that behaves as if n bytes had already been
// written and compressed, leaving the chaining value s. Only the length
// field of the final padding depends on n, so n need not be a multiple of
// the block size, although it is in any real continuation.
func Resume(s State, n uint64) *Digest {
	return &Digest{s: s, len: n}
}

// Reset resets the computation to its initial state.
func (d *Digest) Reset() {
	d.s = InitialState()
	d.nx = 0
	d.len = 0
}

// Size returns the checksum length.
func (d *Digest) Size() int {
	return Size
}

// BlockSize returns the block size.
func (d *Digest) BlockSize() int {
	return BlockSize
}

// State returns the current chaining value.
func (d *Digest) State() State {
	return d.s
}

// Len returns the number of message bytes counted so far.
func (d *Digest) Len() uint64 {
	return d.len
}

// Write adds data to the computation. It never returns an error.
func (d *Digest) Write(buf []byte) (int, error) {
	n := len(buf)
	d.len += uint64(n)
	if d.nx > 0 {
		m := copy(d.buf[d.nx:], buf)
		d.nx += m
		if d.nx < BlockSize {
			return n, nil
		}
		block(&d.s, d.buf[:])
		d.nx = 0
		buf = buf[m:]
	}
	if len(buf) >= BlockSize {
		m := len(buf) &^ (BlockSize - 1)
		block(&d.s, buf[:m])
		buf = buf[m:]
	}
	d.nx = copy(d.buf[:], buf)

	return n, nil
}

// Checksum pads and compresses the remaining data, and returns the checksum.
// The computation is finished afterwards; call Reset before reusing it.
func (d *Digest) Checksum() [Size]byte {
	// The fill depends on the buffered bytes, the length field on the count.
	pad := mdpad.BitPadding(d.nx, BlockSize, binary.LittleEndian)
	binary.LittleEndian.PutUint64(pad[len(pad)-8:], d.len<<3)

	tail := append(d.buf[:d.nx:d.nx], pad...)
	block(&d.s, tail)
	d.nx = 0

	return d.s.Sum()
}

// Sum appends the checksum to buf without changing the computation.
func (d *Digest) Sum(buf []byte) []byte {
	tmp := *d
	sum := tmp.Checksum()
	return append(buf, sum[:]...)
}

// Sum returns the MD5 checksum of the data.
func Sum(buf []byte) [Size]byte {
	d := New()
	d.Write(buf)
	return d.Checksum()
}

// PrefixMAC returns MD5(key + message), a secret-prefix MAC. It is not HMAC,
// and anyone holding a tag and the key length can extend it.
func PrefixMAC(key, message []byte) [Size]byte {
	d := New()
	d.Write(key)
	d.Write(message)
	return d.Checksum()
}
