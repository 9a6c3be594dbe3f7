// Package extend forges secret-prefix MACs by length extension.
//
// Given the tag H(key + message) of a Merkle-Damgård hash and the length of
// the key, the tag is the hash state after the glue padding of key + message
// has been compressed. Loading that state and writing more data produces the
// tag of key + message + glue + more, without knowing the key.
package extend

import (
	"encoding/binary"
	"errors"

	"github.com/pc165/dp/md5"
	"github.com/pc165/dp/mdpad"
)

// ErrNotFound is returned by GuessKeyLen when no key length in the range
// produces an accepted forgery.
var ErrNotFound = errors.New("GuessKeyLen: key length not found")

// GluePadding returns the padding the victim hashed after key + message.
// It depends only on their combined length.
func GluePadding(keyLen, msgLen int) []byte {
	return mdpad.BitPadding(keyLen+msgLen, md5.BlockSize, binary.LittleEndian)
}

// glue returns known + pad + appended in a new buffer.
func glue(known, pad, appended []byte) []byte {
	buf := make([]byte, 0, len(known)+len(pad)+len(appended))
	buf = append(buf, known...)
	buf = append(buf, pad...)
	return append(buf, appended...)
}

// Forge takes the MD5 prefix MAC of a known message under a key of keyLen
// bytes, and returns a tag and message that verify under the same key, with
// appended at the end of the message.
//
// A wrong keyLen gives a tag that doesn't verify. There is no way to tell
// from here.
func Forge(tag [md5.Size]byte, keyLen int, known, appended []byte) ([md5.Size]byte, []byte) {
	pad := GluePadding(keyLen, len(known))

	d := md5.Resume(md5.StateFromSum(tag), uint64(keyLen+len(known)+len(pad)))
	d.Write(appended)

	return d.Checksum(), glue(known, pad, appended)
}

// GuessKeyLen tries Forge with every key length in [lo, hi], and returns the
// first length whose forgery the verifier accepts, with the forgery.
func GuessKeyLen(verify func(msg, tag []byte) bool, tag [md5.Size]byte, known, appended []byte, lo, hi int) (int, [md5.Size]byte, []byte, error) {
	if lo < 0 || lo > hi {
		panic("GuessKeyLen: invalid range")
	}
	for n := lo; n <= hi; n++ {
		forged, msg := Forge(tag, n, known, appended)
		if verify(msg, forged[:]) {
			return n, forged, msg, nil
		}
	}
	return 0, [md5.Size]byte{}, nil, ErrNotFound
}
