// Package mdpad implements the length padding shared by Merkle-Damgård hashes.
package mdpad

import (
	"encoding/binary"
)

// BitPadding returns the bytes that follow an n-byte message before its final
// compression: 0x80, enough zeros to reach 8 bytes short of a block boundary,
// and the message length in bits as an unsigned 64-bit integer.
func BitPadding(n, blockSize int, endian binary.ByteOrder) []byte {
	if n < 0 || blockSize < 8 {
		panic("BitPadding: invalid parameters")
	}
	var zeros int
	// Account for the first padding byte.
	if rem := (n + 1) % blockSize; rem > blockSize-8 {
		zeros = 2*blockSize - rem
	} else {
		zeros = blockSize - rem
	}
	buf := make([]byte, 1+zeros)
	buf[0] = 0x80

	endian.PutUint64(buf[len(buf)-8:], uint64(n)<<3)

	return buf
}

// Blocks returns the number of blocks a padded n-byte message occupies.
func Blocks(n, blockSize int) int {
	return (n + len(BitPadding(n, blockSize, binary.LittleEndian))) / blockSize
}
