package md5

import (
	"encoding/binary"
	"math/bits"
)

// Per-step additive constants, floor(abs(sin(i+1)) * 2^32).
var k = [64]uint32{
	0xd76aa478, 0xe8c7b756, 0x242070db, 0xc1bdceee, 0xf57c0faf, 0x4787c62a, 0xa8304613, 0xfd469501,
	0x698098d8, 0x8b44f7af, 0xffff5bb1, 0x895cd7be, 0x6b901122, 0xfd987193, 0xa679438e, 0x49b40821,
	0xf61e2562, 0xc040b340, 0x265e5a51, 0xe9b6c7aa, 0xd62f105d, 0x02441453, 0xd8a1e681, 0xe7d3fbc8,
	0x21e1cde6, 0xc33707d6, 0xf4d50d87, 0x455a14ed, 0xa9e3e905, 0xfcefa3f8, 0x676f02d9, 0x8d2a4c8a,
	0xfffa3942, 0x8771f681, 0x6d9d6122, 0xfde5380c, 0xa4beea44, 0x4bdecfa9, 0xf6bb4b60, 0xbebfbc70,
	0x289b7ec6, 0xeaa127fa, 0xd4ef3085, 0x04881d05, 0xd9d4d039, 0xe6db99e5, 0x1fa27cf8, 0xc4ac5665,
	0xf4292244, 0x432aff97, 0xab9423a7, 0xfc93a039, 0x655b59c3, 0x8f0ccc92, 0xffeff47d, 0x85845dd1,
	0x6fa87e4f, 0xfe2ce6e0, 0xa3014314, 0x4e0811a1, 0xf7537e82, 0xbd3af235, 0x2ad7d2bb, 0xeb86d391,
}

// Per-step left rotation amounts.
var shift = [64]int{
	7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22,
	5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20,
	4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23,
	6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21,
}

func f(b, c, d uint32) uint32 {
	return (b & c) | (^b & d)
}

func g(b, c, d uint32) uint32 {
	return (b & d) | (c &^ d)
}

func h(b, c, d uint32) uint32 {
	return b ^ c ^ d
}

func i(b, c, d uint32) uint32 {
	return c ^ (b | ^d)
}

// block compresses each 64-byte block of buf into the state.
// len(buf) must be a multiple of BlockSize.
func block(s *State, buf []byte) {
	if len(buf)%BlockSize != 0 {
		panic("block: partial block")
	}
	var m [16]uint32
	for ; len(buf) > 0; buf = buf[BlockSize:] {
		for j := range m {
			m[j] = binary.LittleEndian.Uint32(buf[4*j:])
		}
		a, b, c, d := s[0], s[1], s[2], s[3]

		for j := 0; j < 64; j++ {
			var x uint32
			var w int
			switch j / 16 {
			case 0:
				x, w = f(b, c, d), j
			case 1:
				x, w = g(b, c, d), (5*j+1)%16
			case 2:
				x, w = h(b, c, d), (3*j+5)%16
			default:
				x, w = i(b, c, d), (7*j)%16
			}
			x += a + k[j] + m[w]
			a, d, c = d, c, b
			b += bits.RotateLeft32(x, shift[j])
		}

		s[0] += a
		s[1] += b
		s[2] += c
		s[3] += d
	}
}
