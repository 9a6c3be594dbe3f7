package mdpad

import (
	"bytes"
	"encoding/binary"
	weak "math/rand"
	"testing"
	"time"
)

func TestBitPadding(t *testing.T) {
	weak := weak.New(weak.NewSource(time.Now().UnixNano()))
	for i := 0; i < 100; i++ {
		n := weak.Intn(1024)
		blockSize := 8 * (1 + weak.Intn(16))
		var endian binary.ByteOrder
		switch weak.Intn(2) {
		case 0:
			endian = binary.LittleEndian
		default:
			endian = binary.BigEndian
		}
		pad := BitPadding(n, blockSize, endian)
		fail := func(s string) {
			t.Errorf("BitPadding(%v, %v, %v) == %v, %s",
				n, blockSize, endian, pad, s)
		}
		if len(pad) < 9 {
			fail("padding too short")
		}
		if len(pad) > blockSize+8 {
			fail("padding too long")
		}
		if (n+len(pad))%blockSize != 0 {
			fail("padded length not a multiple of the block size")
		}
		if pad[0] != 0x80 {
			fail("invalid first padding byte")
		}
		for _, b := range pad[1 : len(pad)-8] {
			if b != 0 {
				fail("nonzero fill byte")
				break
			}
		}
		tmp := make([]byte, 8)
		endian.PutUint64(tmp, uint64(n)<<3)
		if !bytes.Equal(tmp, pad[len(pad)-8:]) {
			fail("incorrect bit count")
		}
	}
}

func TestBitPaddingBoundary(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{0, 64},
		{3, 61},
		{55, 9},
		{56, 72},
		{63, 65},
		{64, 64},
		{119, 9},
		{120, 72},
	}
	for _, c := range cases {
		got := len(BitPadding(c.n, 64, binary.LittleEndian))
		if got != c.want {
			t.Errorf("len(BitPadding(%v, 64)): got %v, want %v", c.n, got, c.want)
		}
	}
}

func TestBlocks(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{0, 1},
		{55, 1},
		{56, 2},
		{63, 2},
		{64, 2},
		{119, 2},
		{120, 3},
	}
	for _, c := range cases {
		if got := Blocks(c.n, 64); got != c.want {
			t.Errorf("Blocks(%v, 64): got %v, want %v", c.n, got, c.want)
		}
	}
}

func TestBitPaddingPanics(t *testing.T) {
	cases := []struct {
		n, blockSize int
	}{
		{-1, 64},
		{0, 4},
	}
	for _, c := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("BitPadding(%v, %v) did not panic", c.n, c.blockSize)
				}
			}()
			BitPadding(c.n, c.blockSize, binary.LittleEndian)
		}()
	}
}
