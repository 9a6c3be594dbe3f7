package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestDemo(t *testing.T) {
	var out bytes.Buffer
	if err := demo(&out, []byte("Aaaaaa"), []byte("AA"), []byte("BB")); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 7 {
		t.Fatalf("got %v lines, want 7:\n%s", len(lines), out.String())
	}
	if got, want := lines[0], "key 0x416161616161"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	forged := strings.TrimPrefix(lines[4], "forged tag ")
	actual := strings.TrimPrefix(lines[6], "actual tag ")
	if forged != actual {
		t.Errorf("forged %v, actual %v", forged, actual)
	}
	if !strings.HasPrefix(lines[5], "forged msg 0x414180") || !strings.HasSuffix(lines[5], "4242") {
		t.Errorf("got %q", lines[5])
	}
}

func TestGuess(t *testing.T) {
	for _, n := range []int{8, 20, 64} {
		key := RandomBytes(n)
		var out bytes.Buffer
		if err := guessMD5(&out, key); err != nil {
			t.Fatal(err)
		}
		if err := guessMD4(&out, key); err != nil {
			t.Fatal(err)
		}
		if got := strings.Count(out.String(), "key length: "); got != 2 {
			t.Errorf("got %q", out.String())
		}
	}
}

func TestRandomInRange(t *testing.T) {
	cases := []struct {
		lo, hi int
	}{
		{0, 0},
		{5, 10},
		{8, 64},
	}
	for _, c := range cases {
		for i := 0; i < 100; i++ {
			got := RandomInRange(c.lo, c.hi)
			if got < c.lo || got > c.hi {
				t.Errorf("got %v, want range [%v, %v]", got, c.lo, c.hi)
			}
		}
	}
}

func TestRandomBytes(t *testing.T) {
	var bufs [][]byte
	for i := 0; i < 5; i++ {
		bufs = append(bufs, RandomBytes(16))
		for j := 0; j < i; j++ {
			if bytes.Equal(bufs[i], bufs[j]) {
				t.Errorf("identical buffers %v and %v", bufs[i], bufs[j])
			}
		}
	}
}
