package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintSum(t *testing.T) {
	cases := []struct {
		in, name string
		want     string
	}{
		{"", "-", "d41d8cd98f00b204e9800998ecf8427e  -\n"},
		{"abc", "abc.txt", "900150983cd24fb0d6963f7d28e17f72  abc.txt\n"},
		{
			"abcdefghijklmnopqrstuvwxyz",
			"-",
			"c3fcd3d76192e4007dfb496cca67e13b  -\n",
		},
	}
	for _, c := range cases {
		var out bytes.Buffer
		if err := printSum(&out, strings.NewReader(c.in), c.name); err != nil {
			t.Fatal(err)
		}
		if got := out.String(); got != c.want {
			t.Errorf("got %q, want %q", got, c.want)
		}
	}
}
