// extend forges secret-prefix MD5 and MD4 MACs using length extension.

package main

import (
	"crypto/rand"
	"fmt"
	"io"
	weak "math/rand"
	"os"
	"time"

	"golang.org/x/crypto/md4"

	"github.com/pc165/dp/extend"
	"github.com/pc165/dp/mac"
	"github.com/pc165/dp/md5"
)

func init() { weak.Seed(time.Now().UnixNano()) }

const (
	prefix = "comment1=cooking%20MCs;userdata=foo;comment2=%20like%20a%20pound%20of%20bacon"
	suffix = ";admin=true"
)

func main() {
	if err := demo(os.Stdout, []byte("Aaaaaa"), []byte("AA"), []byte("BB")); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println()

	key := RandomBytes(RandomInRange(8, 64))
	if err := guessMD5(os.Stdout, key); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	if err := guessMD4(os.Stdout, key); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}

// demo forges a tag for a known key and prints every step.
func demo(out io.Writer, key, msg, more []byte) error {
	fmt.Fprintf(out, "key 0x%x\n", key)
	fmt.Fprintf(out, "original message 0x%x\n", msg)
	fmt.Fprintf(out, "message to append 0x%x\n", more)

	tag := md5.PrefixMAC(key, msg)
	fmt.Fprintf(out, "original tag 0x%x\n", tag)

	// The key is only used to check the result.
	forged, forgedMsg := extend.Forge(tag, len(key), msg, more)
	fmt.Fprintf(out, "forged tag 0x%x\n", forged)
	fmt.Fprintf(out, "forged msg 0x%x\n", forgedMsg)

	actual := md5.PrefixMAC(key, forgedMsg)
	fmt.Fprintf(out, "actual tag 0x%x\n", actual)

	if actual != forged {
		return fmt.Errorf("demo: forged tag %x, actual tag %x", forged, actual)
	}
	return nil
}

// guessMD5 extends a tag under an unknown key, guessing the key length.
func guessMD5(out io.Writer, key []byte) error {
	verify := mac.Verifier(md5.NewHash, key)
	tag := md5.PrefixMAC(key, []byte(prefix))

	n, forged, msg, err := extend.GuessKeyLen(verify, tag, []byte(prefix), []byte(suffix), 8, 64)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "md5 key length: %d\nguess: %x\nmessage: %q\n", n, forged, msg)
	return nil
}

// guessMD4 does the same for MD4.
func guessMD4(out io.Writer, key []byte) error {
	verify := mac.Verifier(md4.New, key)
	h := mac.New(md4.New, key)
	io.WriteString(h, prefix)
	sum := h.Sum([]byte{})

	for n := 8; n <= 64; n++ {
		forged, msg, err := extend.ForgeMD4(sum, n, []byte(prefix), []byte(suffix))
		if err != nil {
			return err
		}
		if verify(msg, forged) {
			fmt.Fprintf(out, "md4 key length: %d\nguess: %x\nmessage: %q\n", n, forged, msg)
			return nil
		}
	}
	return extend.ErrNotFound
}

// RandomBytes returns a random buffer of the desired length.
func RandomBytes(n int) []byte {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return buf
}

// RandomInRange returns a pseudo-random non-negative integer in [lo, hi].
// The output should not be used in a security-sensitive context.
func RandomInRange(lo, hi int) int {
	if lo < 0 || lo > hi {
		panic("RandomInRange: invalid range")
	}
	return lo + weak.Intn(hi-lo+1)
}
