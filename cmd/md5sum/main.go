// md5sum prints MD5 checksums of files, or of standard input.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pc165/dp/md5"
)

// printSum reads input and prints its checksum followed by the name.
func printSum(out io.Writer, in io.Reader, name string) error {
	d := md5.New()
	if _, err := io.Copy(d, in); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "%x  %s\n", d.Checksum(), name)
	return err
}

func main() {
	files := os.Args[1:]
	// If no files are specified, read from standard input.
	if len(files) == 0 {
		if err := printSum(os.Stdout, os.Stdin, "-"); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		return
	}
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		if err := printSum(os.Stdout, f, name); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		f.Close()
	}
}
