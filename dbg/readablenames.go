package dbg

import (
	"path/filepath"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Debug output that isn't given an explicit path gets a random readable name
// instead, which is much easier to tell apart in a temp directory full of
// images than a timestamp.

func init() {
	// The names only need to be distinct between runs, not reproducible
	petname.NonDeterministicMode()
}

// ReadableFileName returns a path in dir like "signmap-brave-otter.png".
func ReadableFileName(dir, prefix, ext string) string {
	name := strings.Join([]string{prefix, petname.Generate(2, "-")}, "-")
	return filepath.Join(dir, name+ext)
}
