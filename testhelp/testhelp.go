package testhelp

import (
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/mwc"

	"github.com/histdb/hashbench/filesystem"
)

var (
	textRng = mwc.Rand()
	valRng  = mwc.Rand()
)

const alphabet = "abcdefghijklmnopqrstuvwxyz      ,.\n"

// Text returns n bytes of lowercase text with spaces and punctuation.
func Text(n int) []byte {
	v := make([]byte, n)
	for i := range v {
		v[i] = alphabet[textRng.Uint64n(uint64(len(alphabet)))]
	}
	return v
}

// Value returns n random bytes.
func Value(n int) []byte {
	v := make([]byte, n)
	for i := range v {
		v[i] = byte(valRng.Uint64())
	}
	return v
}

// Source writes data into a fresh temporary directory and returns a
// filesystem rooted there with the name of the file.
func Source(tb testing.TB, data []byte) (*filesystem.T, string) {
	tb.Helper()

	fs := &filesystem.T{Base: tb.TempDir()}
	const name = "source.txt"
	assert.NoError(tb, fs.WriteFile(name, data))
	return fs, name
}
