package corpus

import (
	"github.com/zeebo/errs/v2"

	"github.com/histdb/hashbench/filesystem"
	"github.com/histdb/hashbench/rng"
)

// T is an ordered set of records sampled from a source text. It must not be
// modified once built.
type T [][]byte

func (c T) Len() int { return len(c) }

// Bytes returns the total size of all records.
func (c T) Bytes() (n int64) {
	for _, rec := range c {
		n += int64(len(rec))
	}
	return n
}

// Load reads the source text at path and samples count records of length
// less than maxLen from it.
func Load(fs *filesystem.T, path string, count, maxLen int) (T, error) {
	source, err := fs.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(err)
	}
	return Sample(source, count, maxLen)
}

// Sample draws count records from source using a zero seeded rng.T. Each
// record takes two draws: one for its length in [0, maxLen) and one for its
// offset in [0, len(source)-length). Records are copies and do not alias
// source or each other.
func Sample(source []byte, count, maxLen int) (T, error) {
	switch {
	case count < 0:
		return nil, errs.Errorf("invalid record count: %d", count)
	case maxLen <= 0:
		return nil, errs.Errorf("invalid max record length: %d", maxLen)
	case len(source) <= maxLen:
		return nil, errs.Errorf("source too small: %d bytes for max record length %d",
			len(source), maxLen)
	}

	var r rng.T
	c := make(T, 0, count)

	for len(c) < count {
		n := r.Uint64n(uint64(maxLen))
		off := r.Uint64n(uint64(len(source)) - n)
		c = append(c, append([]byte(nil), source[off:off+n]...))
	}

	return c, nil
}
