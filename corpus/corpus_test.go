package corpus

import (
	"bytes"
	"testing"

	"github.com/zeebo/assert"

	"github.com/histdb/hashbench/filesystem"
	"github.com/histdb/hashbench/rng"
	"github.com/histdb/hashbench/testhelp"
)

func TestSample(t *testing.T) {
	source := testhelp.Text(1000)

	c, err := Sample(source, 5, 10)
	assert.NoError(t, err)
	assert.Equal(t, c.Len(), 5)

	for _, rec := range c {
		assert.That(t, len(rec) < 10)
		assert.That(t, bytes.Contains(source, rec))
	}
}

func TestSampleBounds(t *testing.T) {
	source := testhelp.Text(4096)
	const count, maxLen = 10000, 100

	c, err := Sample(source, count, maxLen)
	assert.NoError(t, err)
	assert.Equal(t, len(c), count)

	// replay the draws to check the exact source range of every record
	var r rng.T
	for _, rec := range c {
		n := r.Next() % maxLen
		off := r.Next() % (uint64(len(source)) - n)

		assert.Equal(t, uint64(len(rec)), n)
		assert.That(t, off+n <= uint64(len(source)))
		assert.Equal(t, string(rec), string(source[off:off+n]))
	}
}

func TestSampleDeterministic(t *testing.T) {
	source := testhelp.Text(2048)

	a, err := Sample(source, 1000, 64)
	assert.NoError(t, err)
	b, err := Sample(source, 1000, 64)
	assert.NoError(t, err)

	assert.DeepEqual(t, a, b)
}

func TestSampleOwnsRecords(t *testing.T) {
	source := bytes.Repeat([]byte("abcdefgh"), 64)

	c, err := Sample(source, 100, 16)
	assert.NoError(t, err)

	saved := make([]string, len(c))
	for i, rec := range c {
		saved[i] = string(rec)
	}

	for i := range source {
		source[i] = 'x'
	}
	for i, rec := range c {
		assert.Equal(t, string(rec), saved[i])
	}
}

func TestSampleCounts(t *testing.T) {
	source := testhelp.Text(512)

	for _, count := range []int{0, 1, 7, 1000} {
		c, err := Sample(source, count, 32)
		assert.NoError(t, err)
		assert.Equal(t, c.Len(), count)
	}
}

func TestSamplePreconditions(t *testing.T) {
	source := testhelp.Text(100)

	_, err := Sample(source, 10, 100)
	assert.Error(t, err)

	_, err = Sample(source, 10, 0)
	assert.Error(t, err)

	_, err = Sample(source, -1, 10)
	assert.Error(t, err)

	_, err = Sample(nil, 10, 1)
	assert.Error(t, err)

	_, err = Sample(source, 10, 99)
	assert.NoError(t, err)
}

func TestBytes(t *testing.T) {
	c := T{[]byte("abc"), nil, []byte("de")}
	assert.Equal(t, c.Bytes(), int64(5))
	assert.Equal(t, c.Len(), 3)
}

func TestLoad(t *testing.T) {
	source := testhelp.Text(1000)
	fs, name := testhelp.Source(t, source)

	c, err := Load(fs, name, 50, 20)
	assert.NoError(t, err)

	want, err := Sample(source, 50, 20)
	assert.NoError(t, err)
	assert.DeepEqual(t, c, want)
}

func TestLoadMissing(t *testing.T) {
	fs := &filesystem.T{Base: t.TempDir()}

	_, err := Load(fs, "bible.txt", 10, 10)
	assert.Error(t, err)
}

func BenchmarkSample(b *testing.B) {
	source := testhelp.Text(1 << 20)

	b.ReportAllocs()

	for b.Loop() {
		_, _ = Sample(source, 100000, 100)
	}
}
