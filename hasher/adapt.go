package hasher

import (
	"hash"

	"github.com/histdb/hashbench"
)

// Hash128 is a streaming hasher with a 128 bit result split into two words.
type Hash128 interface {
	hash.Hash
	Sum128() (uint64, uint64)
}

// Stream64 adapts a streaming hasher. Every call builds a new hasher, writes
// the message once and finalizes it.
func Stream64[H hash.Hash64](new func() H) hashbench.Func[uint64] {
	return func(p []byte) uint64 {
		h := new()
		_, _ = h.Write(p)
		return h.Sum64()
	}
}

// Stream32 is Stream64 for 32 bit hashers.
func Stream32[H hash.Hash32](new func() H) hashbench.Func[uint32] {
	return func(p []byte) uint32 {
		h := new()
		_, _ = h.Write(p)
		return h.Sum32()
	}
}

// Stream128 is Stream64 for 128 bit hashers.
func Stream128[H Hash128](new func() H) hashbench.Func[hashbench.Uint128] {
	return func(p []byte) hashbench.Uint128 {
		h := new()
		_, _ = h.Write(p)
		hi, lo := h.Sum128()
		return hashbench.Uint128{Hi: hi, Lo: lo}
	}
}

// Seeded64 adapts a one-shot hash taking a seed, fixing the seed.
func Seeded64[S any](fn func([]byte, S) uint64, seed S) hashbench.Func[uint64] {
	return func(p []byte) uint64 { return fn(p, seed) }
}

// Seeded128 is Seeded64 for one-shot hashes returning two words.
func Seeded128[S any](fn func([]byte, S) (uint64, uint64), seed S) hashbench.Func[hashbench.Uint128] {
	return func(p []byte) hashbench.Uint128 {
		hi, lo := fn(p, seed)
		return hashbench.Uint128{Hi: hi, Lo: lo}
	}
}

// Must unwraps a constructor that only fails on bad static arguments like a
// wrongly sized key.
func Must[H any](new func() (H, error)) func() H {
	if _, err := new(); err != nil {
		panic(err)
	}
	return func() H {
		h, err := new()
		if err != nil {
			panic(err)
		}
		return h
	}
}
