package rng

const (
	c1 = 0x4f2357a2e6b9d8c1
	c2 = 0x8d1f5e2c84560baf
	c3 = 0xf0c3be9a71d8246e
)

// T is a tiny deterministic generator used to pick corpus records. The zero
// value is ready to use and always yields the same sequence. It is not a
// source of good randomness.
type T struct {
	s uint64
}

func (t *T) Next() uint64 {
	t.s ^= c1
	t.s *= c2
	t.s += c3
	return t.s
}

// Uint64n returns Next() mod n. It panics if n is zero.
func (t *T) Uint64n(n uint64) uint64 { return t.Next() % n }
