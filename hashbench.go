package hashbench

import "fmt"

// Uint128 is the result of a 128 bit hash.
type Uint128 struct {
	Hi, Lo uint64
}

func (u Uint128) String() string {
	return fmt.Sprintf("%016x%016x", u.Hi, u.Lo)
}

// Digest is the set of fixed width values a hash function may produce.
type Digest interface {
	uint32 | uint64 | Uint128
}

// Func hashes a complete message. Implementations must not keep state
// between calls.
type Func[T Digest] func([]byte) T
