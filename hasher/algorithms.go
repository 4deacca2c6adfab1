package hasher

import (
	"hash"
	"hash/crc32"
	"hash/fnv"
	"hash/maphash"

	"github.com/blainsmith/seahash"
	"github.com/cespare/xxhash/v2"
	"github.com/dchest/siphash"
	"github.com/dgryski/go-farm"
	metro "github.com/dgryski/go-metro"
	t1ha "github.com/dgryski/go-t1ha"
	"github.com/minio/highwayhash"
	"github.com/orisano/wyhash"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"

	"github.com/histdb/hashbench"
)

// Keys and seeds are fixed for the process. Only throughput is compared so
// their values do not matter, just their sizes.
var (
	highwayKey [32]byte
	sipKey     [16]byte
	mapSeed    = maphash.MakeSeed()
)

var (
	FNV64a = Stream64(fnv.New64a)

	CRC32 = Stream32(crc32.NewIEEE)

	MapHash = Seeded64(func(p []byte, seed maphash.Seed) uint64 {
		return maphash.Bytes(seed, p)
	}, mapSeed)

	XXHash = Stream64(xxhash.New)

	XXH3 = Stream64(xxh3.New)

	XXH128 hashbench.Func[hashbench.Uint128] = func(p []byte) hashbench.Uint128 {
		h := xxh3.New()
		_, _ = h.Write(p)
		s := h.Sum128()
		return hashbench.Uint128{Hi: s.Hi, Lo: s.Lo}
	}

	SeaHash = Stream64(seahash.New)

	Murmur32 = Stream32(func() hash.Hash32 { return murmur3.New32WithSeed(0) })

	Murmur128 = Stream128(func() murmur3.Hash128 { return murmur3.New128WithSeed(0) })

	Highway = Stream64(Must(func() (hash.Hash64, error) {
		return highwayhash.New64(highwayKey[:])
	}))

	SipHash = Stream64(func() hash.Hash64 { return siphash.New(sipKey[:]) })

	WyHash = Stream64(func() hash.Hash64 { return wyhash.New(0) })

	Metro64 = Seeded64(metro.Hash64, 0)

	Metro128 = Seeded128(metro.Hash128, 0)

	T1ha = Seeded64(t1ha.Sum64, 0)

	Farm64 = Seeded64(farm.Hash64WithSeed, 0)
)
