package hash

import (
	farmhash "github.com/leemcloughlin/gofarmhash"
)

// Sum64 computes the FarmHash64 digest of data.
func Sum64(data []byte) uint64 {
	return farmhash.Hash64(data)
}

// Sum64WithSeed computes the seeded FarmHash64 digest of data.
func Sum64WithSeed(data []byte, seed uint64) uint64 {
	return farmhash.Hash64WithSeed(data, seed)
}
