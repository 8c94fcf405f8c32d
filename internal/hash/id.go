package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of a bound-parameter name.
func ID(name string) uint64 {
	return xxhash.Sum64String(name)
}

// Sum computes the xxHash64 of a raw value payload. Used as the key for
// encoded value-cell reuse in the encoding cache.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
