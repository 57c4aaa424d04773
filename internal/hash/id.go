package hash

import "github.com/cespare/xxhash/v2"

// ID computes the 64-bit xxHash of an algorithm name.
//
// Measurement series are keyed by these IDs rather than by the names
// themselves: fixed 8-byte keys keep lookups cheap and make series
// identity independent of name length. The hash is deterministic, so
// the same name always maps to the same series.
func ID(name string) uint64 {
	return xxhash.Sum64String(name)
}
