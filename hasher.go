package swiss

import "github.com/dolthub/maphash"

// Hasher maps a key to a machine-word hash. Implementations need not be
// collision-resistant; they must be deterministic for equal keys.
type Hasher[K any] func(key K) uint64

// Equal compares two keys for logical equality.
type Equal[K any] func(a, b K) bool

// defaultHasher builds the bundled hasher for comparable key types, backed
// by github.com/dolthub/maphash's generic, randomly seeded hasher — the
// same library and call shape used by the reference flier-goutil arena
// Swiss map (see DESIGN.md). Because this hasher already delivers
// high-quality avalanche, Table defaults its MixingPolicy to Identity
// whenever the caller has not supplied a custom Hasher (spec.md §6).
func defaultHasher[K comparable]() Hasher[K] {
	h := maphash.NewHasher[K]()
	return func(key K) uint64 {
		return h.Hash(key)
	}
}

func defaultEqual[K comparable]() Equal[K] {
	return func(a, b K) bool { return a == b }
}
