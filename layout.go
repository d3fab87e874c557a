package swiss

// Slot is the per-element storage backing one control-byte lane. The hash
// word is always carried (Go generics have no conditional struct fields);
// the HashCache policy governs whether rehash/erase-reinsert reads it or
// recomputes it from the element — see DESIGN.md and spec.md §4.E.
type Slot[K any, V any] struct {
	Key   K
	Value V
	hash  uint64
}

// Allocator provisions the backing storage for a Table's control array and
// slot array. The default implementation (used when no Allocator is
// supplied via WithAllocator) calls make directly. A caller wanting
// pooled/arena-backed storage across repeated rehash cycles — the pattern
// the reference flier-goutil arena Swiss map uses via its
// arena-backed slice.Slice[T] — can supply one instead (see DESIGN.md:
// no fetchable arena module lives in this workspace's dependency roster,
// so only the hook is provided, not a bundled arena-backed implementation).
type Allocator[K any, V any] interface {
	// Ctrl returns a control-byte slice of length n, zeroed is fine
	// (Table overwrites every byte before use).
	Ctrl(n int) []byte
	// Slots returns a slot slice of length n.
	Slots(n int) []Slot[K, V]
}

type defaultAllocator[K any, V any] struct{}

func (defaultAllocator[K, V]) Ctrl(n int) []byte        { return make([]byte, n) }
func (defaultAllocator[K, V]) Slots(n int) []Slot[K, V] { return make([]Slot[K, V], n) }
