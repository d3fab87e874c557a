package swiss

import "iter"

// Map is an unordered key/value associative container with unique keys,
// backed by a Table[K, V], per spec.md §6.
type Map[K comparable, V any] struct {
	t *Table[K, V]
}

// NewMap constructs an empty Map, configured by the supplied Options.
func NewMap[K comparable, V any](opts ...Option[K, V]) *Map[K, V] {
	return &Map[K, V]{t: newTable[K, V](opts...)}
}

// Empty reports whether the map holds no entries.
func (m *Map[K, V]) Empty() bool { return m.t.Len() == 0 }

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return m.t.Len() }

// LoadFactor returns the current live-fraction of capacity, or 0 for an
// uninitialized map.
func (m *Map[K, V]) LoadFactor() float64 {
	if m.t.Cap() == 0 {
		return 0
	}
	return float64(m.t.Len()) / float64(m.t.Cap())
}

// Cap returns the slot capacity of the backing table (GroupSize*groups-1,
// or 0 when uninitialized). The map grows once an insertion would take
// it past the load factor, before Cap entries are reached.
func (m *Map[K, V]) Cap() int { return m.t.Cap() }

// Tombstones returns the number of Deleted lanes awaiting a rehash.
func (m *Map[K, V]) Tombstones() int { return m.t.Tombstones() }

// Clear removes every entry.
func (m *Map[K, V]) Clear() { m.t.Clear() }

// Reserve ensures the map can hold at least n entries without regrowing.
func (m *Map[K, V]) Reserve(n int) { m.t.Reserve(n) }

// Contains reports whether key has an entry.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.t.Find(key)
	return ok
}

// Get returns the value stored for key, or ErrNotFound if absent.
func (m *Map[K, V]) Get(key K) (V, error) {
	idx, ok := m.t.Find(key)
	if !ok {
		var zero V
		return zero, ErrNotFound
	}
	return m.t.slots[idx].Value, nil
}

// Find reports whether key has an entry, returning an Iterator positioned
// at it when found.
func (m *Map[K, V]) Find(key K) (*Iterator[K, V], bool) {
	idx, ok := m.t.Find(key)
	if !ok {
		return nil, false
	}
	return iteratorAt(m.t, idx), true
}

// Insert adds key/value only if key is absent, leaving an existing entry
// untouched. Reports whether a new entry was added.
func (m *Map[K, V]) Insert(key K, value V) bool {
	_, inserted := m.t.EmplaceMissing(key, value)
	return inserted
}

// Emplace is Insert's alias, matching the reference container's emplace().
func (m *Map[K, V]) Emplace(key K, value V) bool { return m.Insert(key, value) }

// InsertOrAssign inserts key/value, overwriting any existing value for
// key. Reports whether a new entry was added.
func (m *Map[K, V]) InsertOrAssign(key K, value V) bool {
	_, inserted := m.t.Emplace(key, value)
	return inserted
}

// Set is a shorthand for InsertOrAssign, mirroring operator[] assignment
// in the reference container.
func (m *Map[K, V]) Set(key K, value V) { m.t.Emplace(key, value) }

// At returns the value for key, or the zero value if absent — the Go
// rendering of the reference container's operator[] (spec.md §6), which
// cannot itself auto-vivify a default-constructed V without risking a
// silent phantom insert on a typo'd lookup.
func (m *Map[K, V]) At(key K) V {
	v, _ := m.Get(key)
	return v
}

// Erase removes key's entry if present. Reports whether it was present.
func (m *Map[K, V]) Erase(key K) bool { return m.t.Erase(key) }

// EraseIterator removes the entry an Iterator currently points to.
func (m *Map[K, V]) EraseIterator(it *Iterator[K, V]) { m.t.EraseAt(it.Index()) }

// TryErase removes key's entry if present, reporting ErrNotFound otherwise.
func (m *Map[K, V]) TryErase(key K) error {
	if !m.t.Erase(key) {
		return ErrNotFound
	}
	return nil
}

// Swap exchanges the contents of two maps.
func (m *Map[K, V]) Swap(other *Map[K, V]) { m.t.Swap(other.t) }

// Clone returns a deep, independent copy.
func (m *Map[K, V]) Clone() *Map[K, V] { return &Map[K, V]{t: m.t.Clone()} }

// Equal reports whether two maps hold the same keys mapped to equal
// values, via eq, irrespective of internal layout or iteration order.
func (m *Map[K, V]) Equal(other *Map[K, V], eq func(a, b V) bool) bool {
	if m.Len() != other.Len() {
		return false
	}
	for k, v := range m.All() {
		ov, err := other.Get(k)
		if err != nil || !eq(v, ov) {
			return false
		}
	}
	return true
}

// All returns a range-over-func sequence of every key/value pair.
func (m *Map[K, V]) All() iter.Seq2[K, V] { return m.t.All() }

// Keys returns a range-over-func sequence of every key.
func (m *Map[K, V]) Keys() iter.Seq[K] { return m.t.Keys() }

// Values returns a range-over-func sequence of every value.
func (m *Map[K, V]) Values() iter.Seq[V] { return m.t.Values() }
