package swiss

import "iter"

// Set is an unordered collection of unique, comparable elements backed by
// a Table[T, struct{}], per spec.md §6.
type Set[T comparable] struct {
	t *Table[T, struct{}]
}

// NewSet constructs an empty Set, configured by the supplied Options.
func NewSet[T comparable](opts ...Option[T, struct{}]) *Set[T] {
	return &Set[T]{t: newTable[T, struct{}](opts...)}
}

// Empty reports whether the set holds no elements.
func (s *Set[T]) Empty() bool { return s.t.Len() == 0 }

// Len returns the number of elements.
func (s *Set[T]) Len() int { return s.t.Len() }

// LoadFactor returns the current live-fraction of capacity, or 0 for an
// uninitialized set.
func (s *Set[T]) LoadFactor() float64 {
	if s.t.Cap() == 0 {
		return 0
	}
	return float64(s.t.Len()) / float64(s.t.Cap())
}

// Cap returns the slot capacity of the backing table (GroupSize*groups-1,
// or 0 when uninitialized). The set grows once an insertion would take it
// past the load factor, before Cap elements are reached.
func (s *Set[T]) Cap() int { return s.t.Cap() }

// Tombstones returns the number of Deleted lanes awaiting a rehash.
func (s *Set[T]) Tombstones() int { return s.t.Tombstones() }

// Clear removes every element.
func (s *Set[T]) Clear() { s.t.Clear() }

// Reserve ensures the set can hold at least n elements without regrowing.
func (s *Set[T]) Reserve(n int) { s.t.Reserve(n) }

// Contains reports whether value is a member.
func (s *Set[T]) Contains(value T) bool {
	_, ok := s.t.Find(value)
	return ok
}

// Find reports whether value is a member, returning an Iterator positioned
// at it when found (mirroring the reference container's find()).
func (s *Set[T]) Find(value T) (*Iterator[T, struct{}], bool) {
	idx, ok := s.t.Find(value)
	if !ok {
		return nil, false
	}
	return iteratorAt(s.t, idx), true
}

// Insert adds value if absent. Reports whether a new element was added.
func (s *Set[T]) Insert(value T) bool {
	_, inserted := s.t.EmplaceMissing(value, struct{}{})
	return inserted
}

// Emplace is Insert's alias, matching the reference container's emplace().
func (s *Set[T]) Emplace(value T) bool { return s.Insert(value) }

// Erase removes value if present. Reports whether it was present.
func (s *Set[T]) Erase(value T) bool { return s.t.Erase(value) }

// EraseIterator removes the element an Iterator currently points to.
func (s *Set[T]) EraseIterator(it *Iterator[T, struct{}]) { s.t.EraseAt(it.Index()) }

// TryErase removes value if present, reporting ErrNotFound otherwise —
// the explicit-error counterpart to Erase's bool return, per spec.md §6.
func (s *Set[T]) TryErase(value T) error {
	if !s.t.Erase(value) {
		return ErrNotFound
	}
	return nil
}

// Swap exchanges the contents of two sets.
func (s *Set[T]) Swap(other *Set[T]) { s.t.Swap(other.t) }

// Clone returns a deep, independent copy.
func (s *Set[T]) Clone() *Set[T] { return &Set[T]{t: s.t.Clone()} }

// Equal reports whether two sets contain exactly the same elements,
// irrespective of internal layout or iteration order.
func (s *Set[T]) Equal(other *Set[T]) bool {
	if s.Len() != other.Len() {
		return false
	}
	for v := range s.All() {
		if !other.Contains(v) {
			return false
		}
	}
	return true
}

// All returns a range-over-func sequence of every element.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := s.t.Iterator(); it.Next(); {
			if !yield(it.Key()) {
				return
			}
		}
	}
}
