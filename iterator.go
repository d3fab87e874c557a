package swiss

import "iter"

// Iterator walks the live elements of a Table in slot order, skipping
// Empty and Deleted lanes and stopping after the last group (whose final
// lane holds the Sentinel byte). It is
// invalidated by any insertion or rehash that occurs after it is created,
// matching the reference C++ container's iterator-invalidation contract
// (spec.md §3).
type Iterator[K comparable, V any] struct {
	t     *Table[K, V]
	idx   int     // index of the current element once Next has returned true
	group uint32  // group currently loaded into mask
	mask  BitMask // remaining full lanes in group, not yet yielded
	done  bool
}

// Iterator returns a fresh iterator positioned before the first element.
func (t *Table[K, V]) Iterator() *Iterator[K, V] {
	it := &Iterator[K, V]{t: t, idx: -1, done: t.groups == 0}
	if !it.done {
		it.mask = t.backend.MatchFull(t.group(0))
	}
	return it
}

// Next advances to the next live element, returning false once exhausted.
// It consumes one group's Full-lane mask at a time via the backend, rather
// than testing each control byte individually, so a mostly-empty table is
// skipped a whole group at a stride instead of byte by byte.
func (it *Iterator[K, V]) Next() bool {
	if it.done {
		return false
	}
	t := it.t
	for {
		if it.mask.Any() {
			lane, _ := it.mask.First()
			it.mask = it.mask.Next()
			it.idx = int(it.group)*GroupSize + lane
			return true
		}
		it.group++
		if it.group >= t.groups {
			it.done = true
			return false
		}
		it.mask = t.backend.MatchFull(t.group(it.group))
	}
}

// iteratorAt returns an Iterator already positioned at idx, as if Next had
// just returned true for it, so the next call to Next continues scanning
// from idx's own group onward. Used by Set.Find/Map.Find, which already
// know the slot index from Table.Find and don't need to re-probe.
func iteratorAt[K comparable, V any](t *Table[K, V], idx int) *Iterator[K, V] {
	group := uint32(idx) / GroupSize
	lane := idx % GroupSize
	mask := t.backend.MatchFull(t.group(group))
	// Clear every lane up to and including idx's own, so Next resumes
	// just past it.
	mask &= ^BitMask(0) << uint(lane+1)
	return &Iterator[K, V]{t: t, idx: idx, group: group, mask: mask}
}

// Key returns the current element's key. Valid only after Next returns true.
func (it *Iterator[K, V]) Key() K { return it.t.slots[it.idx].Key }

// Value returns the current element's value. Valid only after Next returns
// true.
func (it *Iterator[K, V]) Value() V { return it.t.slots[it.idx].Value }

// Index returns the backing slot index of the current element, suitable
// for passing to Table.EraseAt.
func (it *Iterator[K, V]) Index() int { return it.idx }

// All returns a range-over-func sequence of every (key, value) pair.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := t.Iterator(); it.Next(); {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// Keys returns a range-over-func sequence of every key.
func (t *Table[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for it := t.Iterator(); it.Next(); {
			if !yield(it.Key()) {
				return
			}
		}
	}
}

// Values returns a range-over-func sequence of every value.
func (t *Table[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for it := t.Iterator(); it.Next(); {
			if !yield(it.Value()) {
				return
			}
		}
	}
}
