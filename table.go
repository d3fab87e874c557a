package swiss

// Table is the shared core backing both Set and Map: a single control-byte
// array and a parallel slot array, probed a group at a time. See spec.md §3
// and §4.E for the full contract this type implements.
type Table[K comparable, V any] struct {
	ctrl  []byte
	slots []Slot[K, V]

	groups  uint32 // power of two; 0 means uninitialized
	size    int
	deleted int

	hasher    Hasher[K]
	equal     Equal[K]
	collision CollisionPolicy
	mixing    MixingPolicy
	hashCache HashCachePolicy
	loadNum   int
	loadDen   int
	backend   Backend
	alloc     Allocator[K, V]
}

func newTable[K comparable, V any](opts ...Option[K, V]) *Table[K, V] {
	cfg := defaultConfig[K, V]()
	for _, opt := range opts {
		opt(cfg)
	}
	cfg.resolveMixing()

	t := &Table[K, V]{
		hasher:    cfg.hasher,
		equal:     cfg.equal,
		collision: cfg.collision,
		mixing:    cfg.mixing,
		hashCache: cfg.hashCache,
		loadNum:   cfg.loadNum,
		loadDen:   cfg.loadDen,
		backend:   cfg.backend,
		alloc:     cfg.alloc,
	}
	if cfg.capacity > 0 {
		t.Reserve(cfg.capacity)
	}
	return t
}

// Len returns the number of live elements.
func (t *Table[K, V]) Len() int { return t.size }

// Cap returns the slot capacity, GroupSize*groups-1 (0 when
// uninitialized). A rehash-grow happens once an insertion would take the
// table past growthLimit, the load-factor share of Cap.
func (t *Table[K, V]) Cap() int { return t.capacity() }

// Tombstones returns the current count of Deleted control bytes.
func (t *Table[K, V]) Tombstones() int { return t.deleted }

func (t *Table[K, V]) capacity() int {
	if t.groups == 0 {
		return 0
	}
	return int(t.groups)*GroupSize - 1
}

func (t *Table[K, V]) growthLimit() int {
	return t.capacity() * t.loadNum / t.loadDen
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// nextGroups returns the smallest power-of-two group count g such that
// g*GroupSize-1 >= need.
func nextGroups(need int) uint32 {
	if need < 0 {
		need = 0
	}
	g := uint32(1)
	for int(g)*GroupSize-1 < need {
		g <<= 1
	}
	return g
}

func (t *Table[K, V]) fullHash(key K) uint64 {
	return t.mixing.apply(t.hasher(key))
}

func (t *Table[K, V]) group(g uint32) []byte {
	base := int(g) * GroupSize
	return t.ctrl[base : base+GroupSize]
}

// Find returns the slot index holding key, or (0, false) if absent. An
// uninitialized table returns not-found immediately (spec.md §4.E).
func (t *Table[K, V]) Find(key K) (int, bool) {
	if t.groups == 0 {
		return 0, false
	}
	h := t.fullHash(key)
	h2 := h2Of(h)
	seq := newProbeSeq(h1Of(h), t.groups, t.collision)
	for {
		g := seq.current()
		base := int(g) * GroupSize
		group := t.group(g)

		matches := t.backend.Match(group, h2)
		for matches.Any() {
			lane, _ := matches.First()
			idx := base + lane
			if t.equal(t.slots[idx].Key, key) {
				return idx, true
			}
			matches = matches.Next()
		}
		if t.backend.MatchEmpty(group).Any() {
			return 0, false
		}
		seq.advance()
	}
}

// ensureInit reserves capacity for the table's first element, per spec.md
// §4.E ("An insertion into an uninitialized table first reserves capacity
// for one element").
func (t *Table[K, V]) ensureInit() {
	if t.groups == 0 {
		t.rehashTo(1)
	}
}

// Emplace inserts key/value if key is absent, or assigns value over the
// existing entry if present. Returns the slot index and whether a new
// element was inserted.
func (t *Table[K, V]) Emplace(key K, value V) (int, bool) {
	return t.emplace(key, value, true)
}

// EmplaceMissing inserts key/value only if key is absent, leaving an
// existing entry's value untouched. Returns the slot index and whether a
// new element was inserted.
func (t *Table[K, V]) EmplaceMissing(key K, value V) (int, bool) {
	return t.emplace(key, value, false)
}

// growthLeft is spec.md §3's growth_left: the number of further insertions
// the table can absorb before a rehash is required to keep at least one
// Empty byte reachable from every probe start. Both size and deleted count
// against it — a Deleted byte occupies a lane just as surely as a Full one
// (DESIGN.md).
func (t *Table[K, V]) growthLeft() int {
	return t.growthLimit() - t.size - t.deleted
}

func (t *Table[K, V]) emplace(key K, value V, assignIfFound bool) (int, bool) {
	t.ensureInit()

	for {
		if t.growthLeft() < 1 {
			// Grow before probing: probing can only terminate at an
			// Empty lane, so one must already exist table-wide before
			// a probe for an absent key is started.
			t.grow()
			continue
		}

		h := t.fullHash(key)
		h2 := h2Of(h)
		seq := newProbeSeq(h1Of(h), t.groups, t.collision)

		insertAt := -1
		for {
			g := seq.current()
			base := int(g) * GroupSize
			group := t.group(g)

			matches := t.backend.Match(group, h2)
			found := -1
			for matches.Any() {
				lane, _ := matches.First()
				idx := base + lane
				if t.equal(t.slots[idx].Key, key) {
					found = idx
					break
				}
				matches = matches.Next()
			}
			if found >= 0 {
				if assignIfFound {
					t.slots[found].Value = value
				}
				return found, false
			}

			if insertAt < 0 {
				if avail := t.backend.MatchEmptyOrDeleted(group); avail.Any() {
					lane, _ := avail.First()
					insertAt = base + lane
				}
			}

			if t.backend.MatchEmpty(group).Any() {
				// Confirmed absent: nothing further down the probe
				// sequence could hold key (invariant 6). growthLeft
				// guaranteed insertAt was reachable.
				idx := insertAt
				wasDeleted := t.ctrl[idx] == ctrlDeleted
				t.ctrl[idx] = h2
				t.slots[idx] = Slot[K, V]{Key: key, Value: value, hash: h}
				t.size++
				if wasDeleted {
					t.deleted--
				}
				return idx, true
			}

			seq.advance()
		}
	}
}

// grow rehashes the table to accommodate one more element, per the load
// factor discipline in spec.md §4.E. When the live elements alone still
// fit under growthLimit, the capacity is unchanged and the rehash's only
// job is to purge tombstones (DESIGN.md); otherwise capacity doubles.
func (t *Table[K, V]) grow() {
	if t.size+1 <= t.growthLimit() {
		t.rehashTo(t.groups)
		return
	}
	need := ceilDiv((t.size+1)*t.loadDen, t.loadNum)
	t.rehashTo(nextGroups(need))
}

// rehashTo allocates a newGroups-sized buffer and relocates every live
// element into it via unchecked insertion, per spec.md §4.E's
// "Rehash and relocation" procedure.
func (t *Table[K, V]) rehashTo(newGroups uint32) {
	oldCtrl, oldSlots, oldGroups := t.ctrl, t.slots, t.groups

	t.groups = newGroups
	n := int(newGroups) * GroupSize
	t.ctrl = t.alloc.Ctrl(n)
	for i := range t.ctrl {
		t.ctrl[i] = ctrlEmpty
	}
	t.ctrl[n-1] = ctrlSentinel
	t.slots = t.alloc.Slots(n)
	t.size = 0
	t.deleted = 0

	if oldGroups == 0 {
		return
	}
	oldLen := int(oldGroups) * GroupSize
	for i := 0; i < oldLen; i++ {
		if oldCtrl[i]&0x80 != 0 {
			continue // not Full
		}
		e := oldSlots[i]
		h := e.hash
		if t.hashCache == NoStore {
			h = t.fullHash(e.Key)
		}
		t.insertUnchecked(h, e.Key, e.Value)
	}
}

// insertUnchecked places an element known not to already be present,
// skipping the duplicate scan — valid only during rehash, where the old
// table already guaranteed uniqueness.
func (t *Table[K, V]) insertUnchecked(h uint64, key K, value V) {
	h2 := h2Of(h)
	seq := newProbeSeq(h1Of(h), t.groups, t.collision)
	for {
		g := seq.current()
		base := int(g) * GroupSize
		group := t.group(g)
		if empty := t.backend.MatchEmpty(group); empty.Any() {
			lane, _ := empty.First()
			idx := base + lane
			t.ctrl[idx] = h2
			t.slots[idx] = Slot[K, V]{Key: key, Value: value, hash: h}
			t.size++
			return
		}
		seq.advance()
	}
}

// EraseAt destroys the element at idx (as returned by Find/Emplace) and
// applies spec.md §4.E's Empty-vs-Deleted tombstone rule.
func (t *Table[K, V]) EraseAt(idx int) {
	g := uint32(idx) / GroupSize
	group := t.group(g)
	if t.backend.MatchEmpty(group).Any() {
		t.ctrl[idx] = ctrlEmpty
	} else {
		t.ctrl[idx] = ctrlDeleted
		t.deleted++
	}
	var zero Slot[K, V]
	t.slots[idx] = zero
	t.size--
}

// Erase finds and removes key, reporting whether it was present.
func (t *Table[K, V]) Erase(key K) bool {
	idx, ok := t.Find(key)
	if !ok {
		return false
	}
	t.EraseAt(idx)
	return true
}

// Reserve ensures the table can hold at least n elements without a further
// rehash-grow. Never decreases capacity.
func (t *Table[K, V]) Reserve(n int) {
	if n <= 0 {
		return
	}
	need := ceilDiv(n*t.loadDen, t.loadNum)
	groups := nextGroups(need)
	if groups > t.groups {
		t.rehashTo(groups)
	}
}

// Clear removes every element and releases the backing buffer.
func (t *Table[K, V]) Clear() {
	t.ctrl = nil
	t.slots = nil
	t.groups = 0
	t.size = 0
	t.deleted = 0
}

// Clone returns a deep, independent copy built by re-inserting every live
// element in iteration order (spec.md §3's copy semantics).
func (t *Table[K, V]) Clone() *Table[K, V] {
	clone := &Table[K, V]{
		hasher:    t.hasher,
		equal:     t.equal,
		collision: t.collision,
		mixing:    t.mixing,
		hashCache: t.hashCache,
		loadNum:   t.loadNum,
		loadDen:   t.loadDen,
		backend:   t.backend,
		alloc:     t.alloc,
	}
	for it := t.Iterator(); it.Next(); {
		clone.Emplace(it.Key(), it.Value())
	}
	return clone
}

// Swap exchanges the contents of two tables.
func (t *Table[K, V]) Swap(other *Table[K, V]) {
	*t, *other = *other, *t
}
