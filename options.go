package swiss

// HashCachePolicy governs whether rehash and erase-reinsert workloads read
// the hash word cached in a Slot or recompute it from the element, per
// spec.md §4.E.
type HashCachePolicy int

const (
	// Store reads the cached hash word on rehash. Removes a dominant
	// cost from rehash/erase-reinsert workloads when the hasher is
	// expensive (large strings).
	Store HashCachePolicy = iota
	// NoStore recomputes the hash from the element on rehash, for
	// hashers cheap enough that recomputing costs little. The slot still
	// carries the hash word under this policy.
	NoStore
)

// tableConfig collects everything an Option can adjust before a Table is
// constructed.
type tableConfig[K comparable, V any] struct {
	hasher    Hasher[K]
	equal     Equal[K]
	collision CollisionPolicy
	mixing    MixingPolicy
	hashCache HashCachePolicy
	loadNum   int
	loadDen   int
	capacity  int
	backend   Backend
	alloc     Allocator[K, V]

	hasherCustom   bool
	mixingExplicit bool
}

func defaultConfig[K comparable, V any]() *tableConfig[K, V] {
	return &tableConfig[K, V]{
		hasher:    defaultHasher[K](),
		equal:     defaultEqual[K](),
		collision: Quadratic,
		mixing:    Identity,
		hashCache: Store,
		loadNum:   7,
		loadDen:   8,
		backend:   defaultBackend,
		alloc:     defaultAllocator[K, V]{},
	}
}

// resolveMixing applies spec.md §6's default rule: Identity for the
// bundled high-quality hasher, Mix otherwise — unless the caller picked a
// MixingPolicy explicitly via WithMixingPolicy.
func (c *tableConfig[K, V]) resolveMixing() {
	if c.mixingExplicit {
		return
	}
	if c.hasherCustom {
		c.mixing = Mix
	} else {
		c.mixing = Identity
	}
}

// Option configures a Table, Set, or Map at construction time.
type Option[K comparable, V any] func(*tableConfig[K, V])

// WithHasher supplies a custom key hasher. Unless WithMixingPolicy is also
// given, this switches the default MixingPolicy to Mix (spec.md §6).
func WithHasher[K comparable, V any](h Hasher[K]) Option[K, V] {
	return func(c *tableConfig[K, V]) {
		c.hasher = h
		c.hasherCustom = true
	}
}

// WithEqual supplies a custom key-equality predicate.
func WithEqual[K comparable, V any](eq Equal[K]) Option[K, V] {
	return func(c *tableConfig[K, V]) { c.equal = eq }
}

// WithCollisionPolicy selects Linear or Quadratic group probing.
func WithCollisionPolicy[K comparable, V any](p CollisionPolicy) Option[K, V] {
	return func(c *tableConfig[K, V]) { c.collision = p }
}

// WithMixingPolicy overrides the default mixing-policy selection rule.
func WithMixingPolicy[K comparable, V any](p MixingPolicy) Option[K, V] {
	return func(c *tableConfig[K, V]) {
		c.mixing = p
		c.mixingExplicit = true
	}
}

// WithHashCache selects whether rehash recomputes or reuses cached hashes.
func WithHashCache[K comparable, V any](p HashCachePolicy) Option[K, V] {
	return func(c *tableConfig[K, V]) { c.hashCache = p }
}

// WithLoadFactor sets the load-factor ratio (num/den), default 7/8.
func WithLoadFactor[K comparable, V any](num, den int) Option[K, V] {
	return func(c *tableConfig[K, V]) {
		if num <= 0 || den <= 0 || num >= den {
			panic("swiss: load factor must be in (0, 1)")
		}
		c.loadNum, c.loadDen = num, den
	}
}

// WithCapacity reserves capacity for at least n elements up front.
func WithCapacity[K comparable, V any](n int) Option[K, V] {
	return func(c *tableConfig[K, V]) { c.capacity = n }
}

// WithAllocator supplies a custom backing-storage provider, e.g. an
// arena-backed one (see DESIGN.md).
func WithAllocator[K comparable, V any](a Allocator[K, V]) Option[K, V] {
	return func(c *tableConfig[K, V]) { c.alloc = a }
}

// WithBackend overrides the default SWAR group-matching backend.
func WithBackend[K comparable, V any](b Backend) Option[K, V] {
	return func(c *tableConfig[K, V]) { c.backend = b }
}
