package swiss

// CollisionPolicy selects the sequence of groups visited when a group is
// full and probing must continue, per spec.md §4.D.
type CollisionPolicy int

const (
	// Quadratic visits groups using triangular-number strides
	// (g' = g+i+1), which under a power-of-two group count visits every
	// group exactly once. This is the default, per spec.md §6.
	Quadratic CollisionPolicy = iota
	// Linear visits groups one at a time (g' = g+1). Simpler, and the
	// policy every reference Go Swiss table in this module's pack
	// actually uses (crn4/swiss, the flier-goutil arena map,
	// OrlovEvgeny/go-mcache) — see DESIGN.md.
	Linear
)

// probeSeq produces the sequence of group indices to visit, starting at
// g0, over a power-of-two group count. advance() must be called at most
// groups times; the probing engine is responsible for detecting
// termination (an Empty lane found, or the table is provably not full).
type probeSeq struct {
	mask   uint32 // groups - 1
	policy CollisionPolicy
	group  uint32
	stride uint32 // triangular-number accumulator, Quadratic only
}

func newProbeSeq(h1 uint64, groups uint32, policy CollisionPolicy) probeSeq {
	mask := groups - 1
	return probeSeq{
		mask:   mask,
		policy: policy,
		group:  uint32(h1) & mask,
	}
}

// current returns the group index for this step without advancing.
func (p *probeSeq) current() uint32 { return p.group }

// advance moves to the next group in the sequence.
func (p *probeSeq) advance() {
	switch p.policy {
	case Linear:
		p.group = (p.group + 1) & p.mask
	default: // Quadratic
		p.stride++
		p.group = (p.group + p.stride) & p.mask
	}
}
