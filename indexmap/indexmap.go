// Package indexmap: construction and accessors of the per-dimension map.
package indexmap

import "sort"

// Count selects which extent of the index space Size reports.
type Count int

const (
	// Owned counts only the nodes whose authoritative storage is local.
	Owned Count = iota
	// All counts owned nodes plus ghosts (the ghosted extent).
	All
	// Global counts every node across all ranks.
	Global
)

// Map is one dimension of a distributed index space. It is immutable
// once built; all accessors are read-only and safe for concurrent use.
//
// Node indices are unscaled: a node groups BlockSize consecutive
// scalar indices, and scalar index s maps to node s/bs with block
// component s%bs.
type Map struct {
	rank        int
	blockSize   int
	ranges      []int64 // prefix sums of owned counts; len = Ranks()+1
	ghosts      []int64 // global node indices owned elsewhere
	ghostOwners []int   // owning rank of each ghost, parallel to ghosts
}

// New constructs the index map of dimension for the given rank.
// owned[p] is the node count owned by rank p; the ownership ranges are
// the prefix sums of owned in rank order. ghosts lists global node
// indices referenced locally but owned by other ranks; their owners
// are resolved against the range table.
//
// Returns ErrBadShape for an empty table or negative count,
// ErrBlockSize for blockSize < 1, ErrRankOutOfRange for a rank outside
// the table, ErrIndexOutOfRange for a ghost outside the global extent
// and ErrGhostOwned for a ghost inside the local owned range.
// Complexity: O(P + G·log P) for P ranks and G ghosts.
func New(rank int, owned []int64, ghosts []int64, blockSize int) (*Map, error) {
	if len(owned) == 0 {
		return nil, ErrBadShape
	}
	if blockSize < 1 {
		return nil, ErrBlockSize
	}
	if rank < 0 || rank >= len(owned) {
		return nil, ErrRankOutOfRange
	}

	ranges := make([]int64, len(owned)+1)
	for p, n := range owned {
		if n < 0 {
			return nil, ErrBadShape
		}
		ranges[p+1] = ranges[p] + n
	}

	m := &Map{
		rank:      rank,
		blockSize: blockSize,
		ranges:    ranges,
	}

	if len(ghosts) > 0 {
		m.ghosts = make([]int64, len(ghosts))
		m.ghostOwners = make([]int, len(ghosts))
		for i, g := range ghosts {
			if g < 0 || g >= ranges[len(owned)] {
				return nil, ErrIndexOutOfRange
			}
			if g >= ranges[rank] && g < ranges[rank+1] {
				return nil, ErrGhostOwned
			}
			m.ghosts[i] = g
			m.ghostOwners[i] = m.owner(g)
		}
	}

	return m, nil
}

// Rank returns the rank this map was built for.
func (m *Map) Rank() int { return m.rank }

// Ranks returns the number of ranks in the ownership table.
func (m *Map) Ranks() int { return len(m.ranges) - 1 }

// BlockSize returns the number of scalar indices per node.
func (m *Map) BlockSize() int { return m.blockSize }

// Size reports the node count of the requested extent.
// Complexity: O(1).
func (m *Map) Size(c Count) int64 {
	switch c {
	case Owned:
		return m.ranges[m.rank+1] - m.ranges[m.rank]
	case All:
		return m.ranges[m.rank+1] - m.ranges[m.rank] + int64(len(m.ghosts))
	default:
		return m.ranges[len(m.ranges)-1]
	}
}

// LocalRange returns the owned node range [lo, hi) of the local rank.
func (m *Map) LocalRange() (lo, hi int64) {
	return m.ranges[m.rank], m.ranges[m.rank+1]
}

// LocalToGlobal translates a local node index into global numbering.
// Indices below Size(Owned) address the owned range; the remainder
// address the ghost list in order. Returns ErrIndexOutOfRange beyond
// the ghosted extent.
// Complexity: O(1).
func (m *Map) LocalToGlobal(local int64) (int64, error) {
	if local < 0 {
		return 0, ErrIndexOutOfRange
	}
	owned := m.Size(Owned)
	if local < owned {
		return m.ranges[m.rank] + local, nil
	}
	i := local - owned
	if i >= int64(len(m.ghosts)) {
		return 0, ErrIndexOutOfRange
	}

	return m.ghosts[i], nil
}

// Ghosts returns a copy of the ghost node list in local ghost order.
func (m *Map) Ghosts() []int64 {
	out := make([]int64, len(m.ghosts))
	copy(out, m.ghosts)

	return out
}

// GhostOwner returns the owning rank of the i-th ghost node.
func (m *Map) GhostOwner(i int) (int, error) {
	if i < 0 || i >= len(m.ghostOwners) {
		return 0, ErrIndexOutOfRange
	}

	return m.ghostOwners[i], nil
}

// Owner returns the rank owning the given global node index.
// Complexity: O(log P).
func (m *Map) Owner(global int64) (int, error) {
	if global < 0 || global >= m.ranges[len(m.ranges)-1] {
		return 0, ErrIndexOutOfRange
	}

	return m.owner(global), nil
}

// OwnedOn returns the node count owned by the given rank.
func (m *Map) OwnedOn(rank int) (int64, error) {
	if rank < 0 || rank >= m.Ranks() {
		return 0, ErrRankOutOfRange
	}

	return m.ranges[rank+1] - m.ranges[rank], nil
}

// owner resolves the owning rank of a valid global node index by
// binary search over the range table.
func (m *Map) owner(global int64) int {
	// First rank whose range ends beyond the node.
	return sort.Search(m.Ranks(), func(p int) bool { return m.ranges[p+1] > global })
}

// rangeStart returns the first node owned by the given valid rank.
func (m *Map) rangeStart(rank int) int64 { return m.ranges[rank] }
