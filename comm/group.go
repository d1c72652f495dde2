// Package comm: the in-process rank group.
package comm

import "sync"

// Group joins n in-process ranks through a shared slot matrix and a
// cyclic two-phase barrier. Each rank obtains its Exchanger via Peer
// and runs on its own goroutine; a rank's AllToAll blocks until every
// rank of the group has deposited its send buffers.
//
// The barrier is reusable: consecutive collectives on the same Group
// are kept apart by the leaving flag, so a fast rank cannot deposit
// into a generation the slow ranks are still reading.
type Group struct {
	n int

	mu       sync.Mutex
	cond     *sync.Cond
	slots    [][][]int64 // slots[src][dst] = buffer src addressed to dst
	arrived  int
	departed int
	leaving  bool
}

// NewGroup creates a group of n in-process ranks.
// Returns ErrGroupSize for n < 1.
func NewGroup(n int) (*Group, error) {
	if n < 1 {
		return nil, ErrGroupSize
	}
	g := &Group{n: n, slots: make([][][]int64, n)}
	for src := range g.slots {
		g.slots[src] = make([][]int64, n)
	}
	g.cond = sync.NewCond(&g.mu)

	return g, nil
}

// Size returns the number of ranks in the group.
func (g *Group) Size() int { return g.n }

// Peer returns the Exchanger of the given rank.
// Returns ErrRankOutOfRange for a rank outside [0, n).
func (g *Group) Peer(rank int) (Exchanger, error) {
	if rank < 0 || rank >= g.n {
		return nil, ErrRankOutOfRange
	}

	return &peer{g: g, rank: rank}, nil
}

// peer is one rank's view of its Group.
type peer struct {
	g    *Group
	rank int
}

// Rank returns the peer's rank.
func (p *peer) Rank() int { return p.rank }

// Size returns the group size.
func (p *peer) Size() int { return p.g.n }

// AllToAll deposits the send buffers, waits for the whole group, and
// returns the column addressed to this rank in source order.
// Buffers are copied on deposit, so callers may reuse their slices.
func (p *peer) AllToAll(send [][]int64) ([]int64, error) {
	g := p.g
	if len(send) != g.n {
		return nil, ErrBadShape
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// Entry gate: the previous collective must fully drain first.
	for g.leaving {
		g.cond.Wait()
	}

	for dst, buf := range send {
		b := make([]int64, len(buf))
		copy(b, buf)
		g.slots[p.rank][dst] = b
	}
	g.arrived++
	if g.arrived == g.n {
		g.leaving = true
		g.cond.Broadcast()
	} else {
		for !g.leaving {
			g.cond.Wait()
		}
	}

	// Every rank has deposited; assemble this rank's receive buffer.
	var recv []int64
	for src := 0; src < g.n; src++ {
		recv = append(recv, g.slots[src][p.rank]...)
	}

	g.departed++
	if g.departed == g.n {
		// Last one out resets the barrier for the next collective.
		g.arrived, g.departed = 0, 0
		g.leaving = false
		for src := range g.slots {
			for dst := range g.slots[src] {
				g.slots[src][dst] = nil
			}
		}
		g.cond.Broadcast()
	}

	return recv, nil
}
