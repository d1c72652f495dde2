// Package comm: the Exchanger interface and the single-rank implementation.
package comm

// Exchanger is the collective all-to-all primitive. Implementations
// identify the calling rank, the group size, and exchange one
// variable-length int64 buffer per destination rank.
type Exchanger interface {
	// Rank returns the calling rank, in [0, Size()).
	Rank() int

	// Size returns the number of ranks in the group.
	Size() int

	// AllToAll sends send[p] to rank p for every p and returns the
	// concatenation of the buffers addressed to the caller, in source
	// rank order 0..Size()-1. len(send) must equal Size()
	// (ErrBadShape otherwise). The call blocks until every rank of the
	// group has entered the same collective.
	AllToAll(send [][]int64) ([]int64, error)
}

// Self is the degenerate single-rank Exchanger: rank 0 of a group of
// one, whose exchange hands the buffer straight back.
type Self struct{}

// Rank returns 0.
func (Self) Rank() int { return 0 }

// Size returns 1.
func (Self) Size() int { return 1 }

// AllToAll returns a copy of the single self-addressed buffer.
func (Self) AllToAll(send [][]int64) ([]int64, error) {
	if len(send) != 1 {
		return nil, ErrBadShape
	}
	out := make([]int64, len(send[0]))
	copy(out, send[0])

	return out, nil
}
