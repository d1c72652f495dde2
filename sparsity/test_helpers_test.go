package sparsity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsekit/comm"
	"github.com/katalvlaran/sparsekit/indexmap"
	"github.com/katalvlaran/sparsekit/sparsity"
)

// serialMap builds a single-rank index map of n nodes with the given
// block size.
func serialMap(t *testing.T, n int64, bs int) *indexmap.Map {
	t.Helper()
	m, err := indexmap.New(0, []int64{n}, nil, bs)
	require.NoError(t, err)

	return m
}

// serialPattern builds a single-rank rows×cols pattern (node counts,
// one block size for both dimensions).
func serialPattern(t *testing.T, rows, cols int64, bs int) *sparsity.Pattern {
	t.Helper()
	sp, err := sparsity.New(comm.Self{}, serialMap(t, rows, bs), serialMap(t, cols, bs))
	require.NoError(t, err)

	return sp
}

// rankMaps builds the 2-rank spec layout: 4 rows and 4 columns, each
// rank owning 2 of each, block size 1. Rank 0 additionally ghosts
// row 2 so it can address rank 1's rows.
func rankMaps(rank int) (rowMap, colMap *indexmap.Map, err error) {
	var ghosts []int64
	if rank == 0 {
		ghosts = []int64{2}
	}
	rowMap, err = indexmap.New(rank, []int64{2, 2}, ghosts, 1)
	if err != nil {
		return nil, nil, err
	}
	colMap, err = indexmap.New(rank, []int64{2, 2}, nil, 1)
	if err != nil {
		return nil, nil, err
	}

	return rowMap, colMap, nil
}

// stubExchanger fakes a 2-rank group on rank 0 and hands back a canned
// receive buffer, letting single-goroutine tests drive the multi-rank
// paths of Apply (the spec's "inject a mock exchange").
type stubExchanger struct {
	recv []int64
	sent [][]int64
}

func (s *stubExchanger) Rank() int { return 0 }
func (s *stubExchanger) Size() int { return 2 }

func (s *stubExchanger) AllToAll(send [][]int64) ([]int64, error) {
	s.sent = send

	return s.recv, nil
}

// stubPattern builds a pattern over the rank-0 maps of rankMaps wired
// to the given stub exchanger.
func stubPattern(t *testing.T, ex *stubExchanger) *sparsity.Pattern {
	t.Helper()
	rowMap, colMap, err := rankMaps(0)
	require.NoError(t, err)
	sp, err := sparsity.New(ex, rowMap, colMap)
	require.NoError(t, err)

	return sp
}
