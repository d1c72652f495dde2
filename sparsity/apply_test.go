package sparsity_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsekit/comm"
	"github.com/katalvlaran/sparsekit/sparsity"
)

// TestApply_SingleRank: finalization without a group is a pure no-op,
// and repeating it changes nothing.
func TestApply_SingleRank(t *testing.T) {
	sp := serialPattern(t, 3, 3, 1)
	require.NoError(t, sp.InsertGlobal([]int64{0, 2}, []int64{1}))

	require.NoError(t, sp.Apply())
	once := sp.NumNonzeros()
	diag := sp.DiagonalPattern(sparsity.OrderSorted)

	require.NoError(t, sp.Apply())
	require.Equal(t, once, sp.NumNonzeros())
	require.Equal(t, diag, sp.DiagonalPattern(sparsity.OrderSorted))
	require.Equal(t, int64(0), sp.NumNonLocal())
}

// TestApply_CrossProcessResolution replays the spec scenario: 2 ranks
// owning 2 of 4 rows each; rank 0 inserts (row 2, col 0), which rank 1
// owns. The entry must travel through the collective exchange.
func TestApply_CrossProcessResolution(t *testing.T) {
	err := comm.Run(2, func(ex comm.Exchanger) error {
		rowMap, colMap, errMaps := rankMaps(ex.Rank())
		if errMaps != nil {
			return errMaps
		}
		sp, errNew := sparsity.New(ex, rowMap, colMap)
		if errNew != nil {
			return errNew
		}

		if ex.Rank() == 0 {
			// Local row 2 is ghost 0 → global row 2, owned by rank 1.
			if errIns := sp.InsertLocalGlobal([]int64{2}, []int64{0}); errIns != nil {
				return errIns
			}
			if sp.NumNonLocal() != 1 {
				return fmt.Errorf("rank 0: buffered %d entries, want 1", sp.NumNonLocal())
			}
		}

		if errApply := sp.Apply(); errApply != nil {
			return errApply
		}
		if sp.NumNonLocal() != 0 {
			return fmt.Errorf("rank %d: non-local buffer not cleared", ex.Rank())
		}

		switch ex.Rank() {
		case 0:
			if nz := sp.NumNonzeros(); nz != 0 {
				return fmt.Errorf("rank 0: unexpected local entries: %d", nz)
			}
		case 1:
			// Row 2 is rank 1's local row 0; column 0 is owned by rank 0,
			// so the entry lands off-diagonal.
			off := sp.OffDiagonalPattern(sparsity.OrderSorted)[0]
			if !reflect.DeepEqual(off, []int64{0}) {
				return fmt.Errorf("rank 1: off-diagonal row 0 = %v, want [0]", off)
			}
			if len(sp.DiagonalPattern(sparsity.OrderSorted)[0]) != 0 {
				return fmt.Errorf("rank 1: diagonal row 0 should be empty")
			}
		}

		// Apply idempotence across the group: a second collective call
		// must not duplicate or corrupt anything.
		before := sp.NumNonzeros()
		if errApply := sp.Apply(); errApply != nil {
			return errApply
		}
		if sp.NumNonzeros() != before {
			return fmt.Errorf("rank %d: second Apply changed the count", ex.Rank())
		}

		return nil
	})
	require.NoError(t, err)
}

// TestApply_RoutesByGhostOwner inspects the send matrix handed to the
// exchange: buffered pairs must target the row owner with the row in
// absolute global numbering.
func TestApply_RoutesByGhostOwner(t *testing.T) {
	ex := &stubExchanger{}
	sp := stubPattern(t, ex)

	// Ghost local row 2 → global row 2, owned by rank 1; column 1.
	require.NoError(t, sp.InsertLocalGlobal([]int64{2}, []int64{1}))
	require.NoError(t, sp.Apply())

	require.Len(t, ex.sent, 2)
	require.Empty(t, ex.sent[0])
	require.Equal(t, []int64{2, 1}, ex.sent[1])
	require.Equal(t, int64(0), sp.NumNonLocal())
}

// TestApply_ProtocolViolation: a received row outside the owned range
// aborts finalization with the dedicated sentinel.
func TestApply_ProtocolViolation(t *testing.T) {
	cases := []struct {
		name string
		recv []int64
	}{
		{"RowBeyondOwned", []int64{2, 0}}, // rank 0 owns rows [0, 2)
		{"RowNegative", []int64{-1, 0}},
		{"OddPayload", []int64{0, 1, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sp := stubPattern(t, &stubExchanger{recv: tc.recv})
			require.ErrorIs(t, sp.Apply(), sparsity.ErrProtocolViolation)
		})
	}
}

// TestApply_InsertsReceived: entries delivered by the exchange are
// classified like ordinary insertions.
func TestApply_InsertsReceived(t *testing.T) {
	// Rank 0 owns rows [0,2) and columns [0,2); (1, 1) is diagonal,
	// (0, 3) off-diagonal.
	sp := stubPattern(t, &stubExchanger{recv: []int64{1, 1, 0, 3}})
	require.NoError(t, sp.Apply())

	require.Equal(t, []int64{1}, sp.DiagonalPattern(sparsity.OrderSorted)[1])
	require.Equal(t, []int64{3}, sp.OffDiagonalPattern(sparsity.OrderSorted)[0])
	require.Equal(t, int64(2), sp.NumNonzeros())
}
