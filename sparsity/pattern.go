// SPDX-License-Identifier: MIT

// Package sparsity: construction and the entry-insertion engine.
package sparsity

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/katalvlaran/sparsekit/comm"
	"github.com/katalvlaran/sparsekit/indexmap"
)

// addressing names the three row/column translation strategies of the
// insertion engine. Only these combinations occur, so they are a
// closed set selected at the public entry points rather than injected
// closures.
type addressing int

const (
	// addrGlobal: global row (owned here, mapped to local), global column.
	addrGlobal addressing = iota
	// addrLocal: local row, local block-component column (mapped to global).
	addrLocal
	// addrLocalGlobal: local row, global column; identity translations.
	addrLocalGlobal
)

// New creates an empty pattern over the given row and column index
// spaces. Both stores are allocated to the scaled owned row count and
// start with no columns; no communication is performed.
//
// Returns ErrNilExchanger / ErrNilIndexMap for nil arguments and
// ErrCommMismatch when a map was built for a different rank or group
// size than ex reports.
// Complexity: O(rows owned).
func New(ex comm.Exchanger, rowMap, colMap *indexmap.Map) (*Pattern, error) {
	if ex == nil {
		return nil, ErrNilExchanger
	}
	if rowMap == nil || colMap == nil {
		return nil, ErrNilIndexMap
	}
	for _, m := range []*indexmap.Map{rowMap, colMap} {
		if m.Rank() != ex.Rank() || m.Ranks() != ex.Size() {
			return nil, ErrCommMismatch
		}
	}

	localRows := int64(rowMap.BlockSize()) * rowMap.Size(indexmap.Owned)
	sp := &Pattern{
		ex:       ex,
		maps:     [2]*indexmap.Map{rowMap, colMap},
		diagonal: newRowSets(localRows),
		fullRows: treeset.NewWith(utils.Int64Comparator),
	}
	if ex.Size() > 1 {
		sp.offDiagonal = newRowSets(localRows)
	}

	return sp, nil
}

// newRowSets allocates n empty ordered-unique column sets.
func newRowSets(n int64) []*treeset.Set {
	sets := make([]*treeset.Set, n)
	for i := range sets {
		sets[i] = treeset.NewWith(utils.Int64Comparator)
	}

	return sets
}

// InsertGlobal records the cross product rows × cols, both in global
// numbering. Every row must lie inside this rank's scaled owned row
// range; remote rows are only representable through the local
// addressing modes, where ghost rows exist.
//
// Duplicate pairs are absorbed by set semantics. On any out-of-range
// index the pattern is left unchanged and ErrIndexOutOfRange is
// returned.
// Complexity: O(|rows|·|cols|·log nnz-per-row).
func (sp *Pattern) InsertGlobal(rows, cols []int64) error {
	return sp.insert(rows, cols, addrGlobal)
}

// InsertLocal records the cross product rows × cols with local row
// indices (owned range first, then ghosts in ghost order) and local
// block-component column indices. Ghost rows are buffered for Apply.
// Complexity: O(|rows|·|cols|·log nnz-per-row).
func (sp *Pattern) InsertLocal(rows, cols []int64) error {
	return sp.insert(rows, cols, addrLocal)
}

// InsertLocalGlobal records the cross product rows × cols with local
// row indices and global column indices (both already in final form).
// Complexity: O(|rows|·|cols|·log nnz-per-row).
func (sp *Pattern) InsertLocalGlobal(rows, cols []int64) error {
	return sp.insert(rows, cols, addrLocalGlobal)
}

// insert is the single parameterized insertion algorithm behind the
// three public entry points. It translates the whole batch first, so
// a bounds violation rejects the call without mutating the pattern,
// then classifies each (I, J):
//
//	full row          → skipped (implicitly dense already)
//	owned row I       → J into diagonal or off-diagonal by column owner
//	ghost row I       → (I, J) buffered into nonLocal for Apply
func (sp *Pattern) insert(rows, cols []int64, mode addressing) error {
	mappedRows := make([]int64, len(rows))
	for i, r := range rows {
		v, err := sp.mapRow(r, mode)
		if err != nil {
			return err
		}
		mappedRows[i] = v
	}
	mappedCols := make([]int64, len(cols))
	for j, c := range cols {
		v, err := sp.mapCol(c, mode)
		if err != nil {
			return err
		}
		mappedCols[j] = v
	}

	if sp.ex.Size() == 1 {
		// Sequential mode: every row and column is owned; only the
		// diagonal store exists.
		for _, i := range mappedRows {
			if sp.fullRows.Contains(i) {
				continue
			}
			for _, j := range mappedCols {
				sp.diagonal[i].Add(j)
			}
		}

		return nil
	}

	scaledOwned0 := sp.scaledOwnedRows()
	scaledLo1, scaledHi1 := sp.scaledColRange()
	for _, i := range mappedRows {
		if sp.fullRows.Contains(i) {
			continue
		}
		if i < scaledOwned0 {
			for _, j := range mappedCols {
				if j >= scaledLo1 && j < scaledHi1 {
					sp.diagonal[i].Add(j)
				} else {
					sp.offDiagonal[i].Add(j)
				}
			}
		} else {
			// Ghost row: defer to Apply, no local mutation.
			for _, j := range mappedCols {
				sp.nonLocal = append(sp.nonLocal, i, j)
			}
		}
	}

	return nil
}

// mapRow translates one row index per the addressing mode and bounds-
// checks it against the extent that mode may address.
func (sp *Pattern) mapRow(r int64, mode addressing) (int64, error) {
	bs0 := int64(sp.maps[RowDim].BlockSize())
	if mode == addrGlobal {
		lo, hi := sp.maps[RowDim].LocalRange()
		if r < bs0*lo || r >= bs0*hi {
			return 0, ErrIndexOutOfRange
		}

		return r - bs0*lo, nil
	}

	// Local row: anywhere below the scaled ghosted extent.
	if r < 0 || r >= bs0*sp.maps[RowDim].Size(indexmap.All) {
		return 0, ErrIndexOutOfRange
	}

	return r, nil
}

// mapCol translates one column index per the addressing mode into
// scaled global numbering.
func (sp *Pattern) mapCol(c int64, mode addressing) (int64, error) {
	bs1 := int64(sp.maps[ColDim].BlockSize())
	if mode == addrLocal {
		// Local block-component index: split into node and component,
		// translate the node (owned range, then ghosts), re-scale.
		if c < 0 {
			return 0, ErrIndexOutOfRange
		}
		g, err := sp.maps[ColDim].LocalToGlobal(c / bs1)
		if err != nil {
			return 0, ErrIndexOutOfRange
		}

		return bs1*g + c%bs1, nil
	}

	// Already global: anywhere below the scaled global extent.
	if c < 0 || c >= bs1*sp.maps[ColDim].Size(indexmap.Global) {
		return 0, ErrIndexOutOfRange
	}

	return c, nil
}

// InsertFullRowsLocal marks local rows as fully dense: logically
// connected to every column without storing per-column entries. Valid
// indices lie below the scaled ghosted row extent. Marked rows
// short-circuit ordinary insertion and are expanded only at export.
//
// On any out-of-range index the pattern is left unchanged.
// Complexity: O(|rows|·log |rows|).
func (sp *Pattern) InsertFullRowsLocal(rows []int64) error {
	ghosted := int64(sp.maps[RowDim].BlockSize()) * sp.maps[RowDim].Size(indexmap.All)
	for _, r := range rows {
		if r < 0 || r >= ghosted {
			return ErrIndexOutOfRange
		}
	}
	for _, r := range rows {
		sp.fullRows.Add(r)
	}

	return nil
}

// scaledOwnedRows returns blockSize(row) * owned row count.
func (sp *Pattern) scaledOwnedRows() int64 {
	return int64(sp.maps[RowDim].BlockSize()) * sp.maps[RowDim].Size(indexmap.Owned)
}

// scaledColRange returns the scaled owned column range [lo, hi).
func (sp *Pattern) scaledColRange() (lo, hi int64) {
	bs1 := int64(sp.maps[ColDim].BlockSize())
	nlo, nhi := sp.maps[ColDim].LocalRange()

	return bs1 * nlo, bs1 * nhi
}
