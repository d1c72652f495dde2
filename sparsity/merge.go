// SPDX-License-Identifier: MIT

// Package sparsity: the block-merge constructor.
package sparsity

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/katalvlaran/sparsekit/comm"
	"github.com/katalvlaran/sparsekit/indexmap"
)

// Merge assembles one flat pattern from a 2-D grid of finalized
// sub-patterns, one per (block-row, block-column) position. All
// sub-patterns of a block row must share the row index space extents;
// all of a block column the column index space extents.
//
// Every stored column index is translated into the merged numbering
// (rank-major, block-column-minor; see indexmap.MergedIndex) and
// inserted at the merged local row, offset by the preceding block
// rows. The merged pattern gets fresh ghost-free index maps of block
// size 1, sized to the summed scaled local counts. The result equals
// a pattern built directly against the merged numbering from the same
// entries.
//
// Returns ErrBadShape for an empty/ragged grid or inconsistent index
// spaces along a block row or column, ErrNilPattern for nil blocks,
// ErrNotFinalized when a sub-pattern still buffers non-local entries,
// ErrBlockSizeMismatch when the sub-pattern maps disagree on block
// size, and ErrCommMismatch when a sub-pattern was built for a
// different group.
// Complexity: O(total stored entries · (P·F + log nnz-per-row)).
func Merge(ex comm.Exchanger, blocks [][]*Pattern) (*Pattern, error) {
	if ex == nil {
		return nil, ErrNilExchanger
	}
	if err := checkGrid(ex, blocks); err != nil {
		return nil, err
	}

	distributed := ex.Size() > 1
	bs := int64(blocks[0][0].maps[RowDim].BlockSize())

	// Column maps of the first block row drive the merged numbering.
	colMaps := make([]*indexmap.Map, len(blocks[0]))
	for c := range blocks[0] {
		colMaps[c] = blocks[0][c].maps[ColDim]
	}

	// Merged ownership tables: each rank owns the concatenation of its
	// scaled owned spans across block rows (resp. columns). The range
	// tables of the sub-pattern maps already carry every rank's count,
	// so no communication is needed here either.
	rowOwned := make([]int64, ex.Size())
	for _, blockRow := range blocks {
		m := blockRow[0].maps[RowDim]
		for p := 0; p < ex.Size(); p++ {
			n, err := m.OwnedOn(p)
			if err != nil {
				return nil, err
			}
			rowOwned[p] += bs * n
		}
	}
	colOwned := make([]int64, ex.Size())
	for _, m := range colMaps {
		for p := 0; p < ex.Size(); p++ {
			n, err := m.OwnedOn(p)
			if err != nil {
				return nil, err
			}
			colOwned[p] += bs * n
		}
	}

	mergedRowMap, err := indexmap.New(ex.Rank(), rowOwned, nil, 1)
	if err != nil {
		return nil, err
	}
	mergedColMap, err := indexmap.New(ex.Rank(), colOwned, nil, 1)
	if err != nil {
		return nil, err
	}

	sp := &Pattern{
		ex:       ex,
		maps:     [2]*indexmap.Map{mergedRowMap, mergedColMap},
		diagonal: newRowSets(rowOwned[ex.Rank()]),
		fullRows: treeset.NewWith(utils.Int64Comparator),
	}
	if distributed {
		sp.offDiagonal = newRowSets(rowOwned[ex.Rank()])
	}

	// Walk block rows, accumulating the merged local row offset.
	var rowOffset int64
	for _, blockRow := range blocks {
		rowSize := bs * blockRow[0].maps[RowDim].Size(indexmap.Owned)

		for c, block := range blockRow {
			for k, set := range block.diagonal {
				if err = mergeRow(sp.diagonal[rowOffset+int64(k)], set, colMaps, c); err != nil {
					return nil, err
				}
			}
			if !distributed {
				continue
			}
			for k, set := range block.offDiagonal {
				if err = mergeRow(sp.offDiagonal[rowOffset+int64(k)], set, colMaps, c); err != nil {
					return nil, err
				}
			}
		}

		rowOffset += rowSize
	}

	return sp, nil
}

// mergeRow translates every column of src through the merged
// numbering of block column field and adds it to dst.
func mergeRow(dst, src *treeset.Set, colMaps []*indexmap.Map, field int) error {
	for _, v := range src.Values() {
		merged, err := indexmap.MergedIndex(colMaps, field, v.(int64))
		if err != nil {
			return fmt.Errorf("sparsity: merge renumbering failed: %w", err)
		}
		dst.Add(merged)
	}

	return nil
}

// checkGrid validates the merge preconditions: rectangular non-empty
// grid, no nil blocks, finalized sub-patterns, one uniform block size,
// consistent row spaces along each block row and column spaces along
// each block column, and group membership matching ex.
func checkGrid(ex comm.Exchanger, blocks [][]*Pattern) error {
	if len(blocks) == 0 || len(blocks[0]) == 0 {
		return ErrBadShape
	}
	cols := len(blocks[0])
	bs := 0

	for _, blockRow := range blocks {
		if len(blockRow) != cols {
			return ErrBadShape
		}
		for c, block := range blockRow {
			if block == nil {
				return ErrNilPattern
			}
			if len(block.nonLocal) > 0 {
				return ErrNotFinalized
			}
			rowMap, colMap := block.maps[RowDim], block.maps[ColDim]
			if rowMap.Ranks() != ex.Size() || rowMap.Rank() != ex.Rank() {
				return ErrCommMismatch
			}
			if bs == 0 {
				bs = rowMap.BlockSize()
			}
			if rowMap.BlockSize() != bs || colMap.BlockSize() != bs {
				return ErrBlockSizeMismatch
			}
			// Row space must agree across the block row, column space
			// down the block column.
			if rowMap.Size(indexmap.Owned) != blockRow[0].maps[RowDim].Size(indexmap.Owned) ||
				rowMap.Size(indexmap.Global) != blockRow[0].maps[RowDim].Size(indexmap.Global) {
				return ErrBadShape
			}
			if colMap.Size(indexmap.Owned) != blocks[0][c].maps[ColDim].Size(indexmap.Owned) ||
				colMap.Size(indexmap.Global) != blocks[0][c].maps[ColDim].Size(indexmap.Global) {
				return ErrBadShape
			}
		}
	}

	return nil
}
