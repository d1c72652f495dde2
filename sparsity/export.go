// SPDX-License-Identifier: MIT

// Package sparsity: queries, per-row listings and diagnostics.
package sparsity

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"

	"github.com/katalvlaran/sparsekit/indexmap"
)

// LocalRange returns the owned index bounds [lo, hi) of the given
// dimension, scaled by its block size.
func (sp *Pattern) LocalRange(dim Dim) (lo, hi int64, err error) {
	if dim != RowDim && dim != ColDim {
		return 0, 0, ErrIndexOutOfRange
	}
	bs := int64(sp.maps[dim].BlockSize())
	nodeLo, nodeHi := sp.maps[dim].LocalRange()

	return bs * nodeLo, bs * nodeHi, nil
}

// IndexMap returns the index space of the given dimension.
func (sp *Pattern) IndexMap(dim Dim) (*indexmap.Map, error) {
	if dim != RowDim && dim != ColDim {
		return nil, ErrIndexOutOfRange
	}

	return sp.maps[dim], nil
}

// NumNonzeros returns the total local nonzero count: diagonal plus
// off-diagonal entries, with each full row below the owned extent
// contributing the full scaled global column count instead of its
// stores (full rows dominate whatever was inserted around them).
// Complexity: O(rows).
func (sp *Pattern) NumNonzeros() int64 {
	scaledOwned0 := sp.scaledOwnedRows()
	var nz int64
	for i, set := range sp.diagonal {
		if sp.fullRows.Contains(int64(i)) {
			continue
		}
		nz += int64(set.Size())
		if sp.offDiagonal != nil {
			nz += int64(sp.offDiagonal[i].Size())
		}
	}
	for _, v := range sp.fullRows.Values() {
		if row := v.(int64); row < scaledOwned0 {
			nz += sp.scaledGlobalCols()
		}
	}

	return nz
}

// NumNonzerosDiagonal returns the per-row diagonal nonzero counts.
// Full rows report the scaled owned column count.
func (sp *Pattern) NumNonzerosDiagonal() []int64 {
	counts := make([]int64, len(sp.diagonal))
	for i, set := range sp.diagonal {
		counts[i] = int64(set.Size())
	}
	sp.overrideFullRows(counts, sp.scaledOwnedCols())

	return counts
}

// NumNonzerosOffDiagonal returns the per-row off-diagonal nonzero
// counts; all zeros in single-rank mode. Full rows report the scaled
// unowned column count.
func (sp *Pattern) NumNonzerosOffDiagonal() []int64 {
	counts := make([]int64, len(sp.diagonal))
	if sp.offDiagonal == nil {
		return counts
	}
	for i, set := range sp.offDiagonal {
		counts[i] = int64(set.Size())
	}
	sp.overrideFullRows(counts, sp.scaledGlobalCols()-sp.scaledOwnedCols())

	return counts
}

// NumLocalNonzeros returns the per-row totals across both stores.
func (sp *Pattern) NumLocalNonzeros() []int64 {
	counts := sp.NumNonzerosDiagonal()
	if sp.offDiagonal != nil {
		for i, off := range sp.NumNonzerosOffDiagonal() {
			counts[i] += off
		}
	}

	return counts
}

// overrideFullRows replaces the count of every full row below the
// owned extent with n.
func (sp *Pattern) overrideFullRows(counts []int64, n int64) {
	scaledOwned0 := sp.scaledOwnedRows()
	for _, v := range sp.fullRows.Values() {
		if row := v.(int64); row < scaledOwned0 {
			counts[row] = n
		}
	}
}

// DiagonalPattern materializes each local row's diagonal column list.
// The stores are ordered-unique, so both Order values yield ascending
// columns. Full rows expand to the complete scaled owned column range
// here — they were never stored explicitly — overriding anything
// inserted before the row was marked.
// Complexity: O(nnz + full rows · owned columns).
func (sp *Pattern) DiagonalPattern(_ Order) [][]int64 {
	rows := make([][]int64, len(sp.diagonal))
	for i, set := range sp.diagonal {
		rows[i] = setValues(set)
	}

	if !sp.fullRows.Empty() {
		scaledOwned0 := sp.scaledOwnedRows()
		lo, hi := sp.scaledColRange()
		for _, v := range sp.fullRows.Values() {
			row := v.(int64)
			if row >= scaledOwned0 {
				continue
			}
			full := make([]int64, 0, hi-lo)
			for j := lo; j < hi; j++ {
				full = append(full, j)
			}
			rows[row] = full
		}
	}

	return rows
}

// OffDiagonalPattern materializes each local row's off-diagonal
// column list; empty rows in single-rank mode. Full rows expand to
// every column outside the scaled owned range.
// Complexity: O(nnz + full rows · unowned columns).
func (sp *Pattern) OffDiagonalPattern(_ Order) [][]int64 {
	rows := make([][]int64, len(sp.diagonal))
	if sp.offDiagonal == nil {
		for i := range rows {
			rows[i] = []int64{}
		}

		return rows
	}
	for i, set := range sp.offDiagonal {
		rows[i] = setValues(set)
	}

	if !sp.fullRows.Empty() {
		scaledOwned0 := sp.scaledOwnedRows()
		lo, hi := sp.scaledColRange()
		global := sp.scaledGlobalCols()
		for _, v := range sp.fullRows.Values() {
			row := v.(int64)
			if row >= scaledOwned0 {
				continue
			}
			full := make([]int64, 0, global-(hi-lo))
			for j := int64(0); j < lo; j++ {
				full = append(full, j)
			}
			for j := hi; j < global; j++ {
				full = append(full, j)
			}
			rows[row] = full
		}
	}

	return rows
}

// String dumps every local row's stored entries, diagonal first, one
// row per line. Full rows are shown as stored (a flag), not expanded.
func (sp *Pattern) String() string {
	var b strings.Builder
	for i, set := range sp.diagonal {
		fmt.Fprintf(&b, "Row %d:", i)
		for _, v := range set.Values() {
			fmt.Fprintf(&b, " %d", v.(int64))
		}
		if sp.offDiagonal != nil {
			for _, v := range sp.offDiagonal[i].Values() {
				fmt.Fprintf(&b, " %d", v.(int64))
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// InfoStatistics summarizes the pattern: matrix extent, total nonzero
// count with fill percentage, and the diagonal / off-diagonal /
// pending non-local split.
func (sp *Pattern) InfoStatistics() string {
	var nnzDiagonal, nnzOffDiagonal int64
	for _, set := range sp.diagonal {
		nnzDiagonal += int64(set.Size())
	}
	for _, set := range sp.offDiagonal {
		nnzOffDiagonal += int64(set.Size())
	}
	nnzNonLocal := sp.NumNonLocal()
	total := nnzDiagonal + nnzOffDiagonal + nnzNonLocal

	size0 := int64(sp.maps[RowDim].BlockSize()) * sp.maps[RowDim].Size(indexmap.Global)
	size1 := sp.scaledGlobalCols()

	var b strings.Builder
	fill := 0.0
	if size0 > 0 && size1 > 0 {
		fill = 100.0 * float64(total) / float64(size0*size1)
	}
	fmt.Fprintf(&b, "Matrix of size %d x %d has %d (%.5g%%) nonzero entries.\n",
		size0, size1, total, fill)

	if total != nnzDiagonal && total > 0 {
		pct := func(n int64) float64 { return 100.0 * float64(n) / float64(total) }
		fmt.Fprintf(&b, "Diagonal: %d (%.5g%%), off-diagonal: %d (%.5g%%), non-local: %d (%.5g%%)\n",
			nnzDiagonal, pct(nnzDiagonal), nnzOffDiagonal, pct(nnzOffDiagonal), nnzNonLocal, pct(nnzNonLocal))
	}

	return b.String()
}

// setValues copies an ordered-unique set into an int64 slice.
func setValues(set *treeset.Set) []int64 {
	vals := set.Values()
	out := make([]int64, len(vals))
	for i, v := range vals {
		out[i] = v.(int64)
	}

	return out
}

// scaledOwnedCols returns blockSize(col) * owned column count.
func (sp *Pattern) scaledOwnedCols() int64 {
	return int64(sp.maps[ColDim].BlockSize()) * sp.maps[ColDim].Size(indexmap.Owned)
}
