// SPDX-License-Identifier: MIT

// Package sparsity: domain types shared across the package.
package sparsity

import (
	"github.com/emirpasic/gods/sets/treeset"

	"github.com/katalvlaran/sparsekit/comm"
	"github.com/katalvlaran/sparsekit/indexmap"
)

// Dim selects one of the two pattern dimensions.
type Dim int

const (
	// RowDim addresses the row index space (dimension 0).
	RowDim Dim = 0
	// ColDim addresses the column index space (dimension 1).
	ColDim Dim = 1
)

// Order selects the column ordering of exported row listings.
//
// The row stores are ordered-unique sets, so exports are ascending
// either way; the two values are kept for call-site clarity and API
// stability should the store ever change.
type Order int

const (
	// OrderUnsorted places no ordering requirement on exports.
	OrderUnsorted Order = iota
	// OrderSorted requires ascending column order.
	OrderSorted
)

// Pattern is the sparsity pattern of one rank of a distributed
// matrix. It is created by New or Merge, mutated through the Insert*
// methods and Apply, and read through the query/export methods.
// It is not safe for concurrent mutation (one logical writer per
// rank).
//
// Invariants (held between public calls):
//   - len(diagonal) == blockSize(row) * ownedRows, and
//     len(offDiagonal) is equal or zero (single-rank mode).
//   - nonLocal holds flat (globalish-row, global-col) pairs and is
//     empty after a successful Apply.
//   - every full-row index is below blockSize(row) * ghostedRows.
type Pattern struct {
	ex   comm.Exchanger
	maps [2]*indexmap.Map

	// diagonal[i] holds the global columns of local row i that fall
	// inside this rank's owned column range; offDiagonal[i] the rest.
	// Ordered-unique sets of int64 (treeset with Int64Comparator).
	diagonal    []*treeset.Set
	offDiagonal []*treeset.Set // nil in single-rank mode

	// nonLocal buffers (row, col) pairs whose row is not owned here,
	// flat, pairwise; resolved and cleared by Apply.
	nonLocal []int64

	// fullRows marks local rows connected to every column; such rows
	// bypass the stores and are expanded only at export time.
	fullRows *treeset.Set
}
