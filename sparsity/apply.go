// SPDX-License-Identifier: MIT

// Package sparsity: the collective finalization step.
package sparsity

import (
	"fmt"

	"github.com/katalvlaran/sparsekit/indexmap"
)

// Apply resolves every buffered non-local entry into the store of its
// owning rank. It is collective and one-shot:
//
//  1. Each buffered (row, col) pair is routed by the row's ghost
//     owner, the row rebuilt in absolute global numbering from the
//     ghost list and its block component.
//  2. The per-destination buffers are exchanged all-to-all.
//  3. Every received row must lie inside this rank's scaled owned
//     range — anything else is ErrProtocolViolation and finalization
//     is abandoned whole (no partial success).
//  4. Received columns are classified into diagonal/off-diagonal
//     exactly as in ordinary insertion, and the buffer is cleared.
//
// Every rank of the group must call Apply, in the same relative order
// of collectives. A second Apply is a harmless no-op beyond an empty
// exchange: nothing is buffered, nothing is duplicated. In
// single-rank mode there is nothing to exchange at all.
// Complexity: O(buffered + received·log nnz-per-row) plus the exchange.
func (sp *Pattern) Apply() error {
	if sp.ex.Size() == 1 {
		// No ghost rows can exist; the buffer is empty by construction.
		sp.nonLocal = nil

		return nil
	}

	rowMap := sp.maps[RowDim]
	bs0 := int64(rowMap.BlockSize())
	nodeLo0, nodeHi0 := rowMap.LocalRange()
	scaledOwned0 := sp.scaledOwnedRows()
	offset0 := bs0 * nodeLo0
	ghosts := rowMap.Ghosts()

	// Route each buffered pair to the rank owning its row.
	send := make([][]int64, sp.ex.Size())
	for i := 0; i+1 < len(sp.nonLocal); i += 2 {
		iIndex := sp.nonLocal[i]
		j := sp.nonLocal[i+1]

		// Buffered rows are ghost rows by construction of insert.
		node := (iIndex - scaledOwned0) / bs0
		component := (iIndex - scaledOwned0) % bs0
		owner, err := rowMap.GhostOwner(int(node))
		if err != nil {
			return fmt.Errorf("sparsity: buffered row %d beyond ghost extent: %w", iIndex, ErrProtocolViolation)
		}

		// Absolute global row of the ghost node.
		globalRow := bs0*ghosts[node] + component
		send[owner] = append(send[owner], globalRow, j)
	}

	received, err := sp.ex.AllToAll(send)
	if err != nil {
		return err
	}
	if len(received)%2 != 0 {
		return fmt.Errorf("sparsity: odd exchange payload of %d values: %w", len(received), ErrProtocolViolation)
	}

	scaledLo1, scaledHi1 := sp.scaledColRange()
	for i := 0; i < len(received); i += 2 {
		globalRow := received[i]
		j := received[i+1]

		if globalRow < offset0 || globalRow >= bs0*nodeHi0 {
			return fmt.Errorf("sparsity: row %d outside owned range [%d, %d): %w",
				globalRow, offset0, bs0*nodeHi0, ErrProtocolViolation)
		}

		local := globalRow - offset0
		if j >= scaledLo1 && j < scaledHi1 {
			sp.diagonal[local].Add(j)
		} else {
			sp.offDiagonal[local].Add(j)
		}
	}

	sp.nonLocal = nil

	return nil
}

// NumNonLocal reports how many entries are still buffered for Apply.
// Zero after a successful finalization.
func (sp *Pattern) NumNonLocal() int64 { return int64(len(sp.nonLocal) / 2) }

// scaledGlobalCols returns blockSize(col) * global column count.
func (sp *Pattern) scaledGlobalCols() int64 {
	return int64(sp.maps[ColDim].BlockSize()) * sp.maps[ColDim].Size(indexmap.Global)
}
