// SPDX-License-Identifier: MIT

// Package sparsity: sentinel error set.
// All public operations return these sentinels (possibly wrapped with
// context via fmt.Errorf("...: %w", ...)); tests and callers match
// them via errors.Is. No function panics on caller input.
package sparsity

import "errors"

var (
	// ErrNilExchanger indicates a nil collective exchanger.
	ErrNilExchanger = errors.New("sparsity: nil exchanger")

	// ErrNilIndexMap indicates a nil row or column index map.
	ErrNilIndexMap = errors.New("sparsity: nil index map")

	// ErrNilPattern indicates a nil *Pattern in a merge grid.
	ErrNilPattern = errors.New("sparsity: nil sub-pattern")

	// ErrCommMismatch indicates an index map built for a different rank
	// or group size than the exchanger reports.
	ErrCommMismatch = errors.New("sparsity: index map does not match exchanger rank/size")

	// ErrIndexOutOfRange indicates a row or column index outside the
	// declared index-space extent. The pattern is left unchanged.
	ErrIndexOutOfRange = errors.New("sparsity: index out of range")

	// ErrBadShape indicates a malformed merge grid (empty, ragged, or
	// with inconsistent index spaces along a block row or column).
	ErrBadShape = errors.New("sparsity: malformed block grid")

	// ErrBlockSizeMismatch indicates merge sub-patterns whose index
	// maps disagree on block size.
	ErrBlockSizeMismatch = errors.New("sparsity: mismatched block sizes in merge")

	// ErrNotFinalized indicates a merge sub-pattern with buffered
	// non-local entries; Apply must be called on it first.
	ErrNotFinalized = errors.New("sparsity: sub-pattern not finalized (Apply required)")

	// ErrProtocolViolation indicates a received entry outside the owned
	// row range during Apply: a corrupted exchange or a routing bug.
	// Finalization is aborted; no partial success is reported.
	ErrProtocolViolation = errors.New("sparsity: received entry outside owned row range")
)
