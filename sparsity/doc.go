// SPDX-License-Identifier: MIT

// Package sparsity builds the nonzero structure of a distributed
// sparse matrix before any numeric value exists.
//
// What:
//
//   - Pattern records, per locally owned row, the global column
//     indices that will later hold nonzeros, split into a diagonal
//     store (columns owned by this rank) and an off-diagonal store
//     (columns owned elsewhere).
//   - Entries addressed to rows owned by another rank are buffered
//     and resolved by the collective Apply step.
//   - Rows declared fully dense are kept in a sparse overlay and
//     expanded only at export time.
//   - Merge assembles one flat pattern out of a 2-D grid of
//     finalized sub-patterns, renumbering columns across block
//     boundaries.
//
// Why:
//
//   - Sparse solvers preallocate storage from exactly this
//     information: per-row diagonal/off-diagonal nonzero counts and
//     column lists, per rank.
//
// Addressing modes:
//
//   - InsertGlobal:      global rows (owned here), global columns.
//   - InsertLocal:       local rows, local block-component columns.
//   - InsertLocalGlobal: local rows, global columns.
//
// Lifecycle:
//
//	New/Merge → Insert* / InsertFullRowsLocal → Apply → queries.
//	Apply is collective: every rank must call it, in the same relative
//	order of collectives. After Apply succeeds the non-local buffer is
//	empty; queries assume no further mutation.
//
// Errors:
//
//   - ErrIndexOutOfRange: index outside the declared extent; the
//     pattern is left unchanged.
//   - ErrNotFinalized: a sub-pattern passed to Merge still holds
//     buffered non-local entries.
//   - ErrProtocolViolation: Apply received a row outside the owned
//     range (corrupted exchange or routing bug).
//   - ErrBadShape, ErrNilPattern, ErrNilExchanger, ErrNilIndexMap,
//     ErrCommMismatch, ErrBlockSizeMismatch: construction-time
//     contract violations.
//
// Concurrency: one logical writer per rank; a Pattern is not safe for
// concurrent mutation. Parallelism lives across ranks, meeting only
// inside Apply's exchange.
package sparsity
