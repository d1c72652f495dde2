// Package comm is the collective-communication seam of sparsekit.
//
// What:
//
//   - Exchanger: the all-to-all primitive a sparsity pattern needs to
//     resolve non-local entries, keyed by destination rank.
//   - Self: the single-rank exchanger (no communication at all).
//   - Group: n in-process ranks joined by a cyclic barrier, exchanging
//     through shared memory. One goroutine per rank.
//   - Run: a harness executing one function per rank, propagating the
//     first error (errgroup semantics).
//
// Why:
//
//   - Keeping the exchange behind an interface makes finalization
//     testable without a real multi-process transport, and lets a
//     production transport (e.g. MPI bindings) slot in unchanged.
//
// Contract:
//
//   - AllToAll is bulk-synchronous: every rank of the group must call
//     it, in the same relative order of collectives. A rank that never
//     calls leaves the others blocked; there is no timeout here — that
//     policy belongs to the caller's layer.
//
// Errors:
//
//   - ErrGroupSize: a group of fewer than one rank was requested.
//   - ErrRankOutOfRange: peer rank outside [0, n).
//   - ErrBadShape: send buffer count does not match the group size.
package comm
