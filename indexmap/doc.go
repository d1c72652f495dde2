// Package indexmap describes one dimension of a distributed index
// space: which contiguous node range each rank owns, the block size
// grouping scalar indices into nodes, and the ghost nodes a rank
// references but does not own.
//
// What:
//
//   - Map holds the ownership-range table of every rank, the local
//     ghost list and the resolved owner of each ghost.
//   - Local↔global translation covers owned nodes and ghosts.
//   - MergedIndex renumbers a block-column index into the flat
//     numbering used when finalized patterns are merged.
//
// Why:
//
//   - A sparsity pattern needs to classify every inserted column as
//     owned or remote, and to route every remote row to its owner.
//
// Units:
//
//   - All ranges and counts are in node units; callers scale by
//     BlockSize() where scalar (block-component) indices are needed.
//
// Errors:
//
//   - ErrBadShape, ErrBlockSize, ErrRankOutOfRange: malformed construction.
//   - ErrIndexOutOfRange: index outside the declared extent.
//   - ErrGhostOwned: a ghost lies inside the local owned range.
//   - ErrBlockSizeMismatch: merged maps disagree on block size.
package indexmap
