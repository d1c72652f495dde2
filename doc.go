// Package sparsekit builds distributed sparsity patterns: the per-row
// column-index structure of a sparse matrix whose rows and columns are
// partitioned across a group of ranks, recorded before any numeric
// value exists.
//
// 🚀 What is sparsekit?
//
//	A small, deterministic library that brings together:
//		• Index spaces: block size, ownership ranges, ghost rows & owners
//		• Sparsity patterns: diagonal / off-diagonal row stores,
//		  full-row overlays, deferred non-local entries
//		• Three insertion addressing modes: global, local, local-global
//		• A collective finalization step resolving cross-rank entries
//		• Block merging of finalized sub-patterns with renumbering
//
// ✨ Why choose sparsekit?
//
//   - Deterministic – ordered-unique row sets, stable exports
//   - Honest errors – sentinel errors, errors.Is everywhere, no panics
//     on caller input
//   - Transport-agnostic – the collective exchange is an interface;
//     a single-rank stub and an in-process rank group ship with it
//
// Everything is organized under three subpackages:
//
//	indexmap/ — per-dimension ownership, ghosts, local↔global translation
//	comm/     — the all-to-all exchange seam and an in-process rank group
//	sparsity/ — the Pattern itself: insertion, finalization, merge, export
//
// Quick ASCII example (2 ranks, 4 rows):
//
//	rank 0 owns rows 0..1      rank 1 owns rows 2..3
//	insert (2, 0) on rank 0 →  buffered, resolved at Apply()
//
// Dive into examples/ and the package docs for full scenarios.
//
//	go get github.com/katalvlaran/sparsekit/sparsity
package sparsekit
