// Package indexmap: sentinel error set.
// All constructors and accessors return these sentinels; callers match
// them via errors.Is. No function in this package panics on caller input.
package indexmap

import "errors"

var (
	// ErrBadShape indicates a malformed ownership table (no ranks, or a
	// negative owned count).
	ErrBadShape = errors.New("indexmap: malformed ownership table")

	// ErrBlockSize indicates a non-positive block size.
	ErrBlockSize = errors.New("indexmap: block size must be >= 1")

	// ErrRankOutOfRange indicates a rank outside [0, Ranks()).
	ErrRankOutOfRange = errors.New("indexmap: rank out of range")

	// ErrIndexOutOfRange indicates an index outside the declared extent
	// (local, ghosted or global, depending on the accessor).
	ErrIndexOutOfRange = errors.New("indexmap: index out of range")

	// ErrGhostOwned indicates a ghost node that lies inside the local
	// owned range; a rank must not ghost its own nodes.
	ErrGhostOwned = errors.New("indexmap: ghost node is locally owned")

	// ErrBlockSizeMismatch indicates that maps participating in a merged
	// renumbering disagree on block size.
	ErrBlockSizeMismatch = errors.New("indexmap: mismatched block sizes")

	// ErrNilMap indicates a nil *Map argument.
	ErrNilMap = errors.New("indexmap: nil map")
)
