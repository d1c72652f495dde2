// Package comm: sentinel error set.
package comm

import "errors"

var (
	// ErrGroupSize indicates a group of fewer than one rank was requested.
	ErrGroupSize = errors.New("comm: group size must be >= 1")

	// ErrRankOutOfRange indicates a peer rank outside [0, n).
	ErrRankOutOfRange = errors.New("comm: rank out of range")

	// ErrBadShape indicates a send matrix whose buffer count does not
	// match the group size.
	ErrBadShape = errors.New("comm: send buffer count must equal group size")
)
