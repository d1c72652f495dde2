// Package comm: the per-rank execution harness.
package comm

import "golang.org/x/sync/errgroup"

// Run executes fn once per rank of a fresh n-rank Group, each call on
// its own goroutine, and waits for all of them. The first non-nil
// error is returned (errgroup semantics); the remaining ranks still
// run to completion.
//
// fn must treat its Exchanger as the rank identity: all collectives
// it performs must be performed by every rank, in the same relative
// order, or the group deadlocks (see the package contract).
func Run(n int, fn func(ex Exchanger) error) error {
	g, err := NewGroup(n)
	if err != nil {
		return err
	}

	var eg errgroup.Group
	for rank := 0; rank < n; rank++ {
		ex, errPeer := g.Peer(rank)
		if errPeer != nil {
			return errPeer
		}
		eg.Go(func() error { return fn(ex) })
	}

	return eg.Wait()
}
