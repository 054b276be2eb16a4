// SPDX-License-Identifier: MIT
// Package: graphwalk/builder
//
// impl_cycle.go - Cycle(n): the ring v0 → v1 → … → v(n-1) → v0.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Vertices via cfg.idFn in ascending index order.
//   - Edges (i, (i+1) mod n) emitted in ascending i; the closing edge is last.
//   - In a directed graph the ring is a directed cycle, so topological sort
//     reports it as cyclic.
//
// Complexity: O(n) time and space.

package builder

import "github.com/katalvlaran/graphwalk/core"

const (
	methodCycle      = "Cycle"
	minCycleVertices = 3
)

// Cycle returns a Constructor that builds a simple cycle on n vertices.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleVertices {
			return tooFew(methodCycle, "n", n, minCycleVertices)
		}
		ids, err := addVertices(g, cfg, methodCycle, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = link(g, cfg, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
