// SPDX-License-Identifier: MIT
// Package: graphwalk/builder
//
// impl_path.go - Path(n): the simple chain v0 → v1 → … → v(n-1).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Vertices via cfg.idFn in ascending index order.
//   - Edges (i, i+1) for i in [0, n-2], one per pair; undirected graphs mirror on read.
//
// Complexity: O(n) time, O(n) space for the label slice.

package builder

import "github.com/katalvlaran/graphwalk/core"

const (
	methodPath      = "Path"
	minPathVertices = 2
)

// Path returns a Constructor that builds a simple path on n vertices.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathVertices {
			return tooFew(methodPath, "n", n, minPathVertices)
		}
		ids, err := addVertices(g, cfg, methodPath, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = link(g, cfg, methodPath, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}
