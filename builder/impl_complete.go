// SPDX-License-Identifier: MIT
// Package: graphwalk/builder
//
// impl_complete.go - Complete(n): K_n.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - One edge i → j for every pair i < j, emitted i asc then j asc.
//     In a directed graph this orientation is acyclic, which makes
//     Complete a handy DAG for topological sort.
//
// Complexity: O(n²) time, O(n) space.

package builder

import "github.com/katalvlaran/graphwalk/core"

const (
	methodComplete      = "Complete"
	minCompleteVertices = 1
)

// Complete returns a Constructor that builds the complete graph on n vertices.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteVertices {
			return tooFew(methodComplete, "n", n, minCompleteVertices)
		}
		ids, err := addVertices(g, cfg, methodComplete, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = link(g, cfg, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
