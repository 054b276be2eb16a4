// SPDX-License-Identifier: MIT
// Package: graphwalk/builder
//
// impl_star.go - Star(n) and Wheel(n).
//
// Star(n):
//   - n ≥ 2 total vertices; index 0 is the hub, 1..n-1 are leaves.
//   - Edges hub → leaf in ascending leaf order.
//
// Wheel(n):
//   - n ≥ 4 total vertices; index 0 is the hub, 1..n-1 form a rim cycle.
//   - Edges: spokes first (hub → rim i), then the rim ring (i → i+1, last → 1).
//
// Both take labels from cfg.idFn, so the hub is cfg.idFn(0).
//
// Complexity: O(n) time and space.

package builder

import "github.com/katalvlaran/graphwalk/core"

const (
	methodStar       = "Star"
	minStarVertices  = 2
	methodWheel      = "Wheel"
	minWheelVertices = 4
)

// Star returns a Constructor that builds a star on n vertices.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarVertices {
			return tooFew(methodStar, "n", n, minStarVertices)
		}
		ids, err := addVertices(g, cfg, methodStar, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = link(g, cfg, methodStar, ids[0], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel returns a Constructor that builds a wheel on n vertices (hub + rim of n-1).
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelVertices {
			return tooFew(methodWheel, "n", n, minWheelVertices)
		}
		ids, err := addVertices(g, cfg, methodWheel, n)
		if err != nil {
			return err
		}
		// spokes
		for i := 1; i < n; i++ {
			if err = link(g, cfg, methodWheel, ids[0], ids[i]); err != nil {
				return err
			}
		}
		// rim
		rim := ids[1:]
		for i := range rim {
			if err = link(g, cfg, methodWheel, rim[i], rim[(i+1)%len(rim)]); err != nil {
				return err
			}
		}

		return nil
	}
}
