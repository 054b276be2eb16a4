// SPDX-License-Identifier: MIT
// Package: graphwalk/builder
//
// helpers.go - shared emission helpers for constructors.
//
// All constructors route vertex and edge insertion through these helpers so
// that error wrapping and the weight policy stay uniform.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphwalk/core"
)

// addVertices inserts n vertices labeled cfg.idFn(0..n-1) and returns the
// labels as stored by the graph.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) ([]string, error) {
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		id, err := g.AddNode(cfg.idFn(i))
		if err != nil {
			return nil, fmt.Errorf("%s: AddNode(%s): %w", method, cfg.idFn(i), err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// link adds u→v with a weight drawn from cfg. In an unweighted graph the
// weight is still drawn so that the RNG stream is independent of the mode.
func link(g *core.Graph, cfg builderConfig, method, u, v string) error {
	w := cfg.weightFn(cfg.rng)
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", method, u, v, w, err)
	}

	return nil
}

// tooFew formats the standard size violation.
func tooFew(method, param string, got, min int) error {
	return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooFewVertices)
}
