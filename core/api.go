// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Mode flags (read and write) and wholesale reset.
// Policy:
//   - Flag changes never reinterpret stored edges beyond what the flag means:
//     directed only changes how adjacency is derived; weighted=false rewrites
//     weights to 1 and is lossy.

package core

// Directed reports whether edges are one-way.
//
// Complexity: O(1). Concurrency: read lock.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Weighted reports whether edges keep individual weights.
//
// Complexity: O(1). Concurrency: read lock.
func (g *Graph) Weighted() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.weighted
}

// SetDirected switches between directed and undirected interpretation.
// Stored edges are untouched; only adjacency derivation changes.
//
// Complexity: O(1). Concurrency: write lock.
func (g *Graph) SetDirected(directed bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.directed = directed
}

// SetWeighted switches weighted mode. Turning it off forces every stored
// edge weight to DefaultWeight; turning it back on does not restore the old
// weights.
//
// Complexity: O(E) when switching off, O(1) otherwise. Concurrency: write lock.
func (g *Graph) SetWeighted(weighted bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.weighted = weighted
	if weighted {
		return
	}
	for i := range g.edges {
		g.edges[i].Weight = DefaultWeight
	}
}

// Reset removes every node and edge. Mode flags are kept.
//
// Complexity: O(1) amortized. Concurrency: write lock.
func (g *Graph) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes = nil
	g.edges = nil
	g.index = make(map[string]int)
}
