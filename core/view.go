// File: view.go
// Role: Immutable, read-consistent snapshot of a Graph.
// Determinism:
//   - Nodes and Edges keep the insertion order of the source graph.
// Concurrency:
//   - Taken under a single read lock; the result shares no memory with the Graph.

package core

// Snapshot is a frozen copy of a Graph. Every algorithm reads a Snapshot
// rather than the live Graph, so a concurrent mutation is either entirely
// visible or not visible at all.
type Snapshot struct {
	Directed bool
	Weighted bool
	Nodes    []string // insertion order
	Edges    []Edge   // insertion order

	index map[string]int
}

// Snapshot copies the current graph state.
//
// Complexity: O(V+E). Concurrency: read lock.
func (g *Graph) Snapshot() *Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := &Snapshot{
		Directed: g.directed,
		Weighted: g.weighted,
		Nodes:    make([]string, len(g.nodes)),
		Edges:    make([]Edge, len(g.edges)),
		index:    make(map[string]int, len(g.nodes)),
	}
	copy(s.Nodes, g.nodes)
	copy(s.Edges, g.edges)
	for id, i := range g.index {
		s.index[id] = i
	}

	return s
}

// HasNode reports whether label was a node when the snapshot was taken.
// Snapshots assembled by hand (no index) fall back to a scan of Nodes.
func (s *Snapshot) HasNode(label string) bool {
	if s.index == nil {
		for _, n := range s.Nodes {
			if n == label {
				return true
			}
		}
		return false
	}
	_, ok := s.index[label]
	return ok
}

// AllUnitWeights reports whether the snapshot has at least one edge and
// every edge weighs exactly 1.
func (s *Snapshot) AllUnitWeights() bool {
	if len(s.Edges) == 0 {
		return false
	}
	for _, e := range s.Edges {
		if e.Weight != DefaultWeight {
			return false
		}
	}

	return true
}
