// File: adjacency_list.go
// Role: Adjacency Builder. Two pure derivations of a Snapshot:
//   - Adjacency:         node → ordered, de-duplicated neighbor set.
//   - WeightedAdjacency: node → ordered list of {To, Weight} arcs.
// Determinism:
//   - Node order = Snapshot.Nodes.
//   - Neighbor order = order of the first edge that introduced the neighbor.
//   - Arc order = edge-list order.
// Policy:
//   - Nothing is cached. Callers rebuild after every mutation by taking a new Snapshot.

package core

// Adjacency is an unweighted adjacency view. Every node of the snapshot has
// an entry, possibly empty.
type Adjacency struct {
	nodes []string
	out   map[string][]string
}

// Arc is one outgoing weighted connection.
type Arc struct {
	To     string
	Weight int64
}

// WeightedAdjacency is a weighted adjacency view. Every node of the snapshot
// has an entry, possibly empty.
type WeightedAdjacency struct {
	nodes []string
	out   map[string][]Arc
}

// BuildAdjacency derives the unweighted view: for each edge, To is added to
// From's set and, when the graph is undirected, From is added to To's set.
// A neighbor appears at most once per node.
//
// Complexity: O(V + E) time and space.
func BuildAdjacency(s *Snapshot) *Adjacency {
	adj := &Adjacency{
		nodes: s.Nodes,
		out:   make(map[string][]string, len(s.Nodes)),
	}
	seen := make(map[string]map[string]struct{}, len(s.Nodes))
	for _, n := range s.Nodes {
		adj.out[n] = []string{}
		seen[n] = make(map[string]struct{})
	}

	add := func(from, to string) {
		set, ok := seen[from]
		if !ok {
			return
		}
		if _, dup := set[to]; dup {
			return
		}
		set[to] = struct{}{}
		adj.out[from] = append(adj.out[from], to)
	}
	for _, e := range s.Edges {
		add(e.From, e.To)
		if !s.Directed {
			add(e.To, e.From)
		}
	}

	return adj
}

// BuildWeightedAdjacency derives the weighted view with the same mirroring
// rule as BuildAdjacency. Parallel arcs with different weights are all kept.
//
// Complexity: O(V + E) time and space.
func BuildWeightedAdjacency(s *Snapshot) *WeightedAdjacency {
	adj := &WeightedAdjacency{
		nodes: s.Nodes,
		out:   make(map[string][]Arc, len(s.Nodes)),
	}
	for _, n := range s.Nodes {
		adj.out[n] = []Arc{}
	}
	for _, e := range s.Edges {
		if _, ok := adj.out[e.From]; ok {
			adj.out[e.From] = append(adj.out[e.From], Arc{To: e.To, Weight: e.Weight})
		}
		if !s.Directed {
			if _, ok := adj.out[e.To]; ok {
				adj.out[e.To] = append(adj.out[e.To], Arc{To: e.From, Weight: e.Weight})
			}
		}
	}

	return adj
}

// Nodes returns the node labels in insertion order. The slice must not be modified.
func (a *Adjacency) Nodes() []string { return a.nodes }

// Has reports whether id has an adjacency entry.
func (a *Adjacency) Has(id string) bool {
	_, ok := a.out[id]
	return ok
}

// Neighbors returns id's neighbors in first-introduction order and whether
// id has an entry. The slice must not be modified.
func (a *Adjacency) Neighbors(id string) ([]string, bool) {
	nbrs, ok := a.out[id]
	return nbrs, ok
}

// Nodes returns the node labels in insertion order. The slice must not be modified.
func (a *WeightedAdjacency) Nodes() []string { return a.nodes }

// Has reports whether id has an adjacency entry.
func (a *WeightedAdjacency) Has(id string) bool {
	_, ok := a.out[id]
	return ok
}

// Arcs returns id's outgoing arcs in edge order and whether id has an entry.
// The slice must not be modified.
func (a *WeightedAdjacency) Arcs(id string) ([]Arc, bool) {
	arcs, ok := a.out[id]
	return arcs, ok
}
