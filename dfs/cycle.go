// Package dfs also locates a witness cycle in a directed core.Graph, used to
// explain why a topological order does not exist.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)     (recursion stack + state map)
package dfs

import "github.com/katalvlaran/graphwalk/core"

// FindCycle returns one directed cycle of g as a closed node sequence
// ([v0, v1, ..., v0]) and true, or nil and false when g is acyclic.
// Edges are followed From→To only, whatever the graph's directed flag.
//
// Roots are tried in node-insertion order and neighbors in adjacency order,
// so the witness is deterministic for a given graph.
func FindCycle(g *core.Graph) ([]string, bool, error) {
	// 1) Nil graph is an error, unlike an empty one
	if g == nil {
		return nil, false, ErrGraphNil
	}

	return FindCycleFromSnapshot(g.Snapshot())
}

// FindCycleFromSnapshot is FindCycle over an already captured snapshot.
// s itself is not modified.
func FindCycleFromSnapshot(s *core.Snapshot) ([]string, bool, error) {
	if s == nil {
		return nil, false, ErrGraphNil
	}

	// 2) Directed view of the edges regardless of the mode flag
	view := *s
	view.Directed = true
	adj := core.BuildAdjacency(&view)

	// 3) Prepare visitation state
	f := &cycleFinder{
		adj:   adj,
		state: make(map[string]int, len(s.Nodes)),
		path:  make([]string, 0, len(s.Nodes)),
	}

	// 4) Launch DFS from each unvisited node
	for _, v := range adj.Nodes() {
		if f.state[v] == White && f.visit(v) {
			return f.cycle, true, nil
		}
	}

	return nil, false, nil
}

// cycleFinder holds three-color DFS state.
type cycleFinder struct {
	adj   *core.Adjacency
	state map[string]int
	path  []string // current DFS path, for reconstruction
	cycle []string // first cycle found
}

// visit explores id and reports whether a back-edge (Gray→Gray) was found.
func (f *cycleFinder) visit(id string) bool {
	f.state[id] = Gray
	f.path = append(f.path, id)

	nbrs, _ := f.adj.Neighbors(id)
	for _, nbr := range nbrs {
		switch f.state[nbr] {
		case White:
			if f.visit(nbr) {
				return true
			}
		case Gray:
			f.cycle = closeCycle(f.path, nbr)
			return true
		}
	}

	// backtrack
	f.path = f.path[:len(f.path)-1]
	f.state[id] = Black

	return false
}

// closeCycle extracts path[from..] and appends from to close the loop.
func closeCycle(path []string, from string) []string {
	idx := 0
	for i, x := range path {
		if x == from {
			idx = i
			break
		}
	}
	seq := append([]string(nil), path[idx:]...)

	return append(seq, from)
}
