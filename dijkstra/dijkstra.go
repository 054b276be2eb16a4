// Package dijkstra implements Dijkstra's shortest-path algorithm on core.Graph.
package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/graphwalk/core"
)

// infinity marks a node with no known route yet.
const infinity = math.MaxInt64

// Dijkstra returns the minimum-cost path from start to end.
//
// Selection is a linear scan over the snapshot's node order with a strict
// "<" comparison, so among equal tentative distances the earliest-inserted
// node is finalized first. The search stops as soon as end is selected or no
// unvisited node has a finite distance.
//
// Returns ErrGraphNil, or ErrNoPath when either endpoint is unknown or end is
// unreachable.
//
// Complexity: O(V² + E) time, O(V + E) space.
func Dijkstra(g *core.Graph, start, end string) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	return FromSnapshot(g.Snapshot(), start, end)
}

// FromSnapshot runs Dijkstra on an already captured snapshot, so callers
// that inspected s can search exactly the graph they inspected.
func FromSnapshot(s *core.Snapshot, start, end string) (*Result, error) {
	// 1) Validate snapshot and endpoints
	if s == nil {
		return nil, ErrGraphNil
	}
	if !s.HasNode(start) || !s.HasNode(end) {
		return nil, fmt.Errorf("%w: %q → %q", ErrNoPath, start, end)
	}

	// 2) Run
	r := newRunner(s, start)
	r.process(end)

	// 3) Unreachable end keeps the sentinel distance
	if r.dist[end] == infinity {
		return nil, fmt.Errorf("%w: %q unreachable from %q", ErrNoPath, end, start)
	}

	return &Result{Path: r.path(start, end), Cost: r.dist[end]}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	adj     *core.WeightedAdjacency
	nodes   []string          // selection order
	dist    map[string]int64  // best known distance from start
	prev    map[string]string // predecessor on the best route
	visited map[string]bool   // finalized nodes
}

// newRunner sets dist[v] = ∞ for all v and dist[start] = 0.
func newRunner(s *core.Snapshot, start string) *runner {
	r := &runner{
		adj:     core.BuildWeightedAdjacency(s),
		nodes:   s.Nodes,
		dist:    make(map[string]int64, len(s.Nodes)),
		prev:    make(map[string]string, len(s.Nodes)),
		visited: make(map[string]bool, len(s.Nodes)),
	}
	for _, v := range r.nodes {
		r.dist[v] = infinity
	}
	r.dist[start] = 0

	return r
}

// process finalizes nodes until end is selected or nothing finite remains.
func (r *runner) process(end string) {
	for {
		u, ok := r.closest()
		if !ok || u == end {
			return
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// closest returns the unvisited node with the smallest finite distance.
func (r *runner) closest() (string, bool) {
	best, bestDist := "", int64(infinity)
	for _, v := range r.nodes {
		if r.visited[v] {
			continue
		}
		if d := r.dist[v]; d < bestDist {
			best, bestDist = v, d
		}
	}

	return best, bestDist != infinity
}

// relax improves distances of u's unvisited neighbors through u.
func (r *runner) relax(u string) {
	arcs, _ := r.adj.Arcs(u)
	for _, a := range arcs {
		if r.visited[a.To] {
			continue
		}
		// a sum that would reach infinity is treated as no route
		if a.Weight >= infinity-r.dist[u] {
			continue
		}
		if nd := r.dist[u] + a.Weight; nd < r.dist[a.To] {
			r.dist[a.To] = nd
			r.prev[a.To] = u
		}
	}
}

// path walks predecessors back from end and reverses.
func (r *runner) path(start, end string) []string {
	var rev []string
	for at := end; ; at = r.prev[at] {
		rev = append(rev, at)
		if at == start {
			break
		}
	}
	out := make([]string, len(rev))
	for i, v := range rev {
		out[len(rev)-1-i] = v
	}

	return out
}
