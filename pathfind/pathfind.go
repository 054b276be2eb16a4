// Package pathfind picks a shortest-path strategy for a core.Graph and runs it.
//
// Selection rule:
//
//   - start == end (both known)   → Trivial:  [start], cost 0, no search.
//   - every edge weighs exactly 1 → BFS:      cost = len(path) - 1.
//   - otherwise                   → Dijkstra: cost = sum of weights.
//
// An edge-less graph never selects BFS; with start ≠ end it falls through to
// Dijkstra, which reports ErrNoPath.
package pathfind

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphwalk/bfs"
	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/dijkstra"
)

// Strategy names the algorithm that produced a Result.
type Strategy string

const (
	// StrategyTrivial is used when start and end coincide.
	StrategyTrivial Strategy = "trivial"
	// StrategyBFS is used when every edge has unit weight.
	StrategyBFS Strategy = "bfs"
	// StrategyDijkstra is used when any edge weight differs from 1.
	StrategyDijkstra Strategy = "dijkstra"
)

var (
	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("pathfind: graph is nil")

	// ErrNoPath reports an unknown endpoint or an unreachable end. The
	// strategy's own error is wrapped alongside it.
	ErrNoPath = errors.New("pathfind: no path")
)

// Result is a shortest route and how it was found.
type Result struct {
	Path     []string
	Cost     int64
	Strategy Strategy
}

// Levels returns one single-node level per path position.
func (r *Result) Levels() [][]string {
	levels := make([][]string, len(r.Path))
	for i, id := range r.Path {
		levels[i] = []string{id}
	}

	return levels
}

// ShortestPath computes a shortest path from start to end, choosing the
// strategy from a single snapshot of g.
func ShortestPath(g *core.Graph, start, end string) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	return FromSnapshot(g.Snapshot(), start, end)
}

// FromSnapshot selects and runs the strategy on s alone, so the search sees
// exactly the edges the selection looked at.
func FromSnapshot(s *core.Snapshot, start, end string) (*Result, error) {
	if s == nil {
		return nil, ErrGraphNil
	}
	if !s.HasNode(start) || !s.HasNode(end) {
		return nil, fmt.Errorf("%w: unknown endpoint in %q→%q", ErrNoPath, start, end)
	}

	if start == end {
		return &Result{Path: []string{start}, Cost: 0, Strategy: StrategyTrivial}, nil
	}

	if s.AllUnitWeights() {
		path, err := bfs.ShortestPathFromSnapshot(s, start, end)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNoPath, err)
		}
		return &Result{Path: path, Cost: int64(len(path) - 1), Strategy: StrategyBFS}, nil
	}

	res, err := dijkstra.FromSnapshot(s, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoPath, err)
	}

	return &Result{Path: res.Path, Cost: res.Cost, Strategy: StrategyDijkstra}, nil
}
