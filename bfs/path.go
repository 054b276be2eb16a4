package bfs

import (
	"fmt"

	"github.com/katalvlaran/graphwalk/core"
)

// ShortestPath returns the fewest-edges path from start to end, inclusive of
// both endpoints.
//
// Parent pointers are recorded on first discovery; the search stops the
// first time end is dequeued, and the path is rebuilt by walking parents back
// to start. Edge weights are ignored.
//
// Returns ErrGraphNil, or ErrNoPath if either endpoint is unknown or end is
// unreachable.
func ShortestPath(g *core.Graph, start, end string) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	return ShortestPathFromSnapshot(g.Snapshot(), start, end)
}

// ShortestPathFromSnapshot is ShortestPath over an already captured snapshot.
func ShortestPathFromSnapshot(s *core.Snapshot, start, end string) ([]string, error) {
	if s == nil {
		return nil, ErrGraphNil
	}
	adj := core.BuildAdjacency(s)
	if !adj.Has(start) || !adj.Has(end) {
		return nil, fmt.Errorf("%w: unknown endpoint in %q→%q", ErrNoPath, start, end)
	}

	parent := make(map[string]string)
	visited := map[string]bool{start: true}
	queue := []string{start}
	found := false

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if u == end {
			found = true
			break
		}
		nbrs, _ := adj.Neighbors(u)
		for _, v := range nbrs {
			if !visited[v] {
				visited[v] = true
				parent[v] = u
				queue = append(queue, v)
			}
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: %q is unreachable from %q", ErrNoPath, end, start)
	}

	// build reversed path
	path := []string{}
	for cur := end; ; {
		path = append(path, cur)
		prev, ok := parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → end
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
