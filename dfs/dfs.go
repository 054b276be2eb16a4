// Package dfs implements iterative depth-first search on core.Graph.
package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/graphwalk/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	adj     *core.Adjacency // derived view, fresh per run
	opts    DFSOptions      // traversal options
	stack   []string        // explicit stack; a node may appear more than once
	visited map[string]bool // dedupe happens on pop
	res     *DFSResult      // result collector
}

// DFS performs depth-first search on g from start using an explicit stack,
// so depth is bounded by memory rather than by the call stack.
//
// Tie-break: on visiting u, its neighbors are sorted ascending and pushed in
// reverse, so the LIFO stack pops them in ascending lexicographic order
// regardless of edge insertion order.
//
// Returns ErrGraphNil, ErrStartNodeNotFound, the context error, or a wrapped
// OnVisit error.
func DFS(g *core.Graph, start string, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Derive adjacency and verify start
	adj := core.BuildAdjacency(g.Snapshot())
	if !adj.Has(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNodeNotFound, start)
	}

	// 4. Walk
	n := len(adj.Nodes())
	w := &dfsWalker{
		adj:     adj,
		opts:    dopts,
		stack:   []string{start},
		visited: make(map[string]bool, n),
		res:     &DFSResult{Order: make([]string, 0, n)},
	}
	if err := w.run(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// run pops until the stack is empty.
func (w *dfsWalker) run() error {
	for len(w.stack) > 0 {
		// 1. Cancellation check
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		// 2. Pop; skip nodes already visited through another push
		u := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		if w.visited[u] {
			continue
		}

		// 3. Visit
		w.visited[u] = true
		w.res.Order = append(w.res.Order, u)
		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(u); err != nil {
				return fmt.Errorf("dfs: OnVisit hook for %q: %w", u, err)
			}
		}

		// 4. Push unvisited neighbors in reverse lexicographic order
		nbrs, _ := w.adj.Neighbors(u)
		sorted := make([]string, len(nbrs))
		copy(sorted, nbrs)
		sort.Sort(sort.Reverse(sort.StringSlice(sorted)))
		for _, v := range sorted {
			if !w.visited[v] {
				w.stack = append(w.stack, v)
			}
		}
	}

	return nil
}
