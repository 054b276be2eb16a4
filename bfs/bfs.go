// Package bfs provides breadth-first search over a core.Graph,
// returning the visit order grouped into levels.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphwalk/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	adj     *core.Adjacency
	opts    BFSOptions
	ctx     context.Context
	queue   []string
	visited map[string]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start.
//
// The queue is processed in batches: the batch size is the queue length at
// the start of each iteration, and every node dequeued in one batch forms one
// level. Neighbors are enqueued in adjacency order.
//
// Returns ErrGraphNil, ErrStartNodeNotFound, the context error on
// cancellation, or a wrapped OnVisit error.
func BFS(g *core.Graph, start string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Fresh adjacency on every run; the graph may have changed since the last one.
	adj := core.BuildAdjacency(g.Snapshot())
	if !adj.Has(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNodeNotFound, start)
	}

	n := len(adj.Nodes())
	w := &walker{
		adj:     adj,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]string, 0, n),
		visited: make(map[string]bool, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Levels: make([][]string, 0),
		},
	}
	w.visited[start] = true
	w.queue = append(w.queue, start)

	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// loop drains the queue one level at a time.
func (w *walker) loop() error {
	for level := 0; len(w.queue) > 0; level++ {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		size := len(w.queue)
		group := make([]string, 0, size)
		for i := 0; i < size; i++ {
			u := w.queue[0]
			w.queue = w.queue[1:]

			w.res.Order = append(w.res.Order, u)
			group = append(group, u)
			if err := w.opts.OnVisit(u, level); err != nil {
				return fmt.Errorf("bfs: OnVisit error at %q: %w", u, err)
			}
			w.enqueueNeighbors(u)
		}
		w.res.Levels = append(w.res.Levels, group)
	}

	return nil
}

// enqueueNeighbors marks and enqueues every unseen neighbor of u.
func (w *walker) enqueueNeighbors(u string) {
	nbrs, _ := w.adj.Neighbors(u)
	for _, v := range nbrs {
		if !w.visited[v] {
			w.visited[v] = true
			w.queue = append(w.queue, v)
		}
	}
}
