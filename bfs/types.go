// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNodeNotFound is returned when the start node has no adjacency entry.
	ErrStartNodeNotFound = errors.New("bfs: start node not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrNoPath is returned by ShortestPath when an endpoint is unknown or
	// the end node is unreachable from the start node.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures BFS behavior via functional arguments.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation between levels.
	Ctx context.Context

	// OnVisit is called when a node is dequeued, with its level index.
	// If it returns an error, BFS aborts and propagates that error.
	OnVisit func(id string, level int) error
}

// DefaultOptions returns a BFSOptions with a background context and a
// no-op OnVisit hook.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:     context.Background(),
		OnVisit: func(string, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id string, level int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order:  nodes in visit sequence.
//   - Levels: Levels[0] is {start}; Levels[i] holds every node first reached
//     after i edges, in visit order. Concatenating Levels yields Order.
type BFSResult struct {
	Order  []string
	Levels [][]string
}

// LevelOf returns the level index of id, or -1 if id was not reached.
func (r *BFSResult) LevelOf(id string) int {
	for i, lvl := range r.Levels {
		for _, v := range lvl {
			if v == id {
				return i
			}
		}
	}

	return -1
}
