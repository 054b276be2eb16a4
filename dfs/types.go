// Package dfs defines types and options for depth-first search traversal.
package dfs

import (
	"context"
	"errors"
)

// Visitation states used by FindCycle.
const (
	White = iota // White: the node has not been visited yet.
	Gray         // Gray: the node is on the current DFS path.
	Black        // Black: the node and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS or FindCycle.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNodeNotFound indicates that the start node has no adjacency entry.
	ErrStartNodeNotFound = errors.New("dfs: start node not found")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	// It is checked once per pop.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a node is visited (appended to Order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id string) error
}

// DefaultOptions returns a DFSOptions struct with a background context and no hook.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:     context.Background(),
		OnVisit: nil,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a visit hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records nodes in the sequence they were visited (pre-order).
	Order []string
}

// Levels returns one single-node level per visited node, in visit order.
func (r *DFSResult) Levels() [][]string {
	levels := make([][]string, len(r.Order))
	for i, id := range r.Order {
		levels[i] = []string{id}
	}

	return levels
}
