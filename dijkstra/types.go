// Package dijkstra defines result and error types for the weighted
// shortest-path search.
package dijkstra

import "errors"

// Sentinel errors returned by Dijkstra.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed to Dijkstra.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrNoPath indicates that an endpoint is unknown or end is unreachable
	// from start.
	ErrNoPath = errors.New("dijkstra: no path")
)

// Result is a minimum-cost route.
type Result struct {
	// Path lists nodes from start to end inclusive.
	Path []string

	// Cost is the sum of edge weights along Path.
	Cost int64
}
