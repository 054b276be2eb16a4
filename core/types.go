// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Edge and Graph types, graph options, sentinel errors and NewGraph.
// Determinism:
//   - nodes and edges are slices; their order IS the insertion order.
// Concurrency:
//   - A single sync.RWMutex guards every field of Graph.

package core

import (
	"errors"
	"math"
	"sync"
)

// Sentinel errors for graph store operations.
var (
	// ErrEmptyLabel indicates a node label that is empty or whitespace-only.
	ErrEmptyLabel = errors.New("core: node label is empty")

	// ErrDuplicateNode indicates the node label is already in the graph.
	ErrDuplicateNode = errors.New("core: node already exists")

	// ErrInsufficientNodes indicates an edge was requested while fewer than two nodes exist.
	ErrInsufficientNodes = errors.New("core: at least 2 nodes are required to add an edge")

	// ErrInvalidEndpoint indicates an edge endpoint that is not a known node.
	ErrInvalidEndpoint = errors.New("core: edge endpoint not found")

	// ErrSelfLoop indicates an edge whose endpoints are the same node.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates an edge with identical (from, to, weight) already exists.
	ErrDuplicateEdge = errors.New("core: same edge with same weight already exists")

	// ErrEdgeIndex indicates an edge index outside [0, EdgeCount()).
	ErrEdgeIndex = errors.New("core: edge index out of range")
)

// DefaultWeight is the weight every edge carries in an unweighted graph and
// the value invalid weights are corrected to.
const DefaultWeight int64 = 1

// MaxWeight is the largest weight an edge can carry; larger inputs are
// clamped to it. Path costs over at most 2³² edges stay within int64.
const MaxWeight int64 = math.MaxInt32

// Edge is a connection between two nodes.
//
// Invariants: From != To, Weight >= 1, and Weight == 1 whenever the owning
// graph is unweighted.
type Edge struct {
	// From is the source node label.
	From string

	// To is the destination node label.
	To string

	// Weight is the traversal cost of the edge.
	Weight int64
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithDirected sets whether edges are one-way (true) or mirrored (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted sets whether edges keep their own weights (true) or all weigh 1 (false).
func WithWeighted(weighted bool) GraphOption {
	return func(g *Graph) { g.weighted = weighted }
}

// Graph is the in-memory graph store.
//
// nodes holds labels in insertion order and index maps a label to its
// position in nodes. edges is the edge list in insertion order; an edge is
// addressed by its position, which shifts down when an earlier edge is removed.
type Graph struct {
	mu sync.RWMutex // guards everything below

	// Mode flags
	directed bool // mirror edges when false
	weighted bool // force weight 1 when false

	// Storage
	nodes []string       // node labels, insertion order
	index map[string]int // label → position in nodes
	edges []Edge         // edges, insertion order
}

// NewGraph creates an empty Graph.
// By default the graph is directed and weighted.
// Complexity: O(len(opts))
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		directed: true,
		weighted: true,
		index:    make(map[string]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
