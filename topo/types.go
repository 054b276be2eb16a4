// SPDX-License-Identifier: MIT

package topo

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("topo: graph is nil")

	// ErrRequiresDirected is returned when Sort is called on an undirected
	// graph. It is a mode precondition, not a data error.
	ErrRequiresDirected = errors.New("topo: topological sort requires a directed graph")

	// ErrCyclicGraph is matched by every *CycleError.
	ErrCyclicGraph = errors.New("topo: graph contains a cycle")
)

// CycleError reports that Kahn's algorithm stalled before removing every node.
type CycleError struct {
	// Remaining lists the nodes never removed, in insertion order.
	Remaining []string

	// Cycle is one closed directed cycle among Remaining ([v0 ... v0]).
	// It may be nil if no witness was recovered.
	Cycle []string
}

// Error implements error.
func (e *CycleError) Error() string {
	if len(e.Cycle) > 0 {
		return fmt.Sprintf("%s: %s", ErrCyclicGraph, strings.Join(e.Cycle, " → "))
	}

	return fmt.Sprintf("%s: %d node(s) unresolved", ErrCyclicGraph, len(e.Remaining))
}

// Is makes errors.Is(err, ErrCyclicGraph) succeed.
func (e *CycleError) Is(target error) bool { return target == ErrCyclicGraph }

// Degree is one row of an indegree table.
type Degree struct {
	Node string
	In   int
}

// Table is an indegree table in node-insertion order.
type Table []Degree

// Get returns node's indegree and whether node is in the table.
func (t Table) Get(node string) (int, bool) {
	for _, d := range t {
		if d.Node == node {
			return d.In, true
		}
	}

	return 0, false
}

// Step records the state right after one removal.
type Step struct {
	// Removed is the node dequeued and appended to the order.
	Removed string
	// Indegree is the full table after decrementing Removed's out-neighbors.
	Indegree Table
	// Queue is the ready queue after the decrements, front first.
	Queue []string
}

// Result is a topological order with its explanation trace.
type Result struct {
	Order   []string
	Initial Table
	Steps   []Step
}

// Levels returns one single-node level per order position.
func (r *Result) Levels() [][]string {
	levels := make([][]string, len(r.Order))
	for i, id := range r.Order {
		levels[i] = []string{id}
	}

	return levels
}
