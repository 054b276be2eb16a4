// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/UpdateEdgeWeight/Edges/EdgeCount,
//       plus weight normalization helpers.
// Determinism:
//   - Edges() returns edges in insertion order; an edge's index is its position.
// Concurrency:
//   - Mutations under write lock, queries under read lock.

package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// NormalizeWeight applies the silent weight correction: values ≤ 0 become
// DefaultWeight and values above MaxWeight become MaxWeight.
func NormalizeWeight(w int64) int64 {
	switch {
	case w <= 0:
		return DefaultWeight
	case w > MaxWeight:
		return MaxWeight
	}

	return w
}

// ParseWeight converts user text into a weight. The leading integer of s is
// used (so "7", " 7 " and "7.5" all give 7); text without a leading integer
// and non-positive values give DefaultWeight; huge values give MaxWeight.
func ParseWeight(s string) int64 {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return DefaultWeight
	}
	w, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return DefaultWeight
	}

	return NormalizeWeight(w)
}

// effectiveWeight returns the weight an edge will actually carry under the
// current mode. Caller holds g.mu.
func (g *Graph) effectiveWeight(w int64) int64 {
	if !g.weighted {
		return DefaultWeight
	}

	return NormalizeWeight(w)
}

// AddEdge appends an edge from→to and returns the stored edge.
//
// Steps:
//  1. Fewer than two nodes ⇒ ErrInsufficientNodes.
//  2. Unknown from/to ⇒ ErrInvalidEndpoint.
//  3. from == to ⇒ ErrSelfLoop.
//  4. Normalize the weight for the current mode.
//  5. Identical (from, to, weight) present ⇒ ErrDuplicateEdge.
//  6. Append.
//
// The same endpoints with a different weight are accepted.
//
// Complexity: O(E) for the duplicate scan.
// Concurrency: write lock for the whole validation+append.
func (g *Graph) AddEdge(from, to string, weight int64) (Edge, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.nodes) < 2 {
		return Edge{}, ErrInsufficientNodes
	}
	if _, ok := g.index[from]; !ok {
		return Edge{}, fmt.Errorf("%w: %q", ErrInvalidEndpoint, from)
	}
	if _, ok := g.index[to]; !ok {
		return Edge{}, fmt.Errorf("%w: %q", ErrInvalidEndpoint, to)
	}
	if from == to {
		return Edge{}, ErrSelfLoop
	}

	e := Edge{From: from, To: to, Weight: g.effectiveWeight(weight)}
	if g.indexOf(e, -1) >= 0 {
		return Edge{}, ErrDuplicateEdge
	}
	g.edges = append(g.edges, e)

	return e, nil
}

// indexOf returns the position of an edge equal to e, ignoring position skip,
// or -1. Caller holds g.mu.
func (g *Graph) indexOf(e Edge, skip int) int {
	for i, cur := range g.edges {
		if i != skip && cur == e {
			return i
		}
	}

	return -1
}

// RemoveEdge deletes the edge at index and returns it. Later edges shift
// down by one position.
//
// Errors: ErrEdgeIndex.
// Complexity: O(E).
func (g *Graph) RemoveEdge(index int) (Edge, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if index < 0 || index >= len(g.edges) {
		return Edge{}, fmt.Errorf("%w: %d", ErrEdgeIndex, index)
	}
	removed := g.edges[index]
	g.edges = append(g.edges[:index], g.edges[index+1:]...)

	return removed, nil
}

// UpdateEdgeWeight sets the weight of the edge at index, normalizing values
// ≤ 0 to DefaultWeight, and returns the edge as stored afterwards.
// In unweighted mode it is a no-op.
//
// Errors:
//   - ErrEdgeIndex if index is out of range.
//   - ErrDuplicateEdge if the new weight would make the edge identical to another one.
//
// Complexity: O(E).
func (g *Graph) UpdateEdgeWeight(index int, weight int64) (Edge, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if index < 0 || index >= len(g.edges) {
		return Edge{}, fmt.Errorf("%w: %d", ErrEdgeIndex, index)
	}
	if !g.weighted {
		return g.edges[index], nil
	}

	updated := g.edges[index]
	updated.Weight = NormalizeWeight(weight)
	if g.indexOf(updated, index) >= 0 {
		return g.edges[index], ErrDuplicateEdge
	}
	g.edges[index] = updated

	return updated, nil
}

// Edges returns a copy of the edge list in insertion order.
//
// Complexity: O(E). Concurrency: read lock.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of stored edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
