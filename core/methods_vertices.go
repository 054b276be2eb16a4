// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns labels in insertion order.
//
// Concurrency:
//   - Node catalog protected by g.mu.

package core

import "strings"

// AddNode inserts a node and returns the stored label.
//
// Implementation:
//   - Stage 1: Trim surrounding whitespace; blank ⇒ ErrEmptyLabel.
//   - Stage 2: Under write lock, reject an existing label with ErrDuplicateNode.
//   - Stage 3: Append to the ordered catalog and record its index.
//
// Errors:
//   - ErrEmptyLabel, ErrDuplicateNode. Nothing is mutated on error.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddNode(label string) (string, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return "", ErrEmptyLabel
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.index[label]; exists {
		return "", ErrDuplicateNode
	}
	g.index[label] = len(g.nodes)
	g.nodes = append(g.nodes, label)

	return label, nil
}

// HasNode reports whether the label is a known node (empty label ⇒ false).
//
// Complexity: O(1). Concurrency: read lock.
func (g *Graph) HasNode(label string) bool {
	if label == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[label]

	return ok
}

// Nodes returns a copy of the node labels in insertion order.
//
// Complexity: O(V). Concurrency: read lock.
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}
