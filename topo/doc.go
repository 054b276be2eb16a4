// SPDX-License-Identifier: MIT

// Package topo computes a topological order of a directed core.Graph with
// Kahn's algorithm and keeps a step-by-step trace for explanation.
//
// What:
//
//   - Sort(g) returns the removal order plus the initial indegree table and,
//     after every removal, the full indegree table and the ready queue.
//
// Determinism:
//
//   - Seeds and ties follow node-insertion order; decrements follow
//     edge-insertion order. The same graph always yields the same trace.
//
// Errors:
//
//   - ErrRequiresDirected on an undirected graph.
//   - *CycleError (matching ErrCyclicGraph) if the graph has a cycle; it
//     carries the unresolved nodes and one witness cycle from dfs.FindCycle.
package topo
