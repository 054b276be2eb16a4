// Package dfs implements depth‑first search traversal and directed cycle
// witnessing on a core.Graph.
//
// What:
//
//   - DFS: iterative, explicit-stack traversal from a single start node.
//     Neighbors are pushed in reverse lexicographic order so they are visited
//     in ascending order; a node can be pushed several times and is deduped
//     when popped. Supports cancellation and a visit hook.
//   - FindCycle: returns one closed directed cycle, if any, via three-color
//     (White, Gray, Black) marking and back-edge detection.
//
// Why:
//   - Deterministic traversal order independent of edge insertion order.
//   - No recursion depth limit for DFS on long chains.
//   - A concrete cycle to show when a topological order does not exist.
//
// Complexity:
//
//   - DFS:       Time O(V + E log E) (per-node neighbor sort), Memory O(V + E)
//   - FindCycle: Time O(V + E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil            if g is nil.
//   - ErrStartNodeNotFound   if start is missing.
//   - context.Canceled       if ctx is done.
//   - any error returned by OnVisit.
package dfs
