// Package bfs provides breadth-first search over a core.Graph, returning the
// visit order both flat and grouped into levels, plus a parent-pointer
// shortest path for unweighted graphs.
//
// What
//
//   - BFS(g, start): visit order and level structure from a single start node.
//     Levels[0] = {start}; Levels[i] = nodes first reached after i edges.
//   - ShortestPath(g, start, end): fewest-edges path, edge weights ignored.
//
// Determinism
//
//	Neighbors are enqueued in core.Adjacency order, i.e. the order of the first
//	edge that introduced each neighbor. Re-running BFS on an unchanged graph
//	yields identical Order and Levels.
//
// Options
//
//   - WithContext(ctx):  cancellation, checked once per level.
//   - WithOnVisit(fn):   hook on every dequeue; returning an error aborts BFS.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E), plus O(V + E) to derive the adjacency view.
//   - Memory: O(V).
//
// Errors
//
//   - ErrGraphNil            if the graph pointer is nil.
//   - ErrStartNodeNotFound   if the start node does not exist.
//   - ErrNoPath              (ShortestPath) unknown endpoint or unreachable end.
//   - context errors and wrapped OnVisit errors.
package bfs
