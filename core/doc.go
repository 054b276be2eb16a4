// Package core is the single source of truth for a small interactive graph:
// the ordered node catalog, the ordered edge list, and the directed/weighted
// mode flags. It also derives the two adjacency views every algorithm in
// graphwalk consumes.
//
// What
//
//   - Graph: node labels and edges, both kept in insertion order.
//   - Edge:  {From, To, Weight}, Weight ≥ 1, no self-loops, no exact duplicates.
//   - Snapshot: an immutable, read-consistent copy of a Graph.
//   - Adjacency / WeightedAdjacency: pure derivations of a Snapshot.
//
// Determinism
//
//	Iteration order is an explicit property of the containers, not of Go maps:
//	  - Nodes() and Snapshot.Nodes follow node insertion order.
//	  - Edges() and Snapshot.Edges follow edge insertion order.
//	  - Adjacency neighbor lists follow the order of the first edge that
//	    introduced each neighbor; WeightedAdjacency keeps every arc in edge order.
//
// Weight normalization
//
//	Weights are silently corrected, never rejected:
//	  - any value ≤ 0 becomes 1;
//	  - any non-numeric text (ParseWeight) becomes 1;
//	  - every weight is 1 while the graph is unweighted.
//	Turning weighted mode off rewrites every stored weight to 1. Turning it back
//	on does not restore the previous values.
//
// Concurrency
//
//	All methods are safe for concurrent use. Mutations take the write lock;
//	queries and Snapshot take the read lock. Algorithms never read the live
//	Graph: they work on a Snapshot, so they cannot observe a half-applied
//	mutation (single writer, read-consistent snapshots).
//
// Errors
//
//   - ErrEmptyLabel        node label is blank after trimming.
//   - ErrDuplicateNode     node label already present.
//   - ErrInsufficientNodes fewer than two nodes exist when adding an edge.
//   - ErrInvalidEndpoint   edge endpoint is not a known node.
//   - ErrSelfLoop          edge from a node to itself.
//   - ErrDuplicateEdge     identical (from, to, weight) edge exists.
//   - ErrEdgeIndex         edge index out of range.
//
// Complexity (V = nodes, E = edges)
//
//   - AddNode O(1), AddEdge O(E) (duplicate scan), RemoveEdge O(E).
//   - Snapshot O(V+E), BuildAdjacency / BuildWeightedAdjacency O(V+E).
package core
