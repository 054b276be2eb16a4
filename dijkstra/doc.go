// Package dijkstra finds minimum-cost routes in graphs with positive integer
// weights.
//
// Dijkstra(g, start, end) finalizes nodes in increasing distance order and
// stops early once end is finalized. Node selection is a linear scan in
// node-insertion order; among equal distances the earliest-inserted node wins.
//
// Edge weights are always ≥ 1 because core.Graph normalizes them on insert,
// so no negative-weight check is needed.
//
// Complexity:
//
//   - Time:  O(V² + E)
//   - Space: O(V + E)
//
// Errors:
//
//   - ErrGraphNil if g is nil.
//   - ErrNoPath   if start or end is unknown, or end is unreachable.
//
// Example:
//
//	res, err := dijkstra.Dijkstra(g, "A", "B")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Path, res.Cost)
package dijkstra
