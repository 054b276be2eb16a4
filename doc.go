// Package graphwalk is an in-memory graph algorithm engine with step-by-step
// playback: build a graph, run a traversal or search, and replay the result
// one level at a time.
//
// What is inside?
//
//	core/          graph store (nodes, edges, modes) and adjacency views
//	bfs/           breadth-first traversal with level grouping, BFS shortest path
//	dfs/           iterative depth-first traversal, cycle witness search
//	dijkstra/      weighted shortest path with deterministic tie-breaking
//	pathfind/      picks BFS or Dijkstra from the graph's weights
//	topo/          Kahn's topological sort with a per-step indegree trace
//	animate/       cancellable playback scheduler over a pluggable clock
//	session/       one engine owning a graph and a scheduler; the command surface
//	report/        terminal rendering of results, status lines and frames
//	config/        YAML scenarios and .env / environment settings
//	builder/       preset shapes (path, cycle, star, wheel, complete, grid, random)
//	cmd/graphwalk  the CLI
//
// Quick ASCII example:
//
//	A ──4──▶ B
//	│                    ▲
//	1                    1
//	▼                    │
//	C ───────┘
//
//	path A → B: [A C B], cost 2 (Dijkstra)
//	bfs from A: L0 [A], L1 [B C]
//
// Determinism: node order is insertion order everywhere, so every result and
// every playback is reproducible for the same sequence of edits.
package graphwalk
