// Package report renders engine results as terminal text: traversal orders,
// indegree traces, shortest-path summaries, status lines and animation frames.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/graphwalk/animate"
	"github.com/katalvlaran/graphwalk/bfs"
	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/dfs"
	"github.com/katalvlaran/graphwalk/pathfind"
	"github.com/katalvlaran/graphwalk/topo"
)

// errWriter remembers the first write error so callers check once.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) title(s string) {
	ew.printf("%s\n", TitleStyle.Render(s))
}

func (ew *errWriter) muted(s string) {
	ew.printf("%s\n", MutedStyle.Render(s))
}

// numbered prints "1. A  2. B  3. C".
func (ew *errWriter) numbered(ids []string) {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d. %s", i+1, id)
	}
	ew.printf("%s\n", strings.Join(parts, "  "))
}

// BFS writes the traversal order and level grouping.
func BFS(w io.Writer, start string, res *bfs.BFSResult) error {
	ew := &errWriter{w: w}
	ew.title("BFS Result")
	ew.printf("Traversal order from %s:\n", start)
	ew.numbered(res.Order)
	ew.printf("\n")
	ew.muted("Breadth First Search visits nodes level by level from the source; " +
		"nodes on the same level are highlighted together.")
	ew.muted("Level-wise grouping (L0 = start node):")
	for i, lvl := range res.Levels {
		ew.printf("L%d: %s\n", i, strings.Join(lvl, ", "))
	}

	return ew.err
}

// DFS writes the traversal order.
func DFS(w io.Writer, start string, res *dfs.DFSResult) error {
	ew := &errWriter{w: w}
	ew.title("DFS Result")
	ew.printf("Traversal order from %s:\n", start)
	ew.numbered(res.Order)
	ew.printf("\n")
	ew.muted("Depth First Search follows each branch as deep as possible before " +
		"backtracking. Neighbors are pushed in reverse-sorted order on an explicit " +
		"stack, so they are visited alphabetically.")

	return ew.err
}

// Topo writes the order, the initial indegree table and every removal step.
func Topo(w io.Writer, res *topo.Result) error {
	ew := &errWriter{w: w}
	ew.title("Topological Sort Result")
	ew.printf("A valid topological order of the directed acyclic graph is:\n")
	ew.numbered(res.Order)
	ew.printf("\n")
	ew.muted("Kahn's algorithm repeatedly removes a node of indegree 0 and " +
		"decrements the indegree of its neighbors.")
	ew.printf("Initial indegree table:\n  %s\n", formatTable(res.Initial))
	for i, st := range res.Steps {
		ew.printf("Step %d: remove %s\n", i+1, st.Removed)
		ew.printf("  indegrees: %s\n", formatTable(st.Indegree))
		ew.printf("  queue now: [%s]\n", strings.Join(st.Queue, ", "))
	}

	return ew.err
}

// TopoFailure writes the explanation for a failed sort.
func TopoFailure(w io.Writer, err error) error {
	ew := &errWriter{w: w}
	ew.title("Topological Sort (Kahn's Algorithm)")
	var ce *topo.CycleError
	if errors.As(err, &ce) {
		ew.muted("Graph contains a cycle. Topological ordering is not possible.")
		if len(ce.Cycle) > 0 {
			ew.printf("Cycle: %s\n", strings.Join(ce.Cycle, " → "))
		}
		ew.printf("Unresolved: [%s]\n", strings.Join(ce.Remaining, ", "))
		return ew.err
	}
	ew.muted("Not allowed for undirected graphs.")

	return ew.err
}

// formatTable renders "A:0  B:1"; negative counts print as 0.
func formatTable(t topo.Table) string {
	parts := make([]string, len(t))
	for i, d := range t {
		parts[i] = fmt.Sprintf("%s:%d", d.Node, max(0, d.In))
	}

	return strings.Join(parts, "  ")
}

// Path writes a shortest-path result and which strategy produced it.
func Path(w io.Writer, start, end string, res *pathfind.Result) error {
	ew := &errWriter{w: w}
	ew.title("Shortest Path Result")
	if res.Strategy == pathfind.StrategyTrivial {
		ew.printf("Start and end are the same node: %s\n", start)
		ew.muted("Distance / weight = 0")
		return ew.err
	}
	ew.printf("From %s to %s:\n", start, end)
	ew.numbered(res.Path)
	ew.muted(fmt.Sprintf("Total cost / distance = %d", res.Cost))
	ew.printf("\n")
	switch res.Strategy {
	case pathfind.StrategyBFS:
		ew.printf("Algorithm: BFS (unweighted, all weights = 1)\n")
		ew.muted("All edge weights are 1, so BFS finds the path with the fewest edges.")
	default:
		ew.printf("Algorithm: Dijkstra (weighted graph)\n")
		ew.muted("Dijkstra repeatedly finalizes the unvisited node with the smallest " +
			"tentative distance and relaxes its outgoing edges.")
	}

	return ew.err
}

// NoPath writes the failure block for an unreachable destination.
func NoPath(w io.Writer, start, end string) error {
	ew := &errWriter{w: w}
	ew.title("Shortest Path Result")
	ew.muted(fmt.Sprintf("No path exists from %s to %s.", start, end))

	return ew.err
}

// Graph lists modes, nodes and indexed edges.
func Graph(w io.Writer, g *core.Graph) error {
	s := g.Snapshot()
	ew := &errWriter{w: w}
	mode := "Directed"
	if !s.Directed {
		mode = "Undirected"
	}
	if s.Weighted {
		mode += ", weighted"
	} else {
		mode += ", unweighted"
	}
	ew.title(mode)
	if len(s.Nodes) == 0 {
		ew.muted("No nodes yet.")
	} else {
		ew.printf("Nodes: %s\n", strings.Join(s.Nodes, ", "))
	}
	if len(s.Edges) == 0 {
		ew.muted("No edges yet. Add edges between nodes.")
		return ew.err
	}
	for i, e := range s.Edges {
		ew.printf("%d: %s\n", i, EdgeLabel(e, s.Directed, s.Weighted))
	}

	return ew.err
}

// EdgeLabel formats "A → B (w=3)"; the arrow is "—" when undirected and the
// weight is omitted when unweighted.
func EdgeLabel(e core.Edge, directed, weighted bool) string {
	arrow := "→"
	if !directed {
		arrow = "—"
	}
	label := fmt.Sprintf("%s %s %s", e.From, arrow, e.To)
	if weighted {
		label += fmt.Sprintf(" (w=%d)", e.Weight)
	}

	return label
}

// Frame renders one animation frame over nodes in display order:
// "[X]" marks current nodes, "(X)" visited ones, and idle nodes are bare.
func Frame(f animate.Frame, nodes []string) string {
	current := make(map[string]bool, len(f.Current))
	for _, id := range f.Current {
		current[id] = true
	}
	visited := make(map[string]bool, len(f.Visited))
	for _, id := range f.Visited {
		visited[id] = true
	}

	cells := make([]string, len(nodes))
	for i, id := range nodes {
		switch {
		case current[id]:
			cells[i] = CurrentStyle.Render("[" + id + "]")
		case visited[id]:
			cells[i] = VisitedStyle.Render("(" + id + ")")
		default:
			cells[i] = IdleStyle.Render(id)
		}
	}
	head := MutedStyle.Render(fmt.Sprintf("step %d/%d", f.Index+1, f.Total))

	return head + "  " + strings.Join(cells, " ")
}
