package dijkstra_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/dijkstra"
)

type wedge struct {
	from, to string
	w        int64
}

// build returns a weighted graph with the given nodes and edges.
func build(t *testing.T, directed bool, nodes []string, edges []wedge) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(directed), core.WithWeighted(true))
	for _, id := range nodes {
		if _, err := g.AddNode(id); err != nil {
			t.Fatalf("AddNode(%q): %v", id, err)
		}
	}
	for _, e := range edges {
		if _, err := g.AddEdge(e.from, e.to, e.w); err != nil {
			t.Fatalf("AddEdge(%q,%q,%d): %v", e.from, e.to, e.w, err)
		}
	}

	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_NilGraph(t *testing.T) {
	if _, err := dijkstra.Dijkstra(nil, "A", "B"); !errors.Is(err, dijkstra.ErrGraphNil) {
		t.Fatalf("want ErrGraphNil, got %v", err)
	}
}

func TestDijkstra_UnknownEndpoint(t *testing.T) {
	g := build(t, true, []string{"A", "B"}, []wedge{{"A", "B", 1}})
	for _, c := range [][2]string{{"X", "B"}, {"A", "X"}, {"X", "X"}} {
		if _, err := dijkstra.Dijkstra(g, c[0], c[1]); !errors.Is(err, dijkstra.ErrNoPath) {
			t.Errorf("%v: want ErrNoPath, got %v", c, err)
		}
	}
}

func TestDijkstra_Unreachable(t *testing.T) {
	g := build(t, true, []string{"A", "B", "C"}, []wedge{{"B", "A", 1}})
	if _, err := dijkstra.Dijkstra(g, "A", "B"); !errors.Is(err, dijkstra.ErrNoPath) {
		t.Fatalf("directed edge is one-way: want ErrNoPath, got %v", err)
	}
	if _, err := dijkstra.Dijkstra(g, "A", "C"); !errors.Is(err, dijkstra.ErrNoPath) {
		t.Fatalf("isolated node: want ErrNoPath, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. Routes
// ------------------------------------------------------------------------

// TestDijkstra_CheaperDetour prefers two light hops over one heavy hop.
func TestDijkstra_CheaperDetour(t *testing.T) {
	g := build(t, true,
		[]string{"A", "B", "C"},
		[]wedge{{"A", "B", 4}, {"A", "C", 1}, {"C", "B", 1}})
	res, err := dijkstra.Dijkstra(g, "A", "B")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "C", "B"}; !reflect.DeepEqual(res.Path, want) {
		t.Errorf("Path = %v; want %v", res.Path, want)
	}
	if res.Cost != 2 {
		t.Errorf("Cost = %d; want 2", res.Cost)
	}
}

// TestDijkstra_Undirected walks edges against their declared direction.
func TestDijkstra_Undirected(t *testing.T) {
	g := build(t, false,
		[]string{"A", "B", "C", "D"},
		[]wedge{{"B", "A", 2}, {"C", "B", 2}, {"D", "C", 2}, {"D", "A", 10}})
	res, err := dijkstra.Dijkstra(g, "A", "D")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "C", "D"}; !reflect.DeepEqual(res.Path, want) {
		t.Errorf("Path = %v; want %v", res.Path, want)
	}
	if res.Cost != 6 {
		t.Errorf("Cost = %d; want 6", res.Cost)
	}
}

// TestDijkstra_TieBreakInsertionOrder picks the earlier-inserted relay on equal cost.
func TestDijkstra_TieBreakInsertionOrder(t *testing.T) {
	g := build(t, true,
		[]string{"S", "Y", "X", "T"},
		[]wedge{{"S", "X", 1}, {"S", "Y", 1}, {"X", "T", 1}, {"Y", "T", 1}})
	res, err := dijkstra.Dijkstra(g, "S", "T")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"S", "Y", "T"}; !reflect.DeepEqual(res.Path, want) {
		t.Errorf("Path = %v; want %v", res.Path, want)
	}
}

// TestDijkstra_SameEndpoint costs nothing.
func TestDijkstra_SameEndpoint(t *testing.T) {
	g := build(t, true, []string{"A"}, nil)
	res, err := dijkstra.Dijkstra(g, "A", "A")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(res.Path, []string{"A"}) || res.Cost != 0 {
		t.Errorf("got %v cost %d; want [A] cost 0", res.Path, res.Cost)
	}
}

// TestDijkstra_ParallelArcs uses the lighter of two same-direction arcs
// that differ only in weight.
func TestDijkstra_ParallelArcs(t *testing.T) {
	g := build(t, true, []string{"A", "B"}, []wedge{{"A", "B", 9}, {"A", "B", 3}})
	res, err := dijkstra.Dijkstra(g, "A", "B")
	if err != nil {
		t.Fatal(err)
	}
	if res.Cost != 3 {
		t.Errorf("Cost = %d; want 3", res.Cost)
	}
}

// ------------------------------------------------------------------------
// 4. Large weights and snapshots
// ------------------------------------------------------------------------

// TestDijkstra_HugeWeightsAreClamped feeds weights near MaxInt64 through the
// store; they are clamped, so costs stay positive and reachable.
func TestDijkstra_HugeWeightsAreClamped(t *testing.T) {
	g := build(t, true, []string{"A", "B", "C"}, []wedge{
		{"A", "B", math.MaxInt64 - 1},
		{"B", "C", 5},
	})
	res, err := dijkstra.Dijkstra(g, "A", "C")
	if err != nil {
		t.Fatal(err)
	}
	if want := core.MaxWeight + 5; res.Cost != want {
		t.Errorf("Cost = %d; want %d", res.Cost, want)
	}

	g = build(t, true, []string{"A", "B"}, []wedge{{"A", "B", math.MaxInt64}})
	res, err = dijkstra.Dijkstra(g, "A", "B")
	if err != nil {
		t.Fatalf("single huge edge: %v", err)
	}
	if res.Cost != core.MaxWeight {
		t.Errorf("Cost = %d; want %d", res.Cost, core.MaxWeight)
	}
}

// TestFromSnapshot_SumsNeverWrap runs on a raw snapshot whose weights bypass
// the store's clamp: a route whose cost would overflow is not a route.
func TestFromSnapshot_SumsNeverWrap(t *testing.T) {
	s := &core.Snapshot{
		Directed: true,
		Weighted: true,
		Nodes:    []string{"A", "B", "C"},
		Edges: []core.Edge{
			{From: "A", To: "B", Weight: math.MaxInt64 - 1},
			{From: "B", To: "C", Weight: 5},
		},
	}
	res, err := dijkstra.FromSnapshot(s, "A", "B")
	if err != nil {
		t.Fatalf("A→B: %v", err)
	}
	if res.Cost != math.MaxInt64-1 {
		t.Errorf("A→B Cost = %d; want %d", res.Cost, int64(math.MaxInt64-1))
	}

	if res, err = dijkstra.FromSnapshot(s, "A", "C"); !errors.Is(err, dijkstra.ErrNoPath) {
		t.Errorf("A→C = %+v, %v; want ErrNoPath, never a negative cost", res, err)
	}
}

// TestFromSnapshot_IgnoresLaterEdits searches the captured graph only.
func TestFromSnapshot_IgnoresLaterEdits(t *testing.T) {
	g := build(t, true, []string{"A", "B", "C"}, []wedge{{"A", "B", 1}, {"B", "C", 1}})
	s := g.Snapshot()
	if _, err := g.AddEdge("A", "C", 1); err != nil {
		t.Fatal(err)
	}
	res, err := dijkstra.FromSnapshot(s, "A", "C")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(res.Path, want) {
		t.Errorf("Path = %v; want %v", res.Path, want)
	}
	if _, err := dijkstra.FromSnapshot(nil, "A", "C"); !errors.Is(err, dijkstra.ErrGraphNil) {
		t.Errorf("nil snapshot: err = %v; want ErrGraphNil", err)
	}
}
