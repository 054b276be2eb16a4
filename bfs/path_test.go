package bfs_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/graphwalk/bfs"
)

// TestShortestPath_PrefersFewestEdges picks the 2-hop route over the 3-hop one.
func TestShortestPath_PrefersFewestEdges(t *testing.T) {
	g := build(t, true, []string{"A", "B", "C", "D", "E"},
		[][2]string{{"A", "B"}, {"B", "C"}, {"C", "E"}, {"A", "D"}, {"D", "E"}})
	path, err := bfs.ShortestPath(g, "A", "E")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "D", "E"}; !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v; want %v", path, want)
	}
}

// TestShortestPath_TieUsesDiscoveryOrder resolves equal-length routes by adjacency order.
func TestShortestPath_TieUsesDiscoveryOrder(t *testing.T) {
	path, err := bfs.ShortestPath(diamond(t), "A", "D")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "D"}; !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v; want %v", path, want)
	}
}

// TestShortestPath_NoPath covers unknown endpoints and unreachable targets.
func TestShortestPath_NoPath(t *testing.T) {
	g := diamond(t)
	if _, err := bfs.ShortestPath(g, "D", "A"); !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("unreachable: want ErrNoPath, got %v", err)
	}
	if _, err := bfs.ShortestPath(g, "A", "Z"); !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("unknown end: want ErrNoPath, got %v", err)
	}
	if _, err := bfs.ShortestPath(g, "Z", "A"); !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("unknown start: want ErrNoPath, got %v", err)
	}
	if _, err := bfs.ShortestPath(nil, "A", "B"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
}

// TestShortestPath_SameNode returns the single-node path.
func TestShortestPath_SameNode(t *testing.T) {
	path, err := bfs.ShortestPath(diamond(t), "B", "B")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"B"}; !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v; want %v", path, want)
	}
}

// TestShortestPathFromSnapshot_IgnoresLaterEdits searches the captured edges only.
func TestShortestPathFromSnapshot_IgnoresLaterEdits(t *testing.T) {
	g := build(t, true, []string{"A", "B", "C"}, [][2]string{{"A", "B"}, {"B", "C"}})
	s := g.Snapshot()
	if _, err := g.AddEdge("A", "C", 1); err != nil {
		t.Fatal(err)
	}

	path, err := bfs.ShortestPathFromSnapshot(s, "A", "C")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v; want %v", path, want)
	}
	if _, err := bfs.ShortestPathFromSnapshot(nil, "A", "C"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil snapshot: want ErrGraphNil, got %v", err)
	}
}
