package pathfind_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphwalk/bfs"
	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/dijkstra"
	"github.com/katalvlaran/graphwalk/pathfind"
)

func graphOf(t *testing.T, nodes []string, edges ...core.Edge) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, n := range nodes {
		_, err := g.AddNode(n)
		require.NoError(t, err)
	}
	for _, e := range edges {
		_, err := g.AddEdge(e.From, e.To, e.Weight)
		require.NoError(t, err)
	}

	return g
}

func TestShortestPath_UnitWeightsUseBFS(t *testing.T) {
	g := graphOf(t, []string{"A", "B", "C", "D"},
		core.Edge{From: "A", To: "B", Weight: 1},
		core.Edge{From: "B", To: "C", Weight: 1},
		core.Edge{From: "C", To: "D", Weight: 1},
		core.Edge{From: "A", To: "D", Weight: 1},
	)
	res, err := pathfind.ShortestPath(g, "A", "D")
	require.NoError(t, err)
	assert.Equal(t, pathfind.StrategyBFS, res.Strategy)
	assert.Equal(t, []string{"A", "D"}, res.Path)
	assert.EqualValues(t, 1, res.Cost)
}

func TestShortestPath_AnyHeavyEdgeUsesDijkstra(t *testing.T) {
	g := graphOf(t, []string{"A", "B", "C"},
		core.Edge{From: "A", To: "B", Weight: 4},
		core.Edge{From: "A", To: "C", Weight: 1},
		core.Edge{From: "C", To: "B", Weight: 1},
	)
	res, err := pathfind.ShortestPath(g, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, pathfind.StrategyDijkstra, res.Strategy)
	assert.Equal(t, []string{"A", "C", "B"}, res.Path)
	assert.EqualValues(t, 2, res.Cost)
	assert.Equal(t, [][]string{{"A"}, {"C"}, {"B"}}, res.Levels())
}

func TestShortestPath_Trivial(t *testing.T) {
	g := graphOf(t, []string{"A"})
	res, err := pathfind.ShortestPath(g, "A", "A")
	require.NoError(t, err)
	assert.Equal(t, pathfind.StrategyTrivial, res.Strategy)
	assert.Equal(t, []string{"A"}, res.Path)
	assert.Zero(t, res.Cost)
}

func TestShortestPath_NoPath(t *testing.T) {
	g := graphOf(t, []string{"A", "B", "C"}, core.Edge{From: "B", To: "A", Weight: 1})

	_, err := pathfind.ShortestPath(g, "A", "B")
	require.ErrorIs(t, err, pathfind.ErrNoPath)
	assert.True(t, errors.Is(err, bfs.ErrNoPath), "BFS cause is preserved")

	g2 := graphOf(t, []string{"A", "B"})
	_, err = pathfind.ShortestPath(g2, "A", "B")
	require.ErrorIs(t, err, pathfind.ErrNoPath)
	assert.True(t, errors.Is(err, dijkstra.ErrNoPath), "edge-less graph falls through to Dijkstra")

	_, err = pathfind.ShortestPath(g2, "Z", "Z")
	assert.ErrorIs(t, err, pathfind.ErrNoPath)

	_, err = pathfind.ShortestPath(nil, "A", "B")
	assert.ErrorIs(t, err, pathfind.ErrGraphNil)
}

func TestFromSnapshot_SelectionAndSearchShareOneView(t *testing.T) {
	g := graphOf(t, []string{"A", "B", "C"},
		core.Edge{From: "A", To: "B", Weight: 1},
		core.Edge{From: "B", To: "C", Weight: 1},
	)
	s := g.Snapshot()
	_, err := g.UpdateEdgeWeight(0, 5)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "C", 1)
	require.NoError(t, err)

	res, err := pathfind.FromSnapshot(s, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, pathfind.StrategyBFS, res.Strategy)
	assert.Equal(t, []string{"A", "B", "C"}, res.Path)
	assert.EqualValues(t, 2, res.Cost)

	live, err := pathfind.ShortestPath(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, pathfind.StrategyDijkstra, live.Strategy)
	assert.Equal(t, []string{"A", "C"}, live.Path)

	_, err = pathfind.FromSnapshot(nil, "A", "C")
	assert.ErrorIs(t, err, pathfind.ErrGraphNil)
}
