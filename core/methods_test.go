package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphwalk/core"
)

// newABC returns a directed, weighted graph holding nodes A, B, C.
func newABC(t *testing.T, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	for _, id := range []string{"A", "B", "C"} {
		_, err := g.AddNode(id)
		require.NoError(t, err)
	}

	return g
}

func TestNewGraph_Defaults(t *testing.T) {
	g := core.NewGraph()
	assert.True(t, g.Directed())
	assert.True(t, g.Weighted())
	assert.Zero(t, g.NodeCount())
	assert.Zero(t, g.EdgeCount())

	g = core.NewGraph(core.WithDirected(false), core.WithWeighted(false))
	assert.False(t, g.Directed())
	assert.False(t, g.Weighted())
}

func TestAddNode(t *testing.T) {
	g := core.NewGraph()

	label, err := g.AddNode("  A ")
	require.NoError(t, err)
	assert.Equal(t, "A", label, "labels are trimmed")

	_, err = g.AddNode("A")
	assert.ErrorIs(t, err, core.ErrDuplicateNode)

	for _, blank := range []string{"", "   ", "\t\n"} {
		_, err = g.AddNode(blank)
		assert.ErrorIs(t, err, core.ErrEmptyLabel, "label %q", blank)
	}

	_, err = g.AddNode("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, g.Nodes())
	assert.True(t, g.HasNode("B"))
	assert.False(t, g.HasNode("Z"))
	assert.False(t, g.HasNode(""))
}

func TestAddEdge_Validation(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddNode("A")

	_, err := g.AddEdge("A", "B", 1)
	assert.ErrorIs(t, err, core.ErrInsufficientNodes)

	_, _ = g.AddNode("B")
	_, err = g.AddEdge("A", "Z", 1)
	assert.ErrorIs(t, err, core.ErrInvalidEndpoint)
	_, err = g.AddEdge("Z", "A", 1)
	assert.ErrorIs(t, err, core.ErrInvalidEndpoint)

	_, err = g.AddEdge("A", "A", 1)
	assert.ErrorIs(t, err, core.ErrSelfLoop)

	_, err = g.AddEdge("A", "B", 3)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 3)
	assert.ErrorIs(t, err, core.ErrDuplicateEdge)

	// same endpoints, different weight is a distinct edge
	_, err = g.AddEdge("A", "B", 4)
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())
}

func TestAddEdge_WeightNormalization(t *testing.T) {
	g := newABC(t)

	e, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), e.Weight)

	e, err = g.AddEdge("B", "C", -7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), e.Weight)

	// -7 normalized to 1 collides with the stored B→C(1)
	_, err = g.AddEdge("B", "C", 1)
	assert.ErrorIs(t, err, core.ErrDuplicateEdge)

	u := newABC(t, core.WithWeighted(false))
	e, err = u.AddEdge("A", "C", 9)
	require.NoError(t, err)
	assert.Equal(t, int64(1), e.Weight, "unweighted graphs force weight 1")
	_, err = u.AddEdge("A", "C", 5)
	assert.ErrorIs(t, err, core.ErrDuplicateEdge)
}

func TestParseWeight(t *testing.T) {
	cases := map[string]int64{
		"5":    5,
		" 12 ": 12,
		"7.9":  7,
		"3abc": 3,
		"0":    1,
		"-4":   1,
		"abc":  1,
		"":     1,
		"+8":   8,

		"2147483647":            core.MaxWeight,
		"2147483648":            core.MaxWeight,
		"9223372036854775806":   core.MaxWeight,
		"99999999999999999999":  core.MaxWeight,
		"-99999999999999999999": 1,
	}
	for in, want := range cases {
		assert.Equal(t, want, core.ParseWeight(in), "ParseWeight(%q)", in)
	}
}

func TestAddEdge_ClampsHugeWeights(t *testing.T) {
	g := newABC(t)
	e, err := g.AddEdge("A", "B", math.MaxInt64)
	require.NoError(t, err)
	assert.Equal(t, core.MaxWeight, e.Weight)

	_, err = g.AddEdge("A", "B", math.MaxInt64-1)
	assert.ErrorIs(t, err, core.ErrDuplicateEdge, "both inputs clamp to the same weight")

	e, err = g.UpdateEdgeWeight(0, math.MaxInt32+1)
	require.NoError(t, err)
	assert.Equal(t, core.MaxWeight, e.Weight)
}

func TestRemoveEdge(t *testing.T) {
	g := newABC(t)
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 3)

	removed, err := g.RemoveEdge(1)
	require.NoError(t, err)
	assert.Equal(t, core.Edge{From: "B", To: "C", Weight: 2}, removed)
	assert.Equal(t, []core.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "A", To: "C", Weight: 3},
	}, g.Edges())

	_, err = g.RemoveEdge(2)
	assert.ErrorIs(t, err, core.ErrEdgeIndex)
	_, err = g.RemoveEdge(-1)
	assert.ErrorIs(t, err, core.ErrEdgeIndex)
}

func TestUpdateEdgeWeight(t *testing.T) {
	g := newABC(t)
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("A", "B", 2)

	e, err := g.UpdateEdgeWeight(0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), e.Weight)

	e, err = g.UpdateEdgeWeight(0, -3)
	require.NoError(t, err)
	assert.Equal(t, int64(1), e.Weight)

	_, err = g.UpdateEdgeWeight(0, 2)
	assert.ErrorIs(t, err, core.ErrDuplicateEdge)
	assert.Equal(t, int64(1), g.Edges()[0].Weight, "rejected update leaves the edge untouched")

	_, err = g.UpdateEdgeWeight(5, 2)
	assert.ErrorIs(t, err, core.ErrEdgeIndex)

	g.SetWeighted(false)
	e, err = g.UpdateEdgeWeight(0, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(1), e.Weight, "no-op while unweighted")
}

func TestSetWeighted_IsLossy(t *testing.T) {
	g := newABC(t)
	_, _ = g.AddEdge("A", "B", 4)
	_, _ = g.AddEdge("B", "C", 9)

	g.SetWeighted(false)
	for _, e := range g.Edges() {
		assert.Equal(t, int64(1), e.Weight)
	}

	g.SetWeighted(true)
	for _, e := range g.Edges() {
		assert.Equal(t, int64(1), e.Weight, "weights are not restored")
	}
}

func TestReset(t *testing.T) {
	g := newABC(t, core.WithDirected(false))
	_, _ = g.AddEdge("A", "B", 1)

	g.Reset()
	assert.Zero(t, g.NodeCount())
	assert.Zero(t, g.EdgeCount())
	assert.False(t, g.HasNode("A"))
	assert.False(t, g.Directed(), "flags survive reset")

	_, err := g.AddNode("A")
	assert.NoError(t, err, "labels are reusable after reset")
}

func TestSnapshot_IsDetached(t *testing.T) {
	g := newABC(t)
	_, _ = g.AddEdge("A", "B", 1)

	s := g.Snapshot()
	_, _ = g.AddNode("D")
	_, _ = g.AddEdge("C", "D", 1)
	g.SetDirected(false)

	assert.Equal(t, []string{"A", "B", "C"}, s.Nodes)
	assert.Len(t, s.Edges, 1)
	assert.True(t, s.Directed)
	assert.False(t, s.HasNode("D"))
	assert.True(t, s.AllUnitWeights())
}

func TestSnapshot_AllUnitWeights(t *testing.T) {
	g := newABC(t)
	assert.False(t, g.Snapshot().AllUnitWeights(), "empty edge set is not all-unit")

	_, _ = g.AddEdge("A", "B", 1)
	assert.True(t, g.Snapshot().AllUnitWeights())

	_, _ = g.AddEdge("B", "C", 2)
	assert.False(t, g.Snapshot().AllUnitWeights())
}
