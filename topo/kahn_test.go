// SPDX-License-Identifier: MIT

package topo_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/topo"
)

func directed(t *testing.T, nodes []string, edges ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true))
	for _, n := range nodes {
		_, err := g.AddNode(n)
		require.NoError(t, err)
	}
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1], 1)
		require.NoError(t, err)
	}

	return g
}

func TestSort_Diamond(t *testing.T) {
	g := directed(t, []string{"A", "B", "C", "D"},
		[2]string{"A", "B"}, [2]string{"A", "C"}, [2]string{"B", "D"}, [2]string{"C", "D"})

	res, err := topo.Sort(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Order)

	assert.Equal(t, topo.Table{{Node: "A", In: 0}, {Node: "B", In: 1}, {Node: "C", In: 1}, {Node: "D", In: 2}}, res.Initial)
	require.Len(t, res.Steps, 4)

	assert.Equal(t, "A", res.Steps[0].Removed)
	assert.Equal(t, []string{"B", "C"}, res.Steps[0].Queue)
	assert.Equal(t, topo.Table{{Node: "A", In: 0}, {Node: "B", In: 0}, {Node: "C", In: 0}, {Node: "D", In: 2}}, res.Steps[0].Indegree)

	d, ok := res.Steps[1].Indegree.Get("D")
	require.True(t, ok)
	assert.Equal(t, 1, d)
	assert.Equal(t, []string{"C"}, res.Steps[1].Queue)

	assert.Equal(t, []string{"D"}, res.Steps[2].Queue)
	assert.Empty(t, res.Steps[3].Queue)
	assert.Equal(t, [][]string{{"A"}, {"B"}, {"C"}, {"D"}}, res.Levels())
}

func TestSort_SeedsInInsertionOrder(t *testing.T) {
	g := directed(t, []string{"Z", "M", "A"}, [2]string{"Z", "A"})

	res, err := topo.Sort(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"Z", "M", "A"}, res.Order)
}

func TestSort_TriangleIsCyclic(t *testing.T) {
	g := directed(t, []string{"A", "B", "C"},
		[2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "A"})

	res, err := topo.Sort(g)
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, topo.ErrCyclicGraph))

	var ce *topo.CycleError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, []string{"A", "B", "C"}, ce.Remaining)
	assert.Equal(t, []string{"A", "B", "C", "A"}, ce.Cycle)
	assert.Contains(t, ce.Error(), "A → B → C → A")
}

func TestSort_PartialCycleKeepsOnlyStuckNodes(t *testing.T) {
	g := directed(t, []string{"S", "X", "Y"},
		[2]string{"S", "X"}, [2]string{"X", "Y"}, [2]string{"Y", "X"})

	_, err := topo.Sort(g)
	var ce *topo.CycleError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, []string{"X", "Y"}, ce.Remaining)
	assert.Equal(t, []string{"X", "Y", "X"}, ce.Cycle)
}

func TestSort_RequiresDirected(t *testing.T) {
	g := core.NewGraph(core.WithDirected(false))
	_, err := topo.Sort(g)
	assert.ErrorIs(t, err, topo.ErrRequiresDirected)

	_, err = topo.Sort(nil)
	assert.ErrorIs(t, err, topo.ErrGraphNil)
}

func TestSort_EmptyDirected(t *testing.T) {
	res, err := topo.Sort(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, res.Order)
	assert.Empty(t, res.Steps)
}

func TestSort_ParallelArcsCountTwice(t *testing.T) {
	g := core.NewGraph()
	for _, n := range []string{"A", "B"} {
		_, err := g.AddNode(n)
		require.NoError(t, err)
	}
	_, err := g.AddEdge("A", "B", 2)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 5)
	require.NoError(t, err)

	res, err := topo.Sort(g)
	require.NoError(t, err)
	in, _ := res.Initial.Get("B")
	assert.Equal(t, 2, in)
	assert.Equal(t, []string{"A", "B"}, res.Order)
}

func TestFromSnapshot_WitnessComesFromSameSnapshot(t *testing.T) {
	g := directed(t, []string{"A", "B", "C"},
		[2]string{"A", "B"}, [2]string{"B", "A"}, [2]string{"B", "C"})
	s := g.Snapshot()
	_, err := g.RemoveEdge(1)
	require.NoError(t, err)
	_, err = g.AddEdge("C", "B", 1)
	require.NoError(t, err)

	_, err = topo.FromSnapshot(s)
	var ce *topo.CycleError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, []string{"A", "B", "A"}, ce.Cycle)
	assert.Equal(t, []string{"A", "B", "C"}, ce.Remaining)

	_, err = topo.FromSnapshot(nil)
	assert.ErrorIs(t, err, topo.ErrGraphNil)
}
