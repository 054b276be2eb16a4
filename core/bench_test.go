// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/graphwalk/core"
)

// ringGraph builds an n-node directed ring with chords, weighted 1..n.
func ringGraph(b *testing.B, n int, directed bool) *core.Graph {
	b.Helper()
	g := core.NewGraph(core.WithDirected(directed))
	for i := 0; i < n; i++ {
		_, _ = g.AddNode(fmt.Sprintf("N%d", i))
	}
	for i := 0; i < n; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("N%d", i), fmt.Sprintf("N%d", (i+1)%n), int64(i+1))
		_, _ = g.AddEdge(fmt.Sprintf("N%d", i), fmt.Sprintf("N%d", (i+7)%n), int64(i+2))
	}

	return g
}

// BenchmarkSnapshot measures copying a 200-node graph.
func BenchmarkSnapshot(b *testing.B) {
	g := ringGraph(b, 200, true)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Snapshot()
	}
}

// BenchmarkBuildAdjacency_Undirected measures the mirrored unweighted view.
func BenchmarkBuildAdjacency_Undirected(b *testing.B) {
	s := ringGraph(b, 200, false).Snapshot()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = core.BuildAdjacency(s)
	}
}

// BenchmarkBuildWeightedAdjacency measures the weighted view.
func BenchmarkBuildWeightedAdjacency(b *testing.B) {
	s := ringGraph(b, 200, true).Snapshot()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = core.BuildWeightedAdjacency(s)
	}
}
