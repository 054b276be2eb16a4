// Package core_test verifies the single-writer / snapshot-reader discipline of core.Graph.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphwalk/core"
)

// TestConcurrentAddNode ensures concurrent AddNode calls are safe and all land.
func TestConcurrentAddNode(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	errs := make(chan error, num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_, err := g.AddNode(fmt.Sprintf("N%d", id))
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	require.Equal(t, num, g.NodeCount())
}

// TestSnapshotDuringMutation checks that every snapshot is internally consistent:
// each edge references nodes present in the same snapshot.
func TestSnapshotDuringMutation(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddNode("Base")
	_, _ = g.AddNode("N0")

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 1; i <= rounds; i++ {
			id := fmt.Sprintf("N%d", i)
			_, _ = g.AddNode(id)
			_, _ = g.AddEdge("Base", id, int64(i))
		}
	}()

	bad := make(chan string, rounds)
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			s := g.Snapshot()
			for _, e := range s.Edges {
				if !s.HasNode(e.From) || !s.HasNode(e.To) {
					bad <- fmt.Sprintf("%s→%s", e.From, e.To)
				}
			}
		}
	}()
	wg.Wait()
	close(bad)

	for edge := range bad {
		t.Errorf("snapshot edge %s references a node outside the snapshot", edge)
	}
}
