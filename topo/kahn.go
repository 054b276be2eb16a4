// SPDX-License-Identifier: MIT

package topo

import (
	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/dfs"
)

// Sort runs Kahn's algorithm on g and records one Step per removal.
//
// Ordering:
//   - The ready queue is seeded with indegree-0 nodes in insertion order.
//   - A removed node's out-neighbors are decremented in edge-insertion order;
//     parallel arcs each count once toward indegree.
//
// Errors:
//   - ErrGraphNil, ErrRequiresDirected.
//   - *CycleError (errors.Is ErrCyclicGraph) when some node is never removed.
//     No partial order is returned.
//
// An empty directed graph yields an empty Result.
//
// Complexity: O(V² + E) time, dominated by per-step table copies; O(V·steps) space.
func Sort(g *core.Graph) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	return FromSnapshot(g.Snapshot())
}

// FromSnapshot is Sort over an already captured snapshot. The witness cycle
// of a *CycleError is searched in the same snapshot.
func FromSnapshot(s *core.Snapshot) (*Result, error) {
	if s == nil {
		return nil, ErrGraphNil
	}
	if !s.Directed {
		return nil, ErrRequiresDirected
	}

	k := newKahn(s)
	res := &Result{
		Order:   make([]string, 0, len(s.Nodes)),
		Initial: k.table(),
		Steps:   make([]Step, 0, len(s.Nodes)),
	}

	queue := make([]string, 0, len(s.Nodes))
	for _, n := range s.Nodes {
		if k.in[n] == 0 {
			queue = append(queue, n)
		}
	}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, u)

		for _, v := range k.out[u] {
			k.in[v]--
			if k.in[v] == 0 {
				queue = append(queue, v)
			}
		}

		res.Steps = append(res.Steps, Step{
			Removed:  u,
			Indegree: k.table(),
			Queue:    append([]string(nil), queue...),
		})
	}

	if len(res.Order) < len(s.Nodes) {
		return nil, k.cycleError(s, res.Order)
	}

	return res, nil
}

// kahn holds the mutable counters of one Sort run.
type kahn struct {
	nodes []string
	out   map[string][]string // one entry per edge, edge order
	in    map[string]int
}

func newKahn(s *core.Snapshot) *kahn {
	k := &kahn{
		nodes: s.Nodes,
		out:   make(map[string][]string, len(s.Nodes)),
		in:    make(map[string]int, len(s.Nodes)),
	}
	for _, n := range s.Nodes {
		k.out[n] = nil
		k.in[n] = 0
	}
	for _, e := range s.Edges {
		k.out[e.From] = append(k.out[e.From], e.To)
		k.in[e.To]++
	}

	return k
}

// table copies the current counters.
func (k *kahn) table() Table {
	t := make(Table, len(k.nodes))
	for i, n := range k.nodes {
		t[i] = Degree{Node: n, In: k.in[n]}
	}

	return t
}

// cycleError lists unremoved nodes and attaches a witness cycle.
func (k *kahn) cycleError(s *core.Snapshot, order []string) *CycleError {
	removed := make(map[string]bool, len(order))
	for _, n := range order {
		removed[n] = true
	}
	ce := &CycleError{}
	for _, n := range k.nodes {
		if !removed[n] {
			ce.Remaining = append(ce.Remaining, n)
		}
	}
	if cyc, ok, err := dfs.FindCycleFromSnapshot(s); err == nil && ok {
		ce.Cycle = cyc
	}

	return ce
}
