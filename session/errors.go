package session

import (
	"errors"

	"github.com/katalvlaran/graphwalk/bfs"
	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/dfs"
	"github.com/katalvlaran/graphwalk/dijkstra"
	"github.com/katalvlaran/graphwalk/pathfind"
	"github.com/katalvlaran/graphwalk/topo"
)

// ErrEmptyGraph is returned by every Run command while the graph has no nodes.
var ErrEmptyGraph = errors.New("session: graph has no nodes")

// Kind classifies an engine error for status display.
type Kind string

// Error kinds. All are recoverable user-input conditions except KindInternal.
const (
	KindNone              Kind = ""
	KindEmptyLabel        Kind = "EmptyLabel"
	KindDuplicateNode     Kind = "DuplicateNode"
	KindInsufficientNodes Kind = "InsufficientNodes"
	KindInvalidEndpoint   Kind = "InvalidEndpoint"
	KindSelfLoop          Kind = "SelfLoop"
	KindDuplicateEdge     Kind = "DuplicateEdge"
	KindEdgeIndex         Kind = "EdgeIndex"
	KindEmptyGraph        Kind = "EmptyGraph"
	KindUnknownStartNode  Kind = "UnknownStartNode"
	KindNoPath            Kind = "NoPath"
	KindRequiresDirected  Kind = "RequiresDirected"
	KindCyclicGraph       Kind = "CyclicGraph"
	KindInternal          Kind = "Internal"
)

var kinds = []struct {
	err  error
	kind Kind
}{
	{core.ErrEmptyLabel, KindEmptyLabel},
	{core.ErrDuplicateNode, KindDuplicateNode},
	{core.ErrInsufficientNodes, KindInsufficientNodes},
	{core.ErrInvalidEndpoint, KindInvalidEndpoint},
	{core.ErrSelfLoop, KindSelfLoop},
	{core.ErrDuplicateEdge, KindDuplicateEdge},
	{core.ErrEdgeIndex, KindEdgeIndex},
	{ErrEmptyGraph, KindEmptyGraph},
	{bfs.ErrStartNodeNotFound, KindUnknownStartNode},
	{dfs.ErrStartNodeNotFound, KindUnknownStartNode},
	{pathfind.ErrNoPath, KindNoPath},
	{bfs.ErrNoPath, KindNoPath},
	{dijkstra.ErrNoPath, KindNoPath},
	{topo.ErrRequiresDirected, KindRequiresDirected},
	{topo.ErrCyclicGraph, KindCyclicGraph},
}

// KindOf returns the Kind of err, KindNone for nil and KindInternal for
// anything the engine does not produce itself.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}

	return KindInternal
}
