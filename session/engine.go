// Package session exposes the engine's command surface: a single Engine owns
// the graph and the animation scheduler and funnels every user command
// through them.
package session

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/graphwalk/animate"
	"github.com/katalvlaran/graphwalk/bfs"
	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/dfs"
	"github.com/katalvlaran/graphwalk/pathfind"
	"github.com/katalvlaran/graphwalk/topo"
)

// Engine couples one graph with one scheduler. Commands are synchronous;
// only playback is deferred.
type Engine struct {
	graph *core.Graph
	anim  *animate.Scheduler
	log   *slog.Logger
}

// Option configures an Engine.
type Option func(*engineConfig)

type engineConfig struct {
	graphOpts []core.GraphOption
	anim      *animate.Scheduler
	log       *slog.Logger
}

// WithGraphOptions sets the initial graph modes.
func WithGraphOptions(opts ...core.GraphOption) Option {
	return func(c *engineConfig) { c.graphOpts = append(c.graphOpts, opts...) }
}

// WithScheduler installs a preconfigured scheduler.
func WithScheduler(s *animate.Scheduler) Option {
	return func(c *engineConfig) { c.anim = s }
}

// WithLogger sets the logger; nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *engineConfig) {
		if l != nil {
			c.log = l
		}
	}
}

// New returns an Engine over an empty graph.
func New(opts ...Option) *Engine {
	cfg := engineConfig{log: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.anim == nil {
		cfg.anim = animate.New(animate.WithLogger(cfg.log))
	}

	return &Engine{
		graph: core.NewGraph(cfg.graphOpts...),
		anim:  cfg.anim,
		log:   cfg.log,
	}
}

// Graph returns the underlying store.
func (e *Engine) Graph() *core.Graph { return e.graph }

// Scheduler returns the playback scheduler.
func (e *Engine) Scheduler() *animate.Scheduler { return e.anim }

// Highlights returns the current highlight state.
func (e *Engine) Highlights() animate.Highlights { return e.anim.Highlights() }

// AddNode adds a trimmed, unique label.
func (e *Engine) AddNode(label string) (string, error) {
	id, err := e.graph.AddNode(label)
	if err != nil {
		e.log.Debug("node rejected", "label", label, "err", err)
		return "", err
	}
	e.log.Info("node added", "node", id)

	return id, nil
}

// AddEdge adds an edge after weight normalization.
func (e *Engine) AddEdge(from, to string, weight int64) (core.Edge, error) {
	edge, err := e.graph.AddEdge(from, to, weight)
	if err != nil {
		e.log.Debug("edge rejected", "from", from, "to", to, "err", err)
		return core.Edge{}, err
	}
	e.log.Info("edge added", "from", edge.From, "to", edge.To, "weight", edge.Weight)

	return edge, nil
}

// RemoveEdge deletes the edge at index.
func (e *Engine) RemoveEdge(index int) (core.Edge, error) {
	edge, err := e.graph.RemoveEdge(index)
	if err != nil {
		return core.Edge{}, err
	}
	e.log.Info("edge removed", "index", index, "from", edge.From, "to", edge.To)

	return edge, nil
}

// UpdateEdgeWeight sets the weight of the edge at index.
func (e *Engine) UpdateEdgeWeight(index int, weight int64) (core.Edge, error) {
	edge, err := e.graph.UpdateEdgeWeight(index, weight)
	if err != nil {
		return core.Edge{}, err
	}
	e.log.Info("edge weight updated", "index", index, "weight", edge.Weight)

	return edge, nil
}

// Reset clears the graph and any highlights; mode flags are kept.
func (e *Engine) Reset() {
	e.anim.Clear()
	e.graph.Reset()
	e.log.Info("graph reset")
}

// SetDirected switches edge interpretation.
func (e *Engine) SetDirected(directed bool) {
	e.graph.SetDirected(directed)
	e.log.Info("directed mode changed", "directed", directed)
}

// SetWeighted switches weight handling. Turning it off rewrites every weight to 1.
func (e *Engine) SetWeighted(weighted bool) {
	e.graph.SetWeighted(weighted)
	e.log.Info("weighted mode changed", "weighted", weighted)
}

// ClearHighlights cancels playback and drops all highlights.
func (e *Engine) ClearHighlights() {
	e.anim.Clear()
}

// RunBFS traverses from start and plays its levels.
func (e *Engine) RunBFS(ctx context.Context, start string) (*bfs.BFSResult, error) {
	if e.graph.NodeCount() == 0 {
		return nil, ErrEmptyGraph
	}
	res, err := bfs.BFS(e.graph, start, bfs.WithContext(ctx))
	if err != nil {
		e.log.Warn("bfs failed", "start", start, "err", err)
		return nil, err
	}
	run := e.anim.Play(res.Levels)
	e.log.Info("bfs completed", "start", start, "visited", len(res.Order), "levels", len(res.Levels), "run", run)

	return res, nil
}

// RunDFS traverses from start and plays one level per visited node.
func (e *Engine) RunDFS(ctx context.Context, start string) (*dfs.DFSResult, error) {
	if e.graph.NodeCount() == 0 {
		return nil, ErrEmptyGraph
	}
	res, err := dfs.DFS(e.graph, start, dfs.WithContext(ctx))
	if err != nil {
		e.log.Warn("dfs failed", "start", start, "err", err)
		return nil, err
	}
	run := e.anim.Play(res.Levels())
	e.log.Info("dfs completed", "start", start, "visited", len(res.Order), "run", run)

	return res, nil
}

// RunTopoSort orders the graph with Kahn's algorithm. The directed-mode
// check comes before the empty-graph check. Any failure clears highlights.
func (e *Engine) RunTopoSort() (*topo.Result, error) {
	if !e.graph.Directed() {
		e.anim.Clear()
		return nil, topo.ErrRequiresDirected
	}
	if e.graph.NodeCount() == 0 {
		return nil, ErrEmptyGraph
	}
	res, err := topo.Sort(e.graph)
	if err != nil {
		e.anim.Clear()
		e.log.Warn("topological sort failed", "err", err)
		return nil, err
	}
	run := e.anim.Play(res.Levels())
	e.log.Info("topological sort completed", "order", len(res.Order), "run", run)

	return res, nil
}

// RunShortestPath finds a shortest route and plays it node by node. A
// trivial (start == end) result and any failure clear highlights instead.
func (e *Engine) RunShortestPath(start, end string) (*pathfind.Result, error) {
	if e.graph.NodeCount() == 0 {
		return nil, ErrEmptyGraph
	}
	res, err := pathfind.ShortestPath(e.graph, start, end)
	if err != nil {
		e.anim.Clear()
		e.log.Warn("shortest path failed", "start", start, "end", end, "err", err)
		return nil, err
	}
	if res.Strategy == pathfind.StrategyTrivial {
		e.anim.Clear()
		e.log.Info("trivial path", "node", start)
		return res, nil
	}
	run := e.anim.Play(res.Levels())
	e.log.Info("shortest path found", "start", start, "end", end,
		"strategy", string(res.Strategy), "cost", res.Cost, "run", run)

	return res, nil
}
