package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphwalk/report"
	"github.com/katalvlaran/graphwalk/session"
)

// The run helpers call the engine first and print afterwards; playback
// frames are printed by wait, so they always follow the report.

func (a *app) runBFS(ctx context.Context, start string) error {
	res, err := a.engine.RunBFS(ctx, start)
	if err != nil {
		return a.finish(err)
	}
	return a.finish(report.BFS(a.out, start, res))
}

func (a *app) runDFS(ctx context.Context, start string) error {
	res, err := a.engine.RunDFS(ctx, start)
	if err != nil {
		return a.finish(err)
	}
	return a.finish(report.DFS(a.out, start, res))
}

func (a *app) runTopo() error {
	res, err := a.engine.RunTopoSort()
	if err != nil {
		if k := session.KindOf(err); k == session.KindCyclicGraph || k == session.KindRequiresDirected {
			_ = report.TopoFailure(a.out, err)
		}
		return a.finish(err)
	}
	return a.finish(report.Topo(a.out, res))
}

func (a *app) runPath(from, to string) error {
	res, err := a.engine.RunShortestPath(from, to)
	if err != nil {
		if session.KindOf(err) == session.KindNoPath {
			_ = report.NoPath(a.out, from, to)
		}
		return a.finish(err)
	}
	return a.finish(report.Path(a.out, from, to, res))
}

// finish prints the status line for a failed run.
func (a *app) finish(err error) error {
	if err != nil {
		a.status(err)
		return err
	}
	return nil
}

func newBFSCmd(f *rootFlags) *cobra.Command {
	var start string
	cmd := &cobra.Command{
		Use:   "bfs",
		Short: "Breadth-first traversal, animated level by level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd, f)
			if err != nil {
				return err
			}
			if err = a.runBFS(cmd.Context(), start); err != nil {
				return err
			}
			a.wait(cmd)
			return nil
		},
	}
	cmd.Flags().StringVarP(&start, "start", "s", "", "Start node")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func newDFSCmd(f *rootFlags) *cobra.Command {
	var start string
	cmd := &cobra.Command{
		Use:   "dfs",
		Short: "Depth-first traversal, animated one node at a time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd, f)
			if err != nil {
				return err
			}
			if err = a.runDFS(cmd.Context(), start); err != nil {
				return err
			}
			a.wait(cmd)
			return nil
		},
	}
	cmd.Flags().StringVarP(&start, "start", "s", "", "Start node")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func newTopoCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "topo",
		Short: "Kahn's topological sort with the indegree trace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd, f)
			if err != nil {
				return err
			}
			if err = a.runTopo(); err != nil {
				return err
			}
			a.wait(cmd)
			return nil
		},
	}
}

func newPathCmd(f *rootFlags) *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Shortest path (BFS for unit weights, Dijkstra otherwise)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd, f)
			if err != nil {
				return err
			}
			if err = a.runPath(from, to); err != nil {
				return err
			}
			a.wait(cmd)
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Start node")
	cmd.Flags().StringVar(&to, "to", "", "End node")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newShowCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the loaded graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd, f)
			if err != nil {
				return err
			}
			return a.show()
		},
	}
}

func (a *app) show() error {
	return report.Graph(a.out, a.engine.Graph())
}
