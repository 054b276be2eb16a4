package main

import (
	"github.com/spf13/cobra"
)

// rootFlags holds the persistent flags shared by every subcommand.
type rootFlags struct {
	envFiles   []string
	scenario   string
	preset     string
	seed       int64
	maxWeight  int64
	undirected bool
	unweighted bool
	delay      string
	logLevel   string
	logFormat  string
	noAnimate  bool
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}

	root := &cobra.Command{
		Use:   "graphwalk",
		Short: "Step-by-step graph algorithm runner",
		Long: `graphwalk builds a graph and runs BFS, DFS, Kahn's topological sort or a
shortest-path search over it, printing the result and replaying the
traversal one step at a time.

The graph comes from a YAML scenario (--scenario), a generated preset
(--preset cycle:5, grid:3x4, ...) or a line-oriented script.

Example:
  graphwalk bfs --preset grid:3x3 --start 0,0
  graphwalk topo -f courses.yaml --no-animate
  graphwalk script session.txt`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
	}

	pf := root.PersistentFlags()
	pf.StringSliceVar(&f.envFiles, "env-file", nil, "Load settings from these .env files (default .env)")
	pf.StringVarP(&f.scenario, "scenario", "f", "", "YAML scenario describing the graph")
	pf.StringVar(&f.preset, "preset", "", "Generate a graph: path:N, cycle:N, star:N, wheel:N, complete:N, grid:RxC, random:N:P")
	pf.Int64Var(&f.seed, "seed", 1, "Random seed for random presets and weights")
	pf.Int64Var(&f.maxWeight, "max-weight", 1, "Preset edge weights are drawn from [1, max-weight]")
	pf.BoolVar(&f.undirected, "undirected", false, "Start with an undirected graph")
	pf.BoolVar(&f.unweighted, "unweighted", false, "Start with an unweighted graph")
	pf.StringVar(&f.delay, "delay", "", "Delay between animation steps (e.g. 700 or 250ms)")
	pf.StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&f.logFormat, "log-format", "", "Log format: text or json")
	pf.BoolVar(&f.noAnimate, "no-animate", false, "Print results only, skip step playback")

	root.AddCommand(
		newBFSCmd(f),
		newDFSCmd(f),
		newTopoCmd(f),
		newPathCmd(f),
		newScriptCmd(f),
		newShowCmd(f),
	)

	return root
}
