package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/report"
)

// errUsage marks a malformed script line; it stops the script.
var errUsage = errors.New("bad command")

// errScriptFailed reports that at least one command was rejected.
var errScriptFailed = errors.New("script: some commands failed")

const scriptHelp = `Commands, one per line ('#' starts a comment):
  node LABEL            add a node
  edge FROM TO [W]      add an edge; a missing or non-numeric weight is 1
  remove-edge I         remove edge #I
  weight I W            change the weight of edge #I
  directed on|off       toggle directed mode
  weighted on|off       toggle weighted mode (off forces every weight to 1)
  reset                 drop all nodes and edges
  bfs START             breadth-first traversal
  dfs START             depth-first traversal
  topo                  topological sort
  path FROM TO          shortest path
  clear                 clear highlights
  show                  print the graph`

func newScriptCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "script [file]",
		Short: "Run editing and algorithm commands from a file or stdin",
		Long:  "Run editing and algorithm commands from a file or stdin.\n\n" + scriptHelp,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, f)
			if err != nil {
				return err
			}
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				file, err := os.Open(args[0])
				if err != nil {
					return &configError{err: err}
				}
				defer file.Close()
				in = file
			}
			return a.runScript(cmd, in)
		},
	}
}

// runScript executes in line by line. Rejected commands print a status
// line and the script continues; malformed lines stop it.
func (a *app) runScript(cmd *cobra.Command, in io.Reader) error {
	ctx := cmd.Context()
	sc := bufio.NewScanner(in)
	failed := 0
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		err := a.exec(ctx, fields)
		switch {
		case errors.Is(err, errUsage):
			a.status(fmt.Errorf("line %d: %w", lineNo, err))
			return fmt.Errorf("line %d: %w", lineNo, err)
		case err != nil:
			failed++
		default:
			a.wait(cmd)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading script: %w", err)
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d", errScriptFailed, failed)
	}

	return nil
}

// exec runs one command. Domain errors are already printed when returned.
func (a *app) exec(ctx context.Context, f []string) error {
	name, args := strings.ToLower(f[0]), f[1:]
	want := func(n int, usage string) error {
		if len(args) != n {
			return fmt.Errorf("%w: %s", errUsage, usage)
		}
		return nil
	}

	switch name {
	case "node":
		if err := want(1, "node LABEL"); err != nil {
			return err
		}
		id, err := a.engine.AddNode(args[0])
		return a.outcome(err, "Added node "+id)

	case "edge":
		if len(args) != 2 && len(args) != 3 {
			return fmt.Errorf("%w: edge FROM TO [W]", errUsage)
		}
		w := ""
		if len(args) == 3 {
			w = args[2]
		}
		e, err := a.engine.AddEdge(args[0], args[1], core.ParseWeight(w))
		return a.outcome(err, "Added edge "+a.edgeLabel(e))

	case "remove-edge":
		if err := want(1, "remove-edge I"); err != nil {
			return err
		}
		i, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("%w: remove-edge I: %v", errUsage, err)
		}
		e, err := a.engine.RemoveEdge(i)
		return a.outcome(err, "Removed edge "+a.edgeLabel(e))

	case "weight":
		if err := want(2, "weight I W"); err != nil {
			return err
		}
		i, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("%w: weight I W: %v", errUsage, err)
		}
		e, err := a.engine.UpdateEdgeWeight(i, core.ParseWeight(args[1]))
		return a.outcome(err, "Updated edge "+a.edgeLabel(e))

	case "directed", "weighted":
		if err := want(1, name+" on|off"); err != nil {
			return err
		}
		on, err := parseSwitch(args[0])
		if err != nil {
			return fmt.Errorf("%w: %s on|off", errUsage, name)
		}
		if name == "directed" {
			a.engine.SetDirected(on)
		} else {
			a.engine.SetWeighted(on)
		}
		return a.outcome(nil, fmt.Sprintf("%s: %s", name, args[0]))

	case "reset":
		a.engine.Reset()
		return a.outcome(nil, "Graph reset")

	case "clear":
		a.engine.ClearHighlights()
		return nil

	case "show":
		return a.show()

	case "bfs":
		if err := want(1, "bfs START"); err != nil {
			return err
		}
		return a.runBFS(ctx, args[0])

	case "dfs":
		if err := want(1, "dfs START"); err != nil {
			return err
		}
		return a.runDFS(ctx, args[0])

	case "topo":
		if err := want(0, "topo"); err != nil {
			return err
		}
		return a.runTopo()

	case "path":
		if err := want(2, "path FROM TO"); err != nil {
			return err
		}
		return a.runPath(args[0], args[1])
	}

	return fmt.Errorf("%w: unknown command %q", errUsage, name)
}

// outcome prints msg on success or the status line for err.
func (a *app) outcome(err error, msg string) error {
	if err != nil {
		a.status(err)
		return err
	}
	fmt.Fprintln(a.out, report.StatusLine(msg, report.LevelSuccess))
	return nil
}

func (a *app) edgeLabel(e core.Edge) string {
	g := a.engine.Graph()
	return report.EdgeLabel(e, g.Directed(), g.Weighted())
}

func parseSwitch(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("want on or off, got %q", s)
}
