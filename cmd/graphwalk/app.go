package main

import (
	"fmt"
	"io"
	"sync"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphwalk/animate"
	"github.com/katalvlaran/graphwalk/builder"
	"github.com/katalvlaran/graphwalk/config"
	"github.com/katalvlaran/graphwalk/report"
	"github.com/katalvlaran/graphwalk/session"
)

// configError marks failures in flags, settings, scenarios or presets.
type configError struct{ err error }

func (e *configError) Error() string { return e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

func configErr(format string, args ...any) error {
	return &configError{err: fmt.Errorf(format, args...)}
}

// frameQueue holds rendered frames until the main goroutine prints them.
type frameQueue struct {
	mu     sync.Mutex
	lines  []string
	notify chan struct{}
}

func newFrameQueue() *frameQueue {
	return &frameQueue{notify: make(chan struct{}, 1)}
}

func (q *frameQueue) push(line string) {
	q.mu.Lock()
	q.lines = append(q.lines, line)
	q.mu.Unlock()
	select {
	case q.notify <- struct{}{}:
	default:
	}
}

func (q *frameQueue) drain() []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	lines := q.lines
	q.lines = nil
	return lines
}

// app is one configured engine plus its output.
type app struct {
	flags   *rootFlags
	engine  *session.Engine
	out     io.Writer
	frames  *frameQueue
	animate bool
}

// status prints the status line for err.
func (a *app) status(err error) {
	msg, lvl := report.Status(err)
	fmt.Fprintln(a.out, report.StatusLine(msg, lvl))
}

// newApp resolves settings (env < scenario < flags), builds the engine and
// loads the requested graph.
func newApp(cmd *cobra.Command, f *rootFlags) (*app, error) {
	settings, err := config.LoadSettings(f.envFiles...)
	if err != nil {
		return nil, &configError{err: err}
	}
	if f.logLevel != "" {
		settings.LogLevel = f.logLevel
	}
	if f.logFormat != "" {
		settings.LogFormat = f.logFormat
	}
	log := settings.Logger(cmd.ErrOrStderr())

	var sc *config.Scenario
	if f.scenario != "" {
		if sc, err = config.LoadScenario(f.scenario); err != nil {
			return nil, &configError{err: err}
		}
		settings.Delay = sc.DelayOr(settings.Delay)
	}
	if f.delay != "" {
		d, err := config.ParseDelay(f.delay)
		if err != nil {
			return nil, configErr("--delay: %w", err)
		}
		settings.Delay = d
	}

	a := &app{
		flags:   f,
		out:     cmd.OutOrStdout(),
		frames:  newFrameQueue(),
		animate: !f.noAnimate,
	}

	schedOpts := []animate.Option{animate.WithDelay(settings.Delay), animate.WithLogger(log)}
	if a.animate {
		schedOpts = append(schedOpts, animate.WithRenderer(a.renderFrame))
	}
	a.engine = session.New(
		session.WithScheduler(animate.New(schedOpts...)),
		session.WithLogger(log),
	)
	a.engine.SetDirected(!f.undirected)
	a.engine.SetWeighted(!f.unweighted)

	if sc != nil {
		if err = sc.Apply(a.engine); err != nil {
			return nil, configErr("%s: %w", f.scenario, err)
		}
	}
	if f.preset != "" {
		if err = a.loadPreset(f.preset); err != nil {
			return nil, &configError{err: err}
		}
	}
	log.Debug("graph loaded",
		"nodes", a.engine.Graph().NodeCount(),
		"edges", a.engine.Graph().EdgeCount(),
		"delay", settings.Delay)

	return a, nil
}

// loadPreset adds a generated graph next to whatever is already loaded.
func (a *app) loadPreset(preset string) error {
	ctor, err := builder.ParsePreset(preset)
	if err != nil {
		return err
	}
	if a.flags.maxWeight < 1 {
		return fmt.Errorf("--max-weight must be ≥ 1, got %d", a.flags.maxWeight)
	}
	bopts := []builder.BuilderOption{
		builder.WithExcelColumnIDs(),
		builder.WithSeed(a.flags.seed),
		builder.WithWeightFn(builder.UniformWeightFn(1, a.flags.maxWeight)),
	}

	return builder.Apply(a.engine.Graph(), bopts, ctor)
}

// renderFrame queues one playback step. It runs on a timer goroutine and
// never writes to the output itself.
func (a *app) renderFrame(f animate.Frame) {
	a.frames.push(report.Frame(f, a.engine.Graph().Nodes()))
}

// flushFrames prints every queued frame.
func (a *app) flushFrames() {
	for _, line := range a.frames.drain() {
		fmt.Fprintln(a.out, line)
	}
}

// wait prints frames as they arrive until the current playback finishes or
// ctx ends. A cancelled context stops playback and drops unprinted frames.
func (a *app) wait(cmd *cobra.Command) {
	if !a.animate {
		return
	}
	done := a.engine.Scheduler().Done()
	for {
		select {
		case <-a.frames.notify:
			a.flushFrames()
		case <-done:
			a.flushFrames()
			return
		case <-cmd.Context().Done():
			a.engine.ClearHighlights()
			a.frames.drain()
			return
		}
	}
}
