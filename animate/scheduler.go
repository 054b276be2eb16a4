// Package animate plays algorithm results back as a timed sequence of
// highlight frames.
package animate

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultDelay is the interval between consecutive levels.
const DefaultDelay = 700 * time.Millisecond

// State is the scheduler lifecycle state.
type State int

const (
	// Idle: no pending timers and no highlights.
	Idle State = iota
	// Running: at least one level is still scheduled.
	Running
	// Finished: every level was applied; highlights stay until Clear or Play.
	Finished
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Frame is what the renderer receives after each level is applied.
type Frame struct {
	RunID   string
	Index   int      // zero-based level index
	Total   int      // number of levels in the run
	Current []string // nodes of this level
	Visited []string // union of levels 0..Index, first-seen order
}

// Last reports whether f is the final frame of its run.
func (f Frame) Last() bool { return f.Index == f.Total-1 }

// Highlights is the visible highlight state.
type Highlights struct {
	Visited []string
	Current []string
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithClock replaces the system clock, typically with a *ManualClock in tests.
func WithClock(c Clock) Option {
	return func(s *Scheduler) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithDelay sets the per-level interval. Negative values are treated as zero.
func WithDelay(d time.Duration) Option {
	return func(s *Scheduler) {
		if d < 0 {
			d = 0
		}
		s.delay = d
	}
}

// WithRenderer installs fn, called under the scheduler lock once per frame.
// fn must not call back into the Scheduler.
func WithRenderer(fn func(Frame)) Option {
	return func(s *Scheduler) {
		s.render = fn
	}
}

// WithLogger sets the logger; nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Scheduler) {
		if l != nil {
			s.log = l
		}
	}
}

// Scheduler turns ordered levels into frames fired at i × delay.
//
// Every state change happens under mu. Each Play bumps a generation counter;
// a callback carrying an older generation is dropped even if its timer could
// not be stopped in time, so two runs never interleave.
type Scheduler struct {
	mu     sync.Mutex
	clock  Clock
	delay  time.Duration
	render func(Frame)
	log    *slog.Logger

	gen    uint64
	runID  string
	state  State
	levels [][]string
	timers []Timer
	next   int // index of the next level to apply

	visited    []string
	visitedSet map[string]struct{}
	current    []string

	done       chan struct{}
	doneClosed bool
}

// New returns an idle Scheduler.
func New(opts ...Option) *Scheduler {
	s := &Scheduler{
		clock: SystemClock{},
		delay: DefaultDelay,
		log:   slog.Default(),
		state: Idle,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.done = make(chan struct{})
	close(s.done)
	s.doneClosed = true

	return s
}

// Delay returns the configured per-level interval.
func (s *Scheduler) Delay() time.Duration { return s.delay }

// Play cancels any current run and schedules levels. It returns the new run
// ID, or "" when levels is empty (the scheduler is left Idle).
func (s *Scheduler) Play(levels [][]string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelLocked()
	if len(levels) == 0 {
		return ""
	}

	s.gen++
	s.runID = uuid.NewString()
	s.state = Running
	s.levels = make([][]string, len(levels))
	for i, lvl := range levels {
		s.levels[i] = append([]string(nil), lvl...)
	}
	s.done = make(chan struct{})
	s.doneClosed = false

	gen := s.gen
	s.timers = make([]Timer, 0, len(levels))
	for i := range s.levels {
		idx := i
		t := s.clock.AfterFunc(time.Duration(idx)*s.delay, func() { s.fire(gen, idx) })
		s.timers = append(s.timers, t)
	}
	s.log.Debug("animation scheduled", "run", s.runID, "levels", len(levels), "delay", s.delay)

	return s.runID
}

// Clear stops every pending timer, drops all highlights and returns to Idle.
// It is safe to call at any time, any number of times.
func (s *Scheduler) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelLocked()
}

// State returns the lifecycle state.
func (s *Scheduler) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// RunID returns the current run ID, "" when Idle.
func (s *Scheduler) RunID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.runID
}

// Highlights returns a copy of the visible highlight state.
func (s *Scheduler) Highlights() Highlights {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Highlights{
		Visited: append([]string(nil), s.visited...),
		Current: append([]string(nil), s.current...),
	}
}

// Done returns a channel closed when the current run finishes or is
// cancelled. When no run is active the channel is already closed.
func (s *Scheduler) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.done
}

// cancelLocked performs the full Cancelled transition. Caller holds mu.
func (s *Scheduler) cancelLocked() {
	stopped := 0
	for _, t := range s.timers {
		if t.Stop() {
			stopped++
		}
	}
	if s.state == Running {
		s.log.Debug("animation cancelled", "run", s.runID, "stopped", stopped)
	}

	s.gen++
	s.timers = nil
	s.levels = nil
	s.next = 0
	s.runID = ""
	s.visited = nil
	s.visitedSet = nil
	s.current = nil
	s.state = Idle
	s.closeDone()
}

// fire applies every level up to and including idx that has not been
// applied yet, so frames are emitted strictly in index order.
func (s *Scheduler) fire(gen uint64, idx int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen || s.state != Running {
		s.log.Debug("stale frame dropped", "index", idx)
		return
	}
	for s.next <= idx && s.state == Running {
		s.applyLocked(s.next)
	}
}

// applyLocked applies level i and renders it. Caller holds mu.
func (s *Scheduler) applyLocked(i int) {
	lvl := s.levels[i]
	if s.visitedSet == nil {
		s.visitedSet = make(map[string]struct{})
	}
	s.current = lvl
	for _, id := range lvl {
		if _, ok := s.visitedSet[id]; !ok {
			s.visitedSet[id] = struct{}{}
			s.visited = append(s.visited, id)
		}
	}
	s.next = i + 1

	f := Frame{
		RunID:   s.runID,
		Index:   i,
		Total:   len(s.levels),
		Current: append([]string(nil), s.current...),
		Visited: append([]string(nil), s.visited...),
	}
	if s.render != nil {
		s.render(f)
	}
	// Done closes only after the final frame is rendered.
	if f.Last() {
		s.state = Finished
		s.timers = nil
		s.closeDone()
		s.log.Debug("animation finished", "run", s.runID, "levels", len(s.levels))
	}
}

func (s *Scheduler) closeDone() {
	if !s.doneClosed {
		close(s.done)
		s.doneClosed = true
	}
}
