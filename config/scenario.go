// Package config loads graph scenarios from YAML and runtime settings from
// the environment and .env files.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphwalk/core"
)

// ErrInvalidScenario wraps every structural problem found in a scenario file.
var ErrInvalidScenario = errors.New("config: invalid scenario")

// Scenario is a graph description replayed through the store's public
// operations, so the usual validation and weight normalization apply.
//
//	directed: true
//	weighted: true
//	delay: 400ms
//	nodes: [A, B, C]
//	edges:
//	  - {from: A, to: B, weight: 4}
//	  - {from: B, to: C}
type Scenario struct {
	Directed *bool      `yaml:"directed,omitempty"`
	Weighted *bool      `yaml:"weighted,omitempty"`
	Delay    string     `yaml:"delay,omitempty"`
	Nodes    []string   `yaml:"nodes"`
	Edges    []EdgeSpec `yaml:"edges,omitempty"`

	delay time.Duration
}

// EdgeSpec is one edge of a scenario. Weight is free text and goes through
// core.ParseWeight, so missing or non-numeric values become 1.
type EdgeSpec struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Weight string `yaml:"weight,omitempty"`
}

// Target receives a replayed scenario. *core.Graph and *session.Engine
// both satisfy it.
type Target interface {
	SetDirected(bool)
	SetWeighted(bool)
	AddNode(label string) (string, error)
	AddEdge(from, to string, weight int64) (core.Edge, error)
}

// LoadScenario reads and parses the scenario at path.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	sc, err := ParseScenario(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return sc, nil
}

// ParseScenario decodes a scenario document.
func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	if sc.Delay != "" {
		d, err := time.ParseDuration(sc.Delay)
		if err != nil || d < 0 {
			return nil, fmt.Errorf("%w: delay %q", ErrInvalidScenario, sc.Delay)
		}
		sc.delay = d
	}
	for i, e := range sc.Edges {
		if e.From == "" || e.To == "" {
			return nil, fmt.Errorf("%w: edge %d needs from and to", ErrInvalidScenario, i)
		}
	}

	return &sc, nil
}

// DelayOr returns the scenario's delay, or def when none was given.
func (sc *Scenario) DelayOr(def time.Duration) time.Duration {
	if sc.Delay == "" {
		return def
	}

	return sc.delay
}

// Apply sets the modes present in sc, then adds nodes and edges in file
// order. It stops at the first rejected item.
func (sc *Scenario) Apply(t Target) error {
	if sc.Directed != nil {
		t.SetDirected(*sc.Directed)
	}
	if sc.Weighted != nil {
		t.SetWeighted(*sc.Weighted)
	}
	for i, n := range sc.Nodes {
		if _, err := t.AddNode(n); err != nil {
			return fmt.Errorf("scenario node %d (%q): %w", i, n, err)
		}
	}
	for i, e := range sc.Edges {
		if _, err := t.AddEdge(e.From, e.To, core.ParseWeight(e.Weight)); err != nil {
			return fmt.Errorf("scenario edge %d (%s→%s): %w", i, e.From, e.To, err)
		}
	}

	return nil
}
