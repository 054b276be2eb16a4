// SPDX-License-Identifier: MIT
// Package: graphwalk/builder
//
// options.go - builderConfig and its functional options.
//
// Validation panics are confined to option constructors (programmer error).

package builder

import "math/rand"

// builderConfig is the resolved, read-only configuration passed to constructors.
type builderConfig struct {
	// idFn maps a vertex index to its label.
	idFn IDFn
	// rng drives stochastic constructors and weight functions; nil unless set.
	rng *rand.Rand
	// weightFn yields a weight per emitted edge (core normalizes ≤0 to 1).
	weightFn WeightFn
}

// BuilderOption mutates builderConfig before constructors run.
type BuilderOption func(*builderConfig)

// newBuilderConfig returns decimal IDs, no RNG and unit weights, then applies opts.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the vertex labeling function. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand installs a caller-owned RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed installs a fresh RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
