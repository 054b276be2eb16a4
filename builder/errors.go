// SPDX-License-Identifier: MIT
// Package: graphwalk/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Implementations attach context with %w, never by redefining sentinels.
//   - Option constructors (WithX) may panic on programmer error; constructors never do.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or an unrecoverable core rejection.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrBadPreset indicates a preset string that ParsePreset cannot understand.
var ErrBadPreset = errors.New("builder: bad preset")
