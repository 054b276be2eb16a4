// SPDX-License-Identifier: MIT

// Package builder generates canonical graph shapes into a core.Graph.
//
// What:
//
//   - Constructors: Path, Cycle, Star, Wheel, Complete, Grid, RandomSparse.
//   - BuildGraph creates a fresh graph; Apply fills an existing one.
//   - ParsePreset maps strings like "cycle:5" or "grid:3x4" to constructors.
//
// Options:
//
//   - WithIDScheme / WithSymbolIDs / WithExcelColumnIDs / WithPrefixIDs pick vertex labels.
//   - WithSeed / WithRand supply randomness for RandomSparse and UniformWeightFn.
//   - WithWeightFn picks edge weights (ignored by unweighted graphs).
//
// Determinism:
//
//   - Vertices are added in index order and edges in a documented loop order.
//     With a fixed seed the resulting graph is byte-for-byte reproducible,
//     so traversal output over builder graphs is stable.
//
// Errors:
//
//   - ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
//     ErrConstructFailed, ErrBadPreset, plus any core error (wrapped).
package builder
