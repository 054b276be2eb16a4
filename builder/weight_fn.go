// SPDX-License-Identifier: MIT
// Package: graphwalk/builder
//
// weight_fn.go - edge weight generators.
//
// Weights are positive integers; core.Graph rewrites anything ≤ 0 to 1 and
// ignores weights entirely in unweighted mode.

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight emitted when no WeightFn is configured.
const DefaultEdgeWeight int64 = 1

// WeightFn returns the weight for the next emitted edge.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn always returns value. Panics on value < 1.
func ConstantWeightFn(value int64) WeightFn {
	if value < 1 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 1, got %d", value))
	}
	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn draws uniformly from [min, max]. Panics unless 1 ≤ min ≤ max.
// With a nil rng it returns min.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 1 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 1 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}
	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}
		return min + rng.Int63n(max-min+1)
	}
}
