// SPDX-License-Identifier: MIT
// Package: primmst/builder
//
// weight_fn.go — edge-weight distributions.

package builder

import (
	"fmt"
	"math/rand"
)

// ConstantWeightFn returns a weight function that always yields value.
func ConstantWeightFn(value int32) func(*rand.Rand) int32 {
	return func(*rand.Rand) int32 { return value }
}

// UniformWeightFn returns a weight function sampling uniformly in [min, max].
// Panics if max < min. With a nil RNG it yields min.
func UniformWeightFn(min, max int32) func(*rand.Rand) int32 {
	if max < min {
		panic(fmt.Sprintf("UniformWeightFn: require min ≤ max, got min=%d, max=%d", min, max))
	}
	span := int64(max) - int64(min) + 1

	return func(rng *rand.Rand) int32 {
		if rng == nil || span == 1 {
			return min
		}

		return int32(int64(min) + rng.Int63n(span))
	}
}

// WithConstantWeight sets a fixed edge weight.
func WithConstantWeight(w int32) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ∼ U[min,max].
func WithUniformWeight(min, max int32) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}
