// SPDX-License-Identifier: MIT
// Package: primmst/builder
//
// config.go — resolved builder configuration.

package builder

import "math/rand"

// builderConfig is the resolved view of all BuilderOptions.
type builderConfig struct {
	// rng drives stochastic constructors and random weight functions; nil
	// unless WithSeed or WithRand is given.
	rng *rand.Rand

	// weightFn yields the weight of each emitted edge.
	weightFn func(*rand.Rand) int32
}

// defaultConstWeight is the weight of every edge when no WeightFn is set.
const defaultConstWeight = int32(1)

// newBuilderConfig applies opts over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: func(*rand.Rand) int32 { return defaultConstWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next edge weight.
func (c builderConfig) weight() int32 {
	return c.weightFn(c.rng)
}
