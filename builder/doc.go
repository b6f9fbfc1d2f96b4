// Package builder provides deterministic constructors of core.Graph
// topologies for tests, benchmarks and the primmst command.
//
// Usage:
//
//	g, err := builder.BuildGraph(6, nil,
//	    []builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeight(1, 100)},
//	    builder.Cycle(), builder.RandomEdges(4))
//
// Constructors: Path, Cycle, Complete, Star, RandomEdges. RandomConnected is
// a shortcut for Path followed by RandomEdges.
//
// Options: WithSeed, WithRand, WithWeightFn, WithConstantWeight,
// WithUniformWeight. Without a weight option every edge weighs 1.
//
// Errors: ErrTooFewVertices, ErrNeedRandSource, ErrConstructFailed, plus
// wrapped core errors. Check with errors.Is.
package builder
