// SPDX-License-Identifier: MIT
// Package: drills/builder
//
// Package builder provides deterministic fixture constructors for core.Graph:
// paths, cycles, stars, wheels, complete graphs and seeded random sparse
// graphs. The coloring tests, benchmarks and the CLI all build their inputs
// here.
//
// Usage:
//
//	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(7)},
//	    builder.Wheel(6),
//	)
//
// Determinism:
//
//	Same constructors, same order and same seed ⇒ identical vertex order and edges.
//
// Errors:
//
//	ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed.
//	Constructor errors are wrapped with the method name; branch with errors.Is.
package builder
