// SPDX-License-Identifier: MIT
// Package: drills/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/drills/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early, return sentinel
// errors and emit vertices and edges in a stable order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Shape names accepted by ByName.
const (
	ShapePath     = "path"
	ShapeCycle    = "cycle"
	ShapeStar     = "star"
	ShapeWheel    = "wheel"
	ShapeComplete = "complete"
	ShapeRandom   = "random"
)

// Shapes lists every name ByName understands, in display order.
var Shapes = []string{ShapePath, ShapeCycle, ShapeStar, ShapeWheel, ShapeComplete, ShapeRandom}

// ByName maps a shape name to its constructor. p is only used by ShapeRandom.
// Unknown names yield ErrConstructFailed.
func ByName(shape string, n int, p float64) (Constructor, error) {
	switch shape {
	case ShapePath:
		return Path(n), nil
	case ShapeCycle:
		return Cycle(n), nil
	case ShapeStar:
		return Star(n), nil
	case ShapeWheel:
		return Wheel(n), nil
	case ShapeComplete:
		return Complete(n), nil
	case ShapeRandom:
		return RandomSparse(n, p), nil
	default:
		return nil, fmt.Errorf("builder: unknown shape %q: %w", shape, ErrConstructFailed)
	}
}
