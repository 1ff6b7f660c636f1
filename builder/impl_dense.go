// SPDX-License-Identifier: MIT
// Package: drills/builder
//
// impl_dense.go - Complete and RandomSparse.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/drills/core"
)

const (
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"

	minCompleteNodes        = 1
	minRandomSparseVertices = 1

	probMin = 0.0
	probMax = 1.0
)

// Complete builds K_n (n ≥ 1). D = n-1, and greedy needs all n colors.
// Complexity: O(n^2).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, methodComplete, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, methodComplete, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomSparse builds an Erdős–Rényi G(n,p) graph: every unordered pair
// i<j is linked with probability p, pairs visited in ascending (i,j) order.
// p ∈ (0,1) requires an RNG (WithSeed/WithRand); p = 0 and p = 1 do not.
// Complexity: O(n^2) pair checks.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if math.IsNaN(p) || p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := addVertices(g, methodRandomSparse, cfg, n); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				var link bool
				switch p {
				case probMin:
					link = false
				case probMax:
					link = true
				default:
					link = cfg.rng.Float64() < p
				}
				if !link {
					continue
				}
				if err := addEdge(g, methodRandomSparse, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
