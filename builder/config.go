// SPDX-License-Identifier: MIT
// Package: drills/builder
//
// config.go - resolved builder configuration and functional options.

package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig is the resolved, immutable configuration handed to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn IDFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
}

// BuilderOption mutates a builderConfig during resolution.
type BuilderOption func(*builderConfig)

// CenterVertexID is the fixed hub ID used by Star and Wheel.
const CenterVertexID = "Center"

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn: DefaultIDFn, // "0","1","2",...
		rng:  nil,
	}
	// Last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the index → vertex ID mapping. Panics on nil, as option
// constructors are the one place validation panics are allowed.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand supplies the RNG used by stochastic constructors.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed seeds a fresh RNG for stochastic constructors.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// IDFn maps a vertex index to its ID.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal index: "0", "1", ...
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// ExcelColumnIDFn returns spreadsheet-style labels: "A".."Z", "AA", "AB", ...
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic("ExcelColumnIDFn: idx must be ≥ 0, got " + strconv.Itoa(idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// WithSymbolIDs labels vertices "A", "B", ..., "Z", "AA", ...
func WithSymbolIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}
