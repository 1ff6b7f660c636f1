// Package coloring defines options and sentinel errors for greedy coloring.
package coloring

import (
	"errors"

	"github.com/katalvlaran/drills/core"
)

// Sentinel errors for graph coloring.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("coloring: graph is nil")

	// ErrInvalidGraph is returned when a vertex is its own neighbor (self-loop);
	// no color can both avoid and equal itself.
	ErrInvalidGraph = errors.New("coloring: legal coloring impossible for vertex with loop")

	// ErrBadPalette is returned for an empty palette, an unset color entry,
	// or a color listed twice.
	ErrBadPalette = errors.New("coloring: invalid palette")

	// ErrPaletteExhausted is returned when every palette color is already held
	// by a neighbor. Cannot happen with at least D+1 colors.
	ErrPaletteExhausted = errors.New("coloring: no legal color left in palette")

	// ErrVertexNotFound is returned when WithOrder references an unknown vertex.
	ErrVertexNotFound = errors.New("coloring: vertex not found")

	// ErrUncolored is returned by Verify when a vertex has no color.
	ErrUncolored = errors.New("coloring: vertex left uncolored")

	// ErrConflict is returned by Verify when adjacent vertices share a color.
	ErrConflict = errors.New("coloring: adjacent vertices share a color")
)

// Option configures Greedy via functional arguments.
type Option func(*Options)

// Options holds the parameters and callbacks of one Greedy pass.
type Options struct {
	// Order, if non-nil, is the exact processing order.
	Order []string

	// LargestFirst sorts the processing order by descending degree.
	LargestFirst bool

	// Reset clears all color slots before coloring.
	Reset bool

	// OnAssign is called after a vertex receives its color.
	OnAssign func(id string, c core.Color)
}

// DefaultOptions returns Options with:
//   - insertion order (Order == nil)
//   - no degree sorting
//   - existing colors kept
//   - a no-op OnAssign hook
func DefaultOptions() Options {
	return Options{
		Order:        nil,
		LargestFirst: false,
		Reset:        false,
		OnAssign:     func(string, core.Color) {},
	}
}

// WithOrder fixes the processing order. Vertices not listed are left untouched.
func WithOrder(ids ...string) Option {
	return func(o *Options) {
		o.Order = append([]string(nil), ids...)
	}
}

// WithLargestFirst processes higher-degree vertices first (Welsh–Powell).
// Combined with WithOrder it reorders the given list.
func WithLargestFirst() Option {
	return func(o *Options) {
		o.LargestFirst = true
	}
}

// WithReset clears every color slot before the pass, so stale colors from an
// earlier run do not count as illegal.
func WithReset() Option {
	return func(o *Options) {
		o.Reset = true
	}
}

// WithOnAssign registers a callback run after each assignment.
func WithOnAssign(fn func(id string, c core.Color)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAssign = fn
		}
	}
}
