// Package core declares Vertex, Color, Graph, GraphOption, the sentinel
// errors, and the NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Color is a vertex color. Any non-empty string works; the render package
// passes it straight to Graphviz, so names like "red" or "0.5 0.6 0.9"
// (HSV) render as expected.
type Color string

// NoColor marks an unset color slot.
const NoColor Color = ""

// IsSet reports whether c is an assigned color.
func (c Color) IsSet() bool { return c != NoColor }

// Vertex is a node of the arena. ID is the handle other vertices use to
// refer to it; Color is the vertex's single mutable slot.
type Vertex struct {
	// ID uniquely identifies this Vertex within its Graph.
	ID string

	// Color is NoColor until an algorithm assigns one.
	Color Color
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (a vertex listing itself as a neighbor).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an undirected graph arena keyed by vertex handle.
//
// mu guards every field below it. order keeps vertex insertion order so
// callers can process vertices "in the order supplied".
type Graph struct {
	mu sync.RWMutex

	allowLoops bool // allow self-loops

	vertices map[string]*Vertex             // handle → Vertex
	order    []string                       // insertion order of handles
	adj      map[string]map[string]struct{} // handle → neighbor handles
	edges    int                            // undirected edge count, loops count once
}

// NewGraph creates an empty Graph with the given options.
// By default the graph rejects self-loops.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]*Vertex),
		adj:      make(map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Looped reports whether the graph was created WithLoops.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}
