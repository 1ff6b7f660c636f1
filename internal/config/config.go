// Package config loads drill fixtures from TOML.
//
// A fixture file holds any of four sections:
//
//	[graph]
//	palette = ["red", "green", "blue"]
//	nodes   = ["a", "b", "c"]
//	edges   = [["a", "b"], ["b", "c"], ["c", "a"]]
//
//	[tree]
//	value = 1
//	[tree.left]
//	value = 2
//
//	[bst]
//	values = [5, 3, 8, 1, 4, 7, 9]
//
//	[permutation]
//	input = "cat"
//
// Instead of nodes and edges, [graph] may name a generated shape with
// shape, n, p and seed. Unknown keys are rejected.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/drills/bintree"
	"github.com/katalvlaran/drills/builder"
	"github.com/katalvlaran/drills/core"
)

var (
	// ErrNoSections is returned when a fixture has none of the known sections.
	ErrNoSections = errors.New("config: fixture has no [graph], [tree], [bst] or [permutation] section")

	// ErrMissingSection is returned when a command asks for a section the fixture lacks.
	ErrMissingSection = errors.New("config: section not present")
)

// Fixture is one decoded fixture file. Absent sections are nil.
type Fixture struct {
	Graph       *Graph       `toml:"graph"`
	Tree        *Tree        `toml:"tree"`
	BST         *BST         `toml:"bst"`
	Permutation *Permutation `toml:"permutation"`
}

// Graph describes an undirected graph either edge by edge or as a
// generated shape.
type Graph struct {
	Palette []string   `toml:"palette"`
	Nodes   []string   `toml:"nodes"`
	Edges   [][]string `toml:"edges"`
	Loops   bool       `toml:"loops"`

	Shape string  `toml:"shape"`
	N     int     `toml:"n"`
	P     float64 `toml:"p"`
	Seed  int64   `toml:"seed"`
}

// Tree is a hand-drawn binary tree. Children nest as sub-tables.
type Tree struct {
	Value int   `toml:"value"`
	Left  *Tree `toml:"left"`
	Right *Tree `toml:"right"`
}

// BST lists values inserted one by one into a binary search tree.
type BST struct {
	Values []int `toml:"values"`
}

// Permutation holds the string to permute.
type Permutation struct {
	Input string `toml:"input"`
}

// Validate returns nil if the fixture is usable and otherwise an error.
func (f *Fixture) Validate() error {
	if f.Graph == nil && f.Tree == nil && f.BST == nil && f.Permutation == nil {
		return ErrNoSections
	}
	if f.Graph != nil {
		if err := f.Graph.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// Validate checks the palette and that exactly one of edges or shape is used.
func (g *Graph) Validate() error {
	seen := make(map[string]struct{}, len(g.Palette))
	for i, c := range g.Palette {
		if c == "" {
			return fmt.Errorf("config: graph.palette[%d] is empty", i)
		}
		if _, dup := seen[c]; dup {
			return fmt.Errorf("config: graph.palette has duplicate color %q", c)
		}
		seen[c] = struct{}{}
	}

	if g.Shape != "" {
		if len(g.Nodes) != 0 || len(g.Edges) != 0 {
			return errors.New("config: graph.shape cannot be combined with nodes or edges")
		}
		if g.N <= 0 {
			return fmt.Errorf("config: graph.n must be positive for shape %q", g.Shape)
		}
		return nil
	}

	for i, e := range g.Edges {
		if len(e) != 2 {
			return fmt.Errorf("config: graph.edges[%d] has %d endpoints, want 2", i, len(e))
		}
		if e[0] == "" || e[1] == "" {
			return fmt.Errorf("config: graph.edges[%d] has an empty endpoint", i)
		}
	}
	for i, id := range g.Nodes {
		if id == "" {
			return fmt.Errorf("config: graph.nodes[%d] is empty", i)
		}
	}

	return nil
}

// Build materializes the graph section. Listed nodes are added first, in
// order, so isolated vertices survive and insertion order is predictable.
func (g *Graph) Build() (*core.Graph, error) {
	var gopts []core.GraphOption
	if g.Loops {
		gopts = append(gopts, core.WithLoops())
	}

	if g.Shape != "" {
		cons, err := builder.ByName(g.Shape, g.N, g.P)
		if err != nil {
			return nil, err
		}
		return builder.BuildGraph(gopts, []builder.BuilderOption{builder.WithSeed(g.Seed)}, cons)
	}

	out := core.NewGraph(gopts...)
	for _, id := range g.Nodes {
		if err := out.AddVertex(id); err != nil {
			return nil, fmt.Errorf("config: node %q: %w", id, err)
		}
	}
	for _, e := range g.Edges {
		if err := out.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("config: edge %s-%s: %w", e[0], e[1], err)
		}
	}

	return out, nil
}

// Colors returns the palette as core colors, or nil when none is set.
func (g *Graph) Colors() []core.Color {
	if len(g.Palette) == 0 {
		return nil
	}
	out := make([]core.Color, len(g.Palette))
	for i, c := range g.Palette {
		out[i] = core.Color(c)
	}

	return out
}

// Build converts the nested tables into bintree nodes.
func (t *Tree) Build() *bintree.Node[int] {
	if t == nil {
		return nil
	}

	return &bintree.Node[int]{
		Value: t.Value,
		Left:  t.Left.Build(),
		Right: t.Right.Build(),
	}
}

// Build inserts the values into a fresh binary search tree.
func (b *BST) Build() *bintree.Node[int] {
	return bintree.FromValues(b.Values...)
}

// Load parses and validates the provided buffer b as a fixture file body
// and returns the Fixture.
func Load(b []byte) (*Fixture, error) {
	f := new(Fixture)
	md, err := toml.Decode(string(b), f)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		return nil, fmt.Errorf("config: Undecoded keys in fixture file: %v", undecoded)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return f, nil
}

// LoadFile loads, parses and validates the provided file and returns the
// Fixture.
func LoadFile(path string) (*Fixture, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Load(b)
}
