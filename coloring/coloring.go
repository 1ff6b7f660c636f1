package coloring

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/drills/core"
)

// colorer holds the state of one Greedy pass.
type colorer struct {
	graph   *core.Graph
	palette []core.Color
	opts    Options
}

// Greedy colors every vertex of g with the first legal palette color,
// processing vertices in one pass in the order supplied.
//
// Colors already present on neighbors count as illegal; unset neighbors do
// not. On error the pass stops at the offending vertex: vertices processed
// before it keep their new colors.
//
// Returns ErrGraphNil, ErrBadPalette or ErrVertexNotFound for invalid input,
// ErrInvalidGraph for a self-looped vertex, and ErrPaletteExhausted if the
// palette is too small.
func Greedy(g *core.Graph, palette []core.Color, opts ...Option) error {
	if g == nil {
		return ErrGraphNil
	}
	if err := validatePalette(palette); err != nil {
		return err
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	order, err := resolveOrder(g, o)
	if err != nil {
		return err
	}
	if o.Reset {
		g.ResetColors()
	}

	c := &colorer{graph: g, palette: palette, opts: o}
	for _, id := range order {
		if err = c.assign(id); err != nil {
			return err
		}
	}

	return nil
}

// assign gives id its first legal color.
func (c *colorer) assign(id string) error {
	if c.graph.HasLoop(id) {
		return fmt.Errorf("%w: %q", ErrInvalidGraph, id)
	}

	illegal, err := c.illegalColors(id)
	if err != nil {
		return err
	}

	for _, color := range c.palette {
		if _, taken := illegal[color]; taken {
			continue
		}
		if err = c.graph.SetColor(id, color); err != nil {
			return fmt.Errorf("coloring: SetColor(%q): %w", id, err)
		}
		c.opts.OnAssign(id, color)

		return nil
	}

	return fmt.Errorf("%w: vertex %q sees all %d colors", ErrPaletteExhausted, id, len(c.palette))
}

// illegalColors collects the colors currently held by the neighbors of id.
func (c *colorer) illegalColors(id string) (map[core.Color]struct{}, error) {
	nbrs, err := c.graph.Neighbors(id)
	if err != nil {
		return nil, fmt.Errorf("coloring: Neighbors(%q): %w", id, err)
	}

	illegal := make(map[core.Color]struct{}, len(nbrs))
	for _, nbr := range nbrs {
		color, err := c.graph.Color(nbr)
		if err != nil {
			return nil, fmt.Errorf("coloring: Color(%q): %w", nbr, err)
		}
		if color.IsSet() {
			illegal[color] = struct{}{}
		}
	}

	return illegal, nil
}

// resolveOrder returns the processing order for g under o.
func resolveOrder(g *core.Graph, o Options) ([]string, error) {
	order := o.Order
	if order == nil {
		order = g.Vertices()
	} else {
		for _, id := range order {
			if !g.HasVertex(id) {
				return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
			}
		}
		order = append([]string(nil), order...)
	}

	if o.LargestFirst {
		deg := make(map[string]int, len(order))
		for _, id := range order {
			deg[id], _ = g.Degree(id)
		}
		sort.SliceStable(order, func(i, j int) bool {
			return deg[order[i]] > deg[order[j]]
		})
	}

	return order, nil
}

func validatePalette(palette []core.Color) error {
	if len(palette) == 0 {
		return fmt.Errorf("%w: palette is empty", ErrBadPalette)
	}
	seen := make(map[core.Color]struct{}, len(palette))
	for i, c := range palette {
		if !c.IsSet() {
			return fmt.Errorf("%w: entry %d is unset", ErrBadPalette, i)
		}
		if _, dup := seen[c]; dup {
			return fmt.Errorf("%w: color %q listed twice", ErrBadPalette, c)
		}
		seen[c] = struct{}{}
	}

	return nil
}

// Verify reports whether g holds a legal, complete coloring.
// It returns ErrUncolored for the first unset vertex or ErrConflict for the
// first edge whose endpoints share a color, in insertion order.
func Verify(g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}

	for _, id := range g.Vertices() {
		color, err := g.Color(id)
		if err != nil {
			return err
		}
		if !color.IsSet() {
			return fmt.Errorf("%w: %q", ErrUncolored, id)
		}
		nbrs, err := g.Neighbors(id)
		if err != nil {
			return err
		}
		for _, nbr := range nbrs {
			other, err := g.Color(nbr)
			if err != nil {
				return err
			}
			if other == color {
				return fmt.Errorf("%w: %q–%q both %q", ErrConflict, id, nbr, color)
			}
		}
	}

	return nil
}

// ColorCount returns the number of distinct colors currently assigned in g.
func ColorCount(g *core.Graph) int {
	used := make(map[core.Color]struct{})
	for _, c := range g.Colors() {
		used[c] = struct{}{}
	}

	return len(used)
}
