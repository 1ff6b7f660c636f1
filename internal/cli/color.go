package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/drills/builder"
	"github.com/katalvlaran/drills/coloring"
	"github.com/katalvlaran/drills/core"
	"github.com/katalvlaran/drills/internal/config"
)

const (
	defaultShape = builder.ShapeCycle
	defaultN     = 5
	defaultP     = 0.3
	defaultSeed  = 42
)

// colorOpts holds the command-line flags for the color command.
type colorOpts struct {
	fixture      string   // TOML fixture with a [graph] section
	shape        string   // generated shape when no fixture is given
	n            int      // vertex count for the generated shape
	p            float64  // edge probability for the random shape
	seed         int64    // seed for the random shape
	symbols      bool     // label generated vertices A, B, C, ...
	largestFirst bool     // visit vertices by descending degree
	palette      []string // explicit palette, overrides the fixture's
}

func (c *CLI) colorCommand() *cobra.Command {
	opts := colorOpts{shape: defaultShape, n: defaultN, p: defaultP, seed: defaultSeed}

	cmd := &cobra.Command{
		Use:   "color",
		Short: "Greedily color a graph so no edge joins two equal colors",
		Long: `Colors every vertex with the first palette color not used by a neighbor.
The palette defaults to max degree + 1 colors, which always suffices.`,
		Example: `  drills color --shape wheel --n 6
  drills color --fixture triangle.toml --largest-first`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runColor(cmd.Context(), cmd.OutOrStdout(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.fixture, "fixture", "f", "", "TOML fixture with a [graph] section")
	cmd.Flags().StringVar(&opts.shape, "shape", opts.shape, fmt.Sprintf("generated shape %v", builder.Shapes))
	cmd.Flags().IntVar(&opts.n, "n", opts.n, "vertex count of the generated shape")
	cmd.Flags().Float64Var(&opts.p, "p", opts.p, "edge probability of the random shape")
	cmd.Flags().Int64Var(&opts.seed, "seed", opts.seed, "seed of the random shape")
	cmd.Flags().BoolVar(&opts.symbols, "symbols", false, "label generated vertices A, B, C, ...")
	cmd.Flags().BoolVar(&opts.largestFirst, "largest-first", false, "visit vertices by descending degree")
	cmd.Flags().StringSliceVar(&opts.palette, "palette", nil, "comma-separated colors to use, in order")

	return cmd
}

func (c *CLI) runColor(ctx context.Context, w io.Writer, opts *colorOpts) error {
	logger := loggerFromContext(ctx)

	g, palette, err := c.colorInput(opts)
	if err != nil {
		return err
	}
	if len(opts.palette) > 0 {
		palette = toColors(opts.palette)
	}
	if len(palette) == 0 {
		palette = coloring.PaletteFor(g)
	}
	logger.Debug("coloring", "vertices", g.VertexCount(), "edges", g.EdgeCount(),
		"maxDegree", g.MaxDegree(), "palette", len(palette))

	copts := []coloring.Option{
		coloring.WithOnAssign(func(id string, col core.Color) {
			logger.Debug("assigned", "vertex", id, "color", col)
		}),
	}
	if opts.largestFirst {
		copts = append(copts, coloring.WithLargestFirst())
	}

	prog := newProgress(logger)
	if err = coloring.Greedy(g, palette, copts...); err != nil {
		return err
	}
	if err = coloring.Verify(g); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Colored %d vertices with %d colors", g.VertexCount(), coloring.ColorCount(g)))

	t := newTable(w)
	t.AppendHeader(table.Row{"Vertex", "Degree", "Color"})
	for _, id := range g.Vertices() {
		deg, _ := g.Degree(id)
		col, _ := g.Color(id)
		t.AppendRow(table.Row{id, deg, col})
	}
	t.AppendFooter(table.Row{"", "colors", coloring.ColorCount(g)})
	t.Render()

	return nil
}

// colorInput returns the graph to color and the fixture palette, if any.
func (c *CLI) colorInput(opts *colorOpts) (*core.Graph, []core.Color, error) {
	if opts.fixture != "" {
		f, err := c.loadFixture(opts.fixture)
		if err != nil {
			return nil, nil, err
		}
		if f.Graph == nil {
			return nil, nil, fmt.Errorf("%s: [graph]: %w", opts.fixture, config.ErrMissingSection)
		}
		g, err := f.Graph.Build()
		if err != nil {
			return nil, nil, err
		}
		return g, f.Graph.Colors(), nil
	}

	cons, err := builder.ByName(opts.shape, opts.n, opts.p)
	if err != nil {
		return nil, nil, err
	}
	bopts := []builder.BuilderOption{builder.WithSeed(opts.seed)}
	if opts.symbols {
		bopts = append(bopts, builder.WithSymbolIDs())
	}
	g, err := builder.BuildGraph(nil, bopts, cons)
	if err != nil {
		return nil, nil, err
	}

	return g, nil, nil
}

func toColors(names []string) []core.Color {
	out := make([]core.Color, len(names))
	for i, n := range names {
		out[i] = core.Color(n)
	}

	return out
}
