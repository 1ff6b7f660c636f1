package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/drills/coloring"
	"github.com/katalvlaran/drills/internal/config"
	"github.com/katalvlaran/drills/render"
)

const (
	kindGraph = "graph"
	kindTree  = "tree"

	formatDOT = "dot"
	formatSVG = "svg"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	fixture string // TOML fixture to draw
	format  string // "dot" or "svg"
	output  string // output file; stdout when empty
	color   bool   // color the graph before drawing it
}

func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: formatDOT}

	cmd := &cobra.Command{
		Use:       "render graph|tree",
		Short:     "Draw a fixture graph or tree as Graphviz DOT or SVG",
		Example:   `  drills render graph --fixture triangle.toml --color --format svg -o triangle.svg`,
		ValidArgs: []string{kindGraph, kindTree},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.fixture == "" {
				return errors.New("render: --fixture is required")
			}
			if opts.format != formatDOT && opts.format != formatSVG {
				return fmt.Errorf("render: unknown format %q (use %s or %s)", opts.format, formatDOT, formatSVG)
			}
			return c.runRender(cmd.Context(), cmd.OutOrStdout(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.fixture, "fixture", "f", "", "TOML fixture to draw")
	cmd.Flags().StringVar(&opts.format, "format", opts.format, "output format: dot or svg")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&opts.color, "color", false, "greedily color the graph before drawing")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, w io.Writer, kind string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	f, err := c.loadFixture(opts.fixture)
	if err != nil {
		return err
	}

	var dot string
	switch kind {
	case kindGraph:
		dot, err = graphDOT(f, opts)
	case kindTree:
		dot, err = treeDOT(f, opts)
	}
	if err != nil {
		return err
	}

	out := []byte(dot)
	if opts.format == formatSVG {
		prog := newProgress(logger)
		if out, err = render.SVG(ctx, dot); err != nil {
			return err
		}
		prog.done(fmt.Sprintf("Rendered %s to SVG", kind))
	}

	if opts.output == "" {
		_, err = w.Write(out)
		return err
	}
	if err = os.WriteFile(opts.output, out, 0o644); err != nil {
		return err
	}
	logger.Info("Wrote " + opts.output)

	return nil
}

func graphDOT(f *config.Fixture, opts *renderOpts) (string, error) {
	if f.Graph == nil {
		return "", fmt.Errorf("%s: [graph]: %w", opts.fixture, config.ErrMissingSection)
	}
	g, err := f.Graph.Build()
	if err != nil {
		return "", err
	}
	if opts.color {
		palette := f.Graph.Colors()
		if len(palette) == 0 {
			palette = coloring.PaletteFor(g)
		}
		if err = coloring.Greedy(g, palette); err != nil {
			return "", err
		}
	}

	return render.GraphDOT(g), nil
}

func treeDOT(f *config.Fixture, opts *renderOpts) (string, error) {
	switch {
	case f.Tree != nil:
		return render.TreeDOT(f.Tree.Build()), nil
	case f.BST != nil:
		return render.TreeDOT(f.BST.Build()), nil
	default:
		return "", fmt.Errorf("%s: [tree] or [bst]: %w", opts.fixture, config.ErrMissingSection)
	}
}
