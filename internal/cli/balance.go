package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/drills/balance"
	"github.com/katalvlaran/drills/bintree"
	"github.com/katalvlaran/drills/internal/config"
)

func (c *CLI) superbalancedCommand() *cobra.Command {
	var fixture string
	var values []int

	cmd := &cobra.Command{
		Use:   "superbalanced",
		Short: "Check that all leaf depths of a binary tree differ by at most one",
		Long: `Reads a hand-drawn [tree] from a fixture, or builds a binary search tree
from --values (or the fixture's [bst] section), and reports its leaf depths.`,
		Example: `  drills superbalanced --values 5,3,8,1,4,7,9
  drills superbalanced --fixture tree.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := c.treeInput(fixture, values)
			if err != nil {
				return err
			}
			return runSuperbalanced(cmd.Context(), cmd.OutOrStdout(), root)
		},
	}

	cmd.Flags().StringVarP(&fixture, "fixture", "f", "", "TOML fixture with a [tree] or [bst] section")
	cmd.Flags().IntSliceVar(&values, "values", nil, "comma-separated values inserted into a binary search tree")

	return cmd
}

// treeInput prefers a fixture's [tree] over its [bst] section.
func (c *CLI) treeInput(fixture string, values []int) (*bintree.Node[int], error) {
	if fixture == "" {
		return bintree.FromValues(values...), nil
	}
	if len(values) > 0 {
		return nil, errors.New("superbalanced: give --values or --fixture, not both")
	}

	f, err := c.loadFixture(fixture)
	if err != nil {
		return nil, err
	}
	switch {
	case f.Tree != nil:
		return f.Tree.Build(), nil
	case f.BST != nil:
		return f.BST.Build(), nil
	default:
		return nil, fmt.Errorf("%s: [tree] or [bst]: %w", fixture, config.ErrMissingSection)
	}
}

func runSuperbalanced(ctx context.Context, w io.Writer, root *bintree.Node[int]) error {
	logger := loggerFromContext(ctx)

	prog := newProgress(logger)
	res := balance.Check(root, balance.WithOnVisit(func(depth int) {
		logger.Debug("visit", "depth", depth)
	}))
	prog.done(fmt.Sprintf("Visited %d of %d nodes", res.Visited, bintree.Size(root)))

	t := newTable(w)
	t.AppendHeader(table.Row{"Superbalanced", "Leaf depths", "Visited"})
	t.AppendRow(table.Row{res.Balanced, fmt.Sprint(res.LeafDepths), res.Visited})
	t.Render()

	return nil
}
