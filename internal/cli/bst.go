package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/drills/bintree"
	"github.com/katalvlaran/drills/bst"
	"github.com/katalvlaran/drills/internal/config"
)

func (c *CLI) secondLargestCommand() *cobra.Command {
	var fixture string

	cmd := &cobra.Command{
		Use:   "second-largest [values...]",
		Short: "Insert values into a binary search tree and print its second largest",
		Example: `  drills second-largest 5 3 8 1 4 7 9
  drills second-largest --fixture tree.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := c.bstInput(fixture, args)
			if err != nil {
				return err
			}
			return runSecondLargest(cmd.Context(), cmd.OutOrStdout(), root)
		},
	}

	cmd.Flags().StringVarP(&fixture, "fixture", "f", "", "TOML fixture with a [bst] section")

	return cmd
}

func (c *CLI) bstInput(fixture string, args []string) (*bintree.Node[int], error) {
	if fixture == "" {
		values, err := parseInts(args)
		if err != nil {
			return nil, fmt.Errorf("second-largest: %w", err)
		}
		return bintree.FromValues(values...), nil
	}
	if len(args) > 0 {
		return nil, errors.New("second-largest: give values or --fixture, not both")
	}

	f, err := c.loadFixture(fixture)
	if err != nil {
		return nil, err
	}
	if f.BST == nil {
		return nil, fmt.Errorf("%s: [bst]: %w", fixture, config.ErrMissingSection)
	}

	return f.BST.Build(), nil
}

func runSecondLargest(ctx context.Context, w io.Writer, root *bintree.Node[int]) error {
	logger := loggerFromContext(ctx)
	logger.Debug("tree", "size", bintree.Size(root), "height", bintree.Height(root))

	v, err := bst.SecondLargest(root)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, v)

	return err
}
