package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/drills/internal/config"
	"github.com/katalvlaran/drills/permutation"
)

// maxPermuteRunes caps the input length; 10 runes already give 3 628 800 rows.
const maxPermuteRunes = 10

func (c *CLI) permuteCommand() *cobra.Command {
	var fixture string
	var countOnly bool

	cmd := &cobra.Command{
		Use:   "permute [string]",
		Short: "List every rearrangement of a string",
		Example: `  drills permute cat
  drills permute --fixture words.toml --count`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := c.permuteInput(fixture, args)
			if err != nil {
				return err
			}
			return c.runPermute(cmd.Context(), cmd.OutOrStdout(), input, countOnly)
		},
	}

	cmd.Flags().StringVarP(&fixture, "fixture", "f", "", "TOML fixture with a [permutation] section")
	cmd.Flags().BoolVar(&countOnly, "count", false, "print only the number of permutations")

	return cmd
}

func (c *CLI) permuteInput(fixture string, args []string) (string, error) {
	switch {
	case len(args) == 1 && fixture != "":
		return "", errors.New("permute: give a string or --fixture, not both")
	case len(args) == 1:
		return args[0], nil
	case fixture == "":
		return "", errors.New("permute: missing string argument")
	}

	f, err := c.loadFixture(fixture)
	if err != nil {
		return "", err
	}
	if f.Permutation == nil {
		return "", fmt.Errorf("%s: [permutation]: %w", fixture, config.ErrMissingSection)
	}

	return f.Permutation.Input, nil
}

func (c *CLI) runPermute(ctx context.Context, w io.Writer, input string, countOnly bool) error {
	logger := loggerFromContext(ctx)

	if n := len([]rune(input)); n > maxPermuteRunes {
		return fmt.Errorf("permute: %d characters is more than the %d allowed", n, maxPermuteRunes)
	}

	prog := newProgress(logger)
	set := permutation.Permutations(input)
	prog.done(fmt.Sprintf("Generated %d permutations of %q", set.Len(), input))

	if countOnly {
		_, err := fmt.Fprintln(w, set.Len())
		return err
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"#", "Permutation"})
	for i, p := range set.Sorted() {
		t.AppendRow(table.Row{i + 1, p})
	}
	t.AppendFooter(table.Row{"", fmt.Sprintf("%d total", set.Len())})
	t.Render()

	return nil
}
