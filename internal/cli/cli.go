package cli

import (
	"io"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/drills/internal/buildinfo"
	"github.com/katalvlaran/drills/internal/config"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "drills",
		Short:        "Run classic graph and tree drills from the command line",
		Long:         `drills colors graphs greedily, lists string permutations, finds the second largest value of a binary search tree and checks trees for superbalance.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.colorCommand())
	root.AddCommand(c.permuteCommand())
	root.AddCommand(c.secondLargestCommand())
	root.AddCommand(c.superbalancedCommand())
	root.AddCommand(c.renderCommand())

	return root
}

// loadFixture reads a fixture file and logs which sections it carries.
func (c *CLI) loadFixture(path string) (*config.Fixture, error) {
	f, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("loaded fixture", "path", path,
		"graph", f.Graph != nil, "tree", f.Tree != nil,
		"bst", f.BST != nil, "permutation", f.Permutation != nil)

	return f, nil
}

// parseInts converts command arguments to ints.
func parseInts(args []string) ([]int, error) {
	out := make([]int, 0, len(args))
	for _, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}
