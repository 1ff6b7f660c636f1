package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/drills/bst"
	"github.com/katalvlaran/drills/coloring"
	"github.com/katalvlaran/drills/internal/config"
)

// execute runs the root command with args and returns stdout and the log output.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, logs bytes.Buffer
	c := New(&logs, LogDebug)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(&logs)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), logs.String(), err
}

// writeFixture stores body as a TOML file in a fresh temp dir.
func writeFixture(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fixture.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

const triangleFixture = `
[graph]
palette = ["red", "green", "blue"]
edges   = [["a", "b"], ["b", "c"], ["c", "a"]]

[tree]
value = 1
[tree.left]
value = 2
[tree.left.left]
value = 3
[tree.left.left.left]
value = 4
[tree.right]
value = 5

[permutation]
input = "ab"
`

func TestColor_Shape(t *testing.T) {
	out, logs, err := execute(t, "color", "--shape", "wheel", "--n", "6", "--symbols")
	require.NoError(t, err)

	for _, want := range []string{"Center", "red", "green", "blue", "yellow"} {
		assert.Contains(t, out, want)
	}
	assert.Contains(t, logs, "Colored 6 vertices with 4 colors")
	assert.Contains(t, logs, "assigned", "debug hook output")
}

func TestColor_Fixture(t *testing.T) {
	out, _, err := execute(t, "color", "--fixture", writeFixture(t, triangleFixture), "--largest-first")
	require.NoError(t, err)
	assert.Contains(t, out, "blue")
}

func TestColor_SelfLoop(t *testing.T) {
	path := writeFixture(t, "[graph]\nloops = true\nedges = [[\"x\", \"x\"]]\n")

	_, _, err := execute(t, "color", "--fixture", path)
	assert.ErrorIs(t, err, coloring.ErrInvalidGraph)
}

func TestColor_PaletteTooSmall(t *testing.T) {
	_, _, err := execute(t, "color", "--shape", "complete", "--n", "4", "--palette", "red,green")
	assert.ErrorIs(t, err, coloring.ErrPaletteExhausted)
}

func TestColor_MissingSection(t *testing.T) {
	_, _, err := execute(t, "color", "--fixture", writeFixture(t, "[bst]\nvalues = [1, 2]\n"))
	assert.ErrorIs(t, err, config.ErrMissingSection)
}

func TestPermute(t *testing.T) {
	out, _, err := execute(t, "permute", "cat")
	require.NoError(t, err)
	for _, p := range []string{"act", "atc", "cat", "cta", "tac", "tca"} {
		assert.Contains(t, out, p)
	}
	assert.Contains(t, strings.ToLower(out), "6 total")

	out, _, err = execute(t, "permute", "--count", "abcd")
	require.NoError(t, err)
	assert.Equal(t, "24\n", out)

	out, _, err = execute(t, "permute", "--count", "--fixture", writeFixture(t, triangleFixture))
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestPermute_Errors(t *testing.T) {
	_, _, err := execute(t, "permute")
	assert.Error(t, err)

	_, _, err = execute(t, "permute", strings.Repeat("x", maxPermuteRunes+1))
	assert.Error(t, err)
}

func TestSecondLargest(t *testing.T) {
	out, _, err := execute(t, "second-largest", "5", "3", "8", "1", "4", "7", "9")
	require.NoError(t, err)
	assert.Equal(t, "8\n", out)

	_, _, err = execute(t, "second-largest", "7")
	assert.ErrorIs(t, err, bst.ErrInvalidTree)

	_, _, err = execute(t, "second-largest", "seven")
	assert.Error(t, err)
}

func TestSecondLargest_Fixture(t *testing.T) {
	path := writeFixture(t, "[bst]\nvalues = [10, 5, 20]\n")

	out, _, err := execute(t, "second-largest", "--fixture", path)
	require.NoError(t, err)
	assert.Equal(t, "10\n", out)
}

func TestSuperbalanced(t *testing.T) {
	out, _, err := execute(t, "superbalanced", "--values", "5,3,8,1,4,7,9")
	require.NoError(t, err)
	assert.Contains(t, out, "true")
	assert.Contains(t, out, "[2]")

	// leaves at depths 1 and 3
	out, _, err = execute(t, "superbalanced", "--fixture", writeFixture(t, triangleFixture))
	require.NoError(t, err)
	assert.Contains(t, out, "false")
	assert.Contains(t, out, "[1 3]")
}

func TestRender_DOT(t *testing.T) {
	path := writeFixture(t, triangleFixture)

	out, _, err := execute(t, "render", "graph", "--fixture", path, "--color")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "graph G {"))
	assert.Contains(t, out, `fillcolor="blue"`)

	out, _, err = execute(t, "render", "tree", "--fixture", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "digraph T {"))
	assert.Contains(t, out, `n0 [label="1"];`)
}

func TestRender_Output(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "tree.dot")

	out, logs, err := execute(t, "render", "tree", "--fixture", writeFixture(t, triangleFixture), "-o", dst)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, logs, "Wrote "+dst)

	b, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Contains(t, string(b), "digraph T {")
}

func TestRender_Errors(t *testing.T) {
	path := writeFixture(t, triangleFixture)

	cases := [][]string{
		{"render", "graph"},
		{"render", "heap", "--fixture", path},
		{"render", "graph", "--fixture", path, "--format", "png"},
		{"render", "--fixture", path},
	}
	for _, args := range cases {
		_, _, err := execute(t, args...)
		assert.Error(t, err, "args %v", args)
	}
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "drills version")
}
