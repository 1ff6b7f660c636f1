package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/drills/balance"
	"github.com/katalvlaran/drills/bintree"
	"github.com/katalvlaran/drills/core"
	"github.com/katalvlaran/drills/internal/config"
)

func TestLoadFile(t *testing.T) {
	f, err := config.LoadFile(filepath.Join("testdata", "triangle.toml"))
	require.NoError(t, err)

	require.NotNil(t, f.Graph)
	g, err := f.Graph.Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "lonely"}, g.Vertices())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, []core.Color{"red", "green", "blue"}, f.Graph.Colors())

	require.NotNil(t, f.Tree)
	root := f.Tree.Build()
	assert.Equal(t, 7, bintree.Size(root))
	res := balance.Check(root)
	assert.True(t, res.Balanced)
	assert.Equal(t, []int{2, 3}, res.LeafDepths)

	require.NotNil(t, f.BST)
	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, bintree.InOrder(f.BST.Build()))

	require.NotNil(t, f.Permutation)
	assert.Equal(t, "cat", f.Permutation.Input)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := config.LoadFile(filepath.Join("testdata", "nope.toml"))
	assert.Error(t, err)
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"syntax", "[graph\n"},
		{"unknown key", "[bst]\nvalues = [1]\ncolour = \"red\"\n"},
		{"unknown section", "[heap]\nvalues = [1]\n"},
		{"short edge", "[graph]\nedges = [[\"a\"]]\n"},
		{"empty endpoint", "[graph]\nedges = [[\"a\", \"\"]]\n"},
		{"empty node", "[graph]\nnodes = [\"\"]\n"},
		{"duplicate color", "[graph]\npalette = [\"red\", \"red\"]\n"},
		{"shape and edges", "[graph]\nshape = \"cycle\"\nn = 4\nedges = [[\"a\", \"b\"]]\n"},
		{"shape without n", "[graph]\nshape = \"cycle\"\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load([]byte(tc.body))
			assert.Error(t, err)
		})
	}
}

func TestLoad_Empty(t *testing.T) {
	_, err := config.Load(nil)
	assert.ErrorIs(t, err, config.ErrNoSections)
}

func TestGraph_Shape(t *testing.T) {
	f, err := config.Load([]byte("[graph]\nshape = \"wheel\"\nn = 6\n"))
	require.NoError(t, err)

	g, err := f.Graph.Build()
	require.NoError(t, err)
	assert.Equal(t, 6, g.VertexCount())
	assert.Equal(t, 10, g.EdgeCount())
	assert.Nil(t, f.Graph.Colors())
}

func TestGraph_UnknownShape(t *testing.T) {
	f, err := config.Load([]byte("[graph]\nshape = \"hexagram\"\nn = 6\n"))
	require.NoError(t, err)

	_, err = f.Graph.Build()
	assert.Error(t, err)
}

func TestGraph_Loops(t *testing.T) {
	body := "[graph]\nedges = [[\"x\", \"x\"]]\n"

	f, err := config.Load([]byte(body))
	require.NoError(t, err)
	_, err = f.Graph.Build()
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = config.Load([]byte("loops = true\n" + body))
	require.Error(t, err, "loops outside [graph] is an unknown key")

	f, err = config.Load([]byte("[graph]\nloops = true\nedges = [[\"x\", \"x\"]]\n"))
	require.NoError(t, err)
	g, err := f.Graph.Build()
	require.NoError(t, err)
	assert.True(t, g.HasLoop("x"))
}

func TestTree_NilBuild(t *testing.T) {
	var tr *config.Tree
	assert.Nil(t, tr.Build())
}
