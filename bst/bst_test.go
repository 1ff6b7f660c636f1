package bst_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/drills/bintree"
	"github.com/katalvlaran/drills/bst"
)

// TestSecondLargest_Errors covers the 0- and 1-node trees.
func TestSecondLargest_Errors(t *testing.T) {
	if _, err := bst.SecondLargest[int](nil); !errors.Is(err, bst.ErrInvalidTree) {
		t.Errorf("nil root: want ErrInvalidTree, got %v", err)
	}
	if _, err := bst.SecondLargest(bintree.New(7)); !errors.Is(err, bst.ErrInvalidTree) {
		t.Errorf("single node: want ErrInvalidTree, got %v", err)
	}
}

// TestSecondLargest_TwoNodes checks that exactly two nodes is valid in both shapes.
func TestSecondLargest_TwoNodes(t *testing.T) {
	got, err := bst.SecondLargest(bintree.FromValues(5, 9))
	require.NoError(t, err)
	assert.Equal(t, 5, got)

	got, err = bst.SecondLargest(bintree.FromValues(5, 2))
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestSecondLargest_Cases(t *testing.T) {
	cases := []struct {
		name   string
		values []int
		want   int
	}{
		{"full tree", []int{5, 3, 8, 1, 4, 7, 9}, 8},
		{"largest has left subtree", []int{5, 3, 8, 7, 6, 7}, 7},
		{"largest left subtree with right spine", []int{50, 30, 80, 60, 70, 75}, 75},
		{"right-descending chain", []int{1, 2, 3, 4, 5}, 4},
		{"left-descending chain", []int{5, 4, 3, 2, 1}, 4},
		{"root is second", []int{10, 5, 20}, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			root := bintree.FromValues(tc.values...)
			got, err := bst.SecondLargest(root)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			// cross-check against a full in-order walk
			sorted := bintree.InOrder(root)
			assert.Equal(t, sorted[len(sorted)-2], got)
		})
	}
}

func TestLargest(t *testing.T) {
	_, err := bst.Largest[string](nil)
	assert.ErrorIs(t, err, bst.ErrEmptyTree)

	got, err := bst.Largest(bintree.FromValues("m", "c", "x", "q"))
	require.NoError(t, err)
	assert.Equal(t, "x", got)
}
