// Package bst finds the largest and second-largest values of a binary
// search tree in one downward walk.
//
// Both lookups rely on, but never verify, the BST ordering invariant
// (left < node < right). They take O(h) time and O(1) extra space, where h
// is the height of the tree.
//
// Errors:
//
//   - ErrEmptyTree   if Largest is given a nil root.
//   - ErrInvalidTree if SecondLargest is given fewer than two nodes.
package bst

import (
	"cmp"
	"errors"

	"github.com/katalvlaran/drills/bintree"
)

var (
	// ErrEmptyTree is returned when a lookup needs at least one node.
	ErrEmptyTree = errors.New("bst: tree is empty")

	// ErrInvalidTree is returned when the tree has fewer than two nodes.
	ErrInvalidTree = errors.New("bst: tree must have at least 2 nodes")
)

// Largest returns the rightmost value.
func Largest[T cmp.Ordered](root *bintree.Node[T]) (T, error) {
	if root == nil {
		var zero T
		return zero, ErrEmptyTree
	}

	cur := root
	for cur.Right != nil {
		cur = cur.Right
	}

	return cur.Value, nil
}

// SecondLargest returns the value that would come second in a descending
// sort of the tree.
//
// At each step of the walk right:
//   - a left subtree but no right child: cur is the largest, so the answer
//     is the largest value of that left subtree;
//   - a right child that is a leaf: that child is the largest, cur is second;
//   - otherwise both answers lie in the right subtree, so step right.
func SecondLargest[T cmp.Ordered](root *bintree.Node[T]) (T, error) {
	var zero T
	if root == nil || root.IsLeaf() {
		return zero, ErrInvalidTree
	}

	cur := root
	for cur != nil {
		if cur.Left != nil && cur.Right == nil {
			return Largest(cur.Left)
		}
		if cur.Right != nil && cur.Right.IsLeaf() {
			return cur.Value, nil
		}
		cur = cur.Right
	}

	// Unreachable for a tree with two or more nodes.
	return zero, ErrInvalidTree
}
