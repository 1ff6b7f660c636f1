// Package bintree provides a generic binary tree node with optional
// children, plus the binary-search-tree helpers the bst and balance drills
// build their fixtures with.
//
// A nil *Node is the empty tree. Nodes have no parent link; every function
// walks downward only. Traversals are iterative so deep, skewed trees do
// not grow the goroutine stack.
package bintree

import "cmp"

// Node is a binary tree node. Left and Right are nil when absent.
type Node[T cmp.Ordered] struct {
	Value T
	Left  *Node[T]
	Right *Node[T]
}

// New returns a leaf holding v.
func New[T cmp.Ordered](v T) *Node[T] {
	return &Node[T]{Value: v}
}

// InsertLeft replaces the left child with a new leaf holding v and returns it.
func (n *Node[T]) InsertLeft(v T) *Node[T] {
	n.Left = New(v)
	return n.Left
}

// InsertRight replaces the right child with a new leaf holding v and returns it.
func (n *Node[T]) InsertRight(v T) *Node[T] {
	n.Right = New(v)
	return n.Right
}

// IsLeaf reports whether n has no children. A nil node is not a leaf.
func (n *Node[T]) IsLeaf() bool {
	return n != nil && n.Left == nil && n.Right == nil
}

// Insert adds v to the BST rooted at root and returns the (possibly new)
// root. Values equal to an existing node are ignored.
// Complexity: O(h).
func Insert[T cmp.Ordered](root *Node[T], v T) *Node[T] {
	if root == nil {
		return New(v)
	}

	cur := root
	for {
		switch c := cmp.Compare(v, cur.Value); {
		case c < 0:
			if cur.Left == nil {
				cur.Left = New(v)
				return root
			}
			cur = cur.Left
		case c > 0:
			if cur.Right == nil {
				cur.Right = New(v)
				return root
			}
			cur = cur.Right
		default:
			return root
		}
	}
}

// FromValues builds a BST by inserting vs in order. No values yields nil.
func FromValues[T cmp.Ordered](vs ...T) *Node[T] {
	var root *Node[T]
	for _, v := range vs {
		root = Insert(root, v)
	}

	return root
}

// InOrder returns the values in left–node–right order; sorted for a BST.
func InOrder[T cmp.Ordered](root *Node[T]) []T {
	var (
		out   []T
		stack []*Node[T]
	)
	cur := root
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			stack = append(stack, cur)
			cur = cur.Left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, cur.Value)
		cur = cur.Right
	}

	return out
}

// Size returns the number of nodes.
func Size[T cmp.Ordered](root *Node[T]) int {
	if root == nil {
		return 0
	}

	n := 0
	stack := []*Node[T]{root}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n++
		if cur.Left != nil {
			stack = append(stack, cur.Left)
		}
		if cur.Right != nil {
			stack = append(stack, cur.Right)
		}
	}

	return n
}

// Height returns the number of edges on the longest root-to-leaf path:
// 0 for a single node, -1 for the empty tree.
func Height[T cmp.Ordered](root *Node[T]) int {
	if root == nil {
		return -1
	}

	type item struct {
		node  *Node[T]
		depth int
	}
	h := 0
	stack := []item{{root, 0}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if it.depth > h {
			h = it.depth
		}
		if it.node.Left != nil {
			stack = append(stack, item{it.node.Left, it.depth + 1})
		}
		if it.node.Right != nil {
			stack = append(stack, item{it.node.Right, it.depth + 1})
		}
	}

	return h
}
