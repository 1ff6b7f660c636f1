// Package balance decides whether a binary tree is "superbalanced": every
// pair of leaf depths differs by at most one, i.e. all leaves sit on at most
// two consecutive levels.
//
// What
//
//   - IsSuperbalanced(root) → bool.
//   - Check(root) → Result with the verdict, the distinct leaf depths seen,
//     and the number of nodes visited before the verdict.
//   - WithOnVisit(fn) observes every popped (node, depth) pair; tests use it
//     to prove the walk stops early.
//
// How
//
//	Depth-first walk with an explicit stack of (node, depth) pairs, root at
//	depth 0. A node with no children is a leaf; a node with one child is not.
//	When a leaf shows a depth not seen before, the depth is recorded and the
//	walk stops with false as soon as there are more than two distinct depths
//	or exactly two that are more than one apart. An emptied stack means true.
//
//	Depth-first rather than breadth-first reaches leaves sooner, so an
//	unbalanced tree is usually rejected before most of it is visited.
//
// Edge cases
//
//   - nil root (no nodes)    → true, there are no leaves to disagree.
//   - single node            → true, one leaf at depth 0.
//   - repeated leaf depths   → no-op; only a new depth can fail the check.
//
// Complexity (n = nodes, d = height)
//
//   - Time:   O(n) worst case, often far less on unbalanced input.
//   - Memory: O(d) stack entries plus at most 3 recorded depths. A right
//     spine whose every node also has a left leaf keeps about n/2 entries.
//
// The tree must be acyclic; a cycle would never terminate.
package balance
