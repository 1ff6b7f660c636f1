package balance

import (
	"cmp"
	"sort"

	"github.com/katalvlaran/drills/bintree"
)

// maxSpread is the largest allowed difference between two leaf depths.
const maxSpread = 1

// Option configures a check via functional arguments.
type Option func(*Options)

// Options holds callbacks for one check.
type Options struct {
	// OnVisit is called for every node popped off the stack, with its depth.
	OnVisit func(depth int)
}

// DefaultOptions returns Options with a no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{OnVisit: func(int) {}}
}

// WithOnVisit registers a callback run for each visited node.
func WithOnVisit(fn func(depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result is the outcome of Check.
type Result struct {
	// Balanced is the verdict.
	Balanced bool

	// LeafDepths holds the distinct leaf depths seen, ascending. On a false
	// verdict it includes the depth that broke the rule.
	LeafDepths []int

	// Visited counts the nodes popped before the verdict.
	Visited int
}

// frame is one stack entry: a node and its distance from the root.
type frame[T cmp.Ordered] struct {
	node  *bintree.Node[T]
	depth int
}

// IsSuperbalanced reports whether all leaf depths of root differ by at most one.
func IsSuperbalanced[T cmp.Ordered](root *bintree.Node[T], opts ...Option) bool {
	return Check(root, opts...).Balanced
}

// Check runs the single-pass superbalanced walk and reports what it saw.
func Check[T cmp.Ordered](root *bintree.Node[T], opts ...Option) Result {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	res := Result{Balanced: true}
	if root == nil {
		return res
	}

	depths := make([]int, 0, 3)
	stack := []frame[T]{{node: root, depth: 0}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		res.Visited++
		o.OnVisit(top.depth)

		if top.node.IsLeaf() {
			if containsDepth(depths, top.depth) {
				continue
			}
			depths = append(depths, top.depth)
			if unbalanced(depths) {
				res.Balanced = false
				break
			}
			continue
		}

		if top.node.Left != nil {
			stack = append(stack, frame[T]{node: top.node.Left, depth: top.depth + 1})
		}
		if top.node.Right != nil {
			stack = append(stack, frame[T]{node: top.node.Right, depth: top.depth + 1})
		}
	}

	sort.Ints(depths)
	res.LeafDepths = depths

	return res
}

func containsDepth(depths []int, d int) bool {
	for _, seen := range depths {
		if seen == d {
			return true
		}
	}

	return false
}

// unbalanced reports whether the recorded depths already break the rule.
func unbalanced(depths []int) bool {
	if len(depths) > 2 {
		return true
	}
	if len(depths) == 2 {
		diff := depths[0] - depths[1]
		if diff < 0 {
			diff = -diff
		}
		return diff > maxSpread
	}

	return false
}
