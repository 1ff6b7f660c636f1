package render

import (
	"bytes"
	"cmp"
	"fmt"

	"github.com/katalvlaran/drills/bintree"
	"github.com/katalvlaran/drills/core"
)

// defaultFill is used for vertices without a color.
const defaultFill = "white"

// GraphDOT converts g to an undirected Graphviz graph. Vertices appear in
// insertion order; each edge, self-loops included, is written once.
func GraphDOT(g *core.Graph) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=circo;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fontsize=14];\n")
	buf.WriteString("\n")

	ids := g.Vertices()
	pos := make(map[string]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}

	for _, id := range ids {
		fill := defaultFill
		if c, err := g.Color(id); err == nil && c.IsSet() {
			fill = string(c)
		}
		fmt.Fprintf(&buf, "  %q [fillcolor=%q];\n", id, fill)
	}

	buf.WriteString("\n")
	for _, u := range ids {
		nbrs, err := g.Neighbors(u)
		if err != nil {
			continue
		}
		for _, v := range nbrs {
			if pos[v] < pos[u] {
				continue
			}
			fmt.Fprintf(&buf, "  %q -- %q;\n", u, v)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// TreeDOT converts the tree under root to a Graphviz digraph. Nodes are
// named n0, n1, ... as they are reached and labeled with their values. A nil
// root gives an empty graph.
func TreeDOT[T cmp.Ordered](root *bintree.Node[T]) string {
	var buf bytes.Buffer
	buf.WriteString("digraph T {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, fontsize=14];\n")
	buf.WriteString("\n")

	if root == nil {
		buf.WriteString("}\n")
		return buf.String()
	}

	type item struct {
		node *bintree.Node[T]
		name string
	}

	next := 0
	name := func(prefix string) string {
		s := fmt.Sprintf("%s%d", prefix, next)
		next++
		return s
	}

	stack := []item{{node: root, name: name("n")}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		fmt.Fprintf(&buf, "  %s [label=%q];\n", it.name, fmt.Sprint(it.node.Value))
		if it.node.IsLeaf() {
			continue
		}

		var children [2]item
		for i, child := range []*bintree.Node[T]{it.node.Left, it.node.Right} {
			if child == nil {
				hole := name("nil")
				fmt.Fprintf(&buf, "  %s [shape=point, style=invis];\n", hole)
				fmt.Fprintf(&buf, "  %s -> %s [style=invis];\n", it.name, hole)
				continue
			}
			children[i] = item{node: child, name: name("n")}
			fmt.Fprintf(&buf, "  %s -> %s;\n", it.name, children[i].name)
		}
		// right first, so the left subtree is written first
		for i := len(children) - 1; i >= 0; i-- {
			if children[i].node != nil {
				stack = append(stack, children[i])
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}
