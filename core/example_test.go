package core_test

import (
	"fmt"

	"github.com/katalvlaran/drills/core"
)

// ExampleGraph demonstrates basic creation and queries on a triangle.
func ExampleGraph() {
	g := core.NewGraph()

	// AddEdge auto-adds vertices in the order they first appear.
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("B", "C")
	_ = g.AddEdge("C", "A")

	nbrs, _ := g.Neighbors("A")
	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Neighbors(A):", nbrs)
	fmt.Println("Edge B–A exists?", g.HasEdge("B", "A"))
	fmt.Println("Max degree:", g.MaxDegree())

	// Output:
	// Vertices: [A B C]
	// Neighbors(A): [B C]
	// Edge B–A exists? true
	// Max degree: 2
}

// ExampleWithLoops shows how a malformed, self-looped vertex is modeled.
func ExampleWithLoops() {
	g := core.NewGraph(core.WithLoops())
	_ = g.AddEdge("X", "X")

	fmt.Println(g.HasLoop("X"))
	// Output:
	// true
}
