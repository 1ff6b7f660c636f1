package render_test

import (
	"fmt"

	"github.com/katalvlaran/drills/builder"
	"github.com/katalvlaran/drills/coloring"
	"github.com/katalvlaran/drills/render"
)

// ExampleGraphDOT colors a path of three vertices and prints its DOT source.
func ExampleGraphDOT() {
	g, err := builder.BuildGraph(nil, nil, builder.Path(3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err = coloring.Greedy(g, coloring.PaletteFor(g)); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Print(render.GraphDOT(g))
	// Output:
	// graph G {
	//   layout=circo;
	//   bgcolor="transparent";
	//   node [shape=circle, style=filled, fontsize=14];
	//
	//   "0" [fillcolor="red"];
	//   "1" [fillcolor="green"];
	//   "2" [fillcolor="red"];
	//
	//   "0" -- "1";
	//   "1" -- "2";
	// }
}
