// Package render turns drill inputs and results into Graphviz pictures.
//
// # Overview
//
// Two DOT writers cover the two shapes the drills work on:
//
//   - [GraphDOT] draws an undirected core.Graph. Each vertex is filled with
//     its assigned color, so a colored graph shows at a glance whether two
//     neighbors share a fill. Uncolored vertices are white.
//   - [TreeDOT] draws a bintree.Node top to bottom. A missing child is
//     drawn as a small invisible point so left and right stay on their side.
//
// # Usage
//
//	dot := render.GraphDOT(g)
//	svg, err := render.SVG(ctx, dot)
//
// The DOT text can also be written out as is and fed to external tools.
//
// # Dependencies
//
// [SVG] uses [github.com/goccy/go-graphviz], an in-process WebAssembly build
// of Graphviz, so no dot binary is needed on PATH.
package render
