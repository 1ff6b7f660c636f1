// Package drills is a small, dependency-light collection of classic graph
// and tree exercises, each written as a standalone Go package with hooks,
// sentinel errors and runnable examples.
//
// 🚀 What is in the box?
//
//	• Graph arena: a thread-safe undirected graph addressed by string handles
//	• Builders: path, cycle, star, wheel, complete and seeded random shapes
//	• Coloring: greedy first-fit coloring with a max-degree+1 palette
//	• Permutations: every rearrangement of a string, as a set
//	• BST: second largest value in one downward walk
//	• Balance: the "superbalanced" leaf-depth check with an explicit stack
//	• Render: Graphviz DOT and SVG pictures of graphs and trees
//
// Packages:
//
//	core/       : Graph, Vertex and Color with RWMutex-guarded mutation
//	builder/    : deterministic graph constructors for tests and demos
//	coloring/   : Greedy, Verify, Palette
//	permutation/: Permutations
//	bintree/    : generic binary tree Node and BST insertion
//	bst/        : Largest, SecondLargest
//	balance/    : IsSuperbalanced, Check
//	render/     : GraphDOT, TreeDOT, SVG
//	cmd/drills/ : command-line front end over all of the above
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    D───C
//
//	a 4-cycle; Greedy colors it A=red, B=green, C=red, D=green.
//
//	go install github.com/katalvlaran/drills/cmd/drills@latest
package drills
