// Package core provides a small, thread-safe in-memory graph arena used by the
// coloring drill and the fixture builders.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected, unweighted edges. Every AddEdge(u,v) is mirrored so the
//     neighbor relation is always symmetric.
//   - Vertices are addressed by handle (their string ID), never by pointer.
//     Neighbor sets store handles, so cycles carry no ownership problems.
//   - Self-loops are rejected unless the graph is built WithLoops(). A looped
//     graph exists to model malformed input that algorithms must detect.
//   - Parallel edges collapse: adding u–v twice keeps one edge.
//   - Every vertex owns one color slot, initially NoColor.
//
// Determinism:
//
//	Vertices() returns IDs in insertion order ("the order supplied").
//	Neighbors() returns IDs sorted lexicographically.
//
// Concurrency:
//
//	A single sync.RWMutex guards vertices, adjacency and colors. Mutators take
//	the write lock, queries take the read lock.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error              // O(1)
//	HasVertex(id string) bool               // O(1)
//	Vertices() []string                     // O(V)
//
//	// Edge lifecycle
//	AddEdge(u, v string) error              // O(1)
//	HasEdge(u, v string) bool               // O(1)
//	Neighbors(id string) ([]string, error)  // O(d·log d)
//	HasLoop(id string) bool                 // O(1)
//
//	// Degrees and counts
//	Degree(id string) (int, error)          // O(1)
//	MaxDegree() int                         // O(V)
//	VertexCount(), EdgeCount() int          // O(1)
//
//	// Color slots
//	Color(id string) (Color, error)         // O(1)
//	SetColor(id string, c Color) error      // O(1)
//	ResetColors()                           // O(V)
//
//	// Cloning
//	Clone() *Graph                          // O(V+E)
//
// Errors:
//
//	ErrEmptyVertexID   - vertex ID is the empty string.
//	ErrVertexNotFound  - requested vertex does not exist.
//	ErrLoopNotAllowed  - self-loop when loops are disabled.
package core
