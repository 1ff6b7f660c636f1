// File: methods_edges.go
// Role: Edge lifecycle & adjacency queries.
//
// Determinism:
//   - Neighbors() returns IDs sorted lexicographically ascending.
package core

import "sort"

// AddEdge links u and v in both directions, creating missing endpoints.
//
// Implementation:
//   - Stage 1: Validate IDs and the loop policy.
//   - Stage 2: Under the write lock, ensure both vertices exist.
//   - Stage 3: Insert v into adj[u] and u into adj[v]. A repeated edge is a no-op.
//
// Errors:
//   - ErrEmptyVertexID: either endpoint is empty.
//   - ErrLoopNotAllowed: u == v on a graph built without WithLoops.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddEdge(u, v string) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if u == v && !g.allowLoops {
		return ErrLoopNotAllowed
	}
	g.addVertexLocked(u)
	g.addVertexLocked(v)

	if _, dup := g.adj[u][v]; dup {
		return nil
	}
	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}
	g.edges++

	return nil
}

// HasEdge reports whether u and v are adjacent. Symmetric by construction.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adj[u][v]

	return ok
}

// HasLoop reports whether id lists itself as a neighbor.
// Complexity: O(1).
func (g *Graph) HasLoop(id string) bool {
	return g.HasEdge(id, id)
}

// Neighbors returns the sorted neighbor handles of id. A looped vertex
// appears in its own list.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(d·log d).
func (g *Graph) Neighbors(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adj[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]string, 0, len(nbrs))
	for n := range nbrs {
		out = append(out, n)
	}
	sort.Strings(out)

	return out, nil
}

// EdgeCount returns |E|. A self-loop counts as one edge.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}
