package core

// CloneEmpty returns a graph with the same flags and vertices (in the same
// order, colors cleared) but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var opts []GraphOption
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	clone := NewGraph(opts...)
	for _, id := range g.order {
		clone.addVertexLocked(id)
	}

	return clone
}

// Clone returns a deep copy: flags, vertex order, edges and colors.
// Mutating the clone never affects the original.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()

	g.mu.RLock()
	defer g.mu.RUnlock()

	for id, nbrs := range g.adj {
		for n := range nbrs {
			clone.adj[id][n] = struct{}{}
		}
		clone.vertices[id].Color = g.vertices[id].Color
	}
	clone.edges = g.edges

	return clone
}
