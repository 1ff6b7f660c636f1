// File: methods_color.go
// Role: per-vertex color slots.
package core

// Color returns the current color of id (NoColor when unset).
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) Color(id string) (Color, error) {
	if id == "" {
		return NoColor, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return NoColor, ErrVertexNotFound
	}

	return v.Color, nil
}

// SetColor writes c into the slot of id. Passing NoColor clears it.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) SetColor(id string, c Color) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	v.Color = c

	return nil
}

// ResetColors clears every color slot.
// Complexity: O(V).
func (g *Graph) ResetColors() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, v := range g.vertices {
		v.Color = NoColor
	}
}

// Colors returns a snapshot of all assigned colors keyed by vertex ID.
// Unset slots are omitted.
func (g *Graph) Colors() map[string]Color {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string]Color, len(g.vertices))
	for id, v := range g.vertices {
		if v.Color.IsSet() {
			out[id] = v.Color
		}
	}

	return out
}
