// Package coloring assigns colors to the vertices of a core.Graph so that no
// two adjacent vertices share a color, using greedy first-fit.
//
// What
//
//   - Greedy walks the vertices once, in the order supplied (graph insertion
//     order by default), and gives each vertex the first palette color that
//     none of its already-colored neighbors holds.
//   - Verify checks a finished coloring: every vertex colored, no edge joining
//     two equal colors.
//   - Palette / PaletteFor build D+1 distinct Graphviz-friendly colors.
//
// Why D+1 is enough
//
//	A vertex has at most D neighbors, so at most D colors are illegal for it.
//	With D+1 colors at least one is always free. A self-loop breaks the
//	argument: a looped vertex would have to avoid its own color.
//
// Complexity (N = |V|, M = |E|, D = max degree)
//
//   - Time:   O(N + M). Each edge is crossed twice while collecting illegal
//     colors, and the palette scan stops at the first legal color, so it tries
//     at most deg(v)+1 colors per vertex.
//   - Memory: O(D) for the illegal-color set.
//
// Options
//
//   - WithOrder(ids...):   process exactly these vertices in this order.
//   - WithLargestFirst():  process vertices by descending degree (Welsh–Powell),
//     ties in insertion order.
//   - WithReset():         clear all colors before the pass.
//   - WithOnAssign(fn):    hook called after each assignment.
//
// Errors
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - ErrBadPalette        if the palette is empty, holds NoColor, or repeats a color.
//   - ErrVertexNotFound    if WithOrder names a vertex that does not exist.
//   - ErrInvalidGraph      if a vertex lists itself as a neighbor.
//   - ErrPaletteExhausted  if a vertex has no legal color (palette smaller than D+1).
//   - ErrUncolored, ErrConflict from Verify.
package coloring
