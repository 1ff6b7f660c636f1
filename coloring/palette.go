package coloring

import (
	"fmt"

	"github.com/katalvlaran/drills/core"
)

// namedColors are X11 color names Graphviz understands, chosen to stay
// distinguishable side by side.
var namedColors = []core.Color{
	"red", "green", "blue", "yellow", "orange", "purple",
	"cyan", "magenta", "brown", "pink", "gold", "gray",
}

// Palette returns n distinct colors: the named colors first, then HSV
// triples ("h s v") with evenly spaced hue. Returns nil for n <= 0.
func Palette(n int) []core.Color {
	if n <= 0 {
		return nil
	}

	out := make([]core.Color, 0, n)
	for i := 0; i < n && i < len(namedColors); i++ {
		out = append(out, namedColors[i])
	}
	extra := n - len(out)
	for i := 0; i < extra; i++ {
		hue := float64(i) / float64(extra)
		out = append(out, core.Color(fmt.Sprintf("%.6f 0.600 0.900", hue)))
	}

	return out
}

// PaletteFor returns Palette(D+1) where D is the maximum degree of g.
func PaletteFor(g *core.Graph) []core.Color {
	if g == nil {
		return nil
	}

	return Palette(g.MaxDegree() + 1)
}
