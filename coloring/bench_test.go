package coloring_test

import (
	"testing"

	"github.com/katalvlaran/drills/builder"
	"github.com/katalvlaran/drills/coloring"
)

// BenchmarkGreedy_RandomSparse measures one greedy pass on G(2000, 0.005).
func BenchmarkGreedy_RandomSparse(b *testing.B) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(42)}, builder.RandomSparse(2000, 0.005))
	if err != nil {
		b.Fatal(err)
	}
	palette := coloring.PaletteFor(g)

	b.ReportAllocs()
	b.SetBytes(int64(g.VertexCount() + g.EdgeCount()))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err = coloring.Greedy(g, palette, coloring.WithReset()); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGreedy_Complete measures the worst case for palette scanning, K_200.
func BenchmarkGreedy_Complete(b *testing.B) {
	g, err := builder.BuildGraph(nil, nil, builder.Complete(200))
	if err != nil {
		b.Fatal(err)
	}
	palette := coloring.PaletteFor(g)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err = coloring.Greedy(g, palette, coloring.WithReset()); err != nil {
			b.Fatal(err)
		}
	}
}
