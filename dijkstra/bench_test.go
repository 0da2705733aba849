package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/tilepath/dijkstra"
	"github.com/katalvlaran/tilepath/gridgraph"
)

// BenchmarkDijkstra_64x64 measures a corner-to-corner search on a sparse maze.
func BenchmarkDijkstra_64x64(b *testing.B) {
	tiles := randomGrid(rand.New(rand.NewSource(1)), 64, 64, 0.2)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		gg, _ := gridgraph.NewGridGraph(tiles, 64, 64, 0)
		if _, err := dijkstra.Dijkstra(gg); err != nil {
			b.Fatal(err)
		}
	}
}
