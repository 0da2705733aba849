package dfs_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/tilepath/dfs"
	"github.com/katalvlaran/tilepath/gridgraph"
	"github.com/katalvlaran/tilepath/tile"
)

// BenchmarkDFS_Sparse runs DFS on a 96×96 grid with 25% walls.
func BenchmarkDFS_Sparse(b *testing.B) {
	const n = 96
	rng := rand.New(rand.NewSource(5))
	tiles := tile.NewRect(n, n, tile.NewSequence(0))
	for i := range tiles {
		if rng.Float64() < 0.25 {
			tiles[i].Kind = tile.Wall
		}
	}
	tiles[0].Kind = tile.Open
	tiles[len(tiles)-1].Kind = tile.End

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		gg, _ := gridgraph.NewGridGraph(tiles, n, n, 0)
		_, _ = dfs.DFS(gg)
	}
}
