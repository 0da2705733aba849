package bfs_test

import (
	"testing"

	"github.com/katalvlaran/tilepath/bfs"
	"github.com/katalvlaran/tilepath/gridgraph"
	"github.com/katalvlaran/tilepath/tile"
)

// BenchmarkBFS_OpenGrid measures BFS corner to corner on an open N×N grid.
func BenchmarkBFS_OpenGrid(b *testing.B) {
	const n = 128
	tiles := tile.NewRect(n, n, tile.NewSequence(0))
	tiles[len(tiles)-1].Kind = tile.End

	b.ReportAllocs()
	b.SetBytes(int64(n * n))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		gg, _ := gridgraph.NewGridGraph(tiles, n, n, 0)
		_, _ = bfs.BFS(gg)
	}
}
