package maze_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/tilepath/maze"
	"github.com/katalvlaran/tilepath/tile"
)

func benchmarkGenerate(b *testing.B, v maze.Variant) {
	const n = 101
	tiles := tile.NewRect(n, n, tile.NewSequence(0))
	rng := rand.New(rand.NewSource(1))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := maze.Generate(tiles, n, n, maze.WithVariant(v), maze.WithRand(rng)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGenerate_Standard measures a 51×51-room maze.
func BenchmarkGenerate_Standard(b *testing.B) { benchmarkGenerate(b, maze.Standard) }

// BenchmarkGenerate_Bounded measures the live-carving variant.
func BenchmarkGenerate_Bounded(b *testing.B) { benchmarkGenerate(b, maze.Bounded) }
