package dfs_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilepath/dfs"
	"github.com/katalvlaran/tilepath/direction"
	"github.com/katalvlaran/tilepath/gridgraph"
	"github.com/katalvlaran/tilepath/tile"
)

func grid(t *testing.T, lines ...string) *gridgraph.GridGraph {
	t.Helper()
	lay, err := tile.FromLayout(lines, tile.NewSequence(0))
	require.NoError(t, err)
	gg, err := gridgraph.NewGridGraph(lay.Tiles, lay.Rows, lay.Cols, lay.StartID)
	require.NoError(t, err)

	return gg
}

func TestDFS_NilGraph(t *testing.T) {
	_, err := dfs.DFS(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_NegativeMaxVisited(t *testing.T) {
	_, err := dfs.DFS(grid(t, "SE"), dfs.WithMaxVisited(-1))
	assert.ErrorIs(t, err, dfs.ErrOptionViolation)
}

// TestDFS_Descent checks the exact descent on a small open grid: the path
// is valid but longer than the optimum.
func TestDFS_Descent(t *testing.T) {
	res, err := dfs.DFS(grid(t,
		"S..",
		"..E",
	))
	require.NoError(t, err)
	require.True(t, res.Reached)
	assert.Equal(t, []int{0, 4, 2, 5}, res.Visited)
	assert.Equal(t, []int{5, 2, 4, 0}, res.Path)
	assert.Equal(t, int64(38), res.Cost)
}

// TestDFS_Reproducible runs twice with a fixed order and twice with the
// same shuffle seed.
func TestDFS_Reproducible(t *testing.T) {
	lines := []string{
		"S....#....",
		".###.#.##.",
		".#...#..#.",
		".#.###.##.",
		"...#.....E",
	}
	a, err := dfs.DFS(grid(t, lines...))
	require.NoError(t, err)
	b, err := dfs.DFS(grid(t, lines...))
	require.NoError(t, err)
	assert.Equal(t, a.Visited, b.Visited)
	assert.Equal(t, a.Path, b.Path)

	seeded := func() gridgraph.Result {
		p := direction.NewPolicy(
			direction.WithOffset(3),
			direction.WithRandom(true),
			direction.WithRand(rand.New(rand.NewSource(99))),
		)
		res, err := dfs.DFS(grid(t, lines...), dfs.WithPolicy(p))
		require.NoError(t, err)
		return res
	}
	c, d := seeded(), seeded()
	assert.Equal(t, c.Visited, d.Visited)
	assert.Equal(t, c.Path, d.Path)
}

// TestDFS_PathValid checks reachability agreement and path shape on
// seeded random grids.
func TestDFS_PathValid(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 40; trial++ {
		rows, cols := 3+rng.Intn(9), 3+rng.Intn(9)
		tiles := tile.NewRect(rows, cols, tile.NewSequence(100))
		for i := range tiles {
			if rng.Float64() < 0.3 {
				tiles[i].Kind = tile.Wall
			}
		}
		tiles[0].Kind = tile.Open
		tiles[len(tiles)-1].Kind = tile.End

		for _, wrap := range []bool{false, true} {
			p := direction.NewPolicy(direction.WithWrap(wrap))
			gg, err := gridgraph.NewGridGraph(tiles, rows, cols, 100)
			require.NoError(t, err)
			want := gg.Reachable(p)

			res, err := dfs.DFS(gg, dfs.WithPolicy(p))
			require.NoError(t, err)
			require.Equal(t, want, res.Reached, "trial %d wrap=%v", trial, wrap)
			if !res.Reached {
				continue
			}
			assert.Equal(t, tiles[len(tiles)-1].ID, res.Path[0])
			assert.Equal(t, 100, res.Path[len(res.Path)-1])
			_, ok := gg.PathCost(res.Path, wrap)
			assert.True(t, ok, "trial %d wrap=%v", trial, wrap)
			assert.Equal(t, res.Path[0], res.Visited[len(res.Visited)-1])
		}
	}
}

// TestDFS_UnreachableExhaustsRegion visits exactly the start's region.
func TestDFS_UnreachableExhaustsRegion(t *testing.T) {
	gg := grid(t,
		"S.#..",
		"..#.E",
	)
	res, err := dfs.DFS(gg)
	require.NoError(t, err)
	assert.False(t, res.Reached)
	assert.Empty(t, res.Path)
	assert.ElementsMatch(t, []int{0, 1, 5, 6}, res.Visited)
}

// TestDFS_Backtrack reports dead ends through OnExit.
func TestDFS_Backtrack(t *testing.T) {
	var exits []int
	res, err := dfs.DFS(grid(t, "E#S."), dfs.WithOnExit(func(id int) { exits = append(exits, id) }))
	require.NoError(t, err)
	assert.False(t, res.Reached)
	assert.Equal(t, []int{2, 3}, res.Visited)
	assert.Equal(t, []int{3, 2}, exits)
}

// TestDFS_Limits covers MaxDepth and MaxVisited.
func TestDFS_Limits(t *testing.T) {
	res, err := dfs.DFS(grid(t, "S..E"), dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.False(t, res.Reached)
	assert.Equal(t, []int{0, 1}, res.Visited)

	res, err = dfs.DFS(grid(t, "S...E"), dfs.WithMaxVisited(3))
	require.NoError(t, err)
	assert.False(t, res.Reached)
	assert.Equal(t, []int{0, 1, 2}, res.Visited)
}

// TestDFS_HookAndCancel covers OnVisit aborts and cancellation.
func TestDFS_HookAndCancel(t *testing.T) {
	boom := errors.New("boom")
	_, err := dfs.DFS(grid(t, "S..E"), dfs.WithOnVisit(func(id, depth int) error {
		if depth == 2 {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := dfs.DFS(grid(t, "S..E"), dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []int{0}, res.Visited)
}

// TestDFS_Wrap finds the corner goal through the torus seam.
func TestDFS_Wrap(t *testing.T) {
	lines := []string{
		"S#.",
		"###",
		"..E",
	}
	res, err := dfs.DFS(grid(t, lines...))
	require.NoError(t, err)
	assert.False(t, res.Reached)

	res, err = dfs.DFS(grid(t, lines...), dfs.WithPolicy(direction.NewPolicy(direction.WithWrap(true))))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 8}, res.Visited)
	assert.Equal(t, []int{8, 0}, res.Path)
	assert.Equal(t, int64(14), res.Cost)
}
