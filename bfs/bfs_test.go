package bfs_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilepath/bfs"
	"github.com/katalvlaran/tilepath/dijkstra"
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

// hops is an independent hop-count oracle from (0,0) to the last cell.
func hops(tiles []tile.Descriptor, rows, cols int, wrap bool) int {
	wall := make([]bool, rows*cols)
	for _, d := range tiles {
		wall[d.Row*cols+d.Col] = d.Kind == tile.Wall
	}
	depth := make([]int, rows*cols)
	for i := range depth {
		depth[i] = -1
	}
	depth[0] = 0
	p := direction.NewPolicy(direction.WithWrap(wrap))
	queue := []int{0}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, off := range direction.Base {
			vr, vc, ok := p.Resolve(u/cols, u%cols, off, rows, cols)
			if !ok {
				continue
			}
			v := vr*cols + vc
			if !wall[v] && depth[v] < 0 {
				depth[v] = depth[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return depth[rows*cols-1]
}

//----------------------------------------------------------------------------//
// Validation
//----------------------------------------------------------------------------//

func TestBFS_Validation(t *testing.T) {
	_, err := bfs.BFS(nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.BFS(grid(t, "SE"), bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

//----------------------------------------------------------------------------//
// Behaviour
//----------------------------------------------------------------------------//

// TestBFS_GoalVisitedLast checks the goal closes the visit order.
func TestBFS_GoalVisitedLast(t *testing.T) {
	res, err := bfs.BFS(grid(t,
		"S..",
		"...",
		"..E",
	))
	require.NoError(t, err)
	require.True(t, res.Reached)
	assert.Equal(t, []int{0, 4, 1, 3, 6, 8}, res.Visited)
	assert.Equal(t, []int{8, 4, 0}, res.Path)
	assert.Equal(t, int64(28), res.Cost)
}

// TestBFS_HopsNotCost shows a hop-minimal path that is not cost-minimal.
func TestBFS_HopsNotCost(t *testing.T) {
	lines := []string{
		"S.E",
		"...",
	}
	b, err := bfs.BFS(grid(t, lines...))
	require.NoError(t, err)
	d, err := dijkstra.Dijkstra(grid(t, lines...))
	require.NoError(t, err)

	assert.Len(t, b.Path, len(d.Path), "same hop count")
	assert.Equal(t, []int{2, 4, 0}, b.Path)
	assert.Equal(t, int64(28), b.Cost)
	assert.Equal(t, int64(20), d.Cost)
}

// TestBFS_HopOptimal compares hop counts with an oracle on random grids.
func TestBFS_HopOptimal(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 40; trial++ {
		rows, cols := 3+rng.Intn(9), 3+rng.Intn(9)
		tiles := tile.NewRect(rows, cols, tile.NewSequence(0))
		for i := range tiles {
			if rng.Float64() < 0.35 {
				tiles[i].Kind = tile.Wall
			}
		}
		tiles[0].Kind = tile.Open
		tiles[len(tiles)-1].Kind = tile.End

		for _, wrap := range []bool{false, true} {
			gg, err := gridgraph.NewGridGraph(tiles, rows, cols, 0)
			require.NoError(t, err)
			res, err := bfs.BFS(gg, bfs.WithPolicy(direction.NewPolicy(direction.WithWrap(wrap))))
			require.NoError(t, err)

			want := hops(tiles, rows, cols, wrap)
			if want < 0 {
				assert.False(t, res.Reached, "trial %d", trial)
				assert.Empty(t, res.Path)
				continue
			}
			require.True(t, res.Reached, "trial %d wrap=%v", trial, wrap)
			assert.Len(t, res.Path, want+1, "trial %d wrap=%v", trial, wrap)
			_, ok := gg.PathCost(res.Path, wrap)
			assert.True(t, ok, "path steps must be adjacent")
			for _, id := range res.Visited {
				n, _ := gg.NodeByID(id)
				assert.False(t, n.IsWall)
			}
		}
	}
}

// TestBFS_MaxDepth stops discovery past the limit.
func TestBFS_MaxDepth(t *testing.T) {
	res, err := bfs.BFS(grid(t, "S...E"), bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.False(t, res.Reached)
	assert.Equal(t, []int{0, 1, 2}, res.Visited)
}

// TestBFS_HookError aborts with the wrapped hook error.
func TestBFS_HookError(t *testing.T) {
	stop := errors.New("stop")
	var enqueued []int
	res, err := bfs.BFS(grid(t, "S..E"),
		bfs.WithOnEnqueue(func(id, _ int) { enqueued = append(enqueued, id) }),
		bfs.WithOnVisit(func(id, depth int) error {
			if depth == 1 {
				return stop
			}
			return nil
		}),
	)
	assert.ErrorIs(t, err, stop)
	assert.False(t, res.Reached)
	assert.Equal(t, []int{0, 1}, res.Visited)
	assert.Equal(t, []int{0, 1}, enqueued)
}

// TestBFS_Cancelled returns ctx.Err before visiting anything.
func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := bfs.BFS(grid(t, "S.E"), bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, res.Visited)
}

// TestBFS_StartIsGoal visits only the start.
func TestBFS_StartIsGoal(t *testing.T) {
	tiles := []tile.Descriptor{{ID: 3, Row: 0, Col: 0, Kind: tile.End}, {ID: 4, Row: 0, Col: 1}}
	gg, err := gridgraph.NewGridGraph(tiles, 1, 2, 3)
	require.NoError(t, err)
	res, err := bfs.BFS(gg)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, res.Visited)
	assert.Equal(t, []int{3}, res.Path)
	assert.Zero(t, res.Cost)
}
