package scenario_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilepath/maze"
	"github.com/katalvlaran/tilepath/pathfinding"
	"github.com/katalvlaran/tilepath/scenario"
	"github.com/katalvlaran/tilepath/tile"
)

func TestLoadFile_Layout(t *testing.T) {
	sc, err := scenario.LoadFile(filepath.Join("testdata", "corridor.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "corridor", sc.Name)
	assert.Equal(t, pathfinding.AStar, sc.Algorithm)
	assert.Equal(t, 2, sc.DirectionOffset)
	assert.False(t, sc.WorldWrap)
	assert.Equal(t, int64(42), sc.Seed)
	assert.Equal(t, scenario.MazeNone, sc.Maze)
	assert.Equal(t, 2, sc.Rows)
	assert.Equal(t, 5, sc.Cols)

	req, err := sc.Build(tile.NewSequence(100))
	require.NoError(t, err)
	assert.Equal(t, 100, req.CurrentID)
	assert.Len(t, req.Tiles, 10)
	require.NoError(t, tile.Validate(req.Tiles, req.Rows, req.Cols))

	res, err := pathfinding.Run(req, sc.Rand())
	require.NoError(t, err)
	assert.True(t, res.Reached)
	assert.Equal(t, 109, res.Path[0])
	assert.Equal(t, 100, res.Path[len(res.Path)-1])
}

func TestLoadFile_Maze(t *testing.T) {
	sc, err := scenario.LoadFile(filepath.Join("testdata", "maze.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "bounded", sc.Maze)
	assert.True(t, sc.WorldWrap, "omitted fields keep defaults")

	req, err := sc.Build(tile.NewSequence(0))
	require.NoError(t, err)
	assert.Equal(t, 9, req.Rows)
	assert.Equal(t, 12, req.Cols)

	end, ok := tile.FindEnd(req.Tiles)
	require.True(t, ok)
	assert.Equal(t, tile.Pos{Row: 8, Col: 10}, end.Pos())

	// the End tile counts as open for the lattice check
	open := maze.OpenSet(req.Tiles)
	require.NoError(t, maze.Verify(req.Rows, req.Cols, open))

	again, err := sc.Build(tile.NewSequence(0))
	require.NoError(t, err)
	assert.Equal(t, req.Tiles, again.Tiles, "fixed seed carves the same maze")

	req.Config.WorldWrap = false
	res, err := pathfinding.Run(req, nil)
	require.NoError(t, err)
	assert.True(t, res.Reached)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := scenario.LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		err  error
	}{
		{"NoGrid", "name: empty\n", scenario.ErrNoGrid},
		{"MazeWithoutExtents", "maze: standard\n", scenario.ErrNoGrid},
		{"BadMaze", "maze: prim\nrows: 3\ncols: 3\n", scenario.ErrBadMaze},
		{"BadAlgorithm", "algorithm: greedy\nlayout: [\"S.E\"]\n", pathfinding.ErrUnknownAlgorithm},
		{"BadOffset", "direction_offset: 8\nlayout: [\"S.E\"]\n", pathfinding.ErrBadOffset},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scenario.Parse([]byte(tc.doc))
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestBuild_RaggedLayout(t *testing.T) {
	sc, err := scenario.Parse([]byte("layout:\n  - \"S..\"\n  - \".E\"\n"))
	require.NoError(t, err)
	_, err = sc.Build(tile.NewSequence(0))
	assert.ErrorIs(t, err, tile.ErrRaggedLayout)
}

func TestLastRoom(t *testing.T) {
	assert.Equal(t, 24, scenario.LastRoom(5, 5))
	assert.Equal(t, 4*6+4, scenario.LastRoom(6, 6))
	assert.Equal(t, 0, scenario.LastRoom(1, 1))
	assert.Equal(t, 8, scenario.LastRoom(1, 9))
}
