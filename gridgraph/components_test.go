package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilepath/direction"
	"github.com/katalvlaran/tilepath/gridgraph"
)

// TestConnectedComponents_WallSplit verifies that a wall column splits the
// grid in bounded mode and that wraparound joins the halves again.
func TestConnectedComponents_WallSplit(t *testing.T) {
	lay := mustLayout(t,
		"..#..",
		"..#..",
		"..#..",
	)
	gg, err := gridgraph.NewGridGraph(lay.Tiles, lay.Rows, lay.Cols, 0)
	require.NoError(t, err)

	comps := gg.ConnectedComponents(direction.NewPolicy())
	require.Len(t, comps, 2)
	assert.ElementsMatch(t, []int{0, 1, 5, 6, 10, 11}, comps[0])
	assert.ElementsMatch(t, []int{3, 4, 8, 9, 13, 14}, comps[1])

	wrapped := gg.ConnectedComponents(direction.NewPolicy(direction.WithWrap(true)))
	require.Len(t, wrapped, 1)
	assert.Len(t, wrapped[0], 12)
}

// TestConnectedComponents_DiagonalLink checks that diagonal moves connect
// cells that share only a corner.
func TestConnectedComponents_DiagonalLink(t *testing.T) {
	lay := mustLayout(t,
		".#",
		"#.",
	)
	gg, err := gridgraph.NewGridGraph(lay.Tiles, lay.Rows, lay.Cols, 0)
	require.NoError(t, err)
	comps := gg.ConnectedComponents(direction.NewPolicy())
	require.Len(t, comps, 1)
	assert.Equal(t, []int{0, 3}, comps[0])
}

// TestReachable covers open, blocked, wrapped and wall-start cases.
func TestReachable(t *testing.T) {
	lay := mustLayout(t,
		"S.#.E",
		"..#..",
	)
	gg, err := gridgraph.NewGridGraph(lay.Tiles, lay.Rows, lay.Cols, lay.StartID)
	require.NoError(t, err)
	assert.False(t, gg.Reachable(direction.NewPolicy()))
	assert.True(t, gg.Reachable(direction.NewPolicy(direction.WithWrap(true))))

	lay = mustLayout(t, "S...E")
	gg, err = gridgraph.NewGridGraph(lay.Tiles, lay.Rows, lay.Cols, lay.StartID)
	require.NoError(t, err)
	assert.True(t, gg.Reachable(direction.NewPolicy()))

	lay = mustLayout(t, "#..E")
	gg, err = gridgraph.NewGridGraph(lay.Tiles, lay.Rows, lay.Cols, 0)
	require.NoError(t, err)
	assert.False(t, gg.Reachable(direction.NewPolicy()))
}
