package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/tilepath/dfs"
	"github.com/katalvlaran/tilepath/gridgraph"
	"github.com/katalvlaran/tilepath/tile"
)

// ExampleDFS shows a valid but roundabout descent.
func ExampleDFS() {
	lay, _ := tile.FromLayout([]string{
		"S..",
		"..E",
	}, tile.NewSequence(0))
	gg, _ := gridgraph.NewGridGraph(lay.Tiles, lay.Rows, lay.Cols, lay.StartID)

	res, err := dfs.DFS(gg)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("visited:", res.Visited)
	fmt.Println("path:", res.Path, "cost:", res.Cost)
	// Output:
	// visited: [0 4 2 5]
	// path: [5 2 4 0] cost: 38
}
