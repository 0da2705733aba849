package pathfinding

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/tilepath/astar"
	"github.com/katalvlaran/tilepath/bfs"
	"github.com/katalvlaran/tilepath/dfs"
	"github.com/katalvlaran/tilepath/dijkstra"
	"github.com/katalvlaran/tilepath/gridgraph"
	"github.com/katalvlaran/tilepath/tile"
)

// Request is one snapshot to search.
type Request struct {
	Tiles     []tile.Descriptor
	Rows      int
	Cols      int
	CurrentID int
	Config    Config
}

// Run validates the config, adapts the snapshot and dispatches to the
// selected strategy. Each call builds a fresh node array, so repeated
// calls never share search state.
func Run(req Request, rng *rand.Rand) (gridgraph.Result, error) {
	if err := req.Config.Validate(); err != nil {
		return gridgraph.Result{}, err
	}
	g, err := gridgraph.NewGridGraph(req.Tiles, req.Rows, req.Cols, req.CurrentID)
	if err != nil {
		return gridgraph.Result{}, fmt.Errorf("pathfinding: adapt grid: %w", err)
	}
	policy := req.Config.Policy(rng)

	switch req.Config.Algorithm {
	case Dijkstra:
		return dijkstra.Dijkstra(g, dijkstra.WithPolicy(policy))
	case AStar:
		return astar.AStar(g, astar.WithPolicy(policy))
	case AggressiveAStar:
		return astar.AStar(g, astar.WithPolicy(policy), astar.WithAggressive())
	case BFS:
		return bfs.BFS(g, bfs.WithPolicy(policy))
	case DFS:
		return dfs.DFS(g, dfs.WithPolicy(policy))
	}

	return gridgraph.Result{}, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(req.Config.Algorithm))
}
