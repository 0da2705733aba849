// Package tilepath is a grid pathfinding and maze generation engine for
// tile worlds.
//
// A caller hands over a snapshot of tiles (id, row, col, kind), the id of
// the tile the agent stands on, and a config choosing the strategy and the
// neighbour policy. The engine answers with the expansion order, the path
// from goal back to start and its cost. Nothing is retained between calls.
//
// Movement is 8-connected: orthogonal steps cost 10, diagonal steps 14.
// With world wrap on, opposite edges are joined and every cell has eight
// neighbours.
//
// Packages:
//
//	tile/        descriptors, id sequences, text layouts, validation
//	direction/   neighbour order (offset, shuffle) and wraparound
//	gridgraph/   snapshot → node array, path trace, costs, regions
//	dijkstra/    cost-optimal search
//	astar/       heuristic search, admissible and aggressive variants
//	bfs/         hop-optimal breadth-first search
//	dfs/         depth-first exploration
//	pathfinding/ Algorithm, Config and the Run dispatcher
//	terrain/     wall/end edit events and their application
//	maze/        Wilson's algorithm on a room lattice, perfect-maze check
//	precalc/     fingerprinted "compute once, replay many" cache
//	scenario/    YAML scenario files
//
// The gridpath command under cmd/ wraps solve, maze and verify.
//
// Quick start:
//
//	lay, _ := tile.FromLayout([]string{"S..", ".#.", "..E"}, tile.NewSequence(0))
//	res, err := pathfinding.Run(pathfinding.Request{
//		Tiles: lay.Tiles, Rows: lay.Rows, Cols: lay.Cols,
//		CurrentID: lay.StartID, Config: pathfinding.DefaultConfig(),
//	}, nil)
package tilepath
