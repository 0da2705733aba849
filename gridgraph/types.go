// Package gridgraph defines the per-run search node model, the adapted
// grid and the plain result type shared by every search package.
package gridgraph

import (
	"math"

	"github.com/katalvlaran/tilepath/tile"
)

// Infinity is the distance sentinel for nodes not yet reached.
const Infinity int64 = math.MaxInt64

// Node is the ephemeral search state attached to one grid cell.
// Nodes live for a single algorithm invocation.
type Node struct {
	TileID   int
	Row, Col int
	IsWall   bool
	Distance int64     // priority the node was last queued with (cost, or g+h for A*)
	GScore   int64     // accumulated cost from the start (A* relaxations)
	Visited  bool      // expanded, or a wall
	Previous *tile.Pos // predecessor on the best known route, nil at the start
}

// Pos returns the node's coordinate.
func (n *Node) Pos() tile.Pos {
	return tile.Pos{Row: n.Row, Col: n.Col}
}

// GridGraph is a dense rows×cols array of search nodes built from one tile
// snapshot. Start and Goal default to the origin when the snapshot has no
// matching tile; HasStart and HasGoal report which case applied.
type GridGraph struct {
	Rows, Cols int
	Nodes      [][]Node
	HasStart   bool
	HasGoal    bool

	start tile.Pos
	goal  tile.Pos
	index *tile.Index
}

// Result is the plain output of a search. It holds no references into the
// GridGraph it was computed on.
type Result struct {
	// Visited lists tile ids in expansion order.
	Visited []int
	// Path lists tile ids from the goal back to the start, both included.
	// It is empty when the goal was not reached.
	Path []int
	// Cost is the summed step cost along Path.
	Cost int64
	// Reached reports whether the search terminated on the goal.
	Reached bool
}

// Forward returns Path reordered from start to goal.
func (r Result) Forward() []int {
	out := make([]int, len(r.Path))
	for i, id := range r.Path {
		out[len(r.Path)-1-i] = id
	}

	return out
}
