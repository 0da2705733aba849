// Package gridgraph adapts a caller-owned tile snapshot into a dense array
// of search nodes. It supports:
//
//   - One-pass construction from tile descriptors (walls pre-visited)
//   - Start and goal extraction (current tile id, End tile)
//   - Path reconstruction through Previous links
//   - Step and path costs under bounded or toroidal topology
//   - Connected regions of open cells and start→goal reachability
package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/tilepath/direction"
	"github.com/katalvlaran/tilepath/tile"
)

// NewGridGraph builds a rows×cols node array from tiles. Every cell starts
// at Infinity distance; each descriptor then overwrites its cell, and Wall
// descriptors are marked IsWall and Visited so no search ever expands them.
// The End tile becomes the goal and the tile whose id is currentID becomes
// the start; either defaults to (0,0) when absent.
//
// Returns ErrEmptyGrid if rows or cols is not positive and
// ErrTileOutOfBounds if a descriptor lies outside the extents. Duplicate
// ids or positions are not detected (see tile.Validate).
// Complexity: O(rows×cols + N) time and memory.
func NewGridGraph(tiles []tile.Descriptor, rows, cols, currentID int) (*GridGraph, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	nodes := make([][]Node, rows)
	for r := 0; r < rows; r++ {
		nodes[r] = make([]Node, cols)
		for c := 0; c < cols; c++ {
			nodes[r][c] = Node{Row: r, Col: c, Distance: Infinity, GScore: Infinity}
		}
	}
	gg := &GridGraph{
		Rows:  rows,
		Cols:  cols,
		Nodes: nodes,
		index: tile.NewIndex(tiles),
	}
	for _, t := range tiles {
		if !gg.InBounds(t.Row, t.Col) {
			return nil, fmt.Errorf("%w: tile %d at (%d,%d) in %dx%d", ErrTileOutOfBounds, t.ID, t.Row, t.Col, rows, cols)
		}
		n := &nodes[t.Row][t.Col]
		n.TileID = t.ID
		if t.Kind == tile.Wall {
			n.IsWall = true
			n.Visited = true
		}
		if t.Kind == tile.End {
			gg.goal = t.Pos()
			gg.HasGoal = true
		}
		if t.ID == currentID {
			gg.start = t.Pos()
			gg.HasStart = true
		}
	}

	return gg, nil
}

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (gg *GridGraph) InBounds(row, col int) bool {
	return row >= 0 && row < gg.Rows && col >= 0 && col < gg.Cols
}

// Node returns the node at p. p must be in bounds.
func (gg *GridGraph) Node(p tile.Pos) *Node {
	return &gg.Nodes[p.Row][p.Col]
}

// NodeByID returns the node holding tile id.
func (gg *GridGraph) NodeByID(id int) (*Node, bool) {
	p, ok := gg.index.Lookup(id)
	if !ok {
		return nil, false
	}

	return gg.Node(p), true
}

// Start returns the search origin.
func (gg *GridGraph) Start() tile.Pos { return gg.start }

// Goal returns the search target.
func (gg *GridGraph) Goal() tile.Pos { return gg.goal }

// Trace walks Previous links from the goal back to the start and returns
// the tile ids in that order, both ends included. A goal equal to the
// start yields a single id; a goal without a predecessor chain yields nil.
// Complexity: O(path length).
func (gg *GridGraph) Trace() []int {
	cur := gg.Node(gg.goal)
	if gg.goal == gg.start {
		return []int{cur.TileID}
	}
	if cur.Previous == nil {
		return nil
	}
	path := make([]int, 0, 16)
	// a chain never exceeds the number of cells
	for limit := gg.Rows * gg.Cols; limit > 0; limit-- {
		path = append(path, cur.TileID)
		if cur.Pos() == gg.start {
			return path
		}
		if cur.Previous == nil {
			return nil
		}
		cur = gg.Node(*cur.Previous)
	}

	return nil
}

// StepCost returns the fixed-point cost of moving between two adjacent
// cells, or false when they are not 8-neighbours.
func (gg *GridGraph) StepCost(a, b tile.Pos, wrap bool) (int64, bool) {
	dr := direction.Delta(a.Row, b.Row, gg.Rows, wrap)
	dc := direction.Delta(a.Col, b.Col, gg.Cols, wrap)
	switch {
	case dr == 1 && dc == 1:
		return direction.DiagonalCost, true
	case dr+dc == 1:
		return direction.OrthogonalCost, true
	}

	return 0, false
}

// PathCost sums step costs along a sequence of tile ids. It returns false
// if an id is unknown or two consecutive tiles are not adjacent.
func (gg *GridGraph) PathCost(ids []int, wrap bool) (int64, bool) {
	var total int64
	for i := 1; i < len(ids); i++ {
		a, okA := gg.index.Lookup(ids[i-1])
		b, okB := gg.index.Lookup(ids[i])
		if !okA || !okB {
			return 0, false
		}
		step, ok := gg.StepCost(a, b, wrap)
		if !ok {
			return 0, false
		}
		total += step
	}

	return total, true
}

// Result packages a finished run. The path is traced only when reached.
func (gg *GridGraph) Result(visited []int, reached bool, wrap bool) Result {
	res := Result{Visited: visited, Reached: reached}
	if visited == nil {
		res.Visited = []int{}
	}
	if !reached {
		res.Path = []int{}
		return res
	}
	res.Path = gg.Trace()
	if res.Path == nil {
		res.Path = []int{}
	}
	res.Cost, _ = gg.PathCost(res.Path, wrap)

	return res
}
