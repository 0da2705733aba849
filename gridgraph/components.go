package gridgraph

import (
	"github.com/katalvlaran/tilepath/direction"
	"github.com/katalvlaran/tilepath/tile"
)

// ConnectedComponents groups non-wall cells into 8-connected regions,
// resolving neighbours through p (so wraparound joins opposite edges).
// Returns one slice of tile ids per region, regions in row-major order of
// their first cell, cells in discovery order.
//
// Time:   O(rows·cols·8).
// Memory: O(rows·cols) for seen flags and output.
func (gg *GridGraph) ConnectedComponents(p *direction.Policy) [][]int {
	seen := make([]bool, gg.Rows*gg.Cols)
	var comps [][]int

	for r := 0; r < gg.Rows; r++ {
		for c := 0; c < gg.Cols; c++ {
			if gg.Nodes[r][c].IsWall || seen[gg.cellIndex(r, c)] {
				continue
			}
			comps = append(comps, gg.flood(tile.Pos{Row: r, Col: c}, p, seen))
		}
	}

	return comps
}

// Reachable reports whether the goal lies in the start's region. A wall
// start reaches nothing.
func (gg *GridGraph) Reachable(p *direction.Policy) bool {
	if gg.Node(gg.start).IsWall {
		return false
	}
	if gg.start == gg.goal {
		return true
	}
	seen := make([]bool, gg.Rows*gg.Cols)
	gg.flood(gg.start, p, seen)

	return seen[gg.cellIndex(gg.goal.Row, gg.goal.Col)]
}

// flood collects the region around from, marking seen.
func (gg *GridGraph) flood(from tile.Pos, p *direction.Policy, seen []bool) []int {
	queue := []tile.Pos{from}
	seen[gg.cellIndex(from.Row, from.Col)] = true
	var comp []int

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		comp = append(comp, gg.Nodes[u.Row][u.Col].TileID)
		for _, d := range direction.Base {
			vr, vc, ok := p.Resolve(u.Row, u.Col, d, gg.Rows, gg.Cols)
			if !ok || gg.Nodes[vr][vc].IsWall {
				continue
			}
			vi := gg.cellIndex(vr, vc)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, tile.Pos{Row: vr, Col: vc})
			}
		}
	}

	return comp
}

// cellIndex maps (row, col) to a row-major index.
// Complexity: O(1).
func (gg *GridGraph) cellIndex(row, col int) int {
	return row*gg.Cols + col
}
