package maze

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/tilepath/tile"
)

// OpenSet returns a membership test for the non-wall cells of tiles.
func OpenSet(tiles []tile.Descriptor) func(tile.Pos) bool {
	open := mapset.New[tile.Pos]()
	for _, d := range tiles {
		if d.Kind != tile.Wall {
			open.Put(d.Pos())
		}
	}

	return open.Has
}

// Verify checks that the open cells of a rows×cols grid form a perfect
// maze over the room lattice:
//
//   - every room (even row, even col) is open       → ErrRoomClosed
//   - every cell that joins no two rooms is closed  → ErrPillarOpen
//   - all rooms are connected through open connectors → ErrDisconnected
//   - open connectors number exactly rooms−1         → ErrNotTree
//
// A connector is a cell with exactly one odd coordinate whose two lattice
// neighbours are both inside the grid.
func Verify(rows, cols int, open func(tile.Pos) bool) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrEmptyGrid, rows, cols)
	}

	rooms, connectors := 0, 0
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			p := tile.Pos{Row: r, Col: c}
			switch {
			case r%2 == 0 && c%2 == 0:
				rooms++
				if !open(p) {
					return fmt.Errorf("%w: (%d,%d)", ErrRoomClosed, r, c)
				}
			case isConnector(p, rows, cols):
				if open(p) {
					connectors++
				}
			default:
				if open(p) {
					return fmt.Errorf("%w: (%d,%d)", ErrPillarOpen, r, c)
				}
			}
		}
	}

	// flood the room lattice from the origin room
	seen := mapset.New[tile.Pos]()
	queue := []tile.Pos{{}}
	seen.Put(tile.Pos{})
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, s := range steps {
			v := tile.Pos{Row: u.Row + s.dr, Col: u.Col + s.dc}
			if v.Row < 0 || v.Row >= rows || v.Col < 0 || v.Col >= cols || seen.Has(v) {
				continue
			}
			if !open(tile.Pos{Row: u.Row + s.dr/2, Col: u.Col + s.dc/2}) {
				continue
			}
			seen.Put(v)
			queue = append(queue, v)
		}
	}
	if seen.Size() != rooms {
		return fmt.Errorf("%w: %d of %d rooms reachable", ErrDisconnected, seen.Size(), rooms)
	}
	if connectors != rooms-1 {
		return fmt.Errorf("%w: %d connectors for %d rooms", ErrNotTree, connectors, rooms)
	}

	return nil
}

// isConnector reports whether p sits between two in-grid rooms.
func isConnector(p tile.Pos, rows, cols int) bool {
	switch {
	case p.Row%2 == 1 && p.Col%2 == 0:
		return p.Row+1 < rows
	case p.Row%2 == 0 && p.Col%2 == 1:
		return p.Col+1 < cols
	}

	return false
}
