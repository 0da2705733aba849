package maze

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/tilepath/terrain"
	"github.com/katalvlaran/tilepath/tile"
)

// Generate carves a perfect maze over tiles with Wilson's loop-erased
// random walk and returns the terrain events that produce it.
//
// Rooms are the cells with even row and even col; the cell between two
// neighbouring rooms is their connector. The event stream is:
//
//  1. Added(Wall) for every tile, in input order.
//  2. Removed(Wall) for a random seed room, the first member of the maze.
//  3. For every walk from a random unvisited room until it meets the maze,
//     Removed(Wall) for the cells it carves (and, in the Bounded variant,
//     Added(Wall) for the cells a loop splice gives back).
//
// Folding the events over the tiles (terrain.Apply) yields a grid where
// every room is open and exactly one simple path joins any two rooms.
func Generate(tiles []tile.Descriptor, rows, cols int, opts ...Option) ([]terrain.Event, error) {
	o := Options{Variant: Standard}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Variant != Standard && o.Variant != Bounded {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, int(o.Variant))
	}
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, rows, cols)
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g := &generator{
		rows:   rows,
		cols:   cols,
		rng:    o.Rand,
		nodes:  make([][]node, rows),
		events: make([]terrain.Event, 0, 2*len(tiles)),
	}
	for r := range g.nodes {
		g.nodes[r] = make([]node, cols)
		for c := range g.nodes[r] {
			g.nodes[r][c] = node{row: r, col: c}
		}
	}
	for _, d := range tiles {
		if d.Row < 0 || d.Row >= rows || d.Col < 0 || d.Col >= cols {
			return nil, fmt.Errorf("%w: tile %d at (%d,%d) in %dx%d", ErrTileOutOfBounds, d.ID, d.Row, d.Col, rows, cols)
		}
		n := &g.nodes[d.Row][d.Col]
		n.tileID, n.hasID = d.ID, true
	}
	g.events = append(g.events, terrain.Fill(tiles)...)

	seed := tile.Pos{Row: g.rng.Intn((rows+1)/2) * 2, Col: g.rng.Intn((cols+1)/2) * 2}
	g.at(seed).state = path
	g.carve(seed)

	for {
		start, ok := g.pickUnvisited()
		if !ok {
			break
		}
		var cells []tile.Pos
		if o.Variant == Bounded {
			cells = g.boundedWalk(start)
		} else {
			cells = g.standardWalk(start)
		}
		for _, p := range cells {
			g.at(p).state = path
			if o.Variant == Standard {
				g.carve(p)
			}
		}
	}

	return g.events, nil
}

// generator holds the state of one Generate call.
type generator struct {
	rows, cols int
	rng        *rand.Rand
	nodes      [][]node
	events     []terrain.Event
}

func (g *generator) at(p tile.Pos) *node { return &g.nodes[p.Row][p.Col] }

func (g *generator) emit(p tile.Pos, a terrain.Action) {
	if n := g.at(p); n.hasID {
		g.events = append(g.events, terrain.Event{TileID: n.tileID, Action: a, BuildType: terrain.Wall})
	}
}

func (g *generator) carve(p tile.Pos)   { g.emit(p, terrain.Removed) }
func (g *generator) unCarve(p tile.Pos) { g.emit(p, terrain.Added) }

// pickUnvisited chooses uniformly among unvisited rooms, scanning in
// row-major order.
func (g *generator) pickUnvisited() (tile.Pos, bool) {
	var rooms []tile.Pos
	for r := 0; r < g.rows; r += 2 {
		for c := 0; c < g.cols; c += 2 {
			if g.nodes[r][c].state == unvisited {
				rooms = append(rooms, tile.Pos{Row: r, Col: c})
			}
		}
	}
	if len(rooms) == 0 {
		return tile.Pos{}, false
	}

	return rooms[g.rng.Intn(len(rooms))], true
}

// options returns the in-bounds lattice steps from p, skipping avoid when
// another choice exists.
func (g *generator) options(p tile.Pos, avoid *step) []step {
	out := make([]step, 0, len(steps))
	for _, s := range steps {
		r, c := p.Row+s.dr, p.Col+s.dc
		if r < 0 || r >= g.rows || c < 0 || c >= g.cols {
			continue
		}
		out = append(out, s)
	}
	if avoid == nil || len(out) == 1 {
		return out
	}
	for i, s := range out {
		if s == *avoid {
			return append(out[:i], out[i+1:]...)
		}
	}

	return out
}

// standardWalk walks from start until it meets the maze. Stepping onto a
// cell of the walk itself throws the whole walk away and restarts it from
// that cell. The returned cells (rooms and connectors, in walk order) are
// free of loops; nothing is emitted here.
func (g *generator) standardWalk(start tile.Pos) []tile.Pos {
	cells := []tile.Pos{start}
	g.at(start).state = current
	cur := start
	for {
		opts := g.options(cur, nil)
		s := opts[g.rng.Intn(len(opts))]
		next := tile.Pos{Row: cur.Row + s.dr, Col: cur.Col + s.dc}
		mid := tile.Pos{Row: cur.Row + s.dr/2, Col: cur.Col + s.dc/2}

		switch g.at(next).state {
		case current:
			for _, p := range cells {
				g.at(p).state = unvisited
			}
			cells = append(cells[:0], next)
			g.at(next).state = current
			cur = next
		case path:
			g.at(mid).state = current
			return append(cells, mid)
		default:
			g.at(mid).state = current
			g.at(next).state = current
			cells = append(cells, mid, next)
			cur = next
		}
	}
}

// boundedWalk carves as it walks. Stepping back onto the walk splices the
// loop out: every cell after the revisited room is re-walled. The walk
// never reverses its last step unless it just spliced or has no other
// choice.
func (g *generator) boundedWalk(start tile.Pos) []tile.Pos {
	cells := []tile.Pos{start}
	g.at(start).state = current
	g.carve(start)
	cur := start
	var back *step
	for {
		opts := g.options(cur, back)
		s := opts[g.rng.Intn(len(opts))]
		next := tile.Pos{Row: cur.Row + s.dr, Col: cur.Col + s.dc}
		mid := tile.Pos{Row: cur.Row + s.dr/2, Col: cur.Col + s.dc/2}

		g.at(mid).state = current
		cells = append(cells, mid)
		g.carve(mid)

		switch g.at(next).state {
		case unvisited:
			g.at(next).state = current
			cells = append(cells, next)
			g.carve(next)
			cur = next
			back = &step{dr: -s.dr, dc: -s.dc}
		case current:
			idx := indexOf(cells, next)
			for _, p := range cells[idx+1:] {
				g.at(p).state = unvisited
				g.unCarve(p)
			}
			cells = cells[:idx+1]
			cur = next
			back = nil
		case path:
			return cells
		}
	}
}

func indexOf(cells []tile.Pos, p tile.Pos) int {
	for i, c := range cells {
		if c == p {
			return i
		}
	}

	return -1
}
