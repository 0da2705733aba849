// Package bfs provides breadth-first search over a gridgraph.GridGraph,
// returning the visit order and a hop-minimal goal → start path.
//
// BFS explores cells in increasing hop count from the start, with
// optional hooks, depth limiting and cancellation.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/tilepath/gridgraph"
	"github.com/katalvlaran/tilepath/tile"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	pos   tile.Pos
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	grid  *gridgraph.GridGraph
	opts  BFSOptions
	goal  tile.Pos
	queue []queueItem
	order []int
}

// BFS runs breadth-first search on g from its start cell, applying any
// number of functional Options.
// Returns ErrGraphNil for a nil grid, ErrOptionViolation for bad options,
// ctx.Err() on cancellation, or any user-supplied hook error. On error the
// partial Result gathered so far is still returned.
func BFS(g *gridgraph.GridGraph, opts ...Option) (gridgraph.Result, error) {
	if g == nil {
		return gridgraph.Result{}, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return gridgraph.Result{}, o.err
	}

	n := g.Rows * g.Cols
	w := &walker{
		grid:  g,
		opts:  o,
		goal:  g.Goal(),
		queue: make([]queueItem, 0, n),
		order: make([]int, 0, n),
	}

	start := g.Node(g.Start())
	if start.IsWall {
		return g.Result(w.order, false, o.Policy.Wrap), nil
	}
	start.Distance, start.GScore = 0, 0
	w.enqueue(start, 0)
	reached, err := w.loop()

	return g.Result(w.order, reached, o.Policy.Wrap), err
}

// enqueue marks n discovered at depth d, calls OnEnqueue, and adds it to
// the queue. A discovered cell is never enqueued again, so its Previous
// link is set exactly once.
func (w *walker) enqueue(n *gridgraph.Node, d int) {
	n.Visited = true
	w.opts.OnEnqueue(n.TileID, d)
	w.queue = append(w.queue, queueItem{pos: n.Pos(), depth: d})
}

// loop processes the queue until the goal is visited, the queue empties,
// a hook fails, or the context is cancelled.
func (w *walker) loop() (bool, error) {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return false, w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		n := w.grid.Node(item.pos)

		w.order = append(w.order, n.TileID)
		if err := w.opts.OnVisit(n.TileID, item.depth); err != nil {
			return false, fmt.Errorf("bfs: OnVisit error at tile %d: %w", n.TileID, err)
		}
		if item.pos == w.goal {
			return true, nil
		}
		w.enqueueNeighbors(n, item.depth)
	}

	return false, nil
}

// enqueueNeighbors discovers every open, undiscovered neighbour of u in
// policy order, honouring MaxDepth.
func (w *walker) enqueueNeighbors(u *gridgraph.Node, depth int) {
	next := depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	p := w.opts.Policy
	for _, d := range p.Order() {
		vr, vc, ok := p.Resolve(u.Row, u.Col, d, w.grid.Rows, w.grid.Cols)
		if !ok {
			continue
		}
		v := &w.grid.Nodes[vr][vc]
		// walls are pre-visited by the adapter
		if v.Visited {
			continue
		}
		prev := u.Pos()
		v.Previous = &prev
		v.Distance = int64(next)
		v.GScore = u.GScore + d.Cost()
		w.enqueue(v, next)
	}
}
