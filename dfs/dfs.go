// Package dfs implements depth-first descent from the start cell of a
// gridgraph.GridGraph toward its goal.
//
// The walk follows the first untried direction of the deepest cell,
// backtracking when a cell runs out of directions. It stops the instant
// the goal is entered. The path is the descent stack at that moment, so it
// is *a* path, not necessarily a short one.
//
// Key features:
//   - Explicit frame stack: no recursion, so grid size is not bounded by
//     goroutine stack depth.
//   - Per-frame neighbour order from direction.Policy (rotation, shuffle, wrap).
//   - Hooks: OnVisit (on entry) with error aborts, OnExit (on backtrack).
//   - Limits: MaxDepth, MaxVisited; cancellation via context.Context.
//
// Complexity:
//
//   - Time:   O(V) with V = rows×cols; each cell is entered at most once
//     and tries at most 8 directions.
//   - Memory: O(V) for the frame stack and visit order.
//
// Errors:
//
//   - ErrGraphNil          if g is nil.
//   - ErrOptionViolation   for a negative MaxVisited.
//   - context.Canceled     if ctx is done.
//   - any error returned by OnVisit (wrapped).
package dfs

import (
	"fmt"

	"github.com/katalvlaran/tilepath/direction"
	"github.com/katalvlaran/tilepath/gridgraph"
	"github.com/katalvlaran/tilepath/tile"
)

// frame is one level of the descent: a cell, its direction order and the
// index of the next direction to try.
type frame struct {
	pos   tile.Pos
	dirs  []direction.Offset
	next  int
	depth int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	grid  *gridgraph.GridGraph
	opts  DFSOptions
	goal  tile.Pos
	stack []frame
	order []int
}

// DFS performs depth-first descent on g from its start cell.
// Returns the Result gathered so far together with any abort error.
func DFS(g *gridgraph.GridGraph, opts ...Option) (gridgraph.Result, error) {
	// 1. Validate input grid
	if g == nil {
		return gridgraph.Result{}, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if dopts.err != nil {
		return gridgraph.Result{}, dopts.err
	}

	w := &dfsWalker{
		grid:  g,
		opts:  dopts,
		goal:  g.Goal(),
		stack: make([]frame, 0, 64),
		order: make([]int, 0, g.Rows*g.Cols),
	}

	// 3. Walk
	reached, err := w.walk()

	return g.Result(w.order, reached, dopts.Policy.Wrap), err
}

// walk drives the frame stack until the goal is entered, every branch is
// exhausted, a limit is hit or a hook aborts.
func (w *dfsWalker) walk() (bool, error) {
	start := w.grid.Node(w.grid.Start())
	start.Distance, start.GScore = 0, 0
	found, err := w.enter(start, 0)
	if found || err != nil {
		return found, err
	}

	for len(w.stack) > 0 {
		// 1. Cancellation check
		select {
		case <-w.opts.Ctx.Done():
			return false, w.opts.Ctx.Err()
		default:
		}

		top := &w.stack[len(w.stack)-1]
		if top.next == len(top.dirs) {
			// 2. Dead end: backtrack
			if w.opts.OnExit != nil {
				w.opts.OnExit(w.grid.Node(top.pos).TileID)
			}
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}

		d := top.dirs[top.next]
		top.next++
		vr, vc, ok := w.opts.Policy.Resolve(top.pos.Row, top.pos.Col, d, w.grid.Rows, w.grid.Cols)
		if !ok {
			continue
		}
		v := &w.grid.Nodes[vr][vc]
		if v.Visited {
			continue
		}
		if w.opts.MaxDepth >= 0 && top.depth+1 > w.opts.MaxDepth {
			continue
		}
		if w.opts.MaxVisited > 0 && len(w.order) >= w.opts.MaxVisited {
			return false, nil
		}

		// 3. Descend: the tree edge is the only Previous link v ever gets
		u := w.grid.Node(top.pos)
		prev := top.pos
		v.Previous = &prev
		v.Distance = int64(top.depth + 1)
		v.GScore = u.GScore + d.Cost()
		found, err = w.enter(v, top.depth+1)
		if found || err != nil {
			return found, err
		}
	}

	return false, nil
}

// enter marks n visited, records it, runs OnVisit and, unless n is the
// goal, pushes a frame with a fresh direction order. Walls are pre-visited
// and never entered.
func (w *dfsWalker) enter(n *gridgraph.Node, depth int) (bool, error) {
	if n.Visited {
		return false, nil
	}
	n.Visited = true
	w.order = append(w.order, n.TileID)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(n.TileID, depth); err != nil {
			return false, fmt.Errorf("dfs: OnVisit hook for tile %d: %w", n.TileID, err)
		}
	}
	if n.Pos() == w.goal {
		return true, nil
	}
	w.stack = append(w.stack, frame{pos: n.Pos(), dirs: w.opts.Policy.Order(), depth: depth})

	return false, nil
}
