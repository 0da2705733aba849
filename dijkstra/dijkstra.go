// Package dijkstra implements Dijkstra's shortest-path algorithm on an
// 8-connected tile grid with orthogonal cost 10 and diagonal cost 14.
//
// Notes on implementation choices:
//
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the
//     heap and ignoring stale entries when popped.
//   - Ties in the heap are broken by push order, so a fixed policy always
//     produces the same expansion order.
//   - The run stops the instant the goal is popped; the goal itself is not
//     expanded and therefore not part of Visited.
package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/tilepath/gridgraph"
	"github.com/katalvlaran/tilepath/tile"
)

// Dijkstra searches g from its start to its goal and returns the
// expansion order and the goal → start path.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Options must be valid (ErrOptionViolation).
//
// An unreachable goal is not an error: Visited holds every reachable
// expansion and Path is empty.
//
// Complexity:
//
//   - Time:  O(V log V) with V = rows×cols (8 neighbours per node).
//   - Space: O(V).
func Dijkstra(g *gridgraph.GridGraph, opts ...Option) (gridgraph.Result, error) {
	if g == nil {
		return gridgraph.Result{}, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return gridgraph.Result{}, cfg.err
	}

	r := &runner{
		g:       g,
		options: cfg,
		order:   make([]int, 0, g.Rows*g.Cols),
		pq:      make(nodePQ, 0, g.Rows*g.Cols),
	}
	r.init()
	reached := r.process()

	return g.Result(r.order, reached, cfg.Policy.Wrap), nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *gridgraph.GridGraph
	options Options
	order   []int  // expansion order (tile ids)
	pq      nodePQ // min-heap of *nodeItem
	seq     uint64 // push counter for stable tie-breaking
}

// init zeroes the start distance and seeds the heap with it.
func (r *runner) init() {
	start := r.g.Node(r.g.Start())
	start.Distance = 0
	start.GScore = 0
	heap.Init(&r.pq)
	r.push(start.Pos(), 0)
}

// process is the main loop. It reports whether the goal was popped.
func (r *runner) process() bool {
	goal := r.g.Goal()
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := r.g.Node(item.pos)

		// walls are pre-visited; stale entries carry an outdated distance
		if u.Visited || item.dist > u.Distance {
			continue
		}
		if item.pos == goal {
			return true
		}
		if r.options.MaxVisited > 0 && len(r.order) >= r.options.MaxVisited {
			return false
		}

		u.Visited = true
		r.order = append(r.order, u.TileID)
		r.options.OnVisit(u.TileID)
		r.relax(u)
	}

	return false
}

// relax offers every neighbour of u a route through u.
func (r *runner) relax(u *gridgraph.Node) {
	p := r.options.Policy
	for _, d := range p.Order() {
		vr, vc, ok := p.Resolve(u.Row, u.Col, d, r.g.Rows, r.g.Cols)
		if !ok {
			continue
		}
		v := &r.g.Nodes[vr][vc]
		if v.IsWall || v.Visited {
			continue
		}
		newDist := u.Distance + d.Cost()
		// strictly better only, to avoid re-pushing equal routes
		if newDist >= v.Distance {
			continue
		}
		v.Distance = newDist
		v.GScore = newDist
		prev := u.Pos()
		v.Previous = &prev
		r.push(v.Pos(), newDist)
	}
}

func (r *runner) push(p tile.Pos, dist int64) {
	heap.Push(&r.pq, &nodeItem{pos: p, dist: dist, seq: r.seq})
	r.seq++
}

// nodeItem is a queued grid position with the distance it was queued at.
type nodeItem struct {
	pos  tile.Pos
	dist int64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then push order.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
