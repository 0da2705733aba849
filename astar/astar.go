package astar

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/tilepath/direction"
	"github.com/katalvlaran/tilepath/gridgraph"
	"github.com/katalvlaran/tilepath/tile"
)

// AStar searches g from start to goal ordering the frontier by g + h.
//
// Steps:
//  1. Validate g and options.
//  2. Seed the heap with the start (g = 0).
//  3. Pop the lowest f; skip stale or closed entries; stop at the goal.
//  4. Close the node, record it in Visited, relax neighbours comparing g.
//
// Node.GScore carries g; Node.Distance carries f, saturated at
// gridgraph.Infinity when the heuristic leaves the int64 range.
//
// Complexity: O(V log V) time, O(V) space, V = rows×cols.
func AStar(g *gridgraph.GridGraph, opts ...Option) (gridgraph.Result, error) {
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

	s := &search{
		g:       g,
		options: cfg,
		goal:    g.Goal(),
		order:   make([]int, 0, g.Rows*g.Cols),
		open:    make(openSet, 0, g.Rows*g.Cols),
	}
	s.init()
	reached := s.run()

	return g.Result(s.order, reached, cfg.Policy.Wrap), nil
}

// search holds the state of one AStar call.
type search struct {
	g       *gridgraph.GridGraph
	options Options
	goal    tile.Pos
	order   []int
	open    openSet
	seq     uint64
}

func (s *search) init() {
	start := s.g.Node(s.g.Start())
	start.GScore = 0
	heap.Init(&s.open)
	s.push(start, 0)
}

func (s *search) run() bool {
	for s.open.Len() > 0 {
		item := heap.Pop(&s.open).(*openItem)
		u := s.g.Node(item.pos)
		if u.Visited || item.g > u.GScore {
			continue
		}
		if item.pos == s.goal {
			return true
		}
		if s.options.MaxVisited > 0 && len(s.order) >= s.options.MaxVisited {
			return false
		}

		u.Visited = true
		s.order = append(s.order, u.TileID)
		s.options.OnVisit(u.TileID)

		p := s.options.Policy
		for _, d := range p.Order() {
			vr, vc, ok := p.Resolve(u.Row, u.Col, d, s.g.Rows, s.g.Cols)
			if !ok {
				continue
			}
			v := &s.g.Nodes[vr][vc]
			if v.IsWall || v.Visited {
				continue
			}
			tentative := u.GScore + d.Cost()
			if tentative >= v.GScore {
				continue
			}
			prev := u.Pos()
			v.Previous = &prev
			s.push(v, tentative)
		}
	}

	return false
}

// push records g on the node, derives f and queues it.
func (s *search) push(n *gridgraph.Node, g int64) {
	wrap := s.options.Policy.Wrap
	h := s.options.Heuristic(
		direction.Delta(n.Row, s.goal.Row, s.g.Rows, wrap),
		direction.Delta(n.Col, s.goal.Col, s.g.Cols, wrap),
	)
	f := float64(g) + h
	n.GScore = g
	n.Distance = saturate(f)
	heap.Push(&s.open, &openItem{pos: n.Pos(), g: g, f: f, seq: s.seq})
	s.seq++
}

// saturate converts f to int64, clamping at gridgraph.Infinity.
func saturate(f float64) int64 {
	if f >= math.MaxInt64 || math.IsInf(f, 1) || math.IsNaN(f) {
		return gridgraph.Infinity
	}

	return int64(f)
}

type openItem struct {
	pos tile.Pos
	g   int64
	f   float64
	seq uint64
}

// openSet is a min-heap on f, then push order.
type openSet []*openItem

func (o openSet) Len() int { return len(o) }
func (o openSet) Less(i, j int) bool {
	if o[i].f != o[j].f {
		return o[i].f < o[j].f
	}
	return o[i].seq < o[j].seq
}
func (o openSet) Swap(i, j int)       { o[i], o[j] = o[j], o[i] }
func (o *openSet) Push(x interface{}) { *o = append(*o, x.(*openItem)) }
func (o *openSet) Pop() interface{} {
	old := *o
	n := len(old)
	it := old[n-1]
	*o = old[:n-1]

	return it
}
