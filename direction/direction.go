// Package direction produces the neighbour exploration order for grid
// searches and resolves neighbour coordinates under bounded or toroidal
// topology.
//
// The base order is the 8 compass moves; orthogonal moves cost 10 and
// diagonal moves cost 14 (a fixed-point √2 scaled by 10). A Policy rotates
// the base order by a caller-chosen offset and optionally shuffles it with
// an injected random source. Shuffling changes only the order in which
// neighbours are examined, never which neighbours exist.
package direction

import (
	"math/rand"
	"time"
)

// Step costs in fixed-point units.
const (
	OrthogonalCost int64 = 10
	DiagonalCost   int64 = 14
)

// Count is the number of neighbour offsets.
const Count = 8

// Offset is a single-step move on the grid.
type Offset struct {
	DRow, DCol int
}

// Diagonal reports whether the move changes both row and column.
func (o Offset) Diagonal() bool {
	return abs(o.DRow)+abs(o.DCol) == 2
}

// Cost returns the fixed-point step cost of the move.
func (o Offset) Cost() int64 {
	if o.Diagonal() {
		return DiagonalCost
	}

	return OrthogonalCost
}

// Reverse returns the opposite move.
func (o Offset) Reverse() Offset {
	return Offset{DRow: -o.DRow, DCol: -o.DCol}
}

// Base is the unrotated exploration order.
var Base = [Count]Offset{
	{-1, -1},
	{1, -1},
	{1, 1},
	{-1, 1},
	{0, 1},
	{1, 0},
	{0, -1},
	{-1, 0},
}

// Policy decides the neighbour order for each expansion step and how
// out-of-range neighbours resolve.
type Policy struct {
	// Offset rotates Base left by Offset mod 8.
	Offset int
	// Random shuffles the rotated order on every call to Order.
	Random bool
	// Wrap makes the grid a torus; otherwise out-of-range neighbours are dropped.
	Wrap bool
	// Rand is the shuffle source. When Random is set and Rand is nil a
	// time-seeded source is created on first use.
	Rand *rand.Rand
}

// Option configures a Policy.
type Option func(*Policy)

// WithOffset sets the rotation applied to Base.
func WithOffset(n int) Option {
	return func(p *Policy) {
		p.Offset = n
	}
}

// WithRandom enables shuffling of the exploration order.
func WithRandom(on bool) Option {
	return func(p *Policy) {
		p.Random = on
	}
}

// WithWrap enables toroidal wraparound.
func WithWrap(on bool) Option {
	return func(p *Policy) {
		p.Wrap = on
	}
}

// WithRand injects the shuffle source. A nil source is ignored.
func WithRand(r *rand.Rand) Option {
	return func(p *Policy) {
		if r != nil {
			p.Rand = r
		}
	}
}

// NewPolicy builds a Policy from options. The zero Policy (no options) is
// unrotated, deterministic and bounded.
func NewPolicy(opts ...Option) *Policy {
	p := &Policy{}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Order returns the neighbour offsets for one expansion step.
// The returned slice is freshly allocated and owned by the caller.
func (p *Policy) Order() []Offset {
	out := make([]Offset, Count)
	shift := ((p.Offset % Count) + Count) % Count
	for i := range out {
		out[i] = Base[(i+shift)%Count]
	}
	if p.Random {
		if p.Rand == nil {
			p.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		p.Rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	}

	return out
}

// Resolve applies off to (row, col) on a rows×cols grid. With Wrap the
// result is taken modulo the extents; without it ok is false whenever the
// neighbour falls outside the grid.
func (p *Policy) Resolve(row, col int, off Offset, rows, cols int) (r, c int, ok bool) {
	r, c = row+off.DRow, col+off.DCol
	if p.Wrap {
		return mod(r, rows), mod(c, cols), true
	}
	if r < 0 || r >= rows || c < 0 || c >= cols {
		return 0, 0, false
	}

	return r, c, true
}

// Delta returns |b-a| along one axis of length extent. With wrap the
// shorter of the direct and wrapped distances is returned.
func Delta(a, b, extent int, wrap bool) int {
	d := abs(b - a)
	if wrap && extent-d < d {
		d = extent - d
	}

	return d
}

func mod(v, n int) int {
	return ((v % n) + n) % n
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
