package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// Sentinel errors.
var (
	// ErrEmptyGrid is returned for non-positive extents.
	ErrEmptyGrid = errors.New("maze: grid has no cells")

	// ErrTileOutOfBounds is returned for a descriptor outside the extents.
	ErrTileOutOfBounds = errors.New("maze: tile outside grid")

	// ErrUnknownVariant is returned for a Variant outside the known set.
	ErrUnknownVariant = errors.New("maze: unknown variant")

	// ErrRoomClosed: a room cell (even row, even col) is a wall.
	ErrRoomClosed = errors.New("maze: room is closed")

	// ErrPillarOpen: a cell that joins no two rooms is open.
	ErrPillarOpen = errors.New("maze: pillar is open")

	// ErrNotTree: open connectors do not number rooms−1 (a cycle exists).
	ErrNotTree = errors.New("maze: passages form a cycle")

	// ErrDisconnected: some room cannot be reached from the first room.
	ErrDisconnected = errors.New("maze: rooms are disconnected")
)

// Variant selects the loop handling of the random walk.
type Variant int

const (
	// Standard restarts a walk from the revisited cell and emits carve
	// events only when a walk commits.
	Standard Variant = iota
	// Bounded carves live and splices loops out, re-walling what it undoes.
	Bounded
)

func (v Variant) String() string {
	switch v {
	case Standard:
		return "standard"
	case Bounded:
		return "bounded"
	}

	return fmt.Sprintf("variant(%d)", int(v))
}

// ParseVariant maps "standard" or "bounded" (case-insensitive) to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard", "wilsons":
		return Standard, nil
	case "bounded", "wilsons-bounded":
		return Bounded, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// Options configures Generate.
type Options struct {
	Variant Variant
	Rand    *rand.Rand
}

// Option is a functional option for Generate.
type Option func(*Options)

// WithVariant selects the walk variant.
func WithVariant(v Variant) Option {
	return func(o *Options) {
		o.Variant = v
	}
}

// WithRand injects the random source. A nil source is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// cellState is the generator's per-cell mark.
type cellState uint8

const (
	unvisited cellState = iota
	current
	path
)

// node is one cell of the generator's grid.
type node struct {
	tileID int
	row    int
	col    int
	hasID  bool
	state  cellState
}

// step is a lattice move: two cells at a time, four directions.
type step struct{ dr, dc int }

var steps = [4]step{{0, 2}, {2, 0}, {0, -2}, {-2, 0}}
