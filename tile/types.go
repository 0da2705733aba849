// Package tile defines the read-only tile descriptors the engine consumes,
// together with small helpers callers use to build and index snapshots.
package tile

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for tile snapshots and layouts.
var (
	// ErrEmptyLayout indicates a layout with no rows or no columns.
	ErrEmptyLayout = errors.New("tile: layout must have at least one row and one column")
	// ErrRaggedLayout indicates layout rows of differing lengths.
	ErrRaggedLayout = errors.New("tile: all layout rows must have the same length")
	// ErrUnknownGlyph indicates a layout character outside the legend.
	ErrUnknownGlyph = errors.New("tile: unknown layout glyph")
	// ErrMultipleStarts indicates more than one start glyph in a layout.
	ErrMultipleStarts = errors.New("tile: layout has more than one start")
	// ErrUnknownKind indicates a kind name ParseKind does not recognise.
	ErrUnknownKind = errors.New("tile: unknown kind")

	// ErrDuplicateID indicates two descriptors sharing one id.
	ErrDuplicateID = errors.New("tile: duplicate tile id")
	// ErrDuplicatePos indicates two descriptors sharing one (row, col).
	ErrDuplicatePos = errors.New("tile: duplicate tile position")
	// ErrOutOfRange indicates a descriptor outside the declared extents.
	ErrOutOfRange = errors.New("tile: tile position out of range")
	// ErrIncomplete indicates the snapshot does not cover every cell.
	ErrIncomplete = errors.New("tile: snapshot does not cover the grid")
)

// Kind classifies a tile.
type Kind int

const (
	// Open tiles are traversable.
	Open Kind = iota
	// Wall tiles are impassable and never expanded.
	Wall
	// End marks the search goal. At most one is expected per snapshot.
	End
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case Open:
		return "open"
	case Wall:
		return "wall"
	case End:
		return "end"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind converts a kind name (case-insensitive) back into a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "open":
		return Open, nil
	case "wall":
		return Wall, nil
	case "end":
		return End, nil
	}

	return Open, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Pos is a (row, col) grid coordinate.
type Pos struct {
	Row, Col int
}

// Descriptor is one cell of the caller's grid: its identity, position and kind.
type Descriptor struct {
	ID   int
	Row  int
	Col  int
	Kind Kind
}

// Pos returns the descriptor's coordinate.
func (d Descriptor) Pos() Pos {
	return Pos{Row: d.Row, Col: d.Col}
}

// FindEnd returns the first End descriptor in tiles.
func FindEnd(tiles []Descriptor) (Descriptor, bool) {
	for _, t := range tiles {
		if t.Kind == End {
			return t, true
		}
	}

	return Descriptor{}, false
}
