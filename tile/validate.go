package tile

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Validate checks that tiles form a well-formed rows×cols snapshot: unique
// ids, unique in-range positions and full coverage. The engine assumes a
// well-formed snapshot and never calls Validate itself; callers that build
// snapshots from untrusted input should.
func Validate(tiles []Descriptor, rows, cols int) error {
	ids := mapset.New[int]()
	cells := mapset.New[Pos]()
	for _, t := range tiles {
		if t.Row < 0 || t.Row >= rows || t.Col < 0 || t.Col >= cols {
			return fmt.Errorf("%w: tile %d at (%d,%d) in %dx%d", ErrOutOfRange, t.ID, t.Row, t.Col, rows, cols)
		}
		if ids.Has(t.ID) {
			return fmt.Errorf("%w: %d", ErrDuplicateID, t.ID)
		}
		if cells.Has(t.Pos()) {
			return fmt.Errorf("%w: (%d,%d)", ErrDuplicatePos, t.Row, t.Col)
		}
		ids.Put(t.ID)
		cells.Put(t.Pos())
	}
	if cells.Size() != rows*cols {
		return fmt.Errorf("%w: %d of %d cells", ErrIncomplete, cells.Size(), rows*cols)
	}

	return nil
}
