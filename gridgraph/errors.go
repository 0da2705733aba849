package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates non-positive row or column extents.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrTileOutOfBounds indicates a descriptor outside the declared extents.
	ErrTileOutOfBounds = errors.New("gridgraph: tile position outside grid extents")
)
