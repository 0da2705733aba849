// Package tile holds the input side of the engine: the caller-owned tile
// descriptors (id, row, col, kind) every algorithm consumes.
//
// What:
//
//   - Descriptor / Kind / Pos: the read-only snapshot model.
//   - Index: id → position map built once per snapshot.
//   - Sequence: explicit id generator owned by whoever creates tiles.
//   - NewRect / FromLayout: build snapshots from extents or text rows.
//   - Validate: optional well-formedness check for untrusted snapshots.
//
// Layout legend:
//
//	.  open      #  wall
//	E  end       S  start (an open tile reported as StartID)
//
// Errors:
//
//   - ErrEmptyLayout, ErrRaggedLayout, ErrUnknownGlyph, ErrMultipleStarts.
//   - ErrDuplicateID, ErrDuplicatePos, ErrOutOfRange, ErrIncomplete (Validate).
package tile
