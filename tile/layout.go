package tile

import "fmt"

// Layout glyphs understood by FromLayout.
const (
	GlyphOpen  = '.'
	GlyphWall  = '#'
	GlyphEnd   = 'E'
	GlyphStart = 'S'
)

// Layout is a snapshot parsed from text rows.
type Layout struct {
	Tiles    []Descriptor
	Rows     int
	Cols     int
	StartID  int  // id of the 'S' tile, valid when HasStart
	HasStart bool // false when no 'S' glyph was present
}

// FromLayout parses text rows into descriptors, drawing ids from seq in
// row-major order. The start glyph yields an Open tile whose id is
// reported in StartID.
func FromLayout(lines []string, seq *Sequence) (Layout, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return Layout{}, ErrEmptyLayout
	}
	rows, cols := len(lines), len([]rune(lines[0]))
	out := Layout{
		Tiles: make([]Descriptor, 0, rows*cols),
		Rows:  rows,
		Cols:  cols,
	}
	for r, line := range lines {
		runes := []rune(line)
		if len(runes) != cols {
			return Layout{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedLayout, r, len(runes), cols)
		}
		for c, g := range runes {
			d := Descriptor{ID: seq.Next(), Row: r, Col: c}
			switch g {
			case GlyphOpen:
				d.Kind = Open
			case GlyphWall:
				d.Kind = Wall
			case GlyphEnd:
				d.Kind = End
			case GlyphStart:
				if out.HasStart {
					return Layout{}, fmt.Errorf("%w: second start at (%d,%d)", ErrMultipleStarts, r, c)
				}
				d.Kind = Open
				out.StartID = d.ID
				out.HasStart = true
			default:
				return Layout{}, fmt.Errorf("%w %q at (%d,%d)", ErrUnknownGlyph, g, r, c)
			}
			out.Tiles = append(out.Tiles, d)
		}
	}

	return out, nil
}
