package tile

// Sequence hands out increasing integer ids. It is owned by whichever
// component creates tiles and is passed around explicitly; the zero value
// starts at 0. A Sequence is not safe for concurrent use.
type Sequence struct {
	next int
}

// NewSequence returns a Sequence whose first id is first.
func NewSequence(first int) *Sequence {
	return &Sequence{next: first}
}

// Next returns the current id and advances the sequence.
func (s *Sequence) Next() int {
	id := s.next
	s.next++

	return id
}

// Peek returns the id the next call to Next will hand out.
func (s *Sequence) Peek() int {
	return s.next
}

// NewRect builds a rows×cols grid of Open descriptors in row-major order,
// drawing ids from seq.
func NewRect(rows, cols int, seq *Sequence) []Descriptor {
	if rows <= 0 || cols <= 0 {
		return nil
	}
	tiles := make([]Descriptor, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			tiles = append(tiles, Descriptor{ID: seq.Next(), Row: r, Col: c, Kind: Open})
		}
	}

	return tiles
}
