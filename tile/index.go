package tile

// Index maps tile ids to positions. It is built in one pass over a
// snapshot so id lookups never scan the descriptor slice.
type Index struct {
	pos map[int]Pos
}

// NewIndex indexes tiles by id. When ids repeat the last descriptor wins.
// Complexity: O(N) time and memory.
func NewIndex(tiles []Descriptor) *Index {
	idx := &Index{pos: make(map[int]Pos, len(tiles))}
	for _, t := range tiles {
		idx.pos[t.ID] = t.Pos()
	}

	return idx
}

// Lookup returns the position of id.
func (x *Index) Lookup(id int) (Pos, bool) {
	p, ok := x.pos[id]

	return p, ok
}

// Len returns the number of indexed ids.
func (x *Index) Len() int {
	return len(x.pos)
}
