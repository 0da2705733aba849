package terrain

import (
	"fmt"

	"github.com/katalvlaran/tilepath/tile"
)

// Action says whether a feature is placed or taken away.
type Action int

const (
	Added Action = iota
	Removed
)

func (a Action) String() string {
	switch a {
	case Added:
		return "added"
	case Removed:
		return "removed"
	}

	return fmt.Sprintf("action(%d)", int(a))
}

// BuildType is the feature an event concerns.
type BuildType int

const (
	Wall BuildType = iota
	End
)

func (b BuildType) String() string {
	switch b {
	case Wall:
		return "wall"
	case End:
		return "end"
	}

	return fmt.Sprintf("build(%d)", int(b))
}

// Event is one terrain edit addressed by tile id.
type Event struct {
	TileID    int       `json:"tile_id"`
	Action    Action    `json:"action"`
	BuildType BuildType `json:"build_type"`
}

func (e Event) String() string {
	return fmt.Sprintf("%s %s @%d", e.Action, e.BuildType, e.TileID)
}

// Fill returns Added(Wall) for every tile, in input order.
func Fill(tiles []tile.Descriptor) []Event {
	out := make([]Event, len(tiles))
	for i, d := range tiles {
		out[i] = Event{TileID: d.ID, Action: Added, BuildType: Wall}
	}

	return out
}

// Clear returns Removed(Wall) for every wall tile, in input order.
func Clear(tiles []tile.Descriptor) []Event {
	var out []Event
	for _, d := range tiles {
		if d.Kind == tile.Wall {
			out = append(out, Event{TileID: d.ID, Action: Removed, BuildType: Wall})
		}
	}

	return out
}

// Border returns a wall event with the given action for every tile lying
// within width cells of the grid edge. Walling the border blocks world
// wrap without turning it off; Removed lifts the block again.
func Border(tiles []tile.Descriptor, rows, cols, width int, action Action) []Event {
	var out []Event
	for _, d := range tiles {
		if d.Row < width || d.Row >= rows-width || d.Col < width || d.Col >= cols-width {
			out = append(out, Event{TileID: d.ID, Action: action, BuildType: Wall})
		}
	}

	return out
}

// Apply folds events, in order, into a copy of tiles:
//
//	Added Wall    → Wall, unless the tile is the End
//	Removed Wall  → Open, if the tile is a Wall
//	Added End     → End; the previous End, if any, becomes Open
//	Removed End   → Open, if the tile is the End
//
// Events for unknown ids are ignored. The input slice is not modified.
func Apply(tiles []tile.Descriptor, events []Event) []tile.Descriptor {
	out := make([]tile.Descriptor, len(tiles))
	copy(out, tiles)
	at := make(map[int]int, len(out))
	end := -1
	for i, d := range out {
		at[d.ID] = i
		if d.Kind == tile.End {
			end = i
		}
	}

	for _, e := range events {
		i, ok := at[e.TileID]
		if !ok {
			continue
		}
		k := &out[i].Kind
		switch {
		case e.BuildType == Wall && e.Action == Added:
			if *k != tile.End {
				*k = tile.Wall
			}
		case e.BuildType == Wall && e.Action == Removed:
			if *k == tile.Wall {
				*k = tile.Open
			}
		case e.BuildType == End && e.Action == Added:
			if end >= 0 && end != i {
				out[end].Kind = tile.Open
			}
			*k = tile.End
			end = i
		case e.BuildType == End && e.Action == Removed:
			if *k == tile.End {
				*k = tile.Open
				end = -1
			}
		}
	}

	return out
}

// Tally counts events per action and build type.
type Tally struct {
	AddedWalls   int
	RemovedWalls int
	AddedEnds    int
	RemovedEnds  int
}

// Counts tallies events.
func Counts(events []Event) Tally {
	var t Tally
	for _, e := range events {
		switch {
		case e.BuildType == Wall && e.Action == Added:
			t.AddedWalls++
		case e.BuildType == Wall && e.Action == Removed:
			t.RemovedWalls++
		case e.BuildType == End && e.Action == Added:
			t.AddedEnds++
		case e.BuildType == End && e.Action == Removed:
			t.RemovedEnds++
		}
	}

	return t
}
