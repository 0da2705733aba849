package scenario

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tilepath/maze"
	"github.com/katalvlaran/tilepath/pathfinding"
	"github.com/katalvlaran/tilepath/terrain"
	"github.com/katalvlaran/tilepath/tile"
)

// MazeNone disables maze generation.
const MazeNone = "none"

var (
	// ErrNoGrid indicates a scenario with neither a layout nor maze extents.
	ErrNoGrid = errors.New("scenario: no layout and no maze extents")

	// ErrBadMaze indicates a maze field that names no generator variant.
	ErrBadMaze = errors.New("scenario: unknown maze variant")
)

// Scenario is one solvable setup read from YAML. The embedded Config
// fields sit at the top level of the document.
type Scenario struct {
	pathfinding.Config `yaml:",inline"`

	Name   string   `yaml:"name"`
	Seed   int64    `yaml:"seed"`
	Maze   string   `yaml:"maze"`
	Rows   int      `yaml:"rows"`
	Cols   int      `yaml:"cols"`
	Layout []string `yaml:"layout"`
}

// Default returns an unnamed scenario with the default search config, no
// maze and no grid.
func Default() Scenario {
	return Scenario{
		Config: pathfinding.DefaultConfig(),
		Maze:   MazeNone,
	}
}

// LoadFile reads a YAML scenario, applying defaults for omitted fields.
func LoadFile(path string) (Scenario, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return Default(), err
	}
	sc, err := Parse(bs)
	if err != nil {
		return sc, fmt.Errorf("%s: %w", path, err)
	}

	return sc, nil
}

// Parse decodes, normalizes and validates a YAML document.
func Parse(bs []byte) (Scenario, error) {
	sc := Default()
	if err := yaml.Unmarshal(bs, &sc); err != nil {
		return sc, err
	}
	sc.normalize()
	if err := sc.Validate(); err != nil {
		return sc, err
	}

	return sc, nil
}

func (s *Scenario) normalize() {
	s.Name = strings.TrimSpace(s.Name)
	s.Maze = strings.ToLower(strings.TrimSpace(s.Maze))
	if s.Maze == "" {
		s.Maze = MazeNone
	}
	if len(s.Layout) > 0 {
		s.Rows = len(s.Layout)
		s.Cols = len([]rune(s.Layout[0]))
	}
}

// Validate checks the config, the maze variant and that a grid is given.
func (s Scenario) Validate() error {
	if err := s.Config.Validate(); err != nil {
		return err
	}
	if s.Maze != MazeNone {
		if _, err := maze.ParseVariant(s.Maze); err != nil {
			return fmt.Errorf("%w: %q", ErrBadMaze, s.Maze)
		}
	}
	if len(s.Layout) == 0 && (s.Maze == MazeNone || s.Rows <= 0 || s.Cols <= 0) {
		return ErrNoGrid
	}

	return nil
}

// Rand returns a source seeded with Seed, or with the clock when Seed is 0.
func (s Scenario) Rand() *rand.Rand {
	seed := s.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Build turns the scenario into a search request, drawing ids from seq.
//
// Without a maze the layout is parsed as is. With a maze the layout only
// sets the extents: a fresh grid is carved, the start is the top-left
// room and the End goes on the bottom-right room.
func (s Scenario) Build(seq *tile.Sequence) (pathfinding.Request, error) {
	if err := s.Validate(); err != nil {
		return pathfinding.Request{}, err
	}
	if s.Maze == MazeNone {
		lay, err := tile.FromLayout(s.Layout, seq)
		if err != nil {
			return pathfinding.Request{}, err
		}
		return pathfinding.Request{
			Tiles:     lay.Tiles,
			Rows:      lay.Rows,
			Cols:      lay.Cols,
			CurrentID: lay.StartID,
			Config:    s.Config,
		}, nil
	}

	v, _ := maze.ParseVariant(s.Maze)
	tiles := tile.NewRect(s.Rows, s.Cols, seq)
	events, err := maze.Generate(tiles, s.Rows, s.Cols, maze.WithVariant(v), maze.WithRand(s.Rand()))
	if err != nil {
		return pathfinding.Request{}, err
	}
	goal := tiles[LastRoom(s.Rows, s.Cols)].ID
	events = append(events, terrain.Event{TileID: goal, Action: terrain.Added, BuildType: terrain.End})

	return pathfinding.Request{
		Tiles:     terrain.Apply(tiles, events),
		Rows:      s.Rows,
		Cols:      s.Cols,
		CurrentID: tiles[0].ID,
		Config:    s.Config,
	}, nil
}

// LastRoom returns the row-major index of the bottom-right room cell.
func LastRoom(rows, cols int) int {
	return ((rows-1)&^1)*cols + ((cols-1) &^ 1)
}
