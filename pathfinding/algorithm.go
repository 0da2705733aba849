package pathfinding

import (
	"fmt"
	"strings"
)

// Algorithm is the closed set of search strategies.
type Algorithm int

const (
	Dijkstra Algorithm = iota
	AStar
	AggressiveAStar
	BFS
	DFS
)

var algorithmNames = [...]string{
	Dijkstra:        "dijkstra",
	AStar:           "astar",
	AggressiveAStar: "aggressive-astar",
	BFS:             "bfs",
	DFS:             "dfs",
}

// Algorithms lists every strategy in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{Dijkstra, AStar, AggressiveAStar, BFS, DFS}
}

// String returns the canonical lower-case name.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

// Valid reports whether a names a known strategy.
func (a Algorithm) Valid() bool {
	return a >= 0 && int(a) < len(algorithmNames)
}

// ParseAlgorithm maps a name (case-insensitive) to its Algorithm.
// "a*" and "aggressive" are accepted as aliases.
func ParseAlgorithm(s string) (Algorithm, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "a*":
		return AStar, nil
	case "aggressive", "aggressive-a*":
		return AggressiveAStar, nil
	}
	for i, n := range algorithmNames {
		if n == name {
			return Algorithm(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}

	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(text []byte) error {
	v, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = v

	return nil
}
