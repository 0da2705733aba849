// Package scenario loads YAML descriptions of a search setup and turns
// them into pathfinding requests.
//
// A scenario names the algorithm and direction policy, an optional seed,
// and either a text layout (see tile.FromLayout glyphs) or maze extents:
//
//	name: corridor
//	algorithm: astar
//	world_wrap: false
//	seed: 42
//	maze: none
//	layout:
//	  - "S...#"
//	  - "..#.E"
//
// LoadFile starts from Default, decodes with yaml.v3, normalizes and
// validates. Build parses the layout, or carves a maze when maze is
// standard or bounded.
package scenario
