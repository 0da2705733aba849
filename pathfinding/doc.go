// Package pathfinding is the single entry point callers use to search a
// tile snapshot: it owns the algorithm enumeration and the per-call
// configuration, adapts the snapshot and dispatches to the dijkstra,
// astar, bfs or dfs package.
//
// Config mirrors the knobs a front end toggles between calls: the
// algorithm, the rotation of the neighbour order, shuffling and world
// wrap. Config carries YAML and JSON tags and Algorithm implements
// encoding.TextMarshaler, so both serialize as names ("astar", "bfs", ...).
//
// The random source is an explicit argument to Run; pass a seeded
// *rand.Rand to make shuffled runs reproducible.
package pathfinding
