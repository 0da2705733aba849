// Package maze generates perfect mazes on a tile grid with Wilson's
// algorithm and checks that a grid is one.
//
// The grid is read at half resolution: cells with even row and even col
// are rooms, the cell between two neighbouring rooms is a connector, and
// every other cell (odd row and odd col, or a connector leading off the
// grid) is a pillar that always stays a wall.
//
// Generate walls everything, opens a random seed room, then repeatedly
// runs a loop-erased random walk from a random unvisited room until it
// meets the maze, and opens the walk. Two walk variants exist:
//
//   - Standard: a walk that steps onto itself is thrown away and restarted
//     from the revisited room; only committed walks produce carve events.
//   - Bounded: the walk carves as it goes and splices loops out, emitting
//     wall events for the cells it gives back; it avoids reversing its
//     last step. The event stream doubles as an animation of the walk.
//
// Both variants produce a uniform-spanning-tree style maze: every room is
// open and any two rooms are joined by exactly one simple path. Verify
// checks this property on any grid.
//
// Randomness comes from an injected *rand.Rand (WithRand); a fixed seed
// reproduces the exact event sequence.
package maze
