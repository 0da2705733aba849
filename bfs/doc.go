// Package bfs provides breadth-first search over a tile grid, returning the
// visit order and a goal → start path with the fewest hops.
//
// What
//
//   - Explore cells in non-decreasing hop count from the start cell.
//   - A cell is discovered (and its predecessor fixed) the first time it is
//     seen; it is visited when dequeued.
//   - The goal is appended to Visited when dequeued, then the search stops.
//   - Supports hooks at two stages:
//   - OnEnqueue (on discovery)
//   - OnVisit   (when dequeued; may abort with an error)
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//   - Neighbour order, shuffling and wraparound come from direction.Policy.
//
// Hops versus cost
//
//	BFS minimises the number of moves, not the 10/14 cost. On an open grid
//	a hop-minimal path may use more diagonals than needed; Result.Cost is
//	the true cost of the returned path, which can exceed Dijkstra's.
//
// Complexity (V = rows×cols)
//
//   - Time:   O(V)   (each cell enqueued once, 8 neighbours examined)
//   - Memory: O(V)   (queue and visit order)
//
// Errors
//
//   - ErrGraphNil, ErrOptionViolation, ctx.Err(), or a wrapped OnVisit error.
package bfs
