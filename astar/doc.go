// Package astar implements A* search over a gridgraph.GridGraph with the
// same 10/14 cost model and result shape as package dijkstra.
//
// Two heuristics are provided:
//
//   - Euclidean (default): scaled straight-line distance. Admissible and
//     consistent, so AStar returns the same optimal cost as Dijkstra while
//     usually expanding fewer cells.
//   - Aggressive: floored straight-line distance to the tenth power. Much
//     faster on open maps; optimality is not guaranteed.
//
// Under wraparound both heuristics measure the shorter way around each axis.
//
// Errors:
//
//   - ErrNilGraph:        nil grid pointer.
//   - ErrOptionViolation: nil heuristic or negative MaxVisited.
package astar
