// Package dijkstra provides Dijkstra's shortest-path search over a
// gridgraph.GridGraph: 8-connected movement, orthogonal steps cost 10 and
// diagonal steps cost 14.
//
// Overview:
//
//   - The search starts at the grid's start cell and stops the instant the
//     goal is popped from the priority queue.
//   - Neighbour order per expansion comes from a direction.Policy, so the
//     same call can rotate, shuffle or wrap the exploration.
//   - Walls are pre-visited by the adapter and never expanded.
//
// Output (gridgraph.Result):
//
//   - Visited: tile ids in expansion order, start first, goal excluded.
//   - Path:    goal → start tile ids, both ends included; empty when the
//     goal is unreachable; [start] when start == goal.
//   - Cost:    fixed-point cost of Path under the same topology.
//
// Performance and complexity:
//
//   - Time:  O(V log V), V = rows×cols; every cell has at most 8 edges.
//   - Space: O(V) for the node array plus O(8V) worst-case heap entries
//     under the lazy decrease-key strategy.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        nil grid pointer.
//   - ErrOptionViolation: invalid functional option (e.g. negative MaxVisited).
//
// Thread safety:
//
//   - Dijkstra mutates the node array it is given. Build a fresh grid per
//     call (gridgraph.NewGridGraph) or synchronize externally.
package dijkstra
