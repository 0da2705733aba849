// Package dfs provides depth-first descent over a tile grid.
//
// What
//
//   - Enter the start cell, then repeatedly step into the first untried,
//     unvisited neighbour of the deepest cell; backtrack when none is left.
//   - Each entered cell gets its own direction order from direction.Policy
//     (rotated, optionally shuffled, optionally wrapping).
//   - The goal is appended to Visited when entered and the walk stops.
//   - The path is the descent stack at that instant, goal → start.
//
// Why
//
//   - Shows the exploration shape of an uninformed, non-optimal search next
//     to BFS and Dijkstra.
//   - With a fixed offset and no shuffle the visit order is fully
//     reproducible; with a seeded shuffle it is reproducible per seed.
//
// Complexity (V = rows×cols)
//
//   - Time:   O(V)
//   - Memory: O(V)
//
// See also: package bfs for the hop-minimal counterpart.
package dfs
