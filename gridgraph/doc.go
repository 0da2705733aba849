// Package gridgraph turns a snapshot of tile descriptors into the dense
// node array every search algorithm runs over.
//
// What:
//
//   - NewGridGraph builds rows×cols nodes, one per descriptor, with walls
//     pre-visited so they are never expanded.
//   - Start / Goal come from the current tile id and the End tile; both
//     default to the origin when missing (HasStart / HasGoal report it).
//   - Trace reconstructs the goal → start path through Previous links.
//   - StepCost / PathCost price moves with the 10/14 orthogonal/diagonal split.
//   - ConnectedComponents / Reachable answer "can the goal be reached at all".
//
// Why:
//
//   - Every algorithm gets a fresh array per call, so repeated invocation
//     under changing input never sees stale state.
//   - Results are plain id slices; nothing references the node array after
//     the call returns.
//
// Complexity:
//
//   - NewGridGraph:        O(rows×cols + N), Memory: O(rows×cols).
//   - Trace:               O(path length).
//   - ConnectedComponents: O(rows×cols×8), Memory: O(rows×cols).
//
// Errors:
//
//   - ErrEmptyGrid: non-positive extents.
//   - ErrTileOutOfBounds: a descriptor lies outside the extents.
//
// Missing goals, unknown start ids and unreachable goals are not errors;
// they surface as HasGoal/HasStart flags and empty paths.
package gridgraph
