// Package precalc implements the "compute once, replay many" policy a
// caller puts in front of pathfinding.Run.
//
// A request is fingerprinted with xxh3 over its extents, current tile id,
// config and every descriptor. An unchanged fingerprint replays the stored
// result; a moved goal, an edited tile or a changed config recomputes.
// Configs with RandomDirection set always recompute.
//
// The cache logs hits and recomputations at Debug through logrus.
package precalc
