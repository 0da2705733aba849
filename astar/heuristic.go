package astar

import "math"

// EuclideanScale multiplies the straight-line distance so the estimate
// never exceeds the cheapest 10/14 route: 7√2·√(dr²+dc²) ≤ 10·max + 4·min.
const EuclideanScale = 7 * math.Sqrt2

// Euclidean is the admissible default: the scaled straight-line distance,
// floored to whole cost units. It is also consistent, so a node popped once
// never needs reopening.
func Euclidean(dRow, dCol int) float64 {
	return math.Floor(EuclideanScale * math.Hypot(float64(dRow), float64(dCol)))
}

// Aggressive raises the floored straight-line distance to the tenth power.
// It dwarfs accumulated cost and drives the search almost greedily toward
// the goal; paths are not guaranteed optimal. The result is a float64 and
// exceeds the int64 range for distances of 79 cells or more.
func Aggressive(dRow, dCol int) float64 {
	return math.Pow(math.Floor(math.Hypot(float64(dRow), float64(dCol))), 10)
}
