// Package terrain describes grid edits as ordered events and folds them
// back into tile snapshots.
//
// Events are how the maze generator reports its work and how bulk edits
// (fill, clear, border walls) are expressed. A presentation layer can
// replay them one by one; Apply gives the snapshot after all of them.
package terrain
