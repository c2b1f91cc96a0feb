// Package gridgraph defines core types and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/textcircle.
package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates the input text has zero length.
	ErrEmptyGrid = errors.New("gridgraph: input text is empty")
)

// Location is a cell coordinate. X is the column and Y the row, both
// counted from the top-left cell. Locations compare by value.
type Location struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Loc is shorthand for Location{X: x, Y: y}.
func Loc(x, y int) Location {
	return Location{X: x, Y: y}
}

// ManhattanDistance returns |l.X-o.X| + |l.Y-o.Y|.
func (l Location) ManhattanDistance(o Location) int {
	return absDiff(l.X, o.X) + absDiff(l.Y, o.Y)
}

// String formats the location as "(x, y)", the form used in reports.
func (l Location) String() string {
	return fmt.Sprintf("(%d, %d)", l.X, l.Y)
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

// Grid is an immutable block of text split into rows of runes.
// Rows may differ in length until a caller has checked IsSquare.
// neighborOffsets is precomputed for adjacency lookups.
type Grid struct {
	rows            [][]rune
	neighborOffsets [][2]int
}
