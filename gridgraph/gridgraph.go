// Package gridgraph provides utilities to treat a block of text as a 2D grid
// of runes. It supports:
//
//   - Four-connectivity neighbor offsets (N, E, S, W)
//   - Square and border checks
//   - Distinct symbol discovery in first-appearance order
package gridgraph

import (
	"strings"
)

// Parse splits text into rows of runes. The Grid owns its rows and is
// immutable once built.
// Returns ErrEmptyGrid if text has zero length.
// Algorithmic complexity: O(N) time and memory.
func Parse(text string) (*Grid, error) {
	if len(text) == 0 {
		return nil, ErrEmptyGrid
	}
	lines := splitLines(text)
	rows := make([][]rune, len(lines))
	for y, line := range lines {
		rows[y] = []rune(line)
	}

	return newGrid(rows), nil
}

// FromRows builds a Grid from pre-split rows. Each row is copied so later
// mutation of rows does not leak into the Grid.
// Returns ErrEmptyGrid if rows is empty.
func FromRows(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]rune, len(rows))
	for y, row := range rows {
		cells[y] = []rune(row)
	}

	return newGrid(cells), nil
}

func newGrid(rows [][]rune) *Grid {
	return &Grid{
		rows:            rows,
		neighborOffsets: [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}},
	}
}

// splitLines splits on '\n'. A '\r' directly before a '\n' is dropped and
// a final '\n' does not produce a trailing empty line.
func splitLines(text string) []string {
	var lines []string
	for len(text) > 0 {
		i := strings.IndexByte(text, '\n')
		if i < 0 {
			lines = append(lines, text)
			break
		}
		lines = append(lines, strings.TrimSuffix(text[:i], "\r"))
		text = text[i+1:]
	}

	return lines
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return len(g.rows)
}

// Width returns the number of runes in row y.
func (g *Grid) Width(y int) int {
	return len(g.rows[y])
}

// MinWidth returns the shortest row length.
func (g *Grid) MinWidth() int {
	if len(g.rows) == 0 {
		return 0
	}
	m := len(g.rows[0])
	for _, row := range g.rows[1:] {
		if len(row) < m {
			m = len(row)
		}
	}
	return m
}

// MaxWidth returns the longest row length.
func (g *Grid) MaxWidth() int {
	m := 0
	for _, row := range g.rows {
		if len(row) > m {
			m = len(row)
		}
	}
	return m
}

// IsSquare reports whether all rows have the same length and that length
// equals the number of rows.
func (g *Grid) IsSquare() bool {
	maxW := g.MaxWidth()
	return g.Height() == maxW && g.MinWidth() == maxW
}

// Cell returns the rune at column x of row y.
// Callers must stay within bounds already established by IsSquare.
func (g *Grid) Cell(x, y int) rune {
	return g.rows[y][x]
}

// At is Cell for a Location.
func (g *Grid) At(l Location) rune {
	return g.rows[l.Y][l.X]
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return y >= 0 && y < len(g.rows) && x >= 0 && x < len(g.rows[y])
}

// NeighborOffsets returns the 4-connectivity offsets in N, E, S, W order.
// Should be used in all adjacency traversals to keep visit order stable.
func (g *Grid) NeighborOffsets() [][2]int {
	return g.neighborOffsets
}

// Neighbors returns the in-bounds 4-adjacent locations of l.
func (g *Grid) Neighbors(l Location) []Location {
	out := make([]Location, 0, len(g.neighborOffsets))
	for _, d := range g.neighborOffsets {
		nx, ny := l.X+d[0], l.Y+d[1]
		if g.InBounds(nx, ny) {
			out = append(out, Location{X: nx, Y: ny})
		}
	}
	return out
}

// IsBorder reports whether l lies on the outer edge of a square grid.
func (g *Grid) IsBorder(l Location) bool {
	h := g.Height()
	return l.X == 0 || l.Y == 0 || l.X == h-1 || l.Y == h-1
}

// DistinctSymbols returns every rune used in the grid, in order of first
// appearance scanning row by row. Line breaks are never part of a row.
// Complexity: O(W×H).
func (g *Grid) DistinctSymbols() []rune {
	seen := make(map[rune]struct{})
	var out []rune
	for _, row := range g.rows {
		for _, c := range row {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	return out
}

// Locations returns, in row-major order, every location whose rune
// satisfies keep.
func (g *Grid) Locations(keep func(l Location, c rune) bool) []Location {
	var out []Location
	for y, row := range g.rows {
		for x, c := range row {
			l := Location{X: x, Y: y}
			if keep(l, c) {
				out = append(out, l)
			}
		}
	}
	return out
}

// Rows returns a copy of the grid as strings.
func (g *Grid) Rows() []string {
	out := make([]string, len(g.rows))
	for y, row := range g.rows {
		out[y] = string(row)
	}
	return out
}

// Index maps l to a row-major index: y*Height + x.
// Only meaningful on a square grid.
// Complexity: O(1).
func (g *Grid) Index(l Location) int {
	return l.Y*len(g.rows) + l.X
}

// Coordinate converts a row-major index of a square grid back to a Location.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Location {
	h := len(g.rows)
	return Location{X: idx % h, Y: idx / h}
}
