package diagram

import (
	"strings"

	"github.com/katalvlaran/textcircle/gridgraph"
)

// BreakMarker separates rows in the wire format.
const BreakMarker = "<br>"

// pavingCandidates lists paving glyphs in order of preference.
var pavingCandidates = []rune{'#', 'X', '.'}

// PavingGlyph returns the first candidate glyph not present in used.
// With at most two used symbols a candidate always remains; for larger
// sets the last candidate is returned.
func PavingGlyph(used []rune) rune {
	for _, c := range pavingCandidates {
		if !containsRune(used, c) {
			return c
		}
	}
	return pavingCandidates[len(pavingCandidates)-1]
}

func containsRune(rs []rune, r rune) bool {
	for _, x := range rs {
		if x == r {
			return true
		}
	}
	return false
}

// pathSet indexes path for O(1) membership.
func pathSet(path []gridgraph.Location) map[gridgraph.Location]struct{} {
	set := make(map[gridgraph.Location]struct{}, len(path))
	for _, l := range path {
		set[l] = struct{}{}
	}
	return set
}

// Rows renders g row by row, replacing every cell on path with glyph.
func Rows(g *gridgraph.Grid, path []gridgraph.Location, glyph rune) []string {
	onPath := pathSet(path)
	out := make([]string, g.Height())
	for y := range out {
		var b strings.Builder
		for x := 0; x < g.Width(y); x++ {
			if _, ok := onPath[gridgraph.Loc(x, y)]; ok {
				b.WriteRune(glyph)
			} else {
				b.WriteRune(g.Cell(x, y))
			}
		}
		out[y] = b.String()
	}
	return out
}

// Join concatenates rows with sep between them.
func Join(rows []string, sep string) string {
	return strings.Join(rows, sep)
}

// Render is Rows with the glyph picked by PavingGlyph, joined by BreakMarker.
func Render(g *gridgraph.Grid, path []gridgraph.Location) string {
	return Join(Rows(g, path, PavingGlyph(g.DistinctSymbols())), BreakMarker)
}
