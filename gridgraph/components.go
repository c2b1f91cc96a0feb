package gridgraph

// Regions finds all 4-connected regions of cells holding symbol on a square
// grid. Returns a slice of regions; each region lists its locations in
// discovery order, and regions appear in row-major order of their first cell.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Regions(symbol rune) [][]Location {
	total := len(g.rows) * len(g.rows)
	seen := make([]bool, total)
	var regions [][]Location

	for y, row := range g.rows {
		for x, c := range row {
			if c != symbol {
				continue
			}
			start := Location{X: x, Y: y}
			if seen[g.Index(start)] {
				continue
			}
			// BFS to collect region
			queue := []Location{start}
			seen[g.Index(start)] = true

			for qi := 0; qi < len(queue); qi++ {
				for _, v := range g.Neighbors(queue[qi]) {
					if g.At(v) != symbol || seen[g.Index(v)] {
						continue
					}
					seen[g.Index(v)] = true
					queue = append(queue, v)
				}
			}
			regions = append(regions, queue)
		}
	}
	return regions
}

// TouchesBorder reports whether any location of region lies on the border.
func (g *Grid) TouchesBorder(region []Location) bool {
	for _, l := range region {
		if g.IsBorder(l) {
			return true
		}
	}
	return false
}
