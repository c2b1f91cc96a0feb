// Package ring classifies the cells of an odd-sided square grid against a
// circle of radius r centred on the middle cell.
//
// What
//
//   - Radius(h) = h/2 (integer division); the centre is (r, r).
//   - RequiredBackground(x, y, r) is true when the Euclidean distance d from
//     the centre satisfies d ≤ r−1 or d ≥ r+1. Those cells are plain fill.
//   - Cells with r−1 < d < r+1 form the band: the only place the ring symbol
//     may appear.
//   - Perfect(h, ring, background) draws the canonical ring, every band cell
//     set to the ring symbol.
//
// Numerics
//
//	Distance is computed in float64. For integer offsets the bounds r−1 and
//	r+1 are only hit at exact integer distances, so the inclusive comparison
//	is not subject to rounding.
//
// Complexity
//
//   - RequiredBackground, InBand: O(1)
//   - Perfect:                    O(h²)
package ring
