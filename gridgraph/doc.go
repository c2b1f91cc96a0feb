// Package gridgraph treats a block of text as a 2D grid of runes and exposes
// the graph view needed to walk it.
//
// What:
//
//   - Grid wraps the rows of a text block (row-major, rune columns).
//   - Parse splits text using "lines" semantics: a single trailing newline
//     does not start a new row and a trailing '\r' is dropped from each row.
//   - Location is the (x, y) value type shared by every other package;
//     x is the column, y the row, origin at the top-left cell.
//   - NeighborOffsets yields 4-connectivity (N, E, S, W) in a fixed order so
//     every traversal built on top of Grid is deterministic.
//
// Why:
//
//   - ASCII art validation: squareness, symbol sets, border detection.
//   - Path search over one symbol class (see package bfs).
//
// Complexity:
//
//   - Parse:           O(N) time and memory, N = len(text).
//   - DistinctSymbols: O(W×H).
//   - Cell, InBounds:  O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input text has zero length.
package gridgraph
