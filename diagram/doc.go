// Package diagram renders a grid with an escape path drawn over it.
//
// The path is "paved" with a glyph chosen from a fixed preference list
// ('#', 'X', '.'), taking the first one the grid does not already use, so
// the path is always distinguishable from the grid's two symbols.
//
// Rows returns the plain rendering; Join glues rows with a separator
// (BreakMarker for the wire format, "\n" for terminals). Styled colours the
// same rendering for a terminal using lipgloss.
package diagram
