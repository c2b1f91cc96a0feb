// Package textcircle checks ASCII-art circles: square grids of two symbols
// in which one symbol draws a ring around the centre cell and the other
// fills everything else.
//
// 🚀 What is textcircle?
//
//	A small library that brings together:
//		• Grid model: parse text into rows of runes, shape and symbol checks
//		• Geometry: which cells must be background for a radius r
//		• Escape search: BFS from the centre to the border over background cells
//		• Diagrams: the escape path paved with a glyph the grid does not use
//
// Under the hood, everything is organized under these subpackages:
//
//	gridgraph/ - Grid, Location, 4-connectivity, regions
//	ring/      - radius, band classification, perfect ring generator
//	bfs/       - escape search with hooks, options and an arena of PathSteps
//	diagram/   - paving glyph choice, plain and lipgloss-styled rendering
//	validate/  - ordered checks and the Report type
//	config/    - TOML configuration for the server and CLI
//	server/    - HTTP and websocket adapters
//	cmd/textcircle, internal/cmd - the textcircle CLI
//
// Quick ASCII example (radius 2, valid):
//
//	..#..
//	.#.#.
//	#...#
//	.#.#.
//	..#..
//
// Use Validate for the single string-in, string-out call:
//
//	fmt.Println(textcircle.Validate(text))
package textcircle
