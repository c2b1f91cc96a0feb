// Package validate decides whether a block of text is a well-formed text
// circle: a square, odd-sided grid of exactly two symbols in which one
// symbol draws a ring around the centre on a background of the other.
//
// Checks run in a fixed order and the first failure wins:
//
//  1. EmptyInput           the text has zero length
//  2. NotSquare            row lengths differ or do not match the row count
//  3. EvenSideLength       no unique centre cell
//  4. WrongSymbolCount     not exactly two distinct symbols
//  5. MisplacedBackground  a cell outside the ring band holds the ring symbol
//                          (every such cell is listed, row-major)
//  6. EscapePathExists     the centre reaches the border through background
//                          cells (see package bfs)
//
// Passing all six yields Valid with radius h/2.
//
// A Report is data, not an error: String renders the wire text, Text a
// terminal variant, and Err an error view that works with errors.Is.
package validate
