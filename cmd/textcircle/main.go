/*
textcircle checks ASCII-art circles.

A text circle is a square, odd-sided grid of exactly two symbols where one
symbol draws a ring around the centre cell and the other fills the rest.
When the ring leaks, textcircle draws the shortest way out.

Usage:

	textcircle <command> [arguments]

Commands:

	textcircle check [file]   Validate a grid from a file or stdin
	textcircle draw           Print a perfect ring of a given side
	textcircle serve          Serve the validator over HTTP and websocket
	textcircle version        Print version information

Exit status is 0 for a valid circle, 1 for an invalid one and 2 for usage or
I/O errors.
*/
package main

import (
	"os"

	"github.com/katalvlaran/textcircle/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
