package ring_test

import (
	"fmt"

	"github.com/katalvlaran/textcircle/ring"
)

// ExamplePerfect draws the canonical ring of side 7.
func ExamplePerfect() {
	s, _ := ring.Perfect(7, 'o', '.')
	fmt.Println(s)

	// Output:
	// .ooooo.
	// ooo.ooo
	// oo...oo
	// o.....o
	// oo...oo
	// ooo.ooo
	// .ooooo.
}
