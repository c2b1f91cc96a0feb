package ring

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrSide is returned by Perfect for sides that cannot centre a circle.
var ErrSide = errors.New("ring: side length must be odd and at least 3")

// Radius returns h/2. The result is a valid ring radius only for odd h.
func Radius(h int) int {
	return h / 2
}

// Distance returns the Euclidean distance of (x, y) from the centre (r, r).
func Distance(x, y, r int) float64 {
	dx, dy := float64(x-r), float64(y-r)
	return math.Sqrt(dx*dx + dy*dy)
}

// RequiredBackground reports whether the cell (x, y) must hold the
// background symbol for a circle of radius r.
func RequiredBackground(x, y, r int) bool {
	d := Distance(x, y, r)
	return d <= float64(r-1) || d >= float64(r+1)
}

// InBand reports whether (x, y) lies strictly between r−1 and r+1 from the
// centre, where either symbol is allowed.
func InBand(x, y, r int) bool {
	return !RequiredBackground(x, y, r)
}

// Perfect draws the canonical ring of side h: band cells hold ringSym,
// every other cell holds background. Rows are joined by '\n' with no
// trailing newline.
func Perfect(h int, ringSym, background rune) (string, error) {
	if h < 3 || h%2 == 0 {
		return "", fmt.Errorf("%w: got %d", ErrSide, h)
	}
	if ringSym == background {
		return "", errors.New("ring: ring and background symbols must differ")
	}
	r := Radius(h)
	var b strings.Builder
	for y := 0; y < h; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < h; x++ {
			if InBand(x, y, r) {
				b.WriteRune(ringSym)
			} else {
				b.WriteRune(background)
			}
		}
	}
	return b.String(), nil
}
