package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/textcircle/gridgraph"
)

//----------------------------------------------------------------------------//
// Parse Tests
//----------------------------------------------------------------------------//

// TestParse_Empty verifies that Parse rejects zero-length input.
func TestParse_Empty(t *testing.T) {
	_, err := gridgraph.Parse("")
	if !errors.Is(err, gridgraph.ErrEmptyGrid) {
		t.Errorf("Parse(\"\") error = %v; want ErrEmptyGrid", err)
	}
	_, err = gridgraph.FromRows(nil)
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
}

// TestParse_Lines checks trailing newline and CRLF handling.
func TestParse_Lines(t *testing.T) {
	cases := []struct {
		name string
		text string
		rows []string
	}{
		{"Single", "ab", []string{"ab"}},
		{"TrailingNewline", "ab\ncd\n", []string{"ab", "cd"}},
		{"CRLF", "ab\r\ncd\r\n", []string{"ab", "cd"}},
		{"BlankLine", "ab\n\n", []string{"ab", ""}},
		{"OnlyNewline", "\n", []string{""}},
		{"LoneCarriageReturn", "ab\r", []string{"ab\r"}},
		{"Unicode", "○●\n●○", []string{"○●", "●○"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := gridgraph.Parse(tc.text)
			require.NoError(t, err)
			assert.Equal(t, tc.rows, g.Rows())
			assert.Equal(t, len(tc.rows), g.Height())
		})
	}
}

//----------------------------------------------------------------------------//
// Shape Tests
//----------------------------------------------------------------------------//

// TestIsSquare covers ragged, wide, tall and square inputs.
func TestIsSquare(t *testing.T) {
	cases := []struct {
		name string
		text string
		want bool
	}{
		{"OneRowTwoCols", "ab", false},
		{"Ragged", "abc\nab\nabc", false},
		{"Tall", "a\nb", false},
		{"Square3", "abc\ndef\nghi", true},
		{"Square1", "a", true},
		{"EmptyRow", "\n", false},
		{"RuneWidth", "○●\n●○", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := gridgraph.Parse(tc.text)
			require.NoError(t, err)
			assert.Equal(t, tc.want, g.IsSquare())
		})
	}
}

// TestWidths checks per-row and extreme widths on a ragged grid.
func TestWidths(t *testing.T) {
	g, err := gridgraph.Parse("abc\na\nab")
	require.NoError(t, err)

	assert.Equal(t, 3, g.Width(0))
	assert.Equal(t, 1, g.Width(1))
	assert.Equal(t, 1, g.MinWidth())
	assert.Equal(t, 3, g.MaxWidth())
}

// TestCellAndBounds checks cell lookup by (x, y) with x as the column.
func TestCellAndBounds(t *testing.T) {
	g, err := gridgraph.Parse("abc\ndef\nghi")
	require.NoError(t, err)

	assert.Equal(t, 'b', g.Cell(1, 0))
	assert.Equal(t, 'd', g.Cell(0, 1))
	assert.Equal(t, 'h', g.At(gridgraph.Loc(1, 2)))

	valid := [][2]int{{0, 0}, {2, 2}, {1, 1}}
	for _, xy := range valid {
		if !g.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", xy[0], xy[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {3, 0}, {1, 3}, {2, -1}}
	for _, xy := range invalid {
		if g.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", xy[0], xy[1])
		}
	}
}

// TestNeighbors verifies N, E, S, W order and clipping at the border.
func TestNeighbors(t *testing.T) {
	g, err := gridgraph.Parse("...\n...\n...")
	require.NoError(t, err)

	assert.Equal(t, []gridgraph.Location{
		gridgraph.Loc(1, 0), gridgraph.Loc(2, 1), gridgraph.Loc(1, 2), gridgraph.Loc(0, 1),
	}, g.Neighbors(gridgraph.Loc(1, 1)))
	assert.Equal(t, []gridgraph.Location{
		gridgraph.Loc(1, 0), gridgraph.Loc(0, 1),
	}, g.Neighbors(gridgraph.Loc(0, 0)))
}

// TestIsBorder checks every cell of a 3×3 grid: only the centre is inner.
func TestIsBorder(t *testing.T) {
	g, err := gridgraph.Parse("...\n...\n...")
	require.NoError(t, err)

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			want := !(x == 1 && y == 1)
			assert.Equal(t, want, g.IsBorder(gridgraph.Loc(x, y)), "IsBorder(%d,%d)", x, y)
		}
	}
}

// TestDistinctSymbols verifies first-appearance order and newline exclusion.
func TestDistinctSymbols(t *testing.T) {
	g, err := gridgraph.Parse("ab\r\nba\r\n")
	require.NoError(t, err)
	assert.Equal(t, []rune{'a', 'b'}, g.DistinctSymbols())

	g, err = gridgraph.Parse("xxx\nxyx\nxxz")
	require.NoError(t, err)
	assert.Equal(t, []rune{'x', 'y', 'z'}, g.DistinctSymbols())
}

// TestLocations checks row-major ordering of filtered locations.
func TestLocations(t *testing.T) {
	g, err := gridgraph.Parse("#.#\n...\n#..")
	require.NoError(t, err)

	got := g.Locations(func(_ gridgraph.Location, c rune) bool { return c == '#' })
	assert.Equal(t, []gridgraph.Location{
		gridgraph.Loc(0, 0), gridgraph.Loc(2, 0), gridgraph.Loc(0, 2),
	}, got)
}

// TestIndexCoordinate round-trips every cell of a 5×5 grid.
func TestIndexCoordinate(t *testing.T) {
	g, err := gridgraph.Parse(".....\n.....\n.....\n.....\n.....")
	require.NoError(t, err)

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			l := gridgraph.Loc(x, y)
			assert.Equal(t, l, g.Coordinate(g.Index(l)))
		}
	}
}

//----------------------------------------------------------------------------//
// Location Tests
//----------------------------------------------------------------------------//

// TestLocation covers distance and report formatting.
func TestLocation(t *testing.T) {
	a, b := gridgraph.Loc(1, 4), gridgraph.Loc(3, 1)
	assert.Equal(t, 5, a.ManhattanDistance(b))
	assert.Equal(t, 5, b.ManhattanDistance(a))
	assert.Equal(t, 0, a.ManhattanDistance(a))
	assert.Equal(t, "(1, 4)", a.String())
}

// TestRows_Immutable ensures callers cannot mutate the grid through FromRows input.
func TestRows_Immutable(t *testing.T) {
	rows := []string{"ab", "cd"}
	g, err := gridgraph.FromRows(rows)
	require.NoError(t, err)
	rows[0] = "zz"
	assert.Equal(t, 'a', g.Cell(0, 0))
}
