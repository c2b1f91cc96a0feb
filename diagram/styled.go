package diagram

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/textcircle/gridgraph"
)

// Palette holds the terminal styles used by Styled.
type Palette struct {
	Background lipgloss.Style
	Ring       lipgloss.Style
	Path       lipgloss.Style
}

// Colour palette (Ayu)
var (
	colorMuted = lipgloss.AdaptiveColor{Light: "#8a9199", Dark: "#5c6773"}
	colorRing  = lipgloss.AdaptiveColor{Light: "#399ee6", Dark: "#59c2ff"}
	colorPath  = lipgloss.AdaptiveColor{Light: "#e65050", Dark: "#f07178"}
)

// DefaultPalette dims the background, colours the ring, and makes the path
// bold, using lipgloss's default renderer on stdout.
func DefaultPalette() Palette {
	return NewPalette(lipgloss.DefaultRenderer())
}

// NewPalette is DefaultPalette bound to r, so the colour profile follows
// r's output rather than stdout.
func NewPalette(r *lipgloss.Renderer) Palette {
	return Palette{
		Background: r.NewStyle().Foreground(colorMuted),
		Ring:       r.NewStyle().Foreground(colorRing),
		Path:       r.NewStyle().Bold(true).Foreground(colorPath),
	}
}

// PlainPalette renders without any styling.
func PlainPalette() Palette {
	return Palette{
		Background: lipgloss.NewStyle(),
		Ring:       lipgloss.NewStyle(),
		Path:       lipgloss.NewStyle(),
	}
}

// Styled renders g with path paved by glyph, one style per cell class.
// background is the symbol treated as fill; every other symbol is ring.
// Rows are joined with '\n'.
func Styled(g *gridgraph.Grid, path []gridgraph.Location, glyph, background rune, p Palette) string {
	onPath := pathSet(path)
	rows := make([]string, g.Height())
	for y := range rows {
		var b strings.Builder
		for x := 0; x < g.Width(y); x++ {
			c := g.Cell(x, y)
			switch _, paved := onPath[gridgraph.Loc(x, y)]; {
			case paved:
				b.WriteString(p.Path.Render(string(glyph)))
			case c == background:
				b.WriteString(p.Background.Render(string(c)))
			default:
				b.WriteString(p.Ring.Render(string(c)))
			}
		}
		rows[y] = b.String()
	}
	return strings.Join(rows, "\n")
}
