package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/textcircle/diagram"
	"github.com/katalvlaran/textcircle/gridgraph"
)

// Sentinel errors, one per failing Kind.
var (
	ErrEmptyInput          = errors.New("validate: input is empty")
	ErrNotSquare           = errors.New("validate: input is not square")
	ErrEvenSideLength      = errors.New("validate: side length is not odd")
	ErrWrongSymbolCount    = errors.New("validate: input does not contain 2 distinct characters")
	ErrMisplacedBackground = errors.New("validate: background character misplaced")
	ErrEscapePath          = errors.New("validate: path from inside the circle to outside")
)

// EscapeHeadline opens every EscapePathExists message.
const EscapeHeadline = "Invalid. There should not be a path from inside the circle to outside:"

// Kind classifies a Report.
type Kind int

const (
	Valid Kind = iota
	EmptyInput
	NotSquare
	EvenSideLength
	WrongSymbolCount
	MisplacedBackground
	EscapePathExists
)

var kindNames = map[Kind]string{
	Valid:               "valid",
	EmptyInput:          "empty_input",
	NotSquare:           "not_square",
	EvenSideLength:      "even_side_length",
	WrongSymbolCount:    "wrong_symbol_count",
	MisplacedBackground: "misplaced_background",
	EscapePathExists:    "escape_path",
}

// String returns the snake_case name of k.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// MarshalText encodes k by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Report is the outcome of validating one input. Fields beyond Kind are
// populated only for the kinds that use them.
type Report struct {
	Kind Kind
	// Radius is set for Valid and EscapePathExists.
	Radius int
	// Background is set from MisplacedBackground onwards.
	Background rune
	// Misplaced lists offending cells in row-major order.
	Misplaced []gridgraph.Location
	// Path runs from the centre to the first border cell reached.
	Path []gridgraph.Location
	// Glyph paves Path in Diagram.
	Glyph rune
	// Diagram is the grid with Path paved, one string per row.
	Diagram []string
}

// IsValid reports whether r is a success.
func (r Report) IsValid() bool {
	return r.Kind == Valid
}

// String renders the wire format: rows and list items separated by <br>,
// the diagram wrapped in <code>.
func (r Report) String() string {
	return r.format(diagram.BreakMarker, "<code>", "</code>")
}

// Text renders the report for a terminal, using newlines and no markup.
func (r Report) Text() string {
	return r.format("\n", "", "")
}

func (r Report) format(sep, codeOpen, codeClose string) string {
	switch r.Kind {
	case Valid:
		return fmt.Sprintf("This is a valid text circle of radius %d.", r.Radius)
	case EmptyInput:
		return "Invalid. The input is empty."
	case NotSquare:
		return "Invalid. The input is not square."
	case EvenSideLength:
		return "Invalid. The side length of the square is not odd."
	case WrongSymbolCount:
		return "Invalid. The input does not contain 2 distinct characters."
	case MisplacedBackground:
		positions := make([]string, len(r.Misplaced))
		for i, l := range r.Misplaced {
			positions[i] = l.String()
		}
		return fmt.Sprintf("Invalid. The following positions (x, y) from (0, 0) at left top should be background character \"%c\":%s%s",
			r.Background, sep, strings.Join(positions, sep))
	case EscapePathExists:
		return EscapeHeadline + sep + sep + codeOpen + strings.Join(r.Diagram, sep) + codeClose
	default:
		return r.Kind.String()
	}
}

// Err returns nil for a Valid report and otherwise the Kind's sentinel,
// wrapped with detail where the report carries any.
func (r Report) Err() error {
	switch r.Kind {
	case Valid:
		return nil
	case EmptyInput:
		return ErrEmptyInput
	case NotSquare:
		return ErrNotSquare
	case EvenSideLength:
		return ErrEvenSideLength
	case WrongSymbolCount:
		return ErrWrongSymbolCount
	case MisplacedBackground:
		if len(r.Misplaced) == 0 {
			return ErrMisplacedBackground
		}
		return fmt.Errorf("%w: %d position(s), first at %v", ErrMisplacedBackground, len(r.Misplaced), r.Misplaced[0])
	case EscapePathExists:
		if len(r.Path) == 0 {
			return ErrEscapePath
		}
		return fmt.Errorf("%w: %d step(s) to %v", ErrEscapePath, len(r.Path)-1, r.Path[len(r.Path)-1])
	default:
		return fmt.Errorf("validate: unknown report kind %d", int(r.Kind))
	}
}
