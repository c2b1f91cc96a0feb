package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/textcircle/diagram"
	"github.com/katalvlaran/textcircle/gridgraph"
	"github.com/katalvlaran/textcircle/validate"
)

// Output formats for check.
const (
	FormatText = "text"
	FormatHTML = "html"
	FormatJSON = "json"
)

// Colour modes for check.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

type checkOptions struct {
	root   *rootOptions
	format string
	color  string
}

// checkJSON is the --format json output.
type checkJSON struct {
	Valid      bool                 `json:"valid"`
	Kind       validate.Kind        `json:"kind"`
	Radius     int                  `json:"radius,omitempty"`
	Background string               `json:"background,omitempty"`
	Misplaced  []gridgraph.Location `json:"misplaced,omitempty"`
	Path       []gridgraph.Location `json:"path,omitempty"`
	Diagram    []string             `json:"diagram,omitempty"`
	Report     string               `json:"report"`
}

func newCheckCommand(root *rootOptions) *cobra.Command {
	opts := &checkOptions{root: root}
	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Validate a text circle",
		Long: `Validate a text circle read from file, or from stdin when file is absent or "-".

Exit status is 0 for a valid circle and 1 for an invalid one.`,
		Example: `  textcircle check ring.txt
  printf '..#..\n.#.#.\n#...#\n.#.#.\n..#..' | textcircle check
  textcircle check --format json ring.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: opts.run,
	}
	cmd.Flags().StringVarP(&opts.format, "format", "f", FormatText, "Output format (text, html, json)")
	cmd.Flags().StringVar(&opts.color, "color", ColorAuto, "Colour the escape path (auto, always, never)")
	return cmd
}

func (o *checkOptions) run(cmd *cobra.Command, args []string) error {
	switch o.format {
	case FormatText, FormatHTML, FormatJSON:
	default:
		return fmt.Errorf("unknown format %q", o.format)
	}
	out := cmd.OutOrStdout()
	palette, err := o.palette(out)
	if err != nil {
		return err
	}

	logger, err := o.root.newLogger(cmd)
	if err != nil {
		return err
	}

	text, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	logger.WithField("bytes", len(text)).Debug("input read")

	v := validate.New(validate.WithLogger(logger), validate.WithContext(cmd.Context()))
	report, err := v.Validate(text)
	if err != nil {
		return err
	}

	switch o.format {
	case FormatHTML:
		fmt.Fprintln(out, report.String())
	case FormatJSON:
		if err := writeJSON(out, report); err != nil {
			return err
		}
	default:
		fmt.Fprintln(out, renderText(text, report, palette))
	}

	if !report.IsValid() {
		return NewSilentExit(ExitInvalid)
	}
	return nil
}

// palette resolves --color against the output writer. A nil palette means
// plain text.
func (o *checkOptions) palette(out io.Writer) (*diagram.Palette, error) {
	var r *lipgloss.Renderer
	switch o.color {
	case ColorNever:
		return nil, nil
	case ColorAuto:
		f, ok := out.(*os.File)
		if !ok || !term.IsTerminal(int(f.Fd())) {
			return nil, nil
		}
		r = lipgloss.NewRenderer(out)
	case ColorAlways:
		r = lipgloss.NewRenderer(out)
		r.SetColorProfile(termenv.ANSI256)
		r.SetHasDarkBackground(true)
	default:
		return nil, fmt.Errorf("unknown color mode %q", o.color)
	}
	p := diagram.NewPalette(r)
	return &p, nil
}

// renderText is report.Text with the diagram styled when a palette is set.
func renderText(text string, report validate.Report, p *diagram.Palette) string {
	if p == nil || report.Kind != validate.EscapePathExists {
		return report.Text()
	}
	g, err := gridgraph.Parse(text)
	if err != nil {
		return report.Text()
	}
	return validate.EscapeHeadline + "\n\n" + diagram.Styled(g, report.Path, report.Glyph, report.Background, *p)
}

func writeJSON(w io.Writer, report validate.Report) error {
	out := checkJSON{
		Valid:     report.IsValid(),
		Kind:      report.Kind,
		Radius:    report.Radius,
		Misplaced: report.Misplaced,
		Path:      report.Path,
		Diagram:   report.Diagram,
		Report:    report.String(),
	}
	if report.Background != 0 {
		out.Background = string(report.Background)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// readInput reads the named file, or in when no file or "-" is given.
func readInput(in io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(in)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(b), nil
}
