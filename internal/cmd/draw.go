package cmd

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/textcircle/ring"
)

type drawOptions struct {
	side       int
	ring       string
	background string
}

func newDrawCommand() *cobra.Command {
	opts := &drawOptions{}
	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Print a perfect ring",
		Long: `Print the canonical ring of the given odd side length. The output always
passes check.`,
		Example: `  textcircle draw --side 9
  textcircle draw --side 5 --ring o --background ' ' | textcircle check`,
		Args: cobra.NoArgs,
		RunE: opts.run,
	}
	cmd.Flags().IntVarP(&opts.side, "side", "s", 7, "Side length of the square (odd, at least 3)")
	cmd.Flags().StringVar(&opts.ring, "ring", "#", "Ring symbol")
	cmd.Flags().StringVar(&opts.background, "background", ".", "Background symbol")
	return cmd
}

func (o *drawOptions) run(cmd *cobra.Command, _ []string) error {
	ringSym, err := singleRune("ring", o.ring)
	if err != nil {
		return err
	}
	bg, err := singleRune("background", o.background)
	if err != nil {
		return err
	}
	text, err := ring.Perfect(o.side, ringSym, bg)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}

func singleRune(flag, s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("--%s must be a single character, got %q", flag, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
