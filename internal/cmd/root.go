// Package cmd provides CLI commands for the textcircle tool.
package cmd

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/textcircle/config"
)

// Version is set at build time with -ldflags "-X .../internal/cmd.Version=...".
var Version = "dev"

// Exit codes.
const (
	ExitValid   = 0
	ExitInvalid = 1
	ExitUsage   = 2
)

// rootOptions holds flags shared by every subcommand.
type rootOptions struct {
	logLevel string
}

// NewRootCommand builds the full command tree. Each call returns fresh
// flag state.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:     "textcircle",
		Short:   "textcircle - ASCII-art circle checker",
		Version: Version,
		Long: `textcircle checks that a block of text draws a single ring of one symbol
around the centre of a square, odd-sided grid, on a background of another.

When the ring has a gap, it prints the shortest path from the centre to the
edge of the grid.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	root.AddCommand(
		newCheckCommand(opts),
		newDrawCommand(),
		newServeCommand(opts),
		newVersionCommand(),
	)
	return root
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	return execute(NewRootCommand())
}

func execute(root *cobra.Command) int {
	err := root.Execute()
	if err == nil {
		return ExitValid
	}
	// Check for silent exit (commands that signal status via exit code)
	if code, ok := IsSilentExit(err); ok {
		return code
	}
	fmt.Fprintf(root.ErrOrStderr(), "Error: %v\n", err)
	return ExitUsage
}

// newLogger builds the CLI logger on the command's stderr.
func (o *rootOptions) newLogger(cmd *cobra.Command) (*log.Logger, error) {
	return config.Log{Level: o.logLevel, Format: "text"}.NewLogger(cmd.ErrOrStderr())
}
