package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/textcircle/config"
	"github.com/katalvlaran/textcircle/server"
)

type serveOptions struct {
	root       *rootOptions
	configPath string
}

func newServeCommand(root *rootOptions) *cobra.Command {
	opts := &serveOptions{root: root}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the validator over HTTP and websocket",
		Long: `Serve POST /validate, GET /ws and GET /healthz.

Settings come from the TOML file given with --config, or built-in defaults.
The PORT environment variable overrides the listen port.`,
		Args: cobra.NoArgs,
		RunE: opts.run,
	}
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to a TOML config file")
	return cmd
}

func (o *serveOptions) run(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	cfg.ApplyEnv()
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = o.root.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := cfg.Log.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(cfg.Server, logger).ListenAndServe(ctx)
}
