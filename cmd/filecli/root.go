package main

import (
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tailored-agentic-units/filecli/observability"
	"github.com/tailored-agentic-units/filecli/shell"
	"github.com/tailored-agentic-units/filecli/store"
)

type rootOptions struct {
	configFile string
	prompt     string
	observers  []string
	quiet      bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "filecli",
		Short: "Interactive in-memory file manager",
		Long: `filecli manages a collection of named text files held in memory for the
lifetime of the process. Files are created, written, read, listed, inspected
and deleted through an interactive prompt; nothing is written to disk.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRoot(cmd, opts)
		},
	}

	// JSON lines on the command's stderr, honoring --verbose.
	observability.Register("json", func(*slog.Logger) observability.Observer {
		return observability.NewSlogObserver(newLogger(cmd.ErrOrStderr(), opts.verbose, true))
	})

	cmd.Flags().StringVar(&opts.configFile, "config", "", "Path to a JSON or YAML config file")
	cmd.Flags().StringVar(&opts.prompt, "prompt", "", "Prompt string (overrides config)")
	cmd.Flags().StringSliceVar(&opts.observers, "observers", nil,
		"Event observers (overrides config; available: "+strings.Join(observability.Names(), ", ")+")")
	cmd.Flags().BoolVar(&opts.quiet, "quiet", false, "Suppress the welcome banner")
	cmd.Flags().BoolVar(&opts.verbose, "verbose", false, "Log store and shell events to stderr")

	return cmd
}

func runRoot(cmd *cobra.Command, opts *rootOptions) error {
	cfg := shell.DefaultConfig()
	if opts.configFile != "" {
		loaded, err := shell.LoadConfig(opts.configFile)
		if err != nil {
			return err
		}
		cfg = *loaded
	}
	cfg.Merge(&shell.Config{Prompt: opts.prompt, Quiet: opts.quiet, Observers: opts.observers})

	logger := newLogger(cmd.ErrOrStderr(), opts.verbose, false)
	slog.SetDefault(logger)

	observer, err := observability.ResolveAll(cfg.Observers, logger)
	if err != nil {
		return err
	}

	files := store.New(store.WithObserver(observer))

	sh, err := shell.New(&cfg, files, cmd.InOrStdin(), cmd.OutOrStdout(), shell.WithObserver(observer))
	if err != nil {
		return err
	}

	return sh.Run(cmd.Context())
}

// logLevel keeps stderr quiet unless something fails; --verbose shows every
// store and shell event.
func logLevel(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelError
}

func newLogger(w io.Writer, verbose, json bool) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: logLevel(verbose)}
	if json {
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts))
}
