package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"quotesmith.codes/tui/internal/config"
)

var version = "dev"

// withConfig returns a new context carrying cfg.
func withConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// configFromContext retrieves the loaded configuration, or the defaults.
func configFromContext(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey).(*config.Config); ok {
		return cfg
	}
	d := config.Defaults()
	return &d
}

// Execute runs the quotesmith CLI.
func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		verbose    bool
	)

	root := &cobra.Command{
		Use:          "quotesmith",
		Short:        "Generate quotes with Gemini and turn them into shareable cards",
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load .env file (ignore error if not found)
			_ = godotenv.Load()

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			ctx := withConfig(cmd.Context(), cfg)
			ctx = withLogger(ctx, newLogger(cmd.ErrOrStderr(), logLevel(cfg.LogLevel, verbose)))
			cmd.SetContext(ctx)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), verbose)
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/quotesmith/config.toml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newHistoryCmd())
	root.AddCommand(newFontsCmd())

	return root
}

// runTUI starts the full-screen application. Logs go to the rotating file
// because the TUI owns the terminal.
func runTUI(ctx context.Context, verbose bool) error {
	cfg := configFromContext(ctx)

	logger, closer, err := newFileLogger(cfg.Storage.LogPath, logLevel(cfg.LogLevel, verbose))
	if err != nil {
		// The UI still works without a log file.
		logger = log.New(io.Discard)
		closer = io.NopCloser(nil)
		fmt.Fprintf(os.Stderr, "log file unavailable: %v\n", err)
	}
	defer closer.Close()

	svc := openServices(ctx, cfg, logger)
	defer svc.Close()

	logger.Info("starting", "version", version, "model", cfg.LLM.Model)

	// Alt-screen makes this a true full-window TUI (no scrollback spam).
	p := tea.NewProgram(NewAppModel(svc), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
