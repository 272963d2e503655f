package main

import (
	"context"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hellotui/internal/config"
	"hellotui/internal/logging"
	"hellotui/internal/telemetry"
	"hellotui/internal/ui"
	"hellotui/internal/user"
)

// options holds the global flags.
type options struct {
	configPath string
	endpoint   string
	logFile    string
	verbose    bool
}

// app is everything a command needs, plus its teardown.
type app struct {
	model    *ui.AppModel
	logger   *zap.Logger
	provider *telemetry.Provider
}

func (a *app) close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.provider.Shutdown(ctx); err != nil {
		a.logger.Warn("telemetry shutdown failed", zap.Error(err))
	}
	_ = a.logger.Sync()
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "hellotui",
		Short: "Hello World terminal demo: a fetched user, a counter and an echo field",
		Long: `hellotui fetches one user record at start-up and shows it next to a
static animal list, an increment/decrement counter and a text field.

Keys: tab/shift+tab move focus, enter presses the focused button,
+/- change the counter, q or ctrl+c quits.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer a.close()

			a.logger.Info("starting tui")
			p := tea.NewProgram(a.model.AsTeaModel(), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run tui: %w", err)
			}
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to a YAML config file (default $"+config.ConfigFileEnv+")")
	flags.StringVar(&opts.endpoint, "endpoint", "", "user resource URL (overrides config)")
	flags.StringVar(&opts.logFile, "log-file", "", "write JSON logs to this file (overrides config)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newSnapshotCmd(opts))
	return root
}

func newSnapshotCmd(opts *options) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Fetch the user once and print the resulting page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "html" && format != "text" {
				return fmt.Errorf("unknown format %q (want html or text)", format)
			}
			a, err := setup(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer a.close()

			a.model.Resolve()
			if err := writeSnapshot(cmd.OutOrStdout(), a.model, format); err != nil {
				return err
			}
			if f, ok := a.model.State().(ui.Failed); ok {
				return fmt.Errorf("fetch user: %s", f.Message)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "html", "output format: html or text")
	return cmd
}

func writeSnapshot(w io.Writer, m *ui.AppModel, format string) error {
	if format == "text" {
		_, err := fmt.Fprintln(w, m.RenderPlain())
		return err
	}
	if err := m.Document().WriteHTML(w); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	_, err := fmt.Fprintln(w)
	return err
}

// setup loads config, applies flags and wires logger, tracing and fetcher.
func setup(ctx context.Context, opts *options) (*app, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.endpoint != "" {
		cfg.Endpoint = opts.endpoint
	}
	if opts.logFile != "" {
		cfg.Logging.File = opts.logFile
	}

	logger, err := logging.New(cfg.Logging, opts.verbose)
	if err != nil {
		return nil, err
	}

	provider, err := telemetry.Setup(ctx, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("telemetry: %w", err)
	}

	fetcher := user.NewHTTPFetcher(cfg.Endpoint,
		user.WithTimeout(cfg.Timeout),
		user.WithTracer(provider.Tracer("hellotui/user")),
		user.WithLogger(logger.Named("user")),
	)
	logger.Debug("configured",
		zap.String("endpoint", fetcher.Endpoint()),
		zap.Duration("timeout", cfg.Timeout),
		zap.Bool("tracing", provider != nil),
	)

	return &app{
		model:    ui.NewAppModel(fetcher, logger.Named("ui")),
		logger:   logger,
		provider: provider,
	}, nil
}
