// Package cli implements invoicectl, the operator command line. It drives the same
// service container as the HTTP server.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/invoicely/internal/middleware"
	"github.com/SscSPs/invoicely/internal/platform/bootstrap"
	"github.com/SscSPs/invoicely/internal/platform/config"
	"github.com/spf13/cobra"
)

var version = "1.0.0"

// AppOpener builds the application for one command invocation.
type AppOpener func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*bootstrap.App, error)

type rootOptions struct {
	storage     string
	databaseURL string
	logLevel    string
}

type runtime struct {
	opener AppOpener
	opts   rootOptions
	app    *bootstrap.App
	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCmd builds the command tree. A nil opener uses openSharedStore.
func NewRootCmd(opener AppOpener) *cobra.Command {
	if opener == nil {
		opener = openSharedStore
	}
	rt := &runtime{opener: opener}

	rootCmd := &cobra.Command{
		Use:   "invoicectl",
		Short: "Operate on the invoicely data store",
		Long: `invoicectl reads and updates the same clients, invoices and payment
methods the invoicely server uses, so it needs postgres storage. Configuration
comes from the environment (and a .env file) exactly as for the server; flags
override it.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: rt.open,
		PersistentPostRun: func(cmd *cobra.Command, args []string) { rt.close() },
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rt.opts.storage, "storage", "", "storage driver: memory or postgres (default from STORAGE_DRIVER)")
	flags.StringVar(&rt.opts.databaseURL, "database-url", "", "PostgreSQL URL (default from PGSQL_URL)")
	flags.StringVar(&rt.opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	rootCmd.AddCommand(
		newStatsCmd(rt),
		newInvoicesCmd(rt),
		newSweepOverdueCmd(rt),
		newNextNumberCmd(rt),
	)
	return rootCmd
}

// openSharedStore opens the store the server uses. An in-memory store would start
// empty and vanish with the process, so only postgres is accepted.
func openSharedStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*bootstrap.App, error) {
	if cfg.StorageDriver != config.StoragePostgres {
		return nil, fmt.Errorf("%q storage is private to one process; use --storage %s with --database-url or PGSQL_URL",
			cfg.StorageDriver, config.StoragePostgres)
	}
	return bootstrap.New(ctx, cfg, logger)
}

// Execute runs invoicectl against the configured store.
func Execute() {
	if err := NewRootCmd(nil).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func (rt *runtime) open(cmd *cobra.Command, _ []string) error {
	level := new(slog.LevelVar)
	if err := level.UnmarshalText([]byte(rt.opts.logLevel)); err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	rt.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if rt.opts.storage != "" {
		cfg.StorageDriver = rt.opts.storage
	}
	if rt.opts.databaseURL != "" {
		cfg.DatabaseURL = rt.opts.databaseURL
	}
	if cfg.StorageDriver == config.StoragePostgres && cfg.DatabaseURL == "" {
		return fmt.Errorf("--database-url or PGSQL_URL is required for postgres storage")
	}
	rt.cfg = cfg

	ctx := middleware.WithLogger(cmd.Context(), rt.logger.With(slog.String("command", cmd.CommandPath())))
	cmd.SetContext(ctx)

	app, err := rt.opener(ctx, cfg, rt.logger)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	rt.app = app
	return nil
}

func (rt *runtime) close() {
	if rt.app != nil {
		rt.app.Close()
		rt.app = nil
	}
}
