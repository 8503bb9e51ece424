// Package bootstrap assembles the storage backend, repositories and services from
// configuration. The HTTP server and the CLI share it.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/invoicely/internal/adapters/database/pgsql"
	"github.com/SscSPs/invoicely/internal/adapters/storage/memory"
	"github.com/SscSPs/invoicely/internal/core/domain"
	portsrepo "github.com/SscSPs/invoicely/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/invoicely/internal/core/ports/services"
	"github.com/SscSPs/invoicely/internal/core/services"
	"github.com/SscSPs/invoicely/internal/platform/config"
	"github.com/SscSPs/invoicely/internal/repositories/state"
	"github.com/SscSPs/invoicely/pkg/database"
)

// App is a fully wired application core.
type App struct {
	Store    portsrepo.StateStore
	Repos    *portsrepo.RepositoryProvider
	Services *portssvc.ServiceContainer

	closers []func()
}

// Close releases the storage backend. It is safe to call more than once.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

// NewStateStore opens the backend selected by cfg.StorageDriver. For postgres the
// pending migrations are applied first. The returned func releases the backend.
func NewStateStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.StateStore, func(), error) {
	switch cfg.StorageDriver {
	case config.StorageMemory, "":
		logger.Warn("Using in-memory storage, data is lost on restart")
		return memory.NewStore(), func() {}, nil
	case config.StoragePostgres:
		logger.Info("Running database migrations...")
		applied, err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger)
		if err != nil {
			return nil, nil, err
		}
		if applied {
			logger.Info("Database migrations applied successfully.")
		} else {
			logger.Info("No new migrations to apply.")
		}

		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database pool: %w", err)
		}
		logger.Info("Database connection pool established.")
		return pgsql.NewPgxStateStore(pool), pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

// New opens the configured store, loads every collection and builds the services.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts ...services.ServiceOption) (*App, error) {
	store, closeStore, err := NewStateStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	app, err := NewWithStore(ctx, cfg, store, opts...)
	if err != nil {
		closeStore()
		return nil, err
	}
	app.closers = append(app.closers, closeStore)
	return app, nil
}

// NewWithStore builds the application on an already opened store. Seeded payment
// methods take their timestamps and ids from the same options as the services.
func NewWithStore(ctx context.Context, cfg *config.Config, store portsrepo.StateStore, opts ...services.ServiceOption) (*App, error) {
	var repoOpts []state.ProviderOption
	if cfg.SeedPaymentMethods {
		base := services.NewBaseService(opts...)
		repoOpts = append(repoOpts, state.WithPaymentMethodSeed(func() []domain.PaymentMethod {
			return domain.SeedPaymentMethods(base.Clock.Now(), base.IDs.NewID)
		}))
	}

	repos, err := state.NewRepositoryProvider(ctx, store, repoOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load stored state: %w", err)
	}

	return &App{
		Store:    store,
		Repos:    repos,
		Services: services.NewServiceContainer(cfg, repos, opts...),
	}, nil
}
