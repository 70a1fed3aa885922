package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ersonp/catalog-seed/internal/application/handlers"
	"github.com/ersonp/catalog-seed/internal/domain/ports"
	"github.com/ersonp/catalog-seed/internal/infrastructure/config"
	"github.com/ersonp/catalog-seed/internal/infrastructure/hashing"
	"github.com/ersonp/catalog-seed/internal/infrastructure/logging"
	"github.com/ersonp/catalog-seed/internal/infrastructure/parsers"
	"github.com/ersonp/catalog-seed/internal/infrastructure/relationaldb/postgres"
	"github.com/ersonp/catalog-seed/internal/infrastructure/relationaldb/sqlite"
	"github.com/ersonp/catalog-seed/internal/infrastructure/sqlscript"
)

// Deps holds high-level dependencies for commands.
type Deps struct {
	BasePath string
	Config   *config.Config
	Logger   *zap.Logger
}

// DataDir returns the configured catalog directory anchored at BasePath.
func (d *Deps) DataDir() string {
	return config.ResolvePath(d.BasePath, d.Config.Paths.DataDir)
}

// OutputPath returns the configured script path anchored at BasePath.
func (d *Deps) OutputPath() string {
	return config.ResolvePath(d.BasePath, d.Config.Paths.Output)
}

// withDeps loads config and builds the logger, then calls the provided function.
func withDeps(fn func(*Deps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	return fn(&Deps{
		BasePath: cwd,
		Config:   cfg,
		Logger:   logger,
	})
}

// withGenerateHandler provides a GenerateHandler wired to the configured ledger.
// A ledger that cannot be opened is logged and skipped.
func withGenerateHandler(ctx context.Context, fn func(*Deps, *handlers.GenerateHandler) error) error {
	return withDeps(func(d *Deps) error {
		var ledger ports.RunLedger
		if d.Config.History.Enabled {
			repo, err := openLedger(ctx, d)
			if err != nil {
				d.Logger.Warn("generation history unavailable", zap.Error(err))
			} else {
				defer repo.Close()
				ledger = repo
			}
		}

		handler := handlers.NewGenerateHandler(
			parsers.NewLoader(d.Logger),
			sqlscript.NewRenderer(),
			hashing.NewBcryptHasher(0),
			ledger,
			d.Logger,
		)
		return fn(d, handler)
	})
}

// withLedger provides the generation ledger for read-only commands.
func withLedger(ctx context.Context, fn func(*Deps, ports.RunLedger) error) error {
	return withDeps(func(d *Deps) error {
		repo, err := openLedger(ctx, d)
		if err != nil {
			return err
		}
		defer repo.Close()
		return fn(d, repo)
	})
}

// withApplyHandler connects to PostgreSQL and provides an ApplyHandler.
func withApplyHandler(ctx context.Context, fn func(*Deps, *handlers.ApplyHandler) error) error {
	return withDeps(func(d *Deps) error {
		executor, err := postgres.NewExecutor(ctx, d.Config.Database.URL, d.Logger)
		if err != nil {
			return err
		}
		defer executor.Close()
		return fn(d, handlers.NewApplyHandler(executor, d.Logger))
	})
}

func openLedger(ctx context.Context, d *Deps) (*sqlite.Repository, error) {
	historyCfg := d.Config.History
	historyCfg.Path = config.ResolvePath(d.BasePath, historyCfg.Path)

	repo, err := sqlite.NewRepository(historyCfg)
	if err != nil {
		return nil, fmt.Errorf("creating sqlite repository: %w", err)
	}
	if err := repo.EnsureSchema(ctx); err != nil {
		repo.Close()
		return nil, fmt.Errorf("ensuring sqlite schema: %w", err)
	}
	return repo, nil
}
