package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"spy-cat-agency/internal/adapters/breeds/thecatapi"
	mem "spy-cat-agency/internal/adapters/storage/memory"
	"spy-cat-agency/internal/adapters/storage/sqlstore"
	"spy-cat-agency/internal/config"
	"spy-cat-agency/internal/domain/agency"
	"spy-cat-agency/internal/platform/logger"
	"spy-cat-agency/internal/platform/metrics"
	"spy-cat-agency/internal/router"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newServeCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Levanta el servidor HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), flags)
		},
	}
}

func loadConfig(flags *rootFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}
	if flags.addr != "" {
		cfg.Server.Addr = flags.addr
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) logger.Logger {
	return logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Logging.Level),
		Format: logger.ParseFormat(cfg.Logging.Format),
		App:    cfg.Logging.App,
	})
}

// openStore devuelve el store y su cierre (no-op para memoria).
func openStore(ctx context.Context, cfg config.DatabaseConfig) (agency.Store, func() error, error) {
	if cfg.Driver == config.DriverMemory {
		return mem.NewStore(), func() error { return nil }, nil
	}

	dialect, err := sqlstore.ParseDialect(cfg.Driver)
	if err != nil {
		return nil, nil, err
	}
	dsn := cfg.DSN
	if dsn == "" && dialect == sqlstore.DialectSQLite {
		dsn = sqlstore.MemoryDSN()
	}

	s, err := sqlstore.Open(ctx, dialect, dsn)
	if err != nil {
		return nil, nil, err
	}
	return s, s.Close, nil
}

func runServe(parent context.Context, flags *rootFlags) error {
	if parent == nil {
		parent = context.Background()
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	log := newLogger(cfg)
	defer logger.Sync(log)

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Warn("store close failed", map[string]any{"err": err})
		}
	}()

	catalog, err := thecatapi.NewClient(thecatapi.Config{
		BaseURL: cfg.CatAPI.BaseURL,
		APIKey:  cfg.CatAPI.APIKey,
		Timeout: cfg.CatAPITimeout(),
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr: cfg.Server.Addr,
		Handler: router.NewRouter(router.Options{
			Store:       store,
			Breeds:      catalog,
			Logger:      log,
			Metrics:     metrics.New(nil),
			CORSOrigins: cfg.Server.CORSOrigins,
		}),
		ReadTimeout:  cfg.ReadTimeout(),
		WriteTimeout: cfg.WriteTimeout(),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting server", map[string]any{
			"addr":      cfg.Server.Addr,
			"db_driver": cfg.Database.Driver,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
		defer cancel()

		log.Info("shutting down", nil)
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
