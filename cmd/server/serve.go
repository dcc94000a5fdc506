package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/yuzvak/nhh-storefront/internal/application/ports"
	"github.com/yuzvak/nhh-storefront/internal/application/session"
	"github.com/yuzvak/nhh-storefront/internal/application/use_cases"
	"github.com/yuzvak/nhh-storefront/internal/config"
	"github.com/yuzvak/nhh-storefront/internal/domain/pricing"
	"github.com/yuzvak/nhh-storefront/internal/infrastructure/catalogsource"
	"github.com/yuzvak/nhh-storefront/internal/infrastructure/http/handlers"
	"github.com/yuzvak/nhh-storefront/internal/infrastructure/http/server"
	"github.com/yuzvak/nhh-storefront/internal/infrastructure/monitoring"
	"github.com/yuzvak/nhh-storefront/internal/infrastructure/persistence/memory"
	"github.com/yuzvak/nhh-storefront/internal/infrastructure/persistence/postgres"
	"github.com/yuzvak/nhh-storefront/internal/infrastructure/persistence/redis"
	"github.com/yuzvak/nhh-storefront/internal/infrastructure/scheduler"
	"github.com/yuzvak/nhh-storefront/internal/pkg/clock"
	"github.com/yuzvak/nhh-storefront/internal/pkg/generator"
	"github.com/yuzvak/nhh-storefront/internal/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the storefront HTTP API",
	RunE:  runServe,
}

// stores holds the backends picked by config, plus whatever needs closing
// and health-checking.
type stores struct {
	carts   ports.KeyValueStore
	content ports.KeyValueStore
	db      *postgres.Connection
	health  map[string]handlers.Pinger
	closers []closer
	log     *logger.Logger
}

type closer struct {
	name  string
	close func() error
}

func (s *stores) addCloser(name string, fn func() error) {
	s.closers = append(s.closers, closer{name: name, close: fn})
}

// Close releases backends in reverse order of opening. Failures are logged
// and do not stop the remaining closers.
func (s *stores) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		c := s.closers[i]
		if err := c.close(); err != nil {
			s.log.Error("Failed to close connection", "backend", c.name, "error", err)
		}
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	log.Info("Starting NHH storefront",
		"carts", cfg.Storage.Carts,
		"content", cfg.Storage.Content,
		"catalog_page", cfg.Storefront.CatalogPage,
	)

	st, err := openStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer st.Close()

	prices := pricing.DefaultTable()
	source := catalogsource.NewFileSource(cfg.Storefront.CatalogPage, prices, log)
	if err := source.Reload(); err != nil {
		log.Warn("Catalog page could not be scanned, starting with an empty catalog",
			"path", cfg.Storefront.CatalogPage,
			"error", err,
		)
	}

	clk := clock.NewRealClock()
	ids := generator.NewCodeGenerator(clk)
	metrics := monitoring.NewStorefrontMetrics()

	sessions := session.NewRegistry(st.carts, cfg.Storefront.CartKey, metrics, clk, log)
	janitor := scheduler.NewSessionJanitor(sessions, clk, log,
		cfg.Storefront.JanitorInterval.Duration,
		cfg.Storefront.SessionIdle.Duration,
	)

	srv := server.NewServer(cfg.Server, cfg.Storefront.AllowAdmin, server.Dependencies{
		Catalog:  source,
		Prices:   prices,
		Cart:     use_cases.NewCartUseCase(sessions, source, log),
		Checkout: use_cases.NewCheckoutUseCase(sessions, ids, metrics, log),
		Content:  use_cases.NewContentUseCase(st.content, metrics, clk, log),
		IDs:      ids,
		Health:   st.health,
	}, log)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error { return srv.Run(gctx) })
	g.Go(func() error { return janitor.Start(gctx) })

	if cfg.Storefront.WatchCatalog {
		g.Go(func() error {
			if err := source.Watch(gctx); err != nil {
				log.Warn("Catalog watcher unavailable", "error", err)
			}
			return nil
		})
	}

	if st.db != nil {
		collector := monitoring.NewDBMetricsCollector(st.db.GetDB())
		g.Go(func() error { return collector.Run(gctx, 30*time.Second) })
	}

	if cfg.Server.MetricsPort > 0 && cfg.Server.MetricsPort != cfg.Server.Port {
		ms := monitoring.NewMetricsServer(fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.MetricsPort))
		g.Go(func() error { return ms.Run(gctx) })
	}

	err = g.Wait()
	log.Info("Storefront stopped")
	return err
}

func openStores(ctx context.Context, cfg *config.Config, log *logger.Logger) (*stores, error) {
	st := &stores{health: map[string]handlers.Pinger{}, log: log}

	switch cfg.Storage.Carts {
	case "redis":
		conn, err := redis.NewConnection(ctx, cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		st.addCloser("redis", conn.Close)
		st.health["redis"] = conn
		st.carts = redis.NewKVStore(conn, cfg.Storefront.CartTTL.Duration)
		log.Info("Cart snapshots stored in Redis", "addr", cfg.Redis.Addr())
	default:
		st.carts = memory.NewKVStore()
	}

	switch cfg.Storage.Content {
	case "postgres":
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			st.Close()
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		st.addCloser("database", conn.Close)
		st.health["database"] = conn
		st.db = conn

		if _, err := postgres.RunMigrations(ctx, conn, cfg.Database.MigrationsPath, log); err != nil {
			st.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		st.content = postgres.NewContentRepository(conn)
		log.Info("Equipment content stored in Postgres", "driver", cfg.Database.Driver)
	default:
		st.content = memory.NewKVStore()
	}

	return st, nil
}
