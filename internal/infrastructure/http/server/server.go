package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/yuzvak/nhh-storefront/internal/application/ports"
	"github.com/yuzvak/nhh-storefront/internal/application/use_cases"
	"github.com/yuzvak/nhh-storefront/internal/config"
	"github.com/yuzvak/nhh-storefront/internal/domain/pricing"
	"github.com/yuzvak/nhh-storefront/internal/infrastructure/http/handlers"
	"github.com/yuzvak/nhh-storefront/internal/pkg/generator"
	"github.com/yuzvak/nhh-storefront/internal/pkg/logger"
)

// Dependencies are the application services the HTTP layer dispatches to.
type Dependencies struct {
	Catalog  ports.CatalogSource
	Prices   pricing.Table
	Cart     *use_cases.CartUseCase
	Checkout *use_cases.CheckoutUseCase
	Content  *use_cases.ContentUseCase
	IDs      *generator.CodeGenerator
	Health   map[string]handlers.Pinger
}

type Server struct {
	server           *http.Server
	cfg              config.ServerConfig
	allowAdmin       bool
	ids              *generator.CodeGenerator
	logger           *logger.Logger
	healthHandler    *handlers.HealthHandler
	catalogHandler   *handlers.CatalogHandler
	cartHandler      *handlers.CartHandler
	checkoutHandler  *handlers.CheckoutHandler
	equipmentHandler *handlers.EquipmentHandler
}

func NewServer(cfg config.ServerConfig, allowAdmin bool, deps Dependencies, logger *logger.Logger) *Server {
	s := &Server{
		cfg:              cfg,
		allowAdmin:       allowAdmin,
		ids:              deps.IDs,
		logger:           logger,
		healthHandler:    handlers.NewHealthHandler(deps.Health, deps.Catalog, logger),
		catalogHandler:   handlers.NewCatalogHandler(deps.Catalog, deps.Prices),
		cartHandler:      handlers.NewCartHandler(deps.Cart, logger),
		checkoutHandler:  handlers.NewCheckoutHandler(deps.Checkout, logger),
		equipmentHandler: handlers.NewEquipmentHandler(deps.Content, logger),
	}

	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:           s.setupRoutes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return s
}

func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Run serves until ctx is done and then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", "address", s.server.Addr)
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	}
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}
