package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/yuzvak/nhh-storefront/internal/infrastructure/http/middleware"
	"github.com/yuzvak/nhh-storefront/internal/infrastructure/monitoring"
)

func (s *Server) setupRoutes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.NewRecoveryMiddleware(s.logger))
	r.Use(monitoring.HTTPMetrics)
	r.Use(middleware.NewCORSMiddleware(s.cfg.AllowedOrigins))

	r.Handle("/metrics", monitoring.Handler())
	r.Get("/health", s.healthHandler.HandleHealth())

	r.Route("/api/v1", func(r chi.Router) {
		if timeout := s.cfg.RequestTimeout.Duration; timeout > 0 {
			r.Use(chimw.Timeout(timeout))
		}
		r.Use(middleware.NewSessionMiddleware(s.ids))
		r.Use(middleware.NewLoggingMiddleware(s.logger))
		r.Use(middleware.NewAdminMiddleware(s.allowAdmin))

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/", s.catalogHandler.HandleList)
			r.Get("/{subcategory}", s.catalogHandler.HandleSubcategory)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", s.cartHandler.HandleGet)
			r.Delete("/", s.cartHandler.HandleClear)
			r.Put("/summary", s.cartHandler.HandleSummary)
			r.Post("/items", s.cartHandler.HandleAddItem)
			r.Patch("/items/{index}", s.cartHandler.HandleUpdateQuantity)
			r.Delete("/items/{index}", s.cartHandler.HandleRemoveItem)
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Post("/", s.checkoutHandler.HandleOpen)
			r.Get("/", s.checkoutHandler.HandleState)
			r.Delete("/", s.checkoutHandler.HandleClose)
			r.Put("/delivery", s.checkoutHandler.HandleSelectDelivery)
			r.Post("/continue", s.checkoutHandler.HandleContinue)
			r.Put("/details", s.checkoutHandler.HandleSubmitDetails)
			r.Post("/back", s.checkoutHandler.HandleBack)
			r.Get("/review", s.checkoutHandler.HandleReview)
			r.Post("/order", s.checkoutHandler.HandlePlaceOrder)
		})

		r.Route("/equipment", func(r chi.Router) {
			r.Get("/slug", s.equipmentHandler.HandleSlug)
			r.Route("/{slug}", func(r chi.Router) {
				r.Get("/specs", s.equipmentHandler.HandleGetSpecs)
				r.Post("/specs", s.equipmentHandler.HandleAddSpec)
				r.Delete("/specs", s.equipmentHandler.HandleClearSpecs)
				r.Get("/downloads", s.equipmentHandler.HandleGetDownloads)
				r.Post("/downloads", s.equipmentHandler.HandleUpload)
				r.Delete("/downloads/{index}", s.equipmentHandler.HandleRemoveDownload)
			})
		})
	})

	return r
}
