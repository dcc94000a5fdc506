package handlers

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/yuzvak/nhh-storefront/internal/application/ports"
	"github.com/yuzvak/nhh-storefront/internal/infrastructure/http/response"
	"github.com/yuzvak/nhh-storefront/internal/pkg/logger"
)

// Pinger is a backing service whose reachability is reported by /health.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	deps      map[string]Pinger
	catalog   ports.CatalogSource
	log       *logger.Logger
	startTime time.Time
}

func NewHealthHandler(deps map[string]Pinger, catalog ports.CatalogSource, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		deps:      deps,
		catalog:   catalog,
		log:       log,
		startTime: time.Now().UTC(),
	}
}

type MemoryMetrics struct {
	Alloc      uint64 `json:"alloc"`
	TotalAlloc uint64 `json:"total_alloc"`
	Sys        uint64 `json:"sys"`
	NumGC      uint32 `json:"num_gc"`
}

type HealthData struct {
	ServicesStatus map[string]string `json:"services_status"`
	Products       int               `json:"products"`
	Uptime         string            `json:"uptime"`
	Memory         MemoryMetrics     `json:"memory"`
	Goroutines     int               `json:"goroutines"`
}

func (h *HealthHandler) HandleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := map[string]string{"app": "UP"}
		healthy := true
		for name, dep := range h.deps {
			if err := dep.Ping(ctx); err != nil {
				h.log.Warn("Health check failed", "service", name, "error", err)
				status[name] = "DOWN"
				healthy = false
				continue
			}
			status[name] = "UP"
		}

		var mem runtime.MemStats
		runtime.ReadMemStats(&mem)

		data := HealthData{
			ServicesStatus: status,
			Products:       h.catalog.Catalog().Len(),
			Uptime:         time.Since(h.startTime).String(),
			Memory: MemoryMetrics{
				Alloc:      mem.Alloc,
				TotalAlloc: mem.TotalAlloc,
				Sys:        mem.Sys,
				NumGC:      mem.NumGC,
			},
			Goroutines: runtime.NumGoroutine(),
		}

		if !healthy {
			response.WriteJSON(w, http.StatusServiceUnavailable, &response.DataResponse[HealthData]{
				BaseResponse: response.BaseResponse{Status: response.StatusServiceUnavailable},
				Data:         data,
			})
			return
		}
		response.WriteSuccess(w, data)
	}
}
