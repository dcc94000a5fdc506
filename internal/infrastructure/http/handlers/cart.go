package handlers

import (
	"net/http"
	"strings"

	"github.com/yuzvak/nhh-storefront/internal/application/commands"
	"github.com/yuzvak/nhh-storefront/internal/application/use_cases"
	"github.com/yuzvak/nhh-storefront/internal/infrastructure/http/middleware"
	"github.com/yuzvak/nhh-storefront/internal/infrastructure/http/response"
	"github.com/yuzvak/nhh-storefront/internal/pkg/logger"
)

type CartHandler struct {
	cartUseCase *use_cases.CartUseCase
	addToCart   *commands.AddToCartHandler
	log         *logger.Logger
}

func NewCartHandler(cartUseCase *use_cases.CartUseCase, log *logger.Logger) *CartHandler {
	return &CartHandler{
		cartUseCase: cartUseCase,
		addToCart:   commands.NewAddToCartHandler(cartUseCase, log),
		log:         log,
	}
}

type addItemRequest struct {
	Name        string `json:"name"`
	Subcategory string `json:"subcategory,omitempty"`
}

type quantityRequest struct {
	Delta int `json:"delta"`
}

type summaryRequest struct {
	Open bool `json:"open"`
}

func (h *CartHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	view := h.cartUseCase.View(r.Context(), middleware.SessionID(r.Context()))
	response.WriteSuccess(w, toCartDTO(view))
}

func (h *CartHandler) HandleAddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		response.WriteValidationError(w, "Validation failed", map[string]string{
			"name": "name is required",
		})
		return
	}

	result, err := h.addToCart.Handle(r.Context(), commands.AddToCartCommand{
		SessionID:   middleware.SessionID(r.Context()),
		ProductName: name,
		Subcategory: strings.TrimSpace(req.Subcategory),
	})
	if err != nil {
		response.WriteDomainError(w, err)
		return
	}

	response.WriteCreated(w, result, result.Toast)
}

// HandleUpdateQuantity applies a +1/-1 style delta. A line that drops below
// one unit is removed. An index with no line leaves the cart as it is.
func (h *CartHandler) HandleUpdateQuantity(w http.ResponseWriter, r *http.Request) {
	index, ok := indexParam(w, r)
	if !ok {
		return
	}

	var req quantityRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	view, changed := h.cartUseCase.UpdateQuantity(r.Context(), middleware.SessionID(r.Context()), index, req.Delta)
	if !changed {
		h.log.Debug("Quantity update ignored", "index", index, "session_id", middleware.SessionID(r.Context()))
	}
	response.WriteSuccess(w, toCartDTO(view))
}

func (h *CartHandler) HandleRemoveItem(w http.ResponseWriter, r *http.Request) {
	index, ok := indexParam(w, r)
	if !ok {
		return
	}

	view, removed := h.cartUseCase.Remove(r.Context(), middleware.SessionID(r.Context()), index)
	if !removed {
		h.log.Debug("Remove ignored", "index", index, "session_id", middleware.SessionID(r.Context()))
	}
	response.WriteSuccess(w, toCartDTO(view))
}

func (h *CartHandler) HandleClear(w http.ResponseWriter, r *http.Request) {
	view := h.cartUseCase.Clear(r.Context(), middleware.SessionID(r.Context()))
	response.WriteSuccess(w, toCartDTO(view))
}

func (h *CartHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	var req summaryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	view := h.cartUseCase.SetSummaryOpen(r.Context(), middleware.SessionID(r.Context()), req.Open)
	response.WriteSuccess(w, toCartDTO(view))
}
