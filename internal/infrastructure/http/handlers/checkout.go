package handlers

import (
	"net/http"

	"github.com/yuzvak/nhh-storefront/internal/application/commands"
	"github.com/yuzvak/nhh-storefront/internal/application/use_cases"
	"github.com/yuzvak/nhh-storefront/internal/domain/checkout"
	"github.com/yuzvak/nhh-storefront/internal/infrastructure/http/middleware"
	"github.com/yuzvak/nhh-storefront/internal/infrastructure/http/response"
	"github.com/yuzvak/nhh-storefront/internal/pkg/logger"
)

type CheckoutHandler struct {
	checkoutUseCase *use_cases.CheckoutUseCase
	placeOrder      *commands.PlaceOrderHandler
	log             *logger.Logger
}

func NewCheckoutHandler(checkoutUseCase *use_cases.CheckoutUseCase, log *logger.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUseCase: checkoutUseCase,
		placeOrder:      commands.NewPlaceOrderHandler(checkoutUseCase, log),
		log:             log,
	}
}

type deliveryRequest struct {
	Method string `json:"method"`
}

func (h *CheckoutHandler) HandleOpen(w http.ResponseWriter, r *http.Request) {
	st, err := h.checkoutUseCase.Open(r.Context(), middleware.SessionID(r.Context()))
	h.writeState(w, st, "", err)
}

func (h *CheckoutHandler) HandleState(w http.ResponseWriter, r *http.Request) {
	st, err := h.checkoutUseCase.State(r.Context(), middleware.SessionID(r.Context()))
	h.writeState(w, st, "", err)
}

func (h *CheckoutHandler) HandleClose(w http.ResponseWriter, r *http.Request) {
	h.checkoutUseCase.Close(r.Context(), middleware.SessionID(r.Context()))
	w.WriteHeader(http.StatusNoContent)
}

func (h *CheckoutHandler) HandleSelectDelivery(w http.ResponseWriter, r *http.Request) {
	var req deliveryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	st, notice, err := h.checkoutUseCase.SelectDelivery(r.Context(), middleware.SessionID(r.Context()), req.Method)
	h.writeState(w, st, notice, err)
}

func (h *CheckoutHandler) HandleContinue(w http.ResponseWriter, r *http.Request) {
	st, err := h.checkoutUseCase.Continue(r.Context(), middleware.SessionID(r.Context()))
	h.writeState(w, st, "", err)
}

func (h *CheckoutHandler) HandleSubmitDetails(w http.ResponseWriter, r *http.Request) {
	var details checkout.CustomerDetails
	if !decodeJSON(w, r, &details) {
		return
	}

	st, err := h.checkoutUseCase.SubmitDetails(r.Context(), middleware.SessionID(r.Context()), details)
	h.writeState(w, st, "", err)
}

func (h *CheckoutHandler) HandleBack(w http.ResponseWriter, r *http.Request) {
	st, err := h.checkoutUseCase.Back(r.Context(), middleware.SessionID(r.Context()))
	h.writeState(w, st, "", err)
}

func (h *CheckoutHandler) HandleReview(w http.ResponseWriter, r *http.Request) {
	review, err := h.checkoutUseCase.Review(r.Context(), middleware.SessionID(r.Context()))
	if err != nil {
		response.WriteDomainError(w, err)
		return
	}
	response.WriteSuccess(w, toReviewDTO(review))
}

func (h *CheckoutHandler) HandlePlaceOrder(w http.ResponseWriter, r *http.Request) {
	result, err := h.placeOrder.Handle(r.Context(), commands.PlaceOrderCommand{
		SessionID: middleware.SessionID(r.Context()),
	})
	if err != nil {
		response.WriteDomainError(w, err)
		return
	}

	response.WriteCreated(w, result, result.Message)
}

func (h *CheckoutHandler) writeState(w http.ResponseWriter, st use_cases.CheckoutState, notice string, err error) {
	if err != nil {
		response.WriteDomainError(w, err)
		return
	}
	response.WriteSuccess(w, toCheckoutDTO(st, notice), notice)
}
