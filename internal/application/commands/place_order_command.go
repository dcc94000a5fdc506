package commands

import (
	"context"

	"github.com/yuzvak/nhh-storefront/internal/application/use_cases"
	"github.com/yuzvak/nhh-storefront/internal/domain/pricing"
	"github.com/yuzvak/nhh-storefront/internal/pkg/logger"
)

type PlaceOrderCommand struct {
	SessionID string
}

type PlaceOrderResponse struct {
	Reference string `json:"reference"`
	Delivery  string `json:"delivery"`
	Total     string `json:"total"`
	TotalRaw  string `json:"total_raw"`
	Message   string `json:"message"`
}

type PlaceOrderHandler struct {
	checkoutUseCase *use_cases.CheckoutUseCase
	log             *logger.Logger
}

func NewPlaceOrderHandler(checkoutUseCase *use_cases.CheckoutUseCase, log *logger.Logger) *PlaceOrderHandler {
	return &PlaceOrderHandler{
		checkoutUseCase: checkoutUseCase,
		log:             log,
	}
}

func (h *PlaceOrderHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*PlaceOrderResponse, error) {
	h.log.Info("Processing order", "session_id", cmd.SessionID)

	conf, err := h.checkoutUseCase.PlaceOrder(ctx, cmd.SessionID)
	if err != nil {
		h.log.Warn("Order rejected", "error", err.Error(), "session_id", cmd.SessionID)
		return nil, err
	}

	return &PlaceOrderResponse{
		Reference: conf.Reference,
		Delivery:  string(conf.Delivery),
		Total:     pricing.Format(conf.Total),
		TotalRaw:  conf.Total.StringFixed(2),
		Message:   conf.Message,
	}, nil
}
