package commands

import (
	"context"

	"github.com/yuzvak/nhh-storefront/internal/application/use_cases"
	"github.com/yuzvak/nhh-storefront/internal/domain/pricing"
	"github.com/yuzvak/nhh-storefront/internal/pkg/logger"
)

type AddToCartCommand struct {
	SessionID   string
	ProductName string
	Subcategory string
}

type AddToCartResponse struct {
	Name         string `json:"name"`
	Qty          int    `json:"qty"`
	Toast        string `json:"toast"`
	ToastMillis  int64  `json:"toast_dismiss_ms"`
	OpenSummary  bool   `json:"open_summary"`
	CartCount    int    `json:"cart_count"`
	CountLabel   string `json:"count_label"`
	CartTotal    string `json:"cart_total"`
	CartTotalRaw string `json:"cart_total_raw"`
}

type AddToCartHandler struct {
	cartUseCase *use_cases.CartUseCase
	log         *logger.Logger
}

func NewAddToCartHandler(cartUseCase *use_cases.CartUseCase, log *logger.Logger) *AddToCartHandler {
	return &AddToCartHandler{
		cartUseCase: cartUseCase,
		log:         log,
	}
}

func (h *AddToCartHandler) Handle(ctx context.Context, cmd AddToCartCommand) (*AddToCartResponse, error) {
	res, view, err := h.cartUseCase.AddProduct(ctx, cmd.SessionID, cmd.ProductName, cmd.Subcategory)
	if err != nil {
		h.log.Warn("Add to cart rejected", "error", err.Error(), "session_id", cmd.SessionID, "product", cmd.ProductName)
		return nil, err
	}

	return &AddToCartResponse{
		Name:         res.Item.Name,
		Qty:          res.Item.Qty,
		Toast:        res.Toast.Message,
		ToastMillis:  res.Toast.DismissAfter.Milliseconds(),
		OpenSummary:  res.OpenSummary,
		CartCount:    view.Count,
		CountLabel:   view.CountLabel,
		CartTotal:    pricing.Format(view.Total),
		CartTotalRaw: view.Total.StringFixed(2),
	}, nil
}
