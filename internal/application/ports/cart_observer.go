package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/yuzvak/nhh-storefront/internal/domain/cart"
)

type Toast struct {
	Message      string
	DismissAfter time.Duration
}

type CartObserver interface {
	ItemAdded(ctx context.Context, sessionID string, item cart.LineItem, toast Toast)
	CartChanged(ctx context.Context, sessionID string, count int, total decimal.Decimal)
}

// NopCartObserver ignores every notification.
type NopCartObserver struct{}

func (NopCartObserver) ItemAdded(context.Context, string, cart.LineItem, Toast) {}

func (NopCartObserver) CartChanged(context.Context, string, int, decimal.Decimal) {}
