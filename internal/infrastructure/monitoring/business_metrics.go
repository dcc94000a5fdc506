package monitoring

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/yuzvak/nhh-storefront/internal/application/ports"
	"github.com/yuzvak/nhh-storefront/internal/domain/cart"
	"github.com/yuzvak/nhh-storefront/internal/domain/checkout"
)

// StorefrontMetrics turns cart, checkout and content events into Prometheus
// series. Session ids never become labels.
type StorefrontMetrics struct{}

var (
	_ ports.CartObserver     = StorefrontMetrics{}
	_ ports.CheckoutObserver = StorefrontMetrics{}
	_ ports.ContentObserver  = StorefrontMetrics{}
)

func NewStorefrontMetrics() StorefrontMetrics {
	return StorefrontMetrics{}
}

func (StorefrontMetrics) ItemAdded(_ context.Context, _ string, item cart.LineItem, _ ports.Toast) {
	sub := item.Sub
	if sub == "" {
		sub = "unknown"
	}
	CartItemsAddedTotal.WithLabelValues(sub).Inc()
}

func (StorefrontMetrics) CartChanged(_ context.Context, _ string, count int, _ decimal.Decimal) {
	CartChangesTotal.Inc()
	CartSize.Observe(float64(count))
}

func (StorefrontMetrics) StepEntered(_ context.Context, _ string, step checkout.Step) {
	CheckoutStepsTotal.WithLabelValues(string(step)).Inc()
}

func (StorefrontMetrics) OrderPlaced(_ context.Context, _ string, conf checkout.Confirmation) {
	OrdersPlacedTotal.WithLabelValues(string(conf.Delivery)).Inc()
	OrderValue.Observe(conf.Total.InexactFloat64())
}

func (StorefrontMetrics) ContentChanged(_ context.Context, kind, _ string) {
	ContentChangesTotal.WithLabelValues(kind).Inc()
}
