package ports

import (
	"context"

	"github.com/yuzvak/nhh-storefront/internal/domain/checkout"
)

type CheckoutObserver interface {
	StepEntered(ctx context.Context, sessionID string, step checkout.Step)
	OrderPlaced(ctx context.Context, sessionID string, conf checkout.Confirmation)
}

type NopCheckoutObserver struct{}

func (NopCheckoutObserver) StepEntered(context.Context, string, checkout.Step) {}

func (NopCheckoutObserver) OrderPlaced(context.Context, string, checkout.Confirmation) {}

// ContentObserver hears about admin edits to spec sheets and downloads.
type ContentObserver interface {
	ContentChanged(ctx context.Context, kind, slug string)
}

type NopContentObserver struct{}

func (NopContentObserver) ContentChanged(context.Context, string, string) {}
