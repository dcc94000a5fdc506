package use_cases

import (
	"context"

	"github.com/yuzvak/nhh-storefront/internal/application/cartstore"
	"github.com/yuzvak/nhh-storefront/internal/application/ports"
	"github.com/yuzvak/nhh-storefront/internal/application/session"
	"github.com/yuzvak/nhh-storefront/internal/domain/errors"
	"github.com/yuzvak/nhh-storefront/internal/pkg/logger"
)

type CartView struct {
	cartstore.Summary
	SummaryOpen bool
}

type CartUseCase struct {
	sessions *session.Registry
	catalog  ports.CatalogSource
	log      *logger.Logger
}

func NewCartUseCase(sessions *session.Registry, catalog ports.CatalogSource, log *logger.Logger) *CartUseCase {
	return &CartUseCase{
		sessions: sessions,
		catalog:  catalog,
		log:      log,
	}
}

func (uc *CartUseCase) View(ctx context.Context, sessionID string) CartView {
	s, release := uc.sessions.Acquire(ctx, sessionID)
	defer release()

	return view(s)
}

// AddProduct puts one unit of a catalogued product in the cart. Price and
// subcategory always come from the catalog, never from the caller. sub picks
// between products that share a display name; empty means the first listed.
func (uc *CartUseCase) AddProduct(ctx context.Context, sessionID, name, sub string) (cartstore.AddResult, CartView, error) {
	product, ok := uc.catalog.Catalog().LookupIn(name, sub)
	if !ok {
		return cartstore.AddResult{}, CartView{}, errors.ErrProductNotFound
	}

	s, release := uc.sessions.Acquire(ctx, sessionID)
	defer release()

	res, err := s.Cart.Add(ctx, product.Name, product.Price, product.Subcategory)
	if err != nil {
		uc.log.Error("Failed to add product to cart", "error", err, "session_id", sessionID, "product", name)
		return cartstore.AddResult{}, CartView{}, err
	}
	s.SummaryOpen = res.OpenSummary

	uc.log.Debug("Product added to cart",
		"session_id", sessionID,
		"product", product.Name,
		"qty", res.Item.Qty,
		"cart_count", s.Cart.Count(),
	)

	return res, view(s), nil
}

// Remove reports false when index does not address a line.
func (uc *CartUseCase) Remove(ctx context.Context, sessionID string, index int) (CartView, bool) {
	s, release := uc.sessions.Acquire(ctx, sessionID)
	defer release()

	removed := s.Cart.Remove(ctx, index)
	return view(s), removed
}

func (uc *CartUseCase) UpdateQuantity(ctx context.Context, sessionID string, index, delta int) (CartView, bool) {
	s, release := uc.sessions.Acquire(ctx, sessionID)
	defer release()

	changed := s.Cart.UpdateQuantity(ctx, index, delta)
	return view(s), changed
}

func (uc *CartUseCase) Clear(ctx context.Context, sessionID string) CartView {
	s, release := uc.sessions.Acquire(ctx, sessionID)
	defer release()

	s.Cart.Clear(ctx)
	return view(s)
}

func (uc *CartUseCase) SetSummaryOpen(ctx context.Context, sessionID string, open bool) CartView {
	s, release := uc.sessions.Acquire(ctx, sessionID)
	defer release()

	s.SummaryOpen = open
	return view(s)
}

func view(s *session.Session) CartView {
	return CartView{
		Summary:     s.Cart.Summary(),
		SummaryOpen: s.SummaryOpen,
	}
}
