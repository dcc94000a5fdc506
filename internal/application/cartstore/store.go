package cartstore

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/yuzvak/nhh-storefront/internal/application/ports"
	"github.com/yuzvak/nhh-storefront/internal/domain/cart"
	"github.com/yuzvak/nhh-storefront/internal/pkg/logger"
)

const (
	toastNameLimit    = 30
	toastDismissAfter = 2800 * time.Millisecond
)

type AddResult struct {
	Item        cart.LineItem
	Toast       ports.Toast
	OpenSummary bool
}

type SummaryLine struct {
	Index       int
	Name        string
	UnitPrice   decimal.Decimal
	Qty         int
	LineTotal   decimal.Decimal
	Subcategory string
}

type Summary struct {
	Items      []SummaryLine
	Count      int
	CountLabel string
	Total      decimal.Decimal
}

// Store is a cart bound to one persistence key. Every mutation writes the full
// cart back before returning. Store is not safe for concurrent use; the
// owning session serialises access.
type Store struct {
	kv        ports.KeyValueStore
	key       string
	sessionID string
	observer  ports.CartObserver
	log       *logger.Logger

	cart *cart.Cart
}

// Load restores the cart stored under key. A missing, unreadable or corrupt
// snapshot yields an empty cart.
func Load(ctx context.Context, kv ports.KeyValueStore, key, sessionID string, observer ports.CartObserver, log *logger.Logger) *Store {
	if observer == nil {
		observer = ports.NopCartObserver{}
	}

	s := &Store{
		kv:        kv,
		key:       key,
		sessionID: sessionID,
		observer:  observer,
		log:       log,
		cart:      cart.New(),
	}

	data, found, err := kv.Get(ctx, key)
	switch {
	case err != nil:
		log.Warn("Failed to read cart snapshot, starting empty", "key", key, "error", err)
	case found:
		s.cart = cart.Decode(data)
	}

	return s
}

func (s *Store) Add(ctx context.Context, name string, price decimal.Decimal, sub string) (AddResult, error) {
	item, err := s.cart.Add(name, price, sub)
	if err != nil {
		return AddResult{}, err
	}

	toast := ports.Toast{
		Message:      toastMessage(item.Name),
		DismissAfter: toastDismissAfter,
	}

	s.persist(ctx)
	s.observer.ItemAdded(ctx, s.sessionID, item, toast)

	return AddResult{Item: item, Toast: toast, OpenSummary: true}, nil
}

// Remove drops the line at index. Out-of-range indices change nothing but the
// cart is still persisted.
func (s *Store) Remove(ctx context.Context, index int) bool {
	removed := s.cart.Remove(index)
	s.persist(ctx)
	return removed
}

func (s *Store) UpdateQuantity(ctx context.Context, index, delta int) bool {
	changed := s.cart.UpdateQuantity(index, delta)
	s.persist(ctx)
	return changed
}

func (s *Store) Clear(ctx context.Context) {
	s.cart.Clear()
	s.persist(ctx)
}

func (s *Store) Total() decimal.Decimal {
	return s.cart.Total()
}

func (s *Store) Count() int {
	return s.cart.Count()
}

func (s *Store) IsEmpty() bool {
	return s.cart.IsEmpty()
}

func (s *Store) Items() []cart.LineItem {
	return s.cart.Items()
}

func (s *Store) Summary() Summary {
	items := s.cart.Items()
	lines := make([]SummaryLine, len(items))
	for i, item := range items {
		lines[i] = SummaryLine{
			Index:       i,
			Name:        item.Name,
			UnitPrice:   item.Price,
			Qty:         item.Qty,
			LineTotal:   item.LineTotal(),
			Subcategory: item.Sub,
		}
	}

	count := s.cart.Count()
	return Summary{
		Items:      lines,
		Count:      count,
		CountLabel: CountLabel(count),
		Total:      s.cart.Total(),
	}
}

// persist writes the snapshot and tells the observer. Write failures are
// logged and otherwise ignored; the in-memory cart stays authoritative.
func (s *Store) persist(ctx context.Context) {
	data, err := s.cart.Encode()
	if err != nil {
		s.log.Error("Failed to encode cart", "key", s.key, "error", err)
	} else if err := s.kv.Set(ctx, s.key, data); err != nil {
		s.log.Warn("Failed to persist cart", "key", s.key, "error", err)
	}

	s.observer.CartChanged(ctx, s.sessionID, s.cart.Count(), s.cart.Total())
}

func CountLabel(count int) string {
	if count == 1 {
		return "1 item"
	}
	return fmt.Sprintf("%d items", count)
}

func toastMessage(name string) string {
	if utf8.RuneCountInString(name) > toastNameLimit {
		name = string([]rune(name)[:toastNameLimit]) + "…"
	}
	return name + " added to cart"
}
