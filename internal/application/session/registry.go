package session

import (
	"context"
	"sync"
	"time"

	"github.com/yuzvak/nhh-storefront/internal/application/cartstore"
	"github.com/yuzvak/nhh-storefront/internal/application/ports"
	"github.com/yuzvak/nhh-storefront/internal/domain/checkout"
	"github.com/yuzvak/nhh-storefront/internal/pkg/clock"
	"github.com/yuzvak/nhh-storefront/internal/pkg/logger"
)

// Session is one shopper's state. Fields may only be touched between Acquire
// and the matching release.
type Session struct {
	ID           string
	Cart         *cartstore.Store
	Checkout     *checkout.Wizard
	CheckoutOpen bool
	SummaryOpen  bool

	mu       sync.Mutex
	refs     int
	lastSeen time.Time
}

type Registry struct {
	kv       ports.KeyValueStore
	cartKey  string
	observer ports.CartObserver
	clock    clock.Clock
	log      *logger.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewRegistry(kv ports.KeyValueStore, cartKey string, observer ports.CartObserver, c clock.Clock, log *logger.Logger) *Registry {
	return &Registry{
		kv:       kv,
		cartKey:  cartKey,
		observer: observer,
		clock:    c,
		log:      log,
		sessions: make(map[string]*Session),
	}
}

func (r *Registry) CartKey(id string) string {
	return r.cartKey + ":" + id
}

// Acquire locks the session with the given id, creating it and loading its
// cart on first use. The returned func releases the lock and must be called
// exactly once.
func (r *Registry) Acquire(ctx context.Context, id string) (*Session, func()) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	if !ok {
		s = &Session{ID: id, lastSeen: r.clock.Now()}
		r.sessions[id] = s
	}
	s.refs++
	r.mu.Unlock()

	s.mu.Lock()
	if s.Cart == nil {
		s.Cart = cartstore.Load(ctx, r.kv, r.CartKey(id), id, r.observer, r.log)
		s.Checkout = checkout.NewWizard()
	}

	var once sync.Once
	release := func() {
		once.Do(func() {
			s.mu.Unlock()

			r.mu.Lock()
			s.refs--
			s.lastSeen = r.clock.Now()
			r.mu.Unlock()
		})
	}
	return s, release
}

// EvictIdle forgets sessions nobody has touched for maxIdle. Carts survive in
// the key-value store and are reloaded on the next Acquire; checkout progress
// does not.
func (r *Registry) EvictIdle(now time.Time, maxIdle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for id, s := range r.sessions {
		if s.refs > 0 || now.Sub(s.lastSeen) < maxIdle {
			continue
		}
		delete(r.sessions, id)
		evicted++
	}
	return evicted
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
