package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuzvak/nhh-storefront/internal/infrastructure/persistence/memory"
	"github.com/yuzvak/nhh-storefront/internal/pkg/clock"
	"github.com/yuzvak/nhh-storefront/internal/pkg/logger"
)

func newRegistry(c clock.Clock) (*Registry, *memory.KVStore) {
	kv := memory.NewKVStore()
	return NewRegistry(kv, "nhh_cart", nil, c, logger.NewNop()), kv
}

func TestAcquireCreatesOnce(t *testing.T) {
	ctx := context.Background()
	r, _ := newRegistry(clock.NewRealClock())

	s, release := r.Acquire(ctx, "a")
	require.NotNil(t, s.Cart)
	require.NotNil(t, s.Checkout)
	_, err := s.Cart.Add(ctx, "Claw Hammer", decimal.RequireFromString("9.45"), "tools_hand_tools")
	require.NoError(t, err)
	release()
	release()

	again, release := r.Acquire(ctx, "a")
	defer release()
	assert.Same(t, s, again)
	assert.Equal(t, 1, again.Cart.Count())
	assert.Equal(t, 1, r.Len())
}

func TestCartKeyIsPerSession(t *testing.T) {
	ctx := context.Background()
	r, kv := newRegistry(clock.NewRealClock())
	assert.Equal(t, "nhh_cart:abc", r.CartKey("abc"))

	s, release := r.Acquire(ctx, "abc")
	_, err := s.Cart.Add(ctx, "Red Brick", decimal.RequireFromString("4.50"), "building_blocks_and_bricks")
	require.NoError(t, err)
	release()

	_, found, err := kv.Get(ctx, "nhh_cart:abc")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestEvictIdle(t *testing.T) {
	ctx := context.Background()
	c := clock.NewMockClock(time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC))
	r, _ := newRegistry(c)

	s, release := r.Acquire(ctx, "idle")
	_, err := s.Cart.Add(ctx, "Red Brick", decimal.RequireFromString("4.50"), "building_blocks_and_bricks")
	require.NoError(t, err)
	release()

	_, holdBusy := r.Acquire(ctx, "busy")

	c.Advance(time.Hour)
	assert.Equal(t, 1, r.EvictIdle(c.Now(), 30*time.Minute))
	assert.Equal(t, 1, r.Len())
	holdBusy()

	assert.Equal(t, 0, r.EvictIdle(c.Now(), 30*time.Minute))

	// the cart outlives its session
	reloaded, release := r.Acquire(ctx, "idle")
	defer release()
	assert.NotSame(t, s, reloaded)
	assert.Equal(t, 1, reloaded.Cart.Count())
}

func TestAcquireSerialisesAccess(t *testing.T) {
	ctx := context.Background()
	r, _ := newRegistry(clock.NewRealClock())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, release := r.Acquire(ctx, "shared")
			defer release()
			_, err := s.Cart.Add(ctx, "Claw Hammer", decimal.RequireFromString("9.45"), "tools_hand_tools")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	s, release := r.Acquire(ctx, "shared")
	defer release()
	assert.Equal(t, 50, s.Cart.Count())
}
