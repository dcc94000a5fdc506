package cartstore

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuzvak/nhh-storefront/internal/application/ports"
	"github.com/yuzvak/nhh-storefront/internal/domain/cart"
	"github.com/yuzvak/nhh-storefront/internal/infrastructure/persistence/memory"
	"github.com/yuzvak/nhh-storefront/internal/pkg/logger"
)

const key = "nhh_cart:test"

type brokenKV struct {
	getErr error
	setErr error
	sets   int
}

func (b *brokenKV) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, b.getErr
}

func (b *brokenKV) Set(context.Context, string, []byte) error {
	b.sets++
	return b.setErr
}

func (b *brokenKV) Delete(context.Context, string) error {
	return nil
}

type recordingObserver struct {
	added   []ports.Toast
	changes []int
}

func (r *recordingObserver) ItemAdded(_ context.Context, _ string, _ cart.LineItem, toast ports.Toast) {
	r.added = append(r.added, toast)
}

func (r *recordingObserver) CartChanged(_ context.Context, _ string, count int, _ decimal.Decimal) {
	r.changes = append(r.changes, count)
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAddPersistsAndNotifies(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	obs := &recordingObserver{}

	s := Load(ctx, kv, key, "sess", obs, logger.NewNop())
	res, err := s.Add(ctx, "Claw Hammer", price("9.45"), "tools_hand_tools")
	require.NoError(t, err)

	assert.True(t, res.OpenSummary)
	assert.Equal(t, "Claw Hammer added to cart", res.Toast.Message)
	assert.Equal(t, 2800, int(res.Toast.DismissAfter.Milliseconds()))
	assert.Len(t, obs.added, 1)
	assert.Equal(t, []int{1}, obs.changes)

	data, found, err := kv.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `[{"name":"Claw Hammer","price":9.45,"qty":1,"sub":"tools_hand_tools"}]`, string(data))
}

func TestLoadRestoresSnapshot(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()

	first := Load(ctx, kv, key, "sess", nil, logger.NewNop())
	_, err := first.Add(ctx, "Claw Hammer", price("9.45"), "tools_hand_tools")
	require.NoError(t, err)
	_, err = first.Add(ctx, "Claw Hammer", price("9.45"), "tools_hand_tools")
	require.NoError(t, err)

	second := Load(ctx, kv, key, "sess", nil, logger.NewNop())
	assert.Equal(t, 2, second.Count())
	assert.Equal(t, "18.90", second.Total().StringFixed(2))
}

func TestLoadDegradesToEmpty(t *testing.T) {
	ctx := context.Background()

	kv := memory.NewKVStore()
	require.NoError(t, kv.Set(ctx, key, []byte(`{not json`)))
	s := Load(ctx, kv, key, "sess", nil, logger.NewNop())
	assert.True(t, s.IsEmpty())

	s = Load(ctx, &brokenKV{getErr: errors.New("connection refused")}, key, "sess", nil, logger.NewNop())
	assert.True(t, s.IsEmpty())
}

func TestWriteFailuresAreSwallowed(t *testing.T) {
	ctx := context.Background()
	kv := &brokenKV{setErr: errors.New("read-only replica")}

	s := Load(ctx, kv, key, "sess", nil, logger.NewNop())
	_, err := s.Add(ctx, "Red Brick", price("4.50"), "building_blocks_and_bricks")
	require.NoError(t, err)

	assert.Equal(t, 1, s.Count())
	assert.Equal(t, 1, kv.sets)
}

func TestEveryMutationPersists(t *testing.T) {
	ctx := context.Background()
	kv := &brokenKV{}
	obs := &recordingObserver{}
	s := Load(ctx, kv, key, "sess", obs, logger.NewNop())

	_, err := s.Add(ctx, "A", price("1.00"), "x")
	require.NoError(t, err)
	s.UpdateQuantity(ctx, 0, 2)
	assert.False(t, s.Remove(ctx, 5))
	s.Clear(ctx)

	assert.Equal(t, 4, kv.sets)
	assert.Equal(t, []int{1, 3, 3, 0}, obs.changes)
}

func TestAddRejectsInvalidItem(t *testing.T) {
	ctx := context.Background()
	kv := &brokenKV{}
	s := Load(ctx, kv, key, "sess", nil, logger.NewNop())

	_, err := s.Add(ctx, "", price("1.00"), "x")
	assert.Error(t, err)
	assert.Equal(t, 0, kv.sets)
}

func TestSummary(t *testing.T) {
	ctx := context.Background()
	s := Load(ctx, memory.NewKVStore(), key, "sess", nil, logger.NewNop())

	sum := s.Summary()
	assert.Equal(t, "0 items", sum.CountLabel)
	assert.Empty(t, sum.Items)

	_, err := s.Add(ctx, "Claw Hammer", price("9.45"), "tools_hand_tools")
	require.NoError(t, err)
	assert.Equal(t, "1 item", s.Summary().CountLabel)

	_, err = s.Add(ctx, "Claw Hammer", price("9.45"), "tools_hand_tools")
	require.NoError(t, err)

	sum = s.Summary()
	require.Len(t, sum.Items, 1)
	assert.Equal(t, "2 items", sum.CountLabel)
	assert.Equal(t, "18.90", sum.Items[0].LineTotal.StringFixed(2))
	assert.Equal(t, "18.90", sum.Total.StringFixed(2))
}

func TestToastMessageTruncates(t *testing.T) {
	long := strings.Repeat("a", 31)
	assert.Equal(t, strings.Repeat("a", 30)+"… added to cart", toastMessage(long))
	assert.Equal(t, strings.Repeat("a", 30)+" added to cart", toastMessage(strings.Repeat("a", 30)))
	assert.Equal(t, "Ä€ added to cart", toastMessage("Ä€"))
}
