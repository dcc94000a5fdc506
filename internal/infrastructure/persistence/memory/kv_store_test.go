package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVStore(t *testing.T) {
	ctx := context.Background()
	s := NewKVStore()

	_, found, err := s.Get(ctx, "nhh_cart:a")
	require.NoError(t, err)
	assert.False(t, found)

	value := []byte(`[]`)
	require.NoError(t, s.Set(ctx, "nhh_cart:a", value))
	value[0] = 'x'

	got, found, err := s.Get(ctx, "nhh_cart:a")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, `[]`, string(got))

	require.NoError(t, s.Delete(ctx, "nhh_cart:a"))
	assert.Equal(t, 0, s.Len())
}

func TestKVStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewKVStore()
	assert.ErrorIs(t, s.Set(ctx, "k", nil), context.Canceled)
	_, _, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
}
