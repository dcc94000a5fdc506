package generator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yuzvak/nhh-storefront/internal/pkg/clock"
)

func TestOrderReference(t *testing.T) {
	// 1700000000000 ms is "loyw3v28" in base 36
	c := clock.NewMockClock(time.UnixMilli(1700000000000))
	g := NewCodeGenerator(c)

	assert.Equal(t, "NHH-YW3V28", g.OrderReference())

	c.Advance(time.Millisecond)
	assert.Equal(t, "NHH-YW3V29", g.OrderReference())
}

func TestOrderReference_ShortTimestamp(t *testing.T) {
	g := NewCodeGenerator(clock.NewMockClock(time.UnixMilli(35)))
	assert.Equal(t, "NHH-Z", g.OrderReference())
}

func TestSessionID(t *testing.T) {
	g := NewCodeGenerator(clock.NewRealClock())

	a, b := g.SessionID(), g.SessionID()
	assert.NotEqual(t, a, b)
	assert.True(t, ValidSessionID(a))
	assert.False(t, ValidSessionID("not-a-session"))
	assert.False(t, ValidSessionID(""))
}
