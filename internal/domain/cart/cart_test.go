package cart

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuzvak/nhh-storefront/internal/domain/errors"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAdd_DistinctNames(t *testing.T) {
	c := New()
	prices := []string{"2.00", "4.50", "6.50", "18.95", "0.00"}

	sum := decimal.Zero
	for i, p := range prices {
		_, err := c.Add(fmt.Sprintf("Item %d", i), price(p), "building_blocks_and_bricks")
		require.NoError(t, err)
		sum = sum.Add(price(p))
	}

	assert.Equal(t, len(prices), c.Count())
	assert.Equal(t, len(prices), c.Len())
	assert.True(t, c.Total().Equal(sum), "expected total %s, got %s", sum, c.Total())
}

func TestAdd_SameNameIncrementsQuantity(t *testing.T) {
	c := New()

	_, err := c.Add("Claw Hammer", price("9.45"), "tools_hand_tools")
	require.NoError(t, err)
	item, err := c.Add("Claw Hammer", price("9.45"), "tools_hand_tools")
	require.NoError(t, err)

	assert.Equal(t, 2, item.Qty)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 2, c.Count())
	assert.Equal(t, "18.90", c.Total().StringFixed(2))
}

func TestAdd_KeepsFirstPriceOnRepeat(t *testing.T) {
	c := New()

	_, _ = c.Add("Trowel", price("4.50"), "tools_hand_tools")
	_, _ = c.Add("Trowel", price("9.95"), "tools_hand_tools")

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "4.50", items[0].Price.StringFixed(2))
}

func TestAdd_RejectsInvalidInput(t *testing.T) {
	c := New()

	_, err := c.Add("  ", price("1.00"), "x")
	assert.ErrorIs(t, err, errors.ErrInvalidLineItem)

	_, err = c.Add("Nails", price("-1.00"), "x")
	assert.ErrorIs(t, err, errors.ErrInvalidLineItem)

	assert.True(t, c.IsEmpty())
}

func TestAdd_PreservesInsertionOrder(t *testing.T) {
	c := New()
	_, _ = c.Add("B", price("1"), "")
	_, _ = c.Add("A", price("1"), "")
	_, _ = c.Add("B", price("1"), "")
	_, _ = c.Add("C", price("1"), "")

	var names []string
	for _, item := range c.Items() {
		names = append(names, item.Name)
	}
	assert.Equal(t, []string{"B", "A", "C"}, names)
}

func TestUpdateQuantity_RemovesAtZero(t *testing.T) {
	c := New()
	_, _ = c.Add("Claw Hammer", price("9.45"), "tools_hand_tools")
	_, _ = c.Add("Claw Hammer", price("9.45"), "tools_hand_tools")
	_, _ = c.Add("Spirit Level", price("12.95"), "tools_measuring_and_levelling")

	ok := c.UpdateQuantity(0, -2)
	assert.True(t, ok)
	require.Equal(t, 1, c.Len())
	assert.Equal(t, "Spirit Level", c.Items()[0].Name)

	for _, item := range c.Items() {
		assert.GreaterOrEqual(t, item.Qty, 1)
	}
}

func TestUpdateQuantity_Increment(t *testing.T) {
	c := New()
	_, _ = c.Add("Gloves", price("3.50"), "ppe_gloves")

	c.UpdateQuantity(0, 3)
	assert.Equal(t, 4, c.Count())
	assert.Equal(t, "14.00", c.Total().StringFixed(2))
}

func TestUpdateQuantity_MissingIndexIsNoop(t *testing.T) {
	c := New()
	_, _ = c.Add("Gloves", price("3.50"), "ppe_gloves")

	assert.False(t, c.UpdateQuantity(5, -1))
	assert.False(t, c.UpdateQuantity(-1, 1))
	assert.Equal(t, 1, c.Count())
}

func TestRemove_OutOfRangeLeavesCartUnchanged(t *testing.T) {
	c := New()
	_, _ = c.Add("A", price("1.00"), "")
	_, _ = c.Add("B", price("2.00"), "")
	before := c.Items()

	assert.False(t, c.Remove(2))
	assert.False(t, c.Remove(-1))
	assert.Equal(t, before, c.Items())

	assert.True(t, c.Remove(0))
	assert.Equal(t, "B", c.Items()[0].Name)
}

func TestClear(t *testing.T) {
	c := New()
	_, _ = c.Add("A", price("1.00"), "")
	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.Count())
	assert.True(t, c.Total().IsZero())
}

func TestEmptyCart(t *testing.T) {
	c := New()
	assert.Equal(t, 0, c.Count())
	assert.True(t, c.Total().IsZero())
}

func TestEncodeDecode(t *testing.T) {
	c := New()
	_, _ = c.Add("Claw Hammer", price("9.45"), "tools_hand_tools")
	_, _ = c.Add("Claw Hammer", price("9.45"), "tools_hand_tools")

	data, err := c.Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"Claw Hammer","price":9.45,"qty":2,"sub":"tools_hand_tools"}]`, string(data))

	restored := Decode(data)
	assert.Equal(t, 2, restored.Count())
	assert.Equal(t, "18.90", restored.Total().StringFixed(2))
}

func TestEncode_EmptyCartIsEmptyArray(t *testing.T) {
	data, err := New().Encode()
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestDecode_BestEffort(t *testing.T) {
	tests := []struct {
		name  string
		input string
		count int
		lines int
	}{
		{name: "absent", input: "", count: 0, lines: 0},
		{name: "malformed", input: "{not json", count: 0, lines: 0},
		{name: "wrong shape", input: `{"name":"x"}`, count: 0, lines: 0},
		{name: "null", input: "null", count: 0, lines: 0},
		{name: "drops zero quantity", input: `[{"name":"A","price":1,"qty":0,"sub":""},{"name":"B","price":1,"qty":1,"sub":""}]`, count: 1, lines: 1},
		{name: "drops nameless", input: `[{"name":"","price":1,"qty":3,"sub":""}]`, count: 0, lines: 0},
		{name: "merges duplicates", input: `[{"name":"A","price":1,"qty":1,"sub":""},{"name":"A","price":1,"qty":2,"sub":""}]`, count: 3, lines: 1},
		{name: "quoted price", input: `[{"name":"A","price":"2.50","qty":2,"sub":""}]`, count: 2, lines: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Decode([]byte(tt.input))
			assert.Equal(t, tt.count, c.Count())
			assert.Equal(t, tt.lines, c.Len())
		})
	}
}
