package cart

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/yuzvak/nhh-storefront/internal/domain/errors"
)

// LineItem is one product entry in the cart. Name doubles as its identity:
// two catalogue products sharing a display name collapse into one line.
type LineItem struct {
	Name  string
	Price decimal.Decimal
	Qty   int
	Sub   string
}

func (i LineItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Qty)))
}

// Cart is an ordered list of line items. Insertion order is display order
// and is never changed.
type Cart struct {
	items []LineItem
}

func New() *Cart {
	return &Cart{}
}

func (c *Cart) Add(name string, price decimal.Decimal, sub string) (LineItem, error) {
	if strings.TrimSpace(name) == "" || price.IsNegative() {
		return LineItem{}, errors.ErrInvalidLineItem
	}

	for i := range c.items {
		if c.items[i].Name == name {
			c.items[i].Qty++
			return c.items[i], nil
		}
	}

	item := LineItem{Name: name, Price: price, Qty: 1, Sub: sub}
	c.items = append(c.items, item)
	return item, nil
}

// Remove deletes the item at index. Out of range indexes are ignored.
func (c *Cart) Remove(index int) bool {
	if index < 0 || index >= len(c.items) {
		return false
	}

	c.items = append(c.items[:index], c.items[index+1:]...)
	return true
}

// UpdateQuantity adds delta to the quantity at index and drops the item once
// the quantity falls below one.
func (c *Cart) UpdateQuantity(index, delta int) bool {
	if index < 0 || index >= len(c.items) {
		return false
	}

	c.items[index].Qty += delta
	if c.items[index].Qty < 1 {
		c.Remove(index)
	}
	return true
}

func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.LineTotal())
	}
	return total
}

func (c *Cart) Count() int {
	count := 0
	for _, item := range c.items {
		count += item.Qty
	}
	return count
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

type wireItem struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Qty   int             `json:"qty"`
	Sub   string          `json:"sub"`
}

type encodedItem struct {
	Name  string      `json:"name"`
	Price json.Number `json:"price"`
	Qty   int         `json:"qty"`
	Sub   string      `json:"sub"`
}

// Encode serialises the cart as the JSON array the storefront keeps under
// its cart key. Prices are written as bare JSON numbers.
func (c *Cart) Encode() ([]byte, error) {
	wire := make([]encodedItem, 0, len(c.items))
	for _, item := range c.items {
		wire = append(wire, encodedItem{
			Name:  item.Name,
			Price: json.Number(item.Price.String()),
			Qty:   item.Qty,
			Sub:   item.Sub,
		})
	}

	return json.Marshal(wire)
}

// Decode rebuilds a cart from a stored snapshot. Anything unreadable yields an
// empty cart. Entries that would break the cart's invariants are dropped and
// repeated names are merged.
func Decode(data []byte) *Cart {
	c := New()
	if len(data) == 0 {
		return c
	}

	var wire []wireItem
	if err := json.Unmarshal(data, &wire); err != nil {
		return c
	}

	for _, w := range wire {
		if strings.TrimSpace(w.Name) == "" || w.Qty < 1 || w.Price.IsNegative() {
			continue
		}

		merged := false
		for i := range c.items {
			if c.items[i].Name == w.Name {
				c.items[i].Qty += w.Qty
				merged = true
				break
			}
		}
		if !merged {
			c.items = append(c.items, LineItem{Name: w.Name, Price: w.Price, Qty: w.Qty, Sub: w.Sub})
		}
	}

	return c
}
