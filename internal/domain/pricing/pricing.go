package pricing

import (
	"github.com/shopspring/decimal"
)

var (
	two        = decimal.NewFromInt(2)
	three      = decimal.NewFromInt(3)
	ten        = decimal.NewFromInt(10)
	fiftyCents = decimal.RequireFromString("0.50")
	ninetyFive = decimal.RequireFromString("0.95")
)

// Range is the [min, max, step] band a subcategory's products are spread across.
// Step is published alongside the band but does not take part in synthesis.
type Range struct {
	Min  decimal.Decimal `json:"min"`
	Max  decimal.Decimal `json:"max"`
	Step decimal.Decimal `json:"step"`
}

type Table map[string]Range

func newRange(min, max, step string) Range {
	return Range{
		Min:  decimal.RequireFromString(min),
		Max:  decimal.RequireFromString(max),
		Step: decimal.RequireFromString(step),
	}
}

func (t Table) Lookup(subcategory string) (Range, bool) {
	r, ok := t[subcategory]
	return r, ok
}

// Synthesize returns the shelf price for the item at position idx of n items
// listed under a subcategory with band r.
//
// The raw price is interpolated linearly across the band, rounded to the
// nearest 0.50 and then given a .95 ending above 10 or a .50 ending above 3.
// Both thresholds are strict.
func Synthesize(r Range, idx, n int) decimal.Decimal {
	raw := r.Min
	if n > 1 {
		spread := r.Max.Sub(r.Min).Mul(decimal.NewFromInt(int64(idx)))
		raw = r.Min.Add(spread.Div(decimal.NewFromInt(int64(n - 1))))
	}

	price := raw.Mul(two).Round(0).Div(two)

	switch {
	case price.GreaterThan(ten):
		price = price.Floor().Add(ninetyFive)
	case price.GreaterThan(three):
		price = price.Floor().Add(fiftyCents)
	}

	return price
}

// Format renders an amount the way the shop prints prices, e.g. €9.45.
func Format(amount decimal.Decimal) string {
	return "€" + amount.StringFixed(2)
}
