package catalog

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// EffectivePrice is the variant override when it holds a number, otherwise
// the base price. Values are passed through unvalidated.
func EffectivePrice(p *Product, v *Variant) float64 {
	if v != nil && v.Price.Valid {
		return v.Price.Value
	}
	if p == nil {
		return 0
	}
	return p.Price.Value
}

// HasSale reports a compare-at price above the base price. Display only.
func HasSale(p *Product) bool {
	if p == nil || !p.CompareAtPrice.Valid {
		return false
	}
	return p.CompareAtPrice.Value > p.Price.Value
}

// FormatPrice renders an amount with two decimals, e.g. "40.00".
func FormatPrice(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return strconv.FormatFloat(amount, 'f', 2, 64)
	}
	return decimal.NewFromFloat(amount).StringFixed(2)
}
