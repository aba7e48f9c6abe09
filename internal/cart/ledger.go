// Package cart holds the shopping cart ledger: an ordered list of line
// items merged on (product id, size). Every transform returns a new ledger
// and leaves its input untouched.
package cart

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/famoussince/storefront/internal/catalog"
)

// MaxQuantity is the ceiling for any line quantity. Every transform and
// coercion saturates here so sums never overflow.
const MaxQuantity = math.MaxInt32

// LineItem is one persisted cart line. UnitPrice is the price snapshot
// taken when the line was last added to.
type LineItem struct {
	ProductID   catalog.ID `json:"product_id"`
	Title       string     `json:"title"`
	UnitPrice   float64    `json:"unit_price"`
	Size        string     `json:"size"`
	Quantity    int        `json:"quantity"`
	ImageURL    string     `json:"image_url"`
	CheckoutURL string     `json:"checkout_url"`
}

// Total is the line's unit price times its quantity.
func (li LineItem) Total() float64 {
	return li.UnitPrice * float64(li.Quantity)
}

// UnmarshalJSON also accepts the older blob layout written before the
// field rename (id, price, qty, image, stripe_url). Non-numeric amounts
// decode as zero and quantities are clamped to at least one.
func (li *LineItem) UnmarshalJSON(b []byte) error {
	var raw struct {
		ProductID   catalog.ID     `json:"product_id"`
		ID          catalog.ID     `json:"id"`
		Title       string         `json:"title"`
		UnitPrice   catalog.Number `json:"unit_price"`
		Price       catalog.Number `json:"price"`
		Size        string         `json:"size"`
		Quantity    catalog.Number `json:"quantity"`
		Qty         catalog.Number `json:"qty"`
		ImageURL    string         `json:"image_url"`
		Image       string         `json:"image"`
		CheckoutURL string         `json:"checkout_url"`
		StripeURL   string         `json:"stripe_url"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	*li = LineItem{
		ProductID:   firstID(raw.ProductID, raw.ID),
		Title:       raw.Title,
		UnitPrice:   firstNumber(raw.UnitPrice, raw.Price).Value,
		Size:        raw.Size,
		Quantity:    CoerceQuantity(firstNumber(raw.Quantity, raw.Qty).Value),
		ImageURL:    firstString(raw.ImageURL, raw.Image),
		CheckoutURL: firstString(raw.CheckoutURL, raw.StripeURL),
	}
	return nil
}

func firstID(a, b catalog.ID) catalog.ID {
	if a != "" {
		return a
	}
	return b
}

func firstNumber(a, b catalog.Number) catalog.Number {
	if a.Valid {
		return a
	}
	return b
}

func firstString(a, b string) string {
	if strings.TrimSpace(a) != "" {
		return a
	}
	return b
}

// Ledger is the ordered list of cart lines.
type Ledger []LineItem

func (l Ledger) clone() Ledger {
	out := make(Ledger, len(l))
	copy(out, l)
	return out
}

func (l Ledger) inRange(i int) bool {
	return i >= 0 && i < len(l)
}

// Add merges item into the line with the same product id and size, or
// appends it. On a merge the quantity accumulates and the unit price is
// replaced by item's price for the whole line. A quantity below one counts
// as one and the merged quantity saturates at MaxQuantity.
func Add(l Ledger, item LineItem) Ledger {
	item.Quantity = clampQuantity(item.Quantity)
	out := l.clone()
	for i := range out {
		if out[i].ProductID == item.ProductID && out[i].Size == item.Size {
			out[i].Quantity = addQuantity(out[i].Quantity, item.Quantity)
			out[i].UnitPrice = item.UnitPrice
			return out
		}
	}
	return append(out, item)
}

// SetQuantity replaces the quantity of line i, clamped to at least one.
// An index outside the ledger is a no-op.
func SetQuantity(l Ledger, i, quantity int) Ledger {
	out := l.clone()
	if !out.inRange(i) {
		return out
	}
	out[i].Quantity = clampQuantity(quantity)
	return out
}

// AdjustQuantity adds delta to line i, clamped to [1, MaxQuantity]. A line
// is never removed by adjusting it.
func AdjustQuantity(l Ledger, i, delta int) Ledger {
	out := l.clone()
	if !out.inRange(i) {
		return out
	}
	out[i].Quantity = addQuantity(out[i].Quantity, delta)
	return out
}

// Remove deletes line i.
func Remove(l Ledger, i int) Ledger {
	if !l.inRange(i) {
		return l.clone()
	}
	out := make(Ledger, 0, len(l)-1)
	out = append(out, l[:i]...)
	return append(out, l[i+1:]...)
}

// Subtotal folds unit price times quantity over every line. It is always
// recomputed, never tracked incrementally.
func Subtotal(l Ledger) float64 {
	var sum float64
	for _, li := range l {
		sum += li.Total()
	}
	return sum
}

// Count is the total number of units in the cart.
func Count(l Ledger) int {
	var n int
	for _, li := range l {
		n += clampQuantity(li.Quantity)
	}
	return n
}

// CheckoutEligible is true when the cart has lines and every line carries
// a checkout link.
func CheckoutEligible(l Ledger) bool {
	if len(l) == 0 {
		return false
	}
	for _, li := range l {
		if strings.TrimSpace(li.CheckoutURL) == "" {
			return false
		}
	}
	return true
}

// CheckoutURL returns the first line's link when the cart is eligible. The
// whole cart checks out through that single link.
func CheckoutURL(l Ledger) (string, bool) {
	if !CheckoutEligible(l) {
		return "", false
	}
	return strings.TrimSpace(l[0].CheckoutURL), true
}

// CoerceQuantity turns raw quantity input into an integer of at least one.
// Numbers are truncated; strings contribute their leading integer, so "3
// pcs" is 3; anything else is 1.
func CoerceQuantity(raw any) int {
	switch v := raw.(type) {
	case int:
		return clampQuantity(v)
	case int32:
		return clampQuantity(int(v))
	case int64:
		return clampQuantity64(v)
	case float32:
		return coerceFloat(float64(v))
	case float64:
		return coerceFloat(v)
	case json.Number:
		return coerceString(v.String())
	case string:
		return coerceString(v)
	case *int:
		if v == nil {
			return 1
		}
		return clampQuantity(*v)
	default:
		return 1
	}
}

func coerceFloat(f float64) int {
	if math.IsNaN(f) {
		return 1
	}
	return clampQuantity(saturate(math.Trunc(f)))
}

func coerceString(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 1
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		// overflow: a huge positive prefix saturates, a huge negative one clamps
		if s[0] == '-' {
			return 1
		}
		return MaxQuantity
	}
	return clampQuantity64(n)
}

func saturate(f float64) int {
	switch {
	case f > MaxQuantity:
		return MaxQuantity
	case f < math.MinInt32:
		return math.MinInt32
	default:
		return int(f)
	}
}

func clampQuantity(n int) int {
	return clampQuantity64(int64(n))
}

func clampQuantity64(n int64) int {
	switch {
	case n < 1:
		return 1
	case n > MaxQuantity:
		return MaxQuantity
	default:
		return int(n)
	}
}

// addQuantity sums in 64 bits with both operands bounded first, so the
// result cannot wrap before it is clamped.
func addQuantity(q, delta int) int {
	d := int64(delta)
	switch {
	case d > MaxQuantity:
		d = MaxQuantity
	case d < -MaxQuantity:
		d = -MaxQuantity
	}
	return clampQuantity64(int64(clampQuantity(q)) + d)
}
