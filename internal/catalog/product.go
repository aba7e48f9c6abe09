package catalog

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// ID is a product or variant identifier. Catalog files use both strings
// and bare numbers, so either decodes into the same textual form.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		// objects, arrays and booleans carry no usable identifier
		*id = ""
		return nil
	}
	*id = ID(n.String())
	return nil
}

// Number is an optional numeric catalog field. Values that are absent or
// not JSON numbers decode as invalid instead of failing the whole catalog.
type Number struct {
	Value float64
	Valid bool
}

// Num builds a valid Number.
func Num(v float64) Number { return Number{Value: v, Valid: true} }

func (n *Number) UnmarshalJSON(b []byte) error {
	var f float64
	if err := json.Unmarshal(b, &f); err != nil || bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*n = Number{}
		return nil
	}
	*n = Number{Value: f, Valid: true}
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(n.Value, 'f', -1, 64)), nil
}

// Product is one element of the catalog JSON array. Fields beyond these are
// ignored.
type Product struct {
	ID             ID        `json:"id"`
	Title          string    `json:"title"`
	Price          Number    `json:"price"`
	CompareAtPrice Number    `json:"compare_at_price"`
	Badge          string    `json:"badge,omitempty"`
	Variants       []Variant `json:"variants,omitempty"`
	Sizes          []string  `json:"sizes,omitempty"`
	Thumbnail      string    `json:"thumbnail,omitempty"`
	Media          []Media   `json:"media,omitempty"`
	Images         []string  `json:"images,omitempty"`
	Lookbook       []string  `json:"lookbook,omitempty"`
	Details        Details   `json:"details"`
	Tags           []string  `json:"tags,omitempty"`
	CheckoutURL    string    `json:"checkout_url,omitempty"`
	// StripeURL is the older name of CheckoutURL.
	StripeURL string `json:"stripe_url,omitempty"`
}

// CheckoutLink returns the external checkout destination, preferring the
// current field over the legacy one.
func (p *Product) CheckoutLink() string {
	if link := strings.TrimSpace(p.CheckoutURL); link != "" {
		return link
	}
	return strings.TrimSpace(p.StripeURL)
}

// AltText is the title, or "Product" when the title is blank.
func (p *Product) AltText() string {
	if t := strings.TrimSpace(p.Title); t != "" {
		return t
	}
	return "Product"
}

type Details struct {
	Fabric string `json:"fabric,omitempty"`
	Fit    string `json:"fit,omitempty"`
	Care   string `json:"care,omitempty"`
}

type Media struct {
	Kind   string `json:"kind,omitempty"`
	Src    string `json:"src"`
	Alt    string `json:"alt,omitempty"`
	Srcset string `json:"srcset,omitempty"`
	Sizes  string `json:"sizes,omitempty"`
}

func (m Media) isImage() bool {
	return strings.EqualFold(strings.TrimSpace(m.Kind), "image")
}

// Variant is a purchasable option combination of a product.
type Variant struct {
	ID        ID                `json:"id"`
	Options   map[string]string `json:"options,omitempty"`
	Size      string            `json:"size,omitempty"`
	Price     Number            `json:"price"`
	Inventory Inventory         `json:"inventory"`
	Preorder  *Preorder         `json:"preorder,omitempty"`
}

type Inventory struct {
	Quantity Number `json:"quantity"`
	Policy   string `json:"policy,omitempty"`
}

type Preorder struct {
	Enabled    bool   `json:"enabled"`
	ShipWindow string `json:"ship_window,omitempty"`
}

// SizeLabel returns the variant's size option. The options map wins over
// the flat legacy field; option keys match case-insensitively.
func (v *Variant) SizeLabel() string {
	for k, val := range v.Options {
		if strings.EqualFold(k, "size") {
			return strings.TrimSpace(val)
		}
	}
	return strings.TrimSpace(v.Size)
}

// Sellable is false only when the policy denies overselling and a tracked
// quantity has run out.
func (v *Variant) Sellable() bool {
	if !strings.EqualFold(strings.TrimSpace(v.Inventory.Policy), "deny") {
		return true
	}
	return !v.Inventory.Quantity.Valid || v.Inventory.Quantity.Value > 0
}
