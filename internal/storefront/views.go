package storefront

import (
	"strings"
	"time"

	"github.com/famoussince/storefront/internal/cart"
	"github.com/famoussince/storefront/internal/catalog"
)

// ProductCard is the grid projection of a product.
type ProductCard struct {
	ID               catalog.ID      `json:"id"`
	Title            string          `json:"title"`
	Badge            string          `json:"badge,omitempty"`
	Price            float64         `json:"price"`
	PriceDisplay     string          `json:"price_display"`
	CompareAtPrice   *float64        `json:"compare_at_price,omitempty"`
	CompareAtDisplay string          `json:"compare_at_display,omitempty"`
	OnSale           bool            `json:"on_sale"`
	Image            catalog.Image   `json:"image"`
	Gallery          []catalog.Image `json:"gallery"`
	Tags             []string        `json:"tags,omitempty"`
}

// ProductDetail is the quick view projection: the untruncated gallery and
// the purchasable sizes.
type ProductDetail struct {
	ProductCard
	Sizes             []SizeOptionView `json:"sizes"`
	DefaultSize       string           `json:"default_size"`
	Details           catalog.Details  `json:"details"`
	CheckoutAvailable bool             `json:"checkout_available"`
	ActiveSlide       int              `json:"active_slide"`
	ActiveImage       catalog.Image    `json:"active_image"`
}

type SizeOptionView struct {
	Label        string        `json:"label"`
	SoldOut      bool          `json:"sold_out"`
	VariantID    catalog.ID    `json:"variant_id,omitempty"`
	Price        float64       `json:"price"`
	PriceDisplay string        `json:"price_display"`
	Preorder     *PreorderView `json:"preorder,omitempty"`
}

type PreorderView struct {
	ShipWindow string `json:"ship_window,omitempty"`
}

// CartView is the drawer projection of a session's cart.
type CartView struct {
	Lines            []CartLineView `json:"lines"`
	Count            int            `json:"count"`
	Subtotal         float64        `json:"subtotal"`
	SubtotalDisplay  string         `json:"subtotal_display"`
	CheckoutEligible bool           `json:"checkout_eligible"`
}

type CartLineView struct {
	Index       int        `json:"index"`
	ProductID   catalog.ID `json:"product_id"`
	Title       string     `json:"title"`
	Size        string     `json:"size"`
	Quantity    int        `json:"quantity"`
	UnitPrice   float64    `json:"unit_price"`
	LineTotal   string     `json:"line_total"`
	ImageURL    string     `json:"image_url"`
	HasCheckout bool       `json:"has_checkout"`
}

// CheckoutResult carries the single external link the whole cart checks
// out through.
type CheckoutResult struct {
	URL string `json:"url"`
}

type SubscribeResult struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Notice is a transient, shopper-visible message raised by the service.
type Notice struct {
	Level   string    `json:"level"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// HeroView is the landing headline state.
type HeroView struct {
	Words      []string `json:"words"`
	Index      int      `json:"index"`
	Current    string   `json:"current"`
	IntervalMS int64    `json:"interval_ms"`
	TagCount   int      `json:"tag_count"`
}

func newCard(p *catalog.Product, galleryLimit int) ProductCard {
	price := catalog.EffectivePrice(p, nil)
	card := ProductCard{
		ID:           p.ID,
		Title:        p.Title,
		Badge:        p.Badge,
		Price:        price,
		PriceDisplay: catalog.FormatPrice(price),
		OnSale:       catalog.HasSale(p),
		Image:        catalog.ResolveDisplayImage(p),
		Gallery:      catalog.ResolveGallery(p, galleryLimit),
		Tags:         p.Tags,
	}
	if card.OnSale {
		compareAt := p.CompareAtPrice.Value
		card.CompareAtPrice = &compareAt
		card.CompareAtDisplay = catalog.FormatPrice(compareAt)
	}
	return card
}

func newDetail(p *catalog.Product, cursor CarouselCursor) ProductDetail {
	options := catalog.ResolveSizeOptions(p)
	sizes := make([]SizeOptionView, 0, len(options))
	for _, opt := range options {
		price := catalog.EffectivePrice(p, opt.Variant)
		view := SizeOptionView{
			Label:        opt.Label,
			SoldOut:      opt.SoldOut,
			Price:        price,
			PriceDisplay: catalog.FormatPrice(price),
		}
		if opt.Variant != nil {
			view.VariantID = opt.Variant.ID
			if pre := opt.Variant.Preorder; pre != nil && pre.Enabled {
				view.Preorder = &PreorderView{ShipWindow: pre.ShipWindow}
			}
		}
		sizes = append(sizes, view)
	}
	card := newCard(p, 0)
	slide := catalog.ShiftCarousel(cursor.Slide, cursor.Shift, len(card.Gallery))
	active := card.Image
	if len(card.Gallery) > 0 {
		active = card.Gallery[slide]
	}
	return ProductDetail{
		ProductCard:       card,
		Sizes:             sizes,
		DefaultSize:       catalog.DefaultSize(p),
		Details:           p.Details,
		CheckoutAvailable: p.CheckoutLink() != "",
		ActiveSlide:       slide,
		ActiveImage:       active,
	}
}

func newCartView(l cart.Ledger) *CartView {
	lines := make([]CartLineView, 0, len(l))
	for i, li := range l {
		lines = append(lines, CartLineView{
			Index:       i,
			ProductID:   li.ProductID,
			Title:       li.Title,
			Size:        li.Size,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			LineTotal:   catalog.FormatPrice(li.Total()),
			ImageURL:    li.ImageURL,
			HasCheckout: strings.TrimSpace(li.CheckoutURL) != "",
		})
	}
	subtotal := cart.Subtotal(l)
	return &CartView{
		Lines:            lines,
		Count:            cart.Count(l),
		Subtotal:         subtotal,
		SubtotalDisplay:  catalog.FormatPrice(subtotal),
		CheckoutEligible: cart.CheckoutEligible(l),
	}
}
