package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/famoussince/storefront/api/middleware"
	"github.com/famoussince/storefront/internal/catalog"
	"github.com/famoussince/storefront/internal/storefront"
)

type stubStorefront struct {
	cards    []storefront.ProductCard
	detail   *storefront.ProductDetail
	view     *storefront.CartView
	checkout *storefront.CheckoutResult
	sub      *storefront.SubscribeResult
	notices  []storefront.Notice
	err      error

	lastSession string
	lastFilter  string
	lastLimit   int
	lastAdd     storefront.AddToCartInput
	lastIndex   int
	lastValue   int
	lastCursor  storefront.CarouselCursor
	lastEmail   string
}

func (s *stubStorefront) LoadCatalog(context.Context, catalog.Source) error { return s.err }

func (s *stubStorefront) Products(filter string, limit int) []storefront.ProductCard {
	s.lastFilter, s.lastLimit = filter, limit
	return s.cards
}

func (s *stubStorefront) ProductView(id string, cursor storefront.CarouselCursor) (*storefront.ProductDetail, error) {
	s.lastCursor = cursor
	return s.detail, s.err
}

func (s *stubStorefront) Notices() []storefront.Notice { return s.notices }

func (s *stubStorefront) Hero() storefront.HeroView {
	return storefront.HeroView{Words: []string{"Birth"}, Current: "Birth", IntervalMS: 2500, TagCount: 12345}
}

func (s *stubStorefront) Cart(ctx context.Context, session string) (*storefront.CartView, error) {
	s.lastSession = session
	return s.view, s.err
}

func (s *stubStorefront) AddToCart(ctx context.Context, session string, input storefront.AddToCartInput) (*storefront.CartView, error) {
	s.lastSession, s.lastAdd = session, input
	return s.view, s.err
}

func (s *stubStorefront) SetQuantity(ctx context.Context, session string, index, quantity int) (*storefront.CartView, error) {
	s.lastSession, s.lastIndex, s.lastValue = session, index, quantity
	return s.view, s.err
}

func (s *stubStorefront) AdjustQuantity(ctx context.Context, session string, index, delta int) (*storefront.CartView, error) {
	s.lastSession, s.lastIndex, s.lastValue = session, index, delta
	return s.view, s.err
}

func (s *stubStorefront) RemoveLine(ctx context.Context, session string, index int) (*storefront.CartView, error) {
	s.lastSession, s.lastIndex = session, index
	return s.view, s.err
}

func (s *stubStorefront) Checkout(ctx context.Context, session string) (*storefront.CheckoutResult, error) {
	s.lastSession = session
	return s.checkout, s.err
}

func (s *stubStorefront) Subscribe(ctx context.Context, email string) (*storefront.SubscribeResult, error) {
	s.lastEmail = email
	return s.sub, s.err
}

// sessionRequest builds a request carrying a session and, when given, chi
// URL params.
func sessionRequest(method, target, body string, params map[string]string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	ctx := middleware.WithSessionID(req.Context(), "sess-1")
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}
