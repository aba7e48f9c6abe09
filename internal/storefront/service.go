// Package storefront owns the mutable storefront state: the loaded
// catalog, load notices, per-session carts and the subscriber list. Every
// read and mutation goes through Service.
package storefront

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/famoussince/storefront/internal/cart"
	"github.com/famoussince/storefront/internal/catalog"
	"github.com/famoussince/storefront/internal/hero"
	"github.com/famoussince/storefront/internal/subscribers"
	pkgerrors "github.com/famoussince/storefront/pkg/errors"
	"github.com/famoussince/storefront/pkg/logger"
	"github.com/famoussince/storefront/pkg/metrics"
)

const (
	// SubscriberScope holds the site-wide email list.
	SubscriberScope = "site"

	MsgCatalogUnavailable  = "Could not load products. Check file paths."
	MsgCheckoutUnavailable = "Checkout not configured for one or more items."
	MsgCartEmpty           = "cart is empty"
)

// Service is the storefront state owner.
type Service interface {
	LoadCatalog(ctx context.Context, src catalog.Source) error
	Products(filter string, limit int) []ProductCard
	ProductView(id string, cursor CarouselCursor) (*ProductDetail, error)
	Notices() []Notice
	Hero() HeroView

	Cart(ctx context.Context, session string) (*CartView, error)
	AddToCart(ctx context.Context, session string, input AddToCartInput) (*CartView, error)
	SetQuantity(ctx context.Context, session string, index, quantity int) (*CartView, error)
	AdjustQuantity(ctx context.Context, session string, index, delta int) (*CartView, error)
	RemoveLine(ctx context.Context, session string, index int) (*CartView, error)
	Checkout(ctx context.Context, session string) (*CheckoutResult, error)

	Subscribe(ctx context.Context, email string) (*SubscribeResult, error)
}

// CarouselCursor positions the quick view gallery: Slide is the slide the
// shopper was on and Shift the number of steps taken from it.
type CarouselCursor struct {
	Slide int
	Shift int
}

// AddToCartInput is one add request. Quantity is raw shopper input and is
// coerced to at least one. An empty Size selects the default size.
type AddToCartInput struct {
	ProductID string
	Size      string
	Quantity  any
}

type cartRepository interface {
	Load(ctx context.Context, scope string) (cart.Ledger, error)
	Save(ctx context.Context, scope string, l cart.Ledger) error
}

type subscriberRepository interface {
	Load(ctx context.Context, scope string) (subscribers.List, error)
	Save(ctx context.Context, scope string, l subscribers.List) error
}

// ServiceParams wires the storefront dependencies. Metrics, Rotator,
// Counter and Now are optional.
type ServiceParams struct {
	Carts       cartRepository
	Subscribers subscriberRepository
	Logger      *logger.Logger
	Metrics     *metrics.Storefront
	Rotator     *hero.Rotator
	Counter     *hero.TagCounter
	Now         func() time.Time
}

type service struct {
	carts       cartRepository
	subscribers subscriberRepository
	logg        *logger.Logger
	metrics     *metrics.Storefront
	rotator     *hero.Rotator
	counter     *hero.TagCounter
	now         func() time.Time
	locks       *keyedLocks

	mu      sync.RWMutex
	catalog *catalog.Catalog
	notices []Notice
}

// NewService builds the state owner with an empty catalog.
func NewService(params ServiceParams) (Service, error) {
	if params.Carts == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	if params.Subscribers == nil {
		return nil, fmt.Errorf("subscriber repository required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Rotator == nil {
		params.Rotator = hero.NewRotator(nil, 0)
	}
	if params.Counter == nil {
		params.Counter = hero.NewTagCounter(nil)
	}
	if params.Now == nil {
		params.Now = time.Now
	}
	return &service{
		carts:       params.Carts,
		subscribers: params.Subscribers,
		logg:        params.Logger,
		metrics:     params.Metrics,
		rotator:     params.Rotator,
		counter:     params.Counter,
		now:         params.Now,
		locks:       newKeyedLocks(),
		catalog:     catalog.Empty(),
	}, nil
}

// LoadCatalog replaces the catalog from src. A failed load keeps an empty
// catalog and raises a notice; the error is returned for the caller to log
// or ignore.
func (s *service) LoadCatalog(ctx context.Context, src catalog.Source) error {
	started := s.now()
	loaded, err := catalog.Load(ctx, src)
	s.metrics.ObserveCatalogLoad(err == nil, s.now().Sub(started))

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.catalog = catalog.Empty()
		s.notices = append(s.notices, Notice{Level: "warn", Message: MsgCatalogUnavailable, At: s.now()})
		logCtx := s.logg.WithField(ctx, "catalog_source", fmt.Sprint(src))
		s.logg.Warn(s.logg.WithField(logCtx, "error", err.Error()), "catalog load failed")
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, MsgCatalogUnavailable)
	}
	s.catalog = loaded
	s.notices = nil
	s.logg.Info(s.logg.WithField(ctx, "products", loaded.Len()), "catalog loaded")
	return nil
}

func (s *service) currentCatalog() *catalog.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog
}

// Products projects the filtered catalog into grid cards. limit <= 0
// returns every match.
func (s *service) Products(filter string, limit int) []ProductCard {
	products := catalog.Filter(s.currentCatalog().Products(), filter)
	if limit > 0 && len(products) > limit {
		products = products[:limit]
	}
	cards := make([]ProductCard, 0, len(products))
	for i := range products {
		cards = append(cards, newCard(&products[i], catalog.CardGalleryLimit))
	}
	return cards
}

func (s *service) ProductView(id string, cursor CarouselCursor) (*ProductDetail, error) {
	p, ok := s.currentCatalog().Find(catalog.ID(id))
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	detail := newDetail(p, cursor)
	return &detail, nil
}

func (s *service) Notices() []Notice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Notice, len(s.notices))
	copy(out, s.notices)
	return out
}

func (s *service) Hero() HeroView {
	idx, word := s.rotator.At(s.now())
	return HeroView{
		Words:      s.rotator.Words(),
		Index:      idx,
		Current:    word,
		IntervalMS: s.rotator.Interval().Milliseconds(),
		TagCount:   s.counter.Bump(),
	}
}

func (s *service) Cart(ctx context.Context, session string) (*CartView, error) {
	scope, err := cartScope(session)
	if err != nil {
		return nil, err
	}
	ledger, err := s.carts.Load(ctx, scope)
	if err != nil {
		return nil, err
	}
	return newCartView(ledger), nil
}

func (s *service) AddToCart(ctx context.Context, session string, input AddToCartInput) (*CartView, error) {
	p, ok := s.currentCatalog().Find(catalog.ID(input.ProductID))
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	size, err := resolveSize(p, input.Size)
	if err != nil {
		return nil, err
	}

	variant, _ := catalog.ResolveVariantForSize(p, size)
	item := cart.LineItem{
		ProductID:   p.ID,
		Title:       p.Title,
		UnitPrice:   catalog.EffectivePrice(p, variant),
		Size:        size,
		Quantity:    cart.CoerceQuantity(input.Quantity),
		ImageURL:    catalog.ResolveDisplayImage(p).Src,
		CheckoutURL: p.CheckoutLink(),
	}

	ctx = s.logg.WithProductID(ctx, string(p.ID))
	return s.mutateCart(ctx, session, "add", func(l cart.Ledger) (cart.Ledger, bool) {
		return cart.Add(l, item), true
	})
}

// resolveSize checks the requested size against the product's options.
func resolveSize(p *catalog.Product, requested string) (string, error) {
	requested = strings.TrimSpace(requested)
	options := catalog.ResolveSizeOptions(p)
	if requested == "" {
		return catalog.DefaultSize(p), nil
	}
	for _, opt := range options {
		if opt.Label != requested {
			continue
		}
		if opt.SoldOut {
			return "", pkgerrors.New(pkgerrors.CodeStateConflict, "size is sold out").
				WithDetails(map[string]string{"size": requested})
		}
		return requested, nil
	}
	return "", pkgerrors.New(pkgerrors.CodeValidation, "size is not available for this product").
		WithDetails(map[string]string{"size": requested})
}

func (s *service) SetQuantity(ctx context.Context, session string, index, quantity int) (*CartView, error) {
	return s.mutateCart(ctx, session, "set", func(l cart.Ledger) (cart.Ledger, bool) {
		return cart.SetQuantity(l, index, quantity), index >= 0 && index < len(l)
	})
}

func (s *service) AdjustQuantity(ctx context.Context, session string, index, delta int) (*CartView, error) {
	return s.mutateCart(ctx, session, "adjust", func(l cart.Ledger) (cart.Ledger, bool) {
		return cart.AdjustQuantity(l, index, delta), index >= 0 && index < len(l)
	})
}

func (s *service) RemoveLine(ctx context.Context, session string, index int) (*CartView, error) {
	return s.mutateCart(ctx, session, "remove", func(l cart.Ledger) (cart.Ledger, bool) {
		return cart.Remove(l, index), index >= 0 && index < len(l)
	})
}

// mutateCart loads, transforms and overwrites the session's snapshot while
// holding the session lock. fn reports whether anything changed; unchanged
// ledgers are not written back.
func (s *service) mutateCart(ctx context.Context, session, op string, fn func(cart.Ledger) (cart.Ledger, bool)) (*CartView, error) {
	scope, err := cartScope(session)
	if err != nil {
		return nil, err
	}
	unlock := s.locks.lock(scope)
	defer unlock()

	ledger, err := s.carts.Load(ctx, scope)
	if err != nil {
		return nil, err
	}
	next, changed := fn(ledger)
	if !changed {
		return newCartView(ledger), nil
	}
	if err := s.carts.Save(ctx, scope, next); err != nil {
		return nil, err
	}
	s.metrics.IncCartMutation(op)

	logCtx := s.logg.WithFields(ctx, map[string]any{"op": op, "lines": len(next)})
	s.logg.Debug(logCtx, "cart updated")
	return newCartView(next), nil
}

// Checkout returns the first line's link when every line has one.
func (s *service) Checkout(ctx context.Context, session string) (*CheckoutResult, error) {
	scope, err := cartScope(session)
	if err != nil {
		return nil, err
	}
	ledger, err := s.carts.Load(ctx, scope)
	if err != nil {
		return nil, err
	}
	if len(ledger) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, MsgCartEmpty)
	}
	url, ok := cart.CheckoutURL(ledger)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, MsgCheckoutUnavailable)
	}
	return &CheckoutResult{URL: url}, nil
}

func (s *service) Subscribe(ctx context.Context, email string) (*SubscribeResult, error) {
	unlock := s.locks.lock(SubscriberScope)
	defer unlock()

	list, err := s.subscribers.Load(ctx, SubscriberScope)
	if err != nil {
		return nil, err
	}
	next, normalized, err := subscribers.Subscribe(list, email)
	if err != nil {
		switch {
		case pkgerrors.IsCode(err, pkgerrors.CodeConflict):
			s.metrics.IncSubscription("duplicate")
		default:
			s.metrics.IncSubscription("invalid")
		}
		return nil, err
	}
	if err := s.subscribers.Save(ctx, SubscriberScope, next); err != nil {
		return nil, err
	}
	s.metrics.IncSubscription("accepted")
	s.logg.Info(s.logg.WithField(ctx, "subscribers", len(next)), "subscriber added")
	return &SubscribeResult{Email: normalized, Message: subscribers.MsgAccepted}, nil
}

func cartScope(session string) (string, error) {
	session = strings.TrimSpace(session)
	if session == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "session id required")
	}
	return "session:" + session, nil
}
