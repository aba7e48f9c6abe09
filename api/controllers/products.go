package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/famoussince/storefront/api/responses"
	"github.com/famoussince/storefront/api/validators"
	"github.com/famoussince/storefront/internal/storefront"
	pkgerrors "github.com/famoussince/storefront/pkg/errors"
	"github.com/famoussince/storefront/pkg/logger"
)

const (
	maxProductsLimit = 500
	maxCarouselStep  = 1000
)

// ProductList returns grid cards, optionally filtered by badge.
func ProductList(svc storefront.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "storefront service unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", 0, 0, maxProductsLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		filter := validators.SanitizeString(r.URL.Query().Get("filter"), 64)

		responses.WriteSuccess(w, map[string]any{
			"filter":   filterLabel(filter),
			"products": svc.Products(filter, limit),
		})
	}
}

// ProductDetail returns the quick view for one product. The optional slide
// and shift query parameters move the gallery carousel.
func ProductDetail(svc storefront.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "storefront service unavailable"))
			return
		}

		id := validators.SanitizeString(chi.URLParam(r, "productId"), 128)
		slide, err := validators.ParseQueryInt(r, "slide", 0, 0, maxCarouselStep)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		shift, err := validators.ParseQueryInt(r, "shift", 0, -maxCarouselStep, maxCarouselStep)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		detail, err := svc.ProductView(id, storefront.CarouselCursor{Slide: slide, Shift: shift})
		if err != nil {
			ctx := r.Context()
			if logg != nil {
				ctx = logg.WithProductID(ctx, id)
			}
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, detail)
	}
}

func filterLabel(filter string) string {
	if filter == "" {
		return "All"
	}
	return filter
}
