package controllers

import (
	"net/http"

	"github.com/famoussince/storefront/api/responses"
	"github.com/famoussince/storefront/internal/storefront"
	pkgerrors "github.com/famoussince/storefront/pkg/errors"
	"github.com/famoussince/storefront/pkg/logger"
)

func Hero(svc storefront.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "storefront service unavailable"))
			return
		}
		responses.WriteSuccess(w, svc.Hero())
	}
}

// Notices lists transient warnings such as a failed catalog load.
func Notices(svc storefront.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "storefront service unavailable"))
			return
		}
		responses.WriteSuccess(w, map[string]any{"notices": svc.Notices()})
	}
}
