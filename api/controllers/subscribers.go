package controllers

import (
	"net/http"

	"github.com/famoussince/storefront/api/responses"
	"github.com/famoussince/storefront/api/validators"
	"github.com/famoussince/storefront/internal/storefront"
	pkgerrors "github.com/famoussince/storefront/pkg/errors"
	"github.com/famoussince/storefront/pkg/logger"
)

type subscribeRequest struct {
	Email string `json:"email"`
}

// Subscribe captures an email. Invalid and duplicate addresses come back
// with the message the form should show.
func Subscribe(svc storefront.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "storefront service unavailable"))
			return
		}

		var payload subscribeRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Subscribe(r.Context(), validators.SanitizeString(payload.Email, 320))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}
