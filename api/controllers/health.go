package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/famoussince/storefront/api/responses"
	"github.com/famoussince/storefront/pkg/config"
	pkgerrors "github.com/famoussince/storefront/pkg/errors"
	"github.com/famoussince/storefront/pkg/logger"
)

const envHeader = "X-FamousSince-Env"

// Pinger is anything readiness can probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports ready once the key-value store answers a ping.
func HealthReady(cfg *config.Config, logg *logger.Logger, store Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		if store != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := store.Ping(ctx); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store unavailable").
					WithDetails(map[string]string{"store": cfg.Store.NormalizedDriver()}))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready", "store": cfg.Store.NormalizedDriver()})
	}
}
