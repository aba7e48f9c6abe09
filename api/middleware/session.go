package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/famoussince/storefront/pkg/config"
	"github.com/famoussince/storefront/pkg/logger"
)

const maxSessionIDLen = 128

// Session resolves the shopper session from the configured header, then
// the session cookie. When neither carries a usable id a new one is minted
// and set as a cookie so the next request keeps the same cart.
func Session(cfg config.SessionConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := sessionFromRequest(r, cfg)
			if sessionID == "" {
				sessionID = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     cfg.CookieName,
					Value:    sessionID,
					Path:     "/",
					Expires:  time.Now().Add(cfg.CookieTTL),
					MaxAge:   int(cfg.CookieTTL.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
			if cfg.Header != "" {
				w.Header().Set(cfg.Header, sessionID)
			}

			ctx := WithSessionID(r.Context(), sessionID)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, sessionID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionFromRequest(r *http.Request, cfg config.SessionConfig) string {
	if cfg.Header != "" {
		if id := validSessionID(r.Header.Get(cfg.Header)); id != "" {
			return id
		}
	}
	if cfg.CookieName != "" {
		if c, err := r.Cookie(cfg.CookieName); err == nil {
			return validSessionID(c.Value)
		}
	}
	return ""
}

// validSessionID accepts short printable ids without separators that would
// collide with store key namespacing.
func validSessionID(raw string) string {
	id := strings.TrimSpace(raw)
	if id == "" || len(id) > maxSessionIDLen {
		return ""
	}
	for _, c := range id {
		if c <= ' ' || c == ':' || c > '~' {
			return ""
		}
	}
	return id
}
