package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/bokpharm/bokpharm-backend/api/responses"
	"github.com/bokpharm/bokpharm-backend/pkg/config"
	pkgerrors "github.com/bokpharm/bokpharm-backend/pkg/errors"
	"github.com/bokpharm/bokpharm-backend/pkg/logger"
)

type rateLimiterStore interface {
	IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error)
	CounterKey(name string) string
}

// WriteRateLimit throttles mutating requests per authenticated user using a
// fixed redis window. Reads pass through untouched, as does everything when
// the limiter is disabled or redis is down: losing the counter store must not
// take writes with it.
func WriteRateLimit(cfg config.RateLimitConfig, store rateLimiterStore, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if cfg.WriteLimit <= 0 || cfg.WriteWindow <= 0 || store == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isMutating(r.Method) {
				next.ServeHTTP(w, r)
				return
			}

			userID := UserIDFromContext(r.Context())
			if userID == "" {
				next.ServeHTTP(w, r)
				return
			}

			key := store.CounterKey(fmt.Sprintf("writes:%s", userID))
			count, err := store.IncrWithTTL(r.Context(), key, cfg.WriteWindow)
			if err != nil {
				if logg != nil {
					logg.Error(r.Context(), "rate limit counter unavailable", err)
				}
				next.ServeHTTP(w, r)
				return
			}

			if count > int64(cfg.WriteLimit) {
				if logg != nil {
					fields := map[string]any{
						"attempts":       count,
						"limit":          cfg.WriteLimit,
						"window_seconds": int(cfg.WriteWindow.Seconds()),
					}
					logg.Warn(logg.WithFields(r.Context(), fields), "write.rate_limit.blocked")
				}
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeRateLimit, "rate limit exceeded"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isMutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}
