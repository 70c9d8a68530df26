package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/bokpharm/bokpharm-backend/api/responses"
	pkgauth "github.com/bokpharm/bokpharm-backend/pkg/auth"
	"github.com/bokpharm/bokpharm-backend/pkg/config"
	pkgerrors "github.com/bokpharm/bokpharm-backend/pkg/errors"
	"github.com/bokpharm/bokpharm-backend/pkg/logger"
)

// Auth verifies the bearer token issued by the identity provider and seeds
// the request context with the caller's identity.
func Auth(cfg config.IdentityConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if raw == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			token := raw
			if strings.HasPrefix(strings.ToLower(token), "bearer ") {
				token = strings.TrimSpace(token[7:])
			}
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			claims, err := pkgauth.ParseIdentityToken(cfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token"))
				return
			}

			ctx := context.WithValue(r.Context(), ctxUserID, claims.Subject)
			ctx = context.WithValue(ctx, ctxClaims, claims)
			if claims.Role != nil {
				ctx = context.WithValue(ctx, ctxRole, string(*claims.Role))
			}

			if logg != nil {
				fields := map[string]any{
					"user_id": claims.Subject,
				}
				if claims.Role != nil {
					fields["actor_role"] = string(*claims.Role)
				}
				ctx = logg.WithFields(ctx, fields)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
