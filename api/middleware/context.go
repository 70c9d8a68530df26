package middleware

import (
	"context"

	"github.com/bokpharm/bokpharm-backend/pkg/auth"
)

type contextKey string

const (
	ctxUserID     contextKey = "user_id"
	ctxRole       contextKey = "actor_role"
	ctxPharmacyID contextKey = "pharmacy_id"
	ctxClaims     contextKey = "identity_claims"
)

func UserIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxUserID).(string); ok {
		return v
	}
	return ""
}

func RoleFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxRole).(string); ok {
		return v
	}
	return ""
}

func PharmacyIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxPharmacyID).(string); ok {
		return v
	}
	return ""
}

// ClaimsFromContext returns the verified identity claims seeded by Auth, or
// nil on unauthenticated requests.
func ClaimsFromContext(ctx context.Context) *auth.IdentityClaims {
	if ctx == nil {
		return nil
	}
	if v, ok := ctx.Value(ctxClaims).(*auth.IdentityClaims); ok {
		return v
	}
	return nil
}

// WithUserID injects the user identifier into the context.
func WithUserID(ctx context.Context, userID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxUserID, userID)
}

// WithPharmacyID injects the pharmacy identifier into the context for
// downstream handlers.
func WithPharmacyID(ctx context.Context, pharmacyID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxPharmacyID, pharmacyID)
}
