package auth

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/bokpharm/bokpharm-backend/pkg/enums"
)

// IdentityClaims represents the typed JWT minted by the external identity
// provider. Subject carries the provider's opaque user id; the profile fields
// feed the upsert-on-login sync.
type IdentityClaims struct {
	Email      string          `json:"email,omitempty"`
	GivenName  string          `json:"given_name,omitempty"`
	FamilyName string          `json:"family_name,omitempty"`
	Picture    string          `json:"picture,omitempty"`
	Role       *enums.UserRole `json:"role,omitempty"`
	jwt.RegisteredClaims
}
