package auth

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bokpharm/bokpharm-backend/pkg/config"
)

var jwtSigningMethod = jwt.SigningMethodHS256

// ParseIdentityToken validates a provider-issued JWT and returns typed
// claims. The backend never mints tokens; it only verifies them.
func ParseIdentityToken(cfg config.IdentityConfig, tokenString string) (*IdentityClaims, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("identity jwt secret is required")
	}

	claims := &IdentityClaims{}
	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if token.Method != jwtSigningMethod {
				return nil, fmt.Errorf("unexpected signing method %s", token.Header["alg"])
			}
			return []byte(cfg.JWTSecret), nil
		},
		jwt.WithValidMethods([]string{jwtSigningMethod.Alg()}),
		jwt.WithIssuer(cfg.Issuer),
	)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(claims.Subject) == "" {
		return nil, fmt.Errorf("token subject is required")
	}
	if claims.Role != nil && !claims.Role.IsValid() {
		return nil, fmt.Errorf("invalid user role %q", *claims.Role)
	}

	return claims, nil
}
