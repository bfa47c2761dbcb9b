package utils

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// FederatedClaims are the identity attributes pulled out of a
// federated sign-in credential.
type FederatedClaims struct {
	Subject string
	Email   string
	Name    string
	Picture string
}

// ParseFederatedToken extracts the profile claims from an ID token.
// The token's signature was already checked by the identity provider
// handshake, which is outside this app; the claims are decoded without
// local verification.
func ParseFederatedToken(raw string) (*FederatedClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil, fmt.Errorf("malformed id token: %w", err)
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, errors.New("id token missing subject")
	}
	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	picture, _ := claims["picture"].(string)

	return &FederatedClaims{Subject: sub, Email: email, Name: name, Picture: picture}, nil
}
