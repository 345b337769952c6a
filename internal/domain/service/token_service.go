package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by access tokens.
type Claims struct {
	UserID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed, time-limited token binding the given user ID.
	Issue(userID uuid.UUID) (string, error)

	// Verify validates the signature and expiry of a token string.
	// An expired token and an otherwise invalid token return distinct
	// domain errors so the boundary can answer with precise messages.
	Verify(tokenString string) (*Claims, error)
}
