package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by access tokens.
type Claims struct {
	UserID uuid.UUID `json:"userId"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed bearer tokens.
type TokenService interface {
	// GenerateToken creates a signed token identifying userID.
	GenerateToken(userID uuid.UUID) (string, error)

	// ValidateToken verifies signature and expiry and returns the claims.
	// It fails with ErrTokenExpired or ErrTokenInvalid from the domain errors package.
	ValidateToken(tokenString string) (*Claims, error)
}
