// Package auth implements the session credential service: issuing and
// validating the signed tokens that bind a session cookie to a user's email.
package auth

import (
	"context"
	"time"
)

// JWTService defines operations for managing the signed session tokens.
type JWTService interface {
	// GenerateToken creates a signed session token bound to the given email.
	// Returns the token string or an error if token generation fails.
	GenerateToken(ctx context.Context, email string) (string, error)

	// ValidateToken validates the provided token string and extracts the claims.
	// Returns the claims containing the caller identity if the token is valid,
	// or an error if validation fails (expired, invalid signature, etc.).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)

	// TokenLifetime returns the validity window tokens are issued with.
	// The cookie max-age mirrors this value.
	TokenLifetime() time.Duration
}

// Claims represents the identity decoded from a session token.
type Claims struct {
	// Email is the identity the token was issued for.
	Email string `json:"email,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
