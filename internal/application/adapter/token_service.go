// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenClaims represents the claims contained in an access token.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// TokenService defines access token operations. Tokens are issued by the
// identity provider sharing the signing secret.
type TokenService interface {
	// GenerateAccessToken signs an access token for the user.
	GenerateAccessToken(userID uuid.UUID, email string, ttl time.Duration) (string, error)

	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}
