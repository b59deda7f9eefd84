package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"passport/internal/domain/entity"
)

// Claims defines the custom claims carried by issued bearer tokens.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// UserID parses the token subject as the user's UUID.
func (c *Claims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// TokenIssuer produces and verifies signed, time-bounded identity tokens.
// Tokens are self-contained: any holder of the shared key can verify them
// without calling back into this service or the user store.
type TokenIssuer interface {
	// CreateToken returns a signed token asserting the user's identity,
	// valid for a fixed window from the time of issuance.
	CreateToken(user *entity.User) (string, error)

	// ValidateToken checks the signature and expiry of a token string and
	// returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
