// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"passport/config"
	"passport/internal/domain/entity"
	"passport/internal/domain/service"
)

// tokenTTL is the fixed validity window of issued tokens. It is a contract
// constant, not a tunable.
const tokenTTL = 7 * 24 * time.Hour

// jwtIssuer is a concrete implementation of the TokenIssuer interface using the JWT standard.
type jwtIssuer struct {
	secret []byte // Shared HMAC signing key, read-only after construction.
	ttl    time.Duration
}

// NewJWTIssuer is the constructor for jwtIssuer. It fails when no signing key
// is configured so that a misconfigured process never serves requests.
func NewJWTIssuer(cfg *config.Config) (service.TokenIssuer, error) {
	if cfg.SecretKey.Token == "" {
		return nil, errors.New("token signing key must be provided")
	}

	return &jwtIssuer{
		secret: []byte(cfg.SecretKey.Token),
		ttl:    tokenTTL,
	}, nil
}

// CreateToken creates a signed token carrying the username claim.
func (s *jwtIssuer) CreateToken(user *entity.User) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// ValidateToken checks the signature and expiry of a token string.
func (s *jwtIssuer) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	return claims, nil
}
