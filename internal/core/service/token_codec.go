package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/postboard/postboard-api/internal/core/domain"
	"github.com/postboard/postboard-api/internal/core/ports"
)

// DefaultTokenTTL is how long an issued token stays valid.
const DefaultTokenTTL = 365 * 24 * time.Hour

// tokenClaims is the JWT payload: exactly {user_id, exp}.
type tokenClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

var errEmptySecret = errors.New("empty signing secret")

// TokenCodec issues and verifies HS512-signed JWTs. An empty secret makes
// every Issue and Verify fail.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

var _ ports.TokenCodec = (*TokenCodec)(nil)

func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token for subjectID expiring ttl from now.
func (c *TokenCodec) Issue(subjectID string) (string, error) {
	claims := tokenClaims{
		UserID: subjectID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(c.now().Add(c.ttl)),
		},
	}

	if len(c.secret) == 0 {
		return "", fmt.Errorf("issue token: %w: %w", domain.ErrInternal, errEmptySecret)
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("issue token: %w: %w", domain.ErrInternal, err)
	}
	return signed, nil
}

// Verify checks the signature and expiry of token. Only HS512 is accepted.
// Every failure is reported as domain.ErrInvalidToken.
func (c *TokenCodec) Verify(token string) (*ports.TokenClaims, error) {
	if len(c.secret) == 0 {
		return nil, domain.ErrInvalidToken
	}

	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (interface{}, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil || !parsed.Valid || claims.UserID == "" {
		return nil, domain.ErrInvalidToken
	}

	return &ports.TokenClaims{
		SubjectID: claims.UserID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
