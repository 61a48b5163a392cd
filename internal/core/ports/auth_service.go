package ports

import (
	"context"
	"time"

	"github.com/postboard/postboard-api/internal/core/domain"
)

// Headers is the read side of a request's header set. http.Header satisfies it.
type Headers interface {
	Get(key string) string
}

// TokenClaims is the verified content of a bearer token.
type TokenClaims struct {
	SubjectID string
	ExpiresAt time.Time
}

// TokenCodec signs and verifies bearer tokens.
type TokenCodec interface {
	Issue(subjectID string) (string, error)
	Verify(token string) (*TokenClaims, error)
}

// AuthService registers and logs in identities and issues their tokens.
type AuthService interface {
	Register(ctx context.Context, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, error)
	IssueToken(user *domain.User) (string, error)
}

// IdentityResolver turns request headers into the calling identity.
type IdentityResolver interface {
	Resolve(ctx context.Context, headers Headers) (*domain.User, error)
	ResolveWithRole(ctx context.Context, headers Headers, required domain.Role) (*domain.User, error)
}

// UserService exposes read access to identities for admin routes.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
}
