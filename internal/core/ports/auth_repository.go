package ports

import (
	"context"

	"github.com/postboard/postboard-api/internal/core/domain"
)

// UserRepository defines persistence operations for identities.
type UserRepository interface {
	// FindByID returns domain.ErrUserNotFound when no identity has the id.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByEmail returns domain.ErrUserNotFound when no identity has the email.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create inserts a new identity and returns its generated id.
	Create(ctx context.Context, email string, role domain.Role) (string, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.User, error)
}

// CredentialRepository stores password digests linked to identities.
type CredentialRepository interface {
	Create(ctx context.Context, userID, passwordHash string) error
	// Find returns domain.ErrCredentialNotFound when no credential matches
	// both the identity id and the digest.
	Find(ctx context.Context, userID, passwordHash string) (*domain.Credential, error)
}
