package ports

import (
	"context"

	"github.com/postboard/postboard-api/internal/core/domain"
)

// AuthEventRepository persists the auth audit trail.
type AuthEventRepository interface {
	Insert(ctx context.Context, event *domain.AuthEvent) error
}
