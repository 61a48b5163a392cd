package ports

import (
	"context"

	"github.com/postboard/postboard-api/internal/core/domain"
)

// AuthEventService records registration and login attempts.
type AuthEventService interface {
	Record(ctx context.Context, event domain.AuthEvent) error
}
