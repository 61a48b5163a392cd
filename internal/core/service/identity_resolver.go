package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/postboard/postboard-api/internal/core/domain"
	"github.com/postboard/postboard-api/internal/core/ports"
)

const bearerPrefix = "Bearer "

// IdentityResolver resolves the bearer token of a request to the identity it
// was issued for. Nothing is cached: every call verifies the token and
// reloads the identity, so role changes apply on the next request.
type IdentityResolver struct {
	tokens ports.TokenCodec
	users  ports.UserRepository
	log    zerolog.Logger
}

var _ ports.IdentityResolver = (*IdentityResolver)(nil)

func NewIdentityResolver(tokens ports.TokenCodec, users ports.UserRepository, log zerolog.Logger) *IdentityResolver {
	return &IdentityResolver{tokens: tokens, users: users, log: log}
}

// Resolve returns the identity behind the Authorization header. Any failure
// is reported as domain.ErrUnauthorized; the reason is only logged.
func (r *IdentityResolver) Resolve(ctx context.Context, headers ports.Headers) (*domain.User, error) {
	header := headers.Get("Authorization")
	if header == "" {
		return nil, r.deny("missing authorization header", nil)
	}

	token, ok := strings.CutPrefix(header, bearerPrefix)
	if !ok {
		return nil, r.deny("authorization header is not a bearer token", nil)
	}

	claims, err := r.tokens.Verify(token)
	if err != nil {
		return nil, r.deny("token verification failed", err)
	}

	user, err := r.users.FindByID(ctx, claims.SubjectID)
	if err != nil {
		return nil, r.deny("token subject could not be loaded", err)
	}
	if !user.Role.IsValid() {
		return nil, r.deny("token subject has an unknown role", domain.ErrInvalidRole)
	}

	return user, nil
}

// ResolveWithRole resolves the identity and requires it to satisfy the given
// role. A role mismatch is indistinguishable from a bad token.
func (r *IdentityResolver) ResolveWithRole(ctx context.Context, headers ports.Headers, required domain.Role) (*domain.User, error) {
	user, err := r.Resolve(ctx, headers)
	if err != nil {
		return nil, err
	}

	if !domain.Satisfies(user.Role, required) {
		r.log.Debug().
			Str("user_id", user.ID).
			Str("role", string(user.Role)).
			Str("required", string(required)).
			Msg("role check failed")
		return nil, domain.ErrUnauthorized
	}

	return user, nil
}

func (r *IdentityResolver) deny(reason string, err error) error {
	r.log.Debug().Err(err).Msg(reason)
	return domain.ErrUnauthorized
}
