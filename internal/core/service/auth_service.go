package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/postboard/postboard-api/internal/core/domain"
	"github.com/postboard/postboard-api/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	users       ports.UserRepository
	credentials ports.CredentialRepository
	hasher      *Hasher
	tokens      ports.TokenCodec
	log         zerolog.Logger
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(
	users ports.UserRepository,
	credentials ports.CredentialRepository,
	hasher *Hasher,
	tokens ports.TokenCodec,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:       users,
		credentials: credentials,
		hasher:      hasher,
		tokens:      tokens,
		log:         log,
	}
}

// Register creates an identity with role User and its credential, then
// returns the identity as persisted. Any storage failure is ErrInternal.
//
// The two writes are not atomic. When the credential insert fails the new
// identity is deleted again; if that delete fails too the orphan is logged.
func (s *AuthService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	id, err := s.users.Create(ctx, email, domain.RoleUser)
	if err != nil {
		return nil, fmt.Errorf("register: insert user: %w: %w", domain.ErrInternal, err)
	}

	if err := s.credentials.Create(ctx, id, s.hasher.Hash(password)); err != nil {
		if delErr := s.users.Delete(context.WithoutCancel(ctx), id); delErr != nil {
			s.log.Error().Err(delErr).Str("user_id", id).Msg("orphaned user left after failed credential insert")
		}
		return nil, fmt.Errorf("register: insert credential: %w: %w", domain.ErrInternal, err)
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("register: reload user: %w: %w", domain.ErrInternal, err)
	}

	s.log.Info().Str("user_id", user.ID).Msg("user registered")
	return user, nil
}

// Login returns the identity owning email when password matches its
// credential. Unknown email and wrong password both yield ErrUnauthorized.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			s.log.Warn().Err(err).Msg("login: user lookup failed")
		}
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.credentials.Find(ctx, user.ID, s.hasher.Hash(password)); err != nil {
		if !errors.Is(err, domain.ErrCredentialNotFound) {
			s.log.Warn().Err(err).Msg("login: credential lookup failed")
		}
		return nil, domain.ErrUnauthorized
	}

	return user, nil
}

// IssueToken signs a bearer token for user.
func (s *AuthService) IssueToken(user *domain.User) (string, error) {
	return s.tokens.Issue(user.ID)
}
