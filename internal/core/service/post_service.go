package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/postboard/postboard-api/internal/core/domain"
	"github.com/postboard/postboard-api/internal/core/ports"
)

type PostService struct {
	repo        ports.PostRepository
	idempotency ports.IdempotencyStore
	logger      zerolog.Logger
}

var _ ports.PostService = (*PostService)(nil)

func NewPostService(repo ports.PostRepository, idempotency ports.IdempotencyStore, logger zerolog.Logger) *PostService {
	return &PostService{repo: repo, idempotency: idempotency, logger: logger}
}

// Create stores a new post owned by input.UserID. With an idempotency key
// the key is reserved before the insert: a key that already produced a post
// replays it, and a key still held by another request fails with
// domain.ErrIdempotencyInProgress. Other idempotency store failures are
// treated as a miss.
func (s *PostService) Create(ctx context.Context, input ports.CreatePostInput) (*ports.CreatePostResult, error) {
	key := input.IdempotencyKey
	reserved := false
	if key != "" {
		existing, ok, err := s.reserve(ctx, input.UserID, key)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return &ports.CreatePostResult{Post: existing, Replayed: true}, nil
		}
		reserved = ok
	}

	post := &domain.Post{
		Title:   input.Title,
		Content: input.Content,
		UserID:  input.UserID,
	}
	if err := s.repo.Create(ctx, post); err != nil {
		s.logger.Error().Err(err).Msg("failed to create post")
		if reserved {
			if relErr := s.idempotency.Release(context.WithoutCancel(ctx), input.UserID, key); relErr != nil {
				s.logger.Warn().Err(relErr).Str("idempotency_key", key).Msg("failed to release idempotency key")
			}
		}
		return nil, fmt.Errorf("create post: %w", err)
	}

	if reserved {
		if err := s.idempotency.Complete(ctx, input.UserID, key, post.ID); err != nil {
			s.logger.Warn().Err(err).Str("idempotency_key", key).Msg("failed to remember idempotency key")
		}
	}

	s.logger.Info().Str("post_id", post.ID).Str("user_id", input.UserID).Msg("post created")
	return &ports.CreatePostResult{Post: post}, nil
}

// reserve returns the post to replay, or whether the caller now holds the
// key. A non-nil error aborts the create.
func (s *PostService) reserve(ctx context.Context, userID, key string) (*domain.Post, bool, error) {
	postID, reserved, err := s.idempotency.Reserve(ctx, userID, key)
	switch {
	case errors.Is(err, domain.ErrIdempotencyInProgress):
		return nil, false, err
	case err != nil:
		s.logger.Warn().Err(err).Str("idempotency_key", key).Msg("idempotency reserve failed, creating anyway")
		return nil, false, nil
	case reserved:
		return nil, true, nil
	}

	existing, err := s.repo.FindByID(ctx, postID)
	if err != nil {
		// the key outlived its post; take it over
		s.logger.Warn().Err(err).Str("post_id", postID).Msg("idempotency key points at a missing post")
		return nil, true, nil
	}

	s.logger.Info().Str("idempotency_key", key).Str("post_id", postID).Msg("idempotent replay")
	return existing, false, nil
}

// Get returns domain.ErrPostNotFound for an unknown id.
func (s *PostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get post: %w", err)
	}
	return post, nil
}

func (s *PostService) List(ctx context.Context) ([]*domain.Post, error) {
	posts, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}
