package ports

import (
	"context"

	"github.com/postboard/postboard-api/internal/core/domain"
)

// CreatePostInput carries everything needed to create a post.
type CreatePostInput struct {
	UserID         string
	Title          string
	Content        string
	IdempotencyKey string // optional
}

// CreatePostResult is returned by PostService.Create.
type CreatePostResult struct {
	Post *domain.Post
	// Replayed is true when the Idempotency-Key matched an earlier post.
	Replayed bool
}

// PostService defines use-case operations for posts.
type PostService interface {
	Create(ctx context.Context, input CreatePostInput) (*CreatePostResult, error)
	Get(ctx context.Context, id string) (*domain.Post, error)
	List(ctx context.Context) ([]*domain.Post, error)
}
