package ports

import (
	"context"

	"github.com/postboard/postboard-api/internal/core/domain"
)

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	// Create inserts p, assigning p.ID when empty.
	Create(ctx context.Context, p *domain.Post) error
	// FindByID returns domain.ErrPostNotFound when no post has the id.
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	List(ctx context.Context) ([]*domain.Post, error)
}

// IdempotencyStore remembers which post an Idempotency-Key produced.
// A key is reserved before the post is written, so concurrent requests
// with the same key cannot both create.
type IdempotencyStore interface {
	// Reserve claims the key. When the key already maps to a post it returns
	// that post id with reserved=false; while another request holds the
	// reservation it returns domain.ErrIdempotencyInProgress.
	Reserve(ctx context.Context, userID, key string) (postID string, reserved bool, err error)
	// Complete replaces a reservation with the id of the created post.
	Complete(ctx context.Context, userID, key, postID string) error
	// Release drops a reservation whose create failed.
	Release(ctx context.Context, userID, key string) error
}
