package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/postboard/postboard-api/internal/core/domain"
)

const (
	idempotencyTTL = 24 * time.Hour
	// reservationTTL bounds how long a crashed request can hold a key.
	reservationTTL = time.Minute
	pendingMarker  = "pending"
)

// IdempotencyStore remembers which post an Idempotency-Key produced.
// Key format: idem:post:<user_id>:<key>, value: post id or "pending".
//
// A nil client turns the store into a permanent miss, so the API keeps
// working when Redis is unavailable at startup.
type IdempotencyStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewIdempotencyStore creates an IdempotencyStore wrapping the given client,
// which may be nil.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{client: client, ttl: idempotencyTTL}
}

// Reserve claims the key with SETNX. On a taken key it returns the stored
// post id, or domain.ErrIdempotencyInProgress while the holder is still
// creating.
func (s *IdempotencyStore) Reserve(ctx context.Context, userID, key string) (string, bool, error) {
	if s.client == nil {
		return "", true, nil
	}

	k := s.key(userID, key)
	ok, err := s.client.SetNX(ctx, k, pendingMarker, reservationTTL).Result()
	if err != nil {
		return "", false, fmt.Errorf("idempotency reserve: %w", err)
	}
	if ok {
		return "", true, nil
	}

	postID, err := s.client.Get(ctx, k).Result()
	switch {
	case errors.Is(err, redis.Nil):
		// released or expired between SETNX and GET
		return "", false, domain.ErrIdempotencyInProgress
	case err != nil:
		return "", false, fmt.Errorf("idempotency lookup: %w", err)
	case postID == pendingMarker:
		return "", false, domain.ErrIdempotencyInProgress
	}
	return postID, false, nil
}

// Complete stores the post id for the key for the full TTL.
func (s *IdempotencyStore) Complete(ctx context.Context, userID, key, postID string) error {
	if s.client == nil {
		return nil
	}

	if err := s.client.Set(ctx, s.key(userID, key), postID, s.ttl).Err(); err != nil {
		return fmt.Errorf("idempotency complete: %w", err)
	}
	return nil
}

// Release deletes the key so a retry can create.
func (s *IdempotencyStore) Release(ctx context.Context, userID, key string) error {
	if s.client == nil {
		return nil
	}

	if err := s.client.Del(ctx, s.key(userID, key)).Err(); err != nil {
		return fmt.Errorf("idempotency release: %w", err)
	}
	return nil
}

func (s *IdempotencyStore) key(userID, key string) string {
	return fmt.Sprintf("idem:post:%s:%s", userID, key)
}
