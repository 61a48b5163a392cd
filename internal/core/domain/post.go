package domain

import "errors"

var (
	ErrPostNotFound          = errors.New("post not found")
	ErrIdempotencyInProgress = errors.New("a request with this idempotency key is in progress")
)

// Post is a piece of content authored by a User.
type Post struct {
	ID      string `json:"_id" bson:"_id"`
	Title   string `json:"title" bson:"title"`
	Content string `json:"content" bson:"content"`
	UserID  string `json:"user_id" bson:"user_id"`
}
