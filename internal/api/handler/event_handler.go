package handler

import (
	"time"

	"github.com/postboard/postboard-api/internal/core/domain"
)

// EventDispatcher is the interface handlers use to enqueue auth audit events.
// Enqueue must not block the request.
type EventDispatcher interface {
	Enqueue(event domain.AuthEvent)
}

// noopDispatcher discards events. Used when no dispatcher is configured.
type noopDispatcher struct{}

func (noopDispatcher) Enqueue(domain.AuthEvent) {}

func authEvent(kind domain.AuthEventKind, email string, user *domain.User) domain.AuthEvent {
	e := domain.AuthEvent{
		Kind:       kind,
		Email:      email,
		Success:    user != nil,
		OccurredAt: time.Now().UTC(),
	}
	if user != nil {
		e.UserID = user.ID
	}
	return e
}
