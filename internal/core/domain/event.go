package domain

import "time"

// AuthEventKind names the operation an AuthEvent records.
type AuthEventKind string

const (
	AuthEventRegister AuthEventKind = "register"
	AuthEventLogin    AuthEventKind = "login"
)

// AuthEvent is an audit record of a registration or login attempt.
type AuthEvent struct {
	ID         string
	Kind       AuthEventKind
	UserID     string // empty when the attempt failed
	Email      string
	Success    bool
	OccurredAt time.Time
}
