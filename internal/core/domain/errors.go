package domain

import "errors"

// Auth failures visible to callers. Every failure of token resolution, role
// checks and login collapses into ErrUnauthorized; storage and signing
// failures surface as ErrInternal.
var (
	ErrUnauthorized = errors.New("not authorized")
	ErrInternal     = errors.New("internal error")
)

// ErrInvalidToken is returned by token verification for any malformed,
// expired or wrongly signed token.
var ErrInvalidToken = errors.New("invalid token")
