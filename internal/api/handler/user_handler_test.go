package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/postboard/postboard-api/internal/core/domain"
)

type stubUserService struct {
	users map[string]*domain.User
	err   error
}

func (s *stubUserService) List(context.Context) ([]*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]*domain.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, nil
}

func (s *stubUserService) Get(_ context.Context, id string) (*domain.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func TestUserHandler_Me(t *testing.T) {
	h := NewUserHandler(&stubUserService{})
	alice := &domain.User{ID: "u1", Email: "alice@x.com", Role: domain.RoleUser}

	c, rec := newContext(t, http.MethodGet, "/users/me", "")
	if err := h.Me(withIdentity(c, alice)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var got domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got != *alice {
		t.Fatalf("expected %+v, got %+v", *alice, got)
	}
}

func TestUserHandler_Me_WithoutIdentity(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	c, _ := newContext(t, http.MethodGet, "/users/me", "")
	if err := h.Me(c); err != domain.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestUserHandler_List(t *testing.T) {
	h := NewUserHandler(&stubUserService{users: map[string]*domain.User{
		"u1": {ID: "u1", Role: domain.RoleUser},
		"a1": {ID: "a1", Role: domain.RoleAdmin},
	}})

	c, rec := newContext(t, http.MethodGet, "/users", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var got []domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 users, got %d", len(got))
	}
}

func TestUserHandler_List_Error(t *testing.T) {
	h := NewUserHandler(&stubUserService{err: domain.ErrInternal})

	c, _ := newContext(t, http.MethodGet, "/users", "")
	if err := h.List(c); !errors.Is(err, domain.ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestUserHandler_Get(t *testing.T) {
	h := NewUserHandler(&stubUserService{users: map[string]*domain.User{
		"u1": {ID: "u1", Role: domain.RoleUser},
	}})

	c, rec := newContext(t, http.MethodGet, "/users/u1", "")
	c.SetParamNames("id")
	c.SetParamValues("u1")
	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	c, _ = newContext(t, http.MethodGet, "/users/ghost", "")
	c.SetParamNames("id")
	c.SetParamValues("ghost")
	if err := h.Get(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
