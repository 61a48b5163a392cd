package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/postboard/postboard-api/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, email, password string) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (*domain.User, error)
	tokenErr   error
}

func (s *stubAuthService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	return s.registerFn(ctx, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) IssueToken(user *domain.User) (string, error) {
	if s.tokenErr != nil {
		return "", s.tokenErr
	}
	return "token-" + user.ID, nil
}

func TestAuthHandler_Register_Success(t *testing.T) {
	events := &recordingDispatcher{}
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			if email != "a@x.com" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &domain.User{ID: "u1", Email: email, Role: domain.RoleUser}, nil
		},
	}
	h := NewAuthHandler(stub, events)

	c, rec := newContext(t, http.MethodPost, "/users", `{"email":"a@x.com","password":"secret"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		User  map[string]any `json:"user"`
		Token string         `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Token != "token-u1" {
		t.Fatalf("unexpected token: %q", resp.Token)
	}
	if resp.User["_id"] != "u1" || resp.User["email"] != "a@x.com" || resp.User["role"] != "User" {
		t.Fatalf("unexpected user payload: %+v", resp.User)
	}

	ev := events.last(t)
	if ev.Kind != domain.AuthEventRegister || !ev.Success || ev.UserID != "u1" || ev.Email != "a@x.com" {
		t.Fatalf("unexpected event: %+v", ev)
	}
}

func TestAuthHandler_Register_InternalFailure(t *testing.T) {
	events := &recordingDispatcher{}
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			return nil, fmt.Errorf("register: %w", domain.ErrInternal)
		},
	}
	h := NewAuthHandler(stub, events)

	c, _ := newContext(t, http.MethodPost, "/users", `{"email":"a@x.com","password":"secret"}`)
	if err := h.Register(c); !errors.Is(err, domain.ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}

	if ev := events.last(t); ev.Success || ev.UserID != "" {
		t.Fatalf("expected a failed event, got %+v", ev)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub, nil)

	c, _ := newContext(t, http.MethodPost, "/users", "not-json")
	if code := httpCode(t, h.Register(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}

	c, _ = newContext(t, http.MethodPost, "/users", `{"email":"not-an-email","password":"secret"}`)
	if code := httpCode(t, h.Register(c)); code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}

	c, _ = newContext(t, http.MethodPost, "/users", `{"email":"a@x.com"}`)
	if code := httpCode(t, h.Register(c)); code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
}

func TestAuthHandler_Register_TokenFailure(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			return &domain.User{ID: "u1", Email: email, Role: domain.RoleUser}, nil
		},
		tokenErr: fmt.Errorf("issue token: %w", domain.ErrInternal),
	}
	h := NewAuthHandler(stub, nil)

	c, rec := newContext(t, http.MethodPost, "/users", `{"email":"a@x.com","password":"secret"}`)
	if err := h.Register(c); !errors.Is(err, domain.ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected no body written, got %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	events := &recordingDispatcher{}
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			if email != "a@x.com" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &domain.User{ID: "u1", Email: email, Role: domain.RoleAdmin}, nil
		},
	}
	h := NewAuthHandler(stub, events)

	c, rec := newContext(t, http.MethodPost, "/users/login", `{"email":"a@x.com","password":"secret"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token-u1" {
		t.Fatalf("unexpected token: %v", resp["token"])
	}

	if ev := events.last(t); ev.Kind != domain.AuthEventLogin || !ev.Success {
		t.Fatalf("unexpected event: %+v", ev)
	}
}

func TestAuthHandler_Login_Unauthorized(t *testing.T) {
	events := &recordingDispatcher{}
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			return nil, domain.ErrUnauthorized
		},
	}
	h := NewAuthHandler(stub, events)

	c, rec := newContext(t, http.MethodPost, "/users/login", `{"email":"a@x.com","password":"wrong"}`)
	if err := h.Login(c); err != domain.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected no body written")
	}

	if ev := events.last(t); ev.Kind != domain.AuthEventLogin || ev.Success || ev.Email != "a@x.com" {
		t.Fatalf("unexpected event: %+v", ev)
	}
}

func TestAuthHandler_Login_InvalidBodyIsUnauthorized(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub, nil)

	c, _ := newContext(t, http.MethodPost, "/users/login", `{"email":"a@x.com"}`)
	if err := h.Login(c); err != domain.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
